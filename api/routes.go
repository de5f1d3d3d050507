package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every handler into the router. Reads are open; writes sit
// behind bearer-token authentication.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Blog endpoints
		r.Get("/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/blog/{blogSlug}", handlers.blogHandler.getBlog())

		// Entry endpoints
		r.Get("/entries", handlers.entryHandler.getAllEntries())
		r.Get("/entry/{entryID}", handlers.entryHandler.getEntry())

		// Comment endpoints
		r.Get("/entry/{entryID}/comments", handlers.commentHandler.getEntryComments())

		// Tag endpoints
		r.Get("/tags", handlers.tagHandler.getAllTags())

		// Profile endpoints
		r.Get("/author-profile/{userID}", handlers.profileHandler.getAuthorProfile())
		r.Get("/user-profile/{userID}", handlers.profileHandler.getUserProfile())
	})

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/blog", handlers.blogHandler.createBlog())
		r.Put("/blog/{blogSlug}", handlers.blogHandler.updateBlog())
		r.Delete("/blog/{blogSlug}", handlers.blogHandler.deleteBlog())

		r.Post("/entry", handlers.entryHandler.createEntry())
		r.Put("/entry/{entryID}", handlers.entryHandler.updateEntry())
		r.Delete("/entry/{entryID}", handlers.entryHandler.deleteEntry())

		r.Post("/comment", handlers.commentHandler.createComment())
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		r.Post("/tag", handlers.tagHandler.createTag())
		r.Delete("/tag/{tagID}", handlers.tagHandler.deleteTag())

		r.Post("/user", handlers.userHandler.createUser())
		r.Delete("/user/{userID}", handlers.userHandler.deleteUser())

		r.Post("/author-profile", handlers.profileHandler.createAuthorProfile())
		r.Put("/author-profile/{userID}", handlers.profileHandler.updateAuthorProfile())
		r.Post("/user-profile", handlers.profileHandler.createUserProfile())
		r.Put("/user-profile/{userID}", handlers.profileHandler.updateUserProfile())
		r.Post("/user-profile/{userID}/avatar", handlers.profileHandler.uploadAvatar())
	})
}
