package api

import (
	"github.com/dsmelov/blogstore-backend/database"
	"github.com/dsmelov/blogstore-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, avatars storage.Storage) *routeHandlers {
	return &routeHandlers{
		blogHandler:    newBlogHandler(database.BlogRepo()),
		entryHandler:   newEntryHandler(database.EntryRepo(), database.AuthorProfileRepo(), database.TagRepo()),
		commentHandler: newCommentHandler(database.CommentRepo(), database.EntryRepo()),
		tagHandler:     newTagHandler(database.TagRepo()),
		userHandler:    newUserHandler(database.UserRepo()),
		profileHandler: newProfileHandler(database.AuthorProfileRepo(), database.UserProfileRepo(), database.UserRepo(), avatars),
	}
}
