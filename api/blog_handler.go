package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsmelov/blogstore-backend/database"
	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// BlogCollection represents multiple blogs
type BlogCollection struct {
	Blogs []*models.Blog `json:"blogs"`
	Total int            `json:"total,omitempty"`
}

// getAllBlogs lists blogs. With min_entries set, only blogs whose entry count
// exceeds the threshold come back, each carrying its entry count.
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if minEntriesStr := r.URL.Query().Get("min_entries"); minEntriesStr != "" {
			minEntries, err := strconv.ParseInt(minEntriesStr, 10, 64)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid min_entries"))
				return
			}

			rows, err := h.blogRepo.FindActiveWithEntryCounts(minEntries)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			h.responder.WriteJSON(w, map[string]any{"blogs": rows, "total": len(rows)})
			return
		}

		opts := database.ListOptions{OrderBy: "name"}
		if name := r.URL.Query().Get("name"); name != "" {
			opts.Contains = map[string]string{"name": name}
		}

		blogs, err := h.blogRepo.FindAll(opts)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, BlogCollection{Blogs: blogs, Total: len(blogs)})
	}
}

// getBlog retrieves a blog by its slug
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "blogSlug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogSlug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

type createBlogRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Headline    *string `json:"headline,omitempty"`
	Description *string `json:"description,omitempty"`
}

// createBlog persists a new blog on the validated path. An omitted slug is
// derived from the name.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Slug == "" {
			req.Slug = models.Slugify(req.Name)
		}

		blog := models.Blog{
			Name:        req.Name,
			Slug:        req.Slug,
			Headline:    req.Headline,
			Description: req.Description,
		}

		if err := h.blogRepo.AddValidated(&blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, blog)
	}
}

// updateBlog applies a partial update to a blog found by slug
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "blogSlug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogSlug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req createBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}
		if req.Name != "" {
			fields["name"] = req.Name
		}
		if req.Slug != "" {
			fields["slug"] = req.Slug
		}
		if req.Headline != nil {
			fields["headline"] = *req.Headline
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}

		if err := h.blogRepo.UpdateFields(blog.ID, fields); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.blogRepo.FindByID(blog.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlog removes a blog and, through the cascade, all of its entries
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "blogSlug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogSlug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogRepo.Delete(blog.ID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}
