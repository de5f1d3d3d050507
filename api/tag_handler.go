package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsmelov/blogstore-backend/database"
	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

// TagCollection represents multiple tags
type TagCollection struct {
	Tags  []*models.Tag `json:"tags"`
	Total int           `json:"total,omitempty"`
}

// getAllTags lists tags ordered by name
func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := database.ListOptions{OrderBy: "name"}
		if name := r.URL.Query().Get("name"); name != "" {
			opts.Contains = map[string]string{"name": name}
		}

		tags, err := h.tagRepo.FindAll(opts)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, TagCollection{Tags: tags, Total: len(tags)})
	}
}

type createTagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// createTag persists a new tag. Tag names are allowed to repeat.
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Slug == "" {
			req.Slug = models.Slugify(req.Name)
		}

		tag := models.Tag{Name: req.Name, Slug: req.Slug}
		if err := h.tagRepo.AddValidated(&tag); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

// deleteTag removes a tag and its entry links
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		if err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tag deleted successfully",
		})
	}
}
