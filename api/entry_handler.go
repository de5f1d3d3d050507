package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsmelov/blogstore-backend/database"
	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type entryHandler struct {
	responder         Responder
	logger            zerolog.Logger
	entryRepo         *database.EntryRepo
	authorProfileRepo *database.AuthorProfileRepo
	tagRepo           *database.TagRepo
}

func newEntryHandler(entryRepo *database.EntryRepo, authorProfileRepo *database.AuthorProfileRepo, tagRepo *database.TagRepo) entryHandler {
	logger := log.With().Str("handlerName", "entryHandler").Logger()

	return entryHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		entryRepo:         entryRepo,
		authorProfileRepo: authorProfileRepo,
		tagRepo:           tagRepo,
	}
}

// EntryCollection represents multiple entries
type EntryCollection struct {
	Entries []*models.Entry `json:"entries"`
	Total   int             `json:"total,omitempty"`
}

// getAllEntries lists entries filtered by blog or tag slug, newest first
// unless the caller orders otherwise.
func (h entryHandler) getAllEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := database.EntryListOptions{
			BlogSlug: r.URL.Query().Get("blog"),
			TagSlug:  r.URL.Query().Get("tag"),
		}

		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid limit"))
				return
			}
			opts.Limit = limit
		}
		if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
			offset, err := strconv.Atoi(offsetStr)
			if err != nil || offset < 0 {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid offset"))
				return
			}
			opts.Offset = offset
		}
		if order := r.URL.Query().Get("order"); order != "" {
			opts.OrderBy = order
			opts.Desc = r.URL.Query().Get("desc") == "true"
		}

		entries, err := h.entryRepo.FindAll(opts)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, EntryCollection{Entries: entries, Total: len(entries)})
	}
}

// getEntry retrieves an entry with authors and tags loaded
func (h entryHandler) getEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		entry, err := h.entryRepo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, entry)
	}
}

type createEntryRequest struct {
	BlogID    uuid.UUID   `json:"blogId"`
	Headline  string      `json:"headline"`
	Slug      string      `json:"slug"`
	Summary   string      `json:"summary"`
	Body      string      `json:"body"`
	PubDate   *time.Time  `json:"pubDate,omitempty"`
	Rating    float64     `json:"rating"`
	AuthorIDs []uuid.UUID `json:"authorIds"`
	TagIDs    []uuid.UUID `json:"tagIds"`
}

// createEntry persists a new entry on the validated path, then replaces its
// author and tag membership with the requested sets.
func (h entryHandler) createEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode entry request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Slug == "" {
			req.Slug = models.Slugify(req.Headline)
		}

		entry := models.Entry{
			BlogID:   req.BlogID,
			Headline: req.Headline,
			Slug:     req.Slug,
			Summary:  req.Summary,
			Body:     req.Body,
			Rating:   req.Rating,
		}
		if req.PubDate != nil {
			entry.PubDate = *req.PubDate
		} else {
			entry.PubDate = time.Now()
		}

		if err := h.entryRepo.AddValidated(&entry); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.replaceMemberships(&entry, req.AuthorIDs, req.TagIDs); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.entryRepo.FindByID(entry.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// replaceMemberships swaps the many-to-many sets of a persisted entry.
func (h entryHandler) replaceMemberships(entry *models.Entry, authorIDs, tagIDs []uuid.UUID) error {
	if authorIDs != nil {
		authors := make([]*models.AuthorProfile, 0, len(authorIDs))
		for _, id := range authorIDs {
			author, err := h.authorProfileRepo.FindByID(id)
			if err != nil {
				return err
			}
			authors = append(authors, author)
		}
		if err := h.entryRepo.ReplaceAuthors(entry, authors); err != nil {
			return err
		}
	}

	if tagIDs != nil {
		tags := make([]*models.Tag, 0, len(tagIDs))
		for _, id := range tagIDs {
			tag, err := h.tagRepo.FindByID(id)
			if err != nil {
				return err
			}
			tags = append(tags, tag)
		}
		if err := h.entryRepo.ReplaceTags(entry, tags); err != nil {
			return err
		}
	}

	return nil
}

type updateEntryRequest struct {
	Headline  *string     `json:"headline,omitempty"`
	Slug      *string     `json:"slug,omitempty"`
	Summary   *string     `json:"summary,omitempty"`
	Body      *string     `json:"body,omitempty"`
	Rating    *float64    `json:"rating,omitempty"`
	Pingbacks *int        `json:"pingbacks,omitempty"`
	AuthorIDs []uuid.UUID `json:"authorIds,omitempty"`
	TagIDs    []uuid.UUID `json:"tagIds,omitempty"`
}

// updateEntry applies a partial update; mod_date refreshes on the write.
func (h entryHandler) updateEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		entry, err := h.entryRepo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode entry request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}
		if req.Headline != nil {
			fields["headline"] = *req.Headline
		}
		if req.Slug != nil {
			fields["slug"] = *req.Slug
		}
		if req.Summary != nil {
			fields["summary"] = *req.Summary
		}
		if req.Body != nil {
			fields["body"] = *req.Body
		}
		if req.Rating != nil {
			fields["rating"] = *req.Rating
		}

		if len(fields) > 0 {
			if err := h.entryRepo.UpdateFields(entryID, fields); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		if req.Pingbacks != nil {
			if err := h.entryRepo.IncrementCounters(entryID, 0, *req.Pingbacks); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		if err := h.replaceMemberships(entry, req.AuthorIDs, req.TagIDs); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.entryRepo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteEntry removes an entry; its comments survive with the entry
// reference cleared.
func (h entryHandler) deleteEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		if err := h.entryRepo.Delete(entryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "entry deleted successfully",
		})
	}
}
