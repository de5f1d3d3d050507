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

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	entryRepo   *database.EntryRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, entryRepo *database.EntryRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		entryRepo:   entryRepo,
	}
}

// CommentCollection represents multiple comments
type CommentCollection struct {
	Comments []*models.Comment `json:"comments"`
	Total    int               `json:"total,omitempty"`
}

// getEntryComments lists the comments of an entry, oldest first. With
// parent set, only replies to that comment come back.
func (h commentHandler) getEntryComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		var comments []*models.Comment
		if parentStr := r.URL.Query().Get("parent"); parentStr != "" {
			parentID, err := uuid.Parse(parentStr)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid parent"))
				return
			}
			comments, err = h.commentRepo.FindReplies(parentID)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
		} else {
			comments, err = h.commentRepo.FindByEntry(entryID)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		h.responder.WriteJSON(w, CommentCollection{Comments: comments, Total: len(comments)})
	}
}

type createCommentRequest struct {
	EntryID  *uuid.UUID `json:"entryId,omitempty"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
	Text     string     `json:"text"`
}

// createComment posts a comment as the authenticated user and bumps the
// entry's comment counter.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		comment := models.Comment{
			EntryID:  req.EntryID,
			ParentID: req.ParentID,
			Text:     req.Text,
		}

		if userIDStr, ok := ctxGetUserID(r.Context()); ok {
			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid token subject"))
				return
			}
			comment.UserID = &userID
		}

		if err := h.commentRepo.AddValidated(&comment); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if comment.EntryID != nil {
			if err := h.entryRepo.IncrementCounters(*comment.EntryID, 1, 0); err != nil {
				h.logger.Error().Err(err).Msg("Failed to bump comment counter")
			}
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment removes a comment and every reply beneath it
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}
