package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsmelov/blogstore-backend/database"
	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
	"github.com/dsmelov/blogstore-backend/storage"
)

// maxAvatarSize caps avatar uploads at 5 MiB.
const maxAvatarSize = 5 << 20

type profileHandler struct {
	responder         Responder
	logger            zerolog.Logger
	authorProfileRepo *database.AuthorProfileRepo
	userProfileRepo   *database.UserProfileRepo
	userRepo          *database.UserRepo
	avatars           storage.Storage
}

func newProfileHandler(authorProfileRepo *database.AuthorProfileRepo, userProfileRepo *database.UserProfileRepo, userRepo *database.UserRepo, avatars storage.Storage) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		authorProfileRepo: authorProfileRepo,
		userProfileRepo:   userProfileRepo,
		userRepo:          userRepo,
		avatars:           avatars,
	}
}

// getAuthorProfile retrieves the author profile of a user
func (h profileHandler) getAuthorProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid userID"))
			return
		}

		profile, err := h.authorProfileRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// getUserProfile retrieves the user profile of a user
func (h profileHandler) getUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid userID"))
			return
		}

		profile, err := h.userProfileRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

type createAuthorProfileRequest struct {
	UserID uuid.UUID `json:"userId"`
	Bio    *string   `json:"bio,omitempty"`
}

// createAuthorProfile attaches an author profile to a user, at most one per
// user.
func (h profileHandler) createAuthorProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAuthorProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		profile := models.AuthorProfile{
			UserID: req.UserID,
			Bio:    req.Bio,
		}

		if err := h.authorProfileRepo.AddValidated(&profile); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, profile)
	}
}

type createUserProfileRequest struct {
	UserID uuid.UUID `json:"userId"`
	Phone  *string   `json:"phone,omitempty"`
	City   *string   `json:"city,omitempty"`
}

// createUserProfile attaches a user profile to a user, at most one per user
func (h profileHandler) createUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		profile := models.UserProfile{
			UserID: req.UserID,
			Phone:  req.Phone,
			City:   req.City,
		}

		if err := h.userProfileRepo.AddValidated(&profile); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, profile)
	}
}

// updateAuthorProfile replaces the bio of a user's author profile
func (h profileHandler) updateAuthorProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid userID"))
			return
		}

		profile, err := h.authorProfileRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			Bio *string `json:"bio,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Bio != nil {
			profile.Bio = req.Bio
		}

		if err := h.authorProfileRepo.Update(profile); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// updateUserProfile applies a partial update to a user's profile
func (h profileHandler) updateUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid userID"))
			return
		}

		profile, err := h.userProfileRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			Phone *string `json:"phone,omitempty"`
			City  *string `json:"city,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}
		if req.Phone != nil {
			fields["phone"] = *req.Phone
		}
		if req.City != nil {
			fields["city"] = *req.City
		}

		if len(fields) > 0 {
			if err := h.userProfileRepo.UpdateFields(profile.ID, fields); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		updated, err := h.userProfileRepo.FindByID(profile.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// uploadAvatar stores an avatar image and records its key on the user's
// profile. The key is derived from the image bytes, so re-uploading the same
// file is a no-op beyond overwriting the object.
func (h profileHandler) uploadAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid userID"))
			return
		}

		profile, err := h.userProfileRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		file, header, err := r.FormFile("avatar")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing avatar file"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to read avatar", err))
			return
		}

		key := storage.AvatarKey(user.Username, data, header.Filename)
		if err := h.avatars.Save(r.Context(), key, bytes.NewReader(data)); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store avatar", err))
			return
		}

		if err := h.userProfileRepo.UpdateFields(profile.ID, map[string]any{"avatar": key}); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.userProfileRepo.FindByID(profile.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}
