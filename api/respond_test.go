package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmelov/blogstore-backend/errs"
)

func testResponder() Responder {
	return NewResponder(zerolog.Nop())
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	testResponder().WriteJSON(rec, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.NewValidationError("blog", "slug", "slug is required"), http.StatusBadRequest},
		{"not found", errs.NewNotFound("entry"), http.StatusNotFound},
		{"invalid state", errs.NewInvalidState("entry has no id"), http.StatusConflict},
		{"integrity", errs.NewIntegrityError("blog", "idx_blogs_name_slug", errors.New("duplicate key")), http.StatusConflict},
		{"database", errs.NewDatabaseError("find", "blog", errors.New("connection refused")), http.StatusInternalServerError},
		{"unauthorized", errs.NewUnauthorizedError("invalid token"), http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			testResponder().WriteError(rec, tc.err)

			assert.Equal(t, tc.want, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestWriteErrorUnknownErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	testResponder().WriteError(rec, errors.New("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Error)
}

func TestWriteErrorValidationCarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	testResponder().WriteError(rec, errs.NewValidationError("user_profile", "phone", "must match +79#########"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "phone", body.Field)
	assert.Equal(t, "user_profile: must match +79#########", body.Details)
}
