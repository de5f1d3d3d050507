package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

func TestAuthorProfileOneToOne(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorProfileRepo(db)

	user := newTestUser(t, db, "alice")
	require.NoError(t, repo.Add(&models.AuthorProfile{UserID: user.ID}))

	t.Run("second profile on raw path is IntegrityError", func(t *testing.T) {
		err := repo.Add(&models.AuthorProfile{UserID: user.ID})
		require.Error(t, err)
		assert.True(t, errs.IsIntegrity(err))
	})

	t.Run("second profile on validated path is ValidationError", func(t *testing.T) {
		err := repo.AddValidated(&models.AuthorProfile{UserID: user.ID})
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestAuthorProfileCascadesOnUserDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthorProfileRepo(db)
	userRepo := NewUserRepo(db)

	user := newTestUser(t, db, "alice")
	profile := &models.AuthorProfile{UserID: user.ID}
	require.NoError(t, repo.Add(profile))

	require.NoError(t, userRepo.Delete(user.ID))

	_, err := repo.FindByID(profile.ID)
	assert.True(t, errs.IsNotFound(err), "profile must go with its user")
}

func TestUserProfilePhoneUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserProfileRepo(db)

	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")

	phone := "+79123456789"
	require.NoError(t, repo.AddValidated(&models.UserProfile{UserID: alice.ID, Phone: &phone}))

	t.Run("same phone on validated path is ValidationError", func(t *testing.T) {
		err := repo.AddValidated(&models.UserProfile{UserID: bob.ID, Phone: &phone})
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("same phone on raw path is IntegrityError", func(t *testing.T) {
		err := repo.Add(&models.UserProfile{UserID: bob.ID, Phone: &phone})
		require.Error(t, err)
		assert.True(t, errs.IsIntegrity(err))
	})

	t.Run("profiles without phones do not collide", func(t *testing.T) {
		require.NoError(t, repo.AddValidated(&models.UserProfile{UserID: bob.ID}))
	})
}

func TestUserProfileBadPhoneRejectedOnlyWhenValidated(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserProfileRepo(db)

	user := newTestUser(t, db, "alice")
	badPhone := "+7812345"

	err := repo.AddValidated(&models.UserProfile{UserID: user.ID, Phone: &badPhone})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	// The raw path stores whatever it is given; integrity checks only cover
	// constraints the engine knows about.
	assert.NoError(t, repo.Add(&models.UserProfile{UserID: user.ID, Phone: &badPhone}))
}

func TestUserAddBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)

	users := []*models.User{
		{Username: "u1", Email: "u1@example.com", PasswordHash: "x"},
		{Username: "u2", Email: "u2@example.com", PasswordHash: "x"},
		{Username: "u3", Email: "u3@example.com", PasswordHash: "x"},
	}
	require.NoError(t, repo.AddBatch(users, true))

	all, err := repo.FindAll(ListOptions{OrderBy: "username"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	t.Run("batch with invalid member persists nothing", func(t *testing.T) {
		bad := []*models.User{
			{Username: "u4", Email: "u4@example.com", PasswordHash: "x"},
			{Username: "", Email: "missing@example.com", PasswordHash: "x"},
		}
		err := repo.AddBatch(bad, true)
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))

		_, err = repo.FindByUsername("u4")
		assert.True(t, errs.IsNotFound(err))
	})
}
