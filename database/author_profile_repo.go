package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type AuthorProfileRepo struct {
	db *gorm.DB
}

func NewAuthorProfileRepo(db *gorm.DB) *AuthorProfileRepo {
	return &AuthorProfileRepo{db}
}

// FindAll returns author profiles narrowed by the given options.
func (r *AuthorProfileRepo) FindAll(opts ListOptions) ([]*models.AuthorProfile, error) {
	var profiles []*models.AuthorProfile
	err := opts.apply(r.db.Model(&models.AuthorProfile{})).Find(&profiles).Error
	return profiles, translateError("list", "author_profiles", err)
}

// FindByID returns an author profile by its ID.
func (r *AuthorProfileRepo) FindByID(id uuid.UUID) (*models.AuthorProfile, error) {
	var profile models.AuthorProfile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, translateError("find", "author_profile", err)
	}
	return &profile, nil
}

// FindByUserID returns the profile belonging to a user.
func (r *AuthorProfileRepo) FindByUserID(userID uuid.UUID) (*models.AuthorProfile, error) {
	var profile models.AuthorProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, translateError("find", "author_profile", err)
	}
	return &profile, nil
}

// Add inserts a new author profile without field validation. A second
// profile for the same user trips the one-to-one constraint as an
// IntegrityError.
func (r *AuthorProfileRepo) Add(profile *models.AuthorProfile) error {
	return translateError("create", "author_profile", r.db.Create(profile).Error)
}

// AddValidated runs field rules and the one-profile-per-user precheck before
// inserting.
func (r *AuthorProfileRepo) AddValidated(profile *models.AuthorProfile) error {
	if err := profile.Validate(); err != nil {
		return errs.NewValidationErrorWithCause("author_profile", err)
	}

	var count int64
	err := r.db.Model(&models.AuthorProfile{}).Where("user_id = ?", profile.UserID).Count(&count).Error
	if err != nil {
		return translateError("create", "author_profile", err)
	}
	if count > 0 {
		return errs.NewValidationError("author_profile", "userId", "user already has an author profile")
	}

	return translateError("create", "author_profile", r.db.Create(profile).Error)
}

// Update saves the full profile record.
func (r *AuthorProfileRepo) Update(profile *models.AuthorProfile) error {
	return translateError("update", "author_profile", r.db.Save(profile).Error)
}

// Delete removes an author profile.
func (r *AuthorProfileRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.AuthorProfile{}, "id = ?", id)
	if tx.Error != nil {
		return translateError("delete", "author_profile", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("author_profile")
	}
	return nil
}
