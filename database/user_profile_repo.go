package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type UserProfileRepo struct {
	db *gorm.DB
}

func NewUserProfileRepo(db *gorm.DB) *UserProfileRepo {
	return &UserProfileRepo{db}
}

// FindAll returns user profiles narrowed by the given options.
func (r *UserProfileRepo) FindAll(opts ListOptions) ([]*models.UserProfile, error) {
	var profiles []*models.UserProfile
	err := opts.apply(r.db.Model(&models.UserProfile{})).Find(&profiles).Error
	return profiles, translateError("list", "user_profiles", err)
}

// FindByID returns a user profile by its ID.
func (r *UserProfileRepo) FindByID(id uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, translateError("find", "user_profile", err)
	}
	return &profile, nil
}

// FindByUserID returns the profile belonging to a user.
func (r *UserProfileRepo) FindByUserID(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, translateError("find", "user_profile", err)
	}
	return &profile, nil
}

// Add inserts a new user profile without field validation.
func (r *UserProfileRepo) Add(profile *models.UserProfile) error {
	return translateError("create", "user_profile", r.db.Create(profile).Error)
}

// AddValidated runs field rules (including the phone pattern) and the
// uniqueness prechecks before inserting.
func (r *UserProfileRepo) AddValidated(profile *models.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return errs.NewValidationErrorWithCause("user_profile", err)
	}

	var count int64
	err := r.db.Model(&models.UserProfile{}).Where("user_id = ?", profile.UserID).Count(&count).Error
	if err != nil {
		return translateError("create", "user_profile", err)
	}
	if count > 0 {
		return errs.NewValidationError("user_profile", "userId", "user already has a profile")
	}

	if profile.Phone != nil {
		err = r.db.Model(&models.UserProfile{}).Where("phone = ?", *profile.Phone).Count(&count).Error
		if err != nil {
			return translateError("create", "user_profile", err)
		}
		if count > 0 {
			return errs.NewValidationError("user_profile", "phone", "phone number already in use")
		}
	}

	return translateError("create", "user_profile", r.db.Create(profile).Error)
}

// Update saves the full profile record.
func (r *UserProfileRepo) Update(profile *models.UserProfile) error {
	return translateError("update", "user_profile", r.db.Save(profile).Error)
}

// UpdateFields applies a partial update by column.
func (r *UserProfileRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	tx := r.db.Model(&models.UserProfile{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return translateError("update", "user_profile", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("user_profile")
	}
	return nil
}

// Delete removes a user profile.
func (r *UserProfileRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.UserProfile{}, "id = ?", id)
	if tx.Error != nil {
		return translateError("delete", "user_profile", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("user_profile")
	}
	return nil
}
