package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns users narrowed by the given options.
func (r *UserRepo) FindAll(opts ListOptions) ([]*models.User, error) {
	var users []*models.User
	err := opts.apply(r.db.Model(&models.User{})).Find(&users).Error
	return users, translateError("list", "users", err)
}

// FindByID returns a user by its ID.
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError("find", "user", err)
	}
	return &user, nil
}

// FindByUsername returns a user by username.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, translateError("find", "user", err)
	}
	return &user, nil
}

// Add inserts a new user without field validation.
func (r *UserRepo) Add(user *models.User) error {
	return translateError("create", "user", r.db.Create(user).Error)
}

// AddValidated runs field rules and the username uniqueness precheck before
// inserting.
func (r *UserRepo) AddValidated(user *models.User) error {
	if err := user.Validate(); err != nil {
		return errs.NewValidationErrorWithCause("user", err)
	}

	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error
	if err != nil {
		return translateError("create", "user", err)
	}
	if count > 0 {
		return errs.NewValidationError("user", "username", "username already taken")
	}

	return translateError("create", "user", r.db.Create(user).Error)
}

// AddBatch inserts pre-constructed users as one transaction, all-or-nothing.
// When validate is set, any invalid user rejects the whole batch up front.
func (r *UserRepo) AddBatch(users []*models.User, validate bool) error {
	if len(users) == 0 {
		return nil
	}
	if validate {
		for _, user := range users {
			if err := user.Validate(); err != nil {
				return errs.NewValidationErrorWithCause("user", err)
			}
		}
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&users).Error
	})
	return translateError("batch create", "users", err)
}

// Update saves the full user record.
func (r *UserRepo) Update(user *models.User) error {
	return translateError("update", "user", r.db.Save(user).Error)
}

// Delete removes a user. Profiles cascade away; comments survive with their
// user reference cleared.
func (r *UserRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.User{}, "id = ?", id)
	if tx.Error != nil {
		return translateError("delete", "user", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("user")
	}
	return nil
}
