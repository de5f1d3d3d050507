package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns tags narrowed by the given options.
func (r *TagRepo) FindAll(opts ListOptions) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := opts.apply(r.db.Model(&models.Tag{})).Find(&tags).Error
	return tags, translateError("list", "tags", err)
}

// FindByID returns a tag by its ID.
func (r *TagRepo) FindByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		return nil, translateError("find", "tag", err)
	}
	return &tag, nil
}

// Add inserts a new tag without field validation.
func (r *TagRepo) Add(tag *models.Tag) error {
	return translateError("create", "tag", r.db.Create(tag).Error)
}

// AddValidated runs field rules before inserting. Tag names carry no
// uniqueness constraint, so there is no precheck beyond the rules.
func (r *TagRepo) AddValidated(tag *models.Tag) error {
	if err := tag.Validate(); err != nil {
		return errs.NewValidationErrorWithCause("tag", err)
	}
	return translateError("create", "tag", r.db.Create(tag).Error)
}

// Update saves the full tag record.
func (r *TagRepo) Update(tag *models.Tag) error {
	return translateError("update", "tag", r.db.Save(tag).Error)
}

// Delete removes a tag; join rows referencing it go with it.
func (r *TagRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.Tag{}, "id = ?", id)
	if tx.Error != nil {
		return translateError("delete", "tag", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("tag")
	}
	return nil
}
