package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// BlogWithEntryCount is the materialized form of the "active blogs" query:
// the entry count is part of the result projection, not just the filter.
type BlogWithEntryCount struct {
	models.Blog
	EntryCount int64 `json:"entryCount" gorm:"column:entry_count"`
}

// FindAll returns blogs narrowed by the given options.
func (r *BlogRepo) FindAll(opts ListOptions) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := opts.apply(r.db.Model(&models.Blog{})).Find(&blogs).Error
	return blogs, translateError("list", "blogs", err)
}

// FindByID returns a blog by its ID.
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, "id = ?", id).Error; err != nil {
		return nil, translateError("find", "blog", err)
	}
	return &blog, nil
}

// FindBySlug returns a blog by its slug.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, "slug = ?", slug).Error; err != nil {
		return nil, translateError("find", "blog", err)
	}
	return &blog, nil
}

// Add inserts a new blog without field validation. Constraint violations
// surface as IntegrityError.
func (r *BlogRepo) Add(blog *models.Blog) error {
	return translateError("create", "blog", r.db.Create(blog).Error)
}

// AddValidated runs field rules and uniqueness prechecks before inserting.
// Failures on this path are ValidationError.
func (r *BlogRepo) AddValidated(blog *models.Blog) error {
	if err := blog.Validate(); err != nil {
		return errs.NewValidationErrorWithCause("blog", err)
	}

	var count int64
	err := r.db.Model(&models.Blog{}).
		Where("name = ? OR slug = ?", blog.Name, blog.Slug).
		Count(&count).Error
	if err != nil {
		return translateError("create", "blog", err)
	}
	if count > 0 {
		return errs.NewValidationError("blog", "name", "name or slug already in use")
	}

	return translateError("create", "blog", r.db.Create(blog).Error)
}

// Update saves the full blog record, refreshing UpdatedAt.
func (r *BlogRepo) Update(blog *models.Blog) error {
	return translateError("update", "blog", r.db.Save(blog).Error)
}

// UpdateFields applies a partial update by column.
func (r *BlogRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	tx := r.db.Model(&models.Blog{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return translateError("update", "blog", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("blog")
	}
	return nil
}

// Delete removes a blog. Its entries go with it (cascade).
func (r *BlogRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.Blog{}, "id = ?", id)
	if tx.Error != nil {
		return translateError("delete", "blog", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("blog")
	}
	return nil
}

// FindActive returns blogs with more than minEntries entries. The count is an
// alias used only in the HAVING clause; results carry plain blog columns.
func (r *BlogRepo) FindActive(minEntries int64) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Model(&models.Blog{}).
		Joins("JOIN entries ON entries.blog_id = blogs.id").
		Group("blogs.id").
		Having("COUNT(entries.id) > ?", minEntries).
		Find(&blogs).Error
	return blogs, translateError("list", "blogs", err)
}

// FindActiveWithEntryCounts is the materializing variant of FindActive: the
// per-blog entry count is selected into the projection so callers can read it.
func (r *BlogRepo) FindActiveWithEntryCounts(minEntries int64) ([]BlogWithEntryCount, error) {
	var rows []BlogWithEntryCount
	err := r.db.Model(&models.Blog{}).
		Select("blogs.*, COUNT(entries.id) AS entry_count").
		Joins("JOIN entries ON entries.blog_id = blogs.id").
		Group("blogs.id").
		Having("COUNT(entries.id) > ?", minEntries).
		Find(&rows).Error
	return rows, translateError("list", "blogs", err)
}
