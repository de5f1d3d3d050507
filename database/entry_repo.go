package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type EntryRepo struct {
	db *gorm.DB
}

func NewEntryRepo(db *gorm.DB) *EntryRepo {
	return &EntryRepo{db}
}

// EntryListOptions extends ListOptions with filters reaching through entry
// relations.
type EntryListOptions struct {
	ListOptions
	BlogSlug string
	TagSlug  string
}

// FindAll returns entries narrowed by the given options. With no explicit
// order, entries come back newest pub_date first.
func (r *EntryRepo) FindAll(opts EntryListOptions) ([]*models.Entry, error) {
	tx := r.db.Model(&models.Entry{}).Preload("Authors").Preload("Tags")

	if opts.BlogSlug != "" {
		tx = tx.Joins("JOIN blogs ON blogs.id = entries.blog_id").
			Where("blogs.slug = ?", opts.BlogSlug)
	}
	if opts.TagSlug != "" {
		tx = tx.Joins("JOIN entry_tags ON entry_tags.entry_id = entries.id").
			Joins("JOIN tags ON tags.id = entry_tags.tag_id").
			Where("tags.slug = ?", opts.TagSlug)
	}
	if opts.OrderBy == "" {
		tx = tx.Order("entries.pub_date DESC")
	}

	var entries []*models.Entry
	err := opts.apply(tx).Find(&entries).Error
	return entries, translateError("list", "entries", err)
}

// FindByID returns an entry with its authors and tags loaded.
func (r *EntryRepo) FindByID(id uuid.UUID) (*models.Entry, error) {
	var entry models.Entry
	err := r.db.Preload("Authors").Preload("Tags").First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, translateError("find", "entry", err)
	}
	return &entry, nil
}

// Add inserts a new entry without field validation.
func (r *EntryRepo) Add(entry *models.Entry) error {
	return translateError("create", "entry", r.db.Create(entry).Error)
}

// AddValidated runs field rules and the (blog, headline, slug) uniqueness
// precheck before inserting.
func (r *EntryRepo) AddValidated(entry *models.Entry) error {
	if err := entry.Validate(); err != nil {
		return errs.NewValidationErrorWithCause("entry", err)
	}

	var count int64
	err := r.db.Model(&models.Entry{}).
		Where("blog_id = ? AND headline = ? AND slug = ?", entry.BlogID, entry.Headline, entry.Slug).
		Count(&count).Error
	if err != nil {
		return translateError("create", "entry", err)
	}
	if count > 0 {
		return errs.NewValidationError("entry", "slug", "headline and slug already used in this blog")
	}

	return translateError("create", "entry", r.db.Create(entry).Error)
}

// AddBatch inserts pre-constructed entries as one transaction. When validate
// is set, any invalid entry rejects the whole batch before anything is
// written. The non-validated path still rolls back completely on engine
// errors (all-or-nothing either way).
func (r *EntryRepo) AddBatch(entries []*models.Entry, validate bool) error {
	if len(entries) == 0 {
		return nil
	}
	if validate {
		for _, entry := range entries {
			if err := entry.Validate(); err != nil {
				return errs.NewValidationErrorWithCause("entry", err)
			}
		}
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entries).Error
	})
	return translateError("batch create", "entries", err)
}

// Update saves the full entry record. ModDate refreshes on every write.
func (r *EntryRepo) Update(entry *models.Entry) error {
	return translateError("update", "entry", r.db.Save(entry).Error)
}

// UpdateFields applies a partial update by column, refreshing ModDate.
func (r *EntryRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	tx := r.db.Model(&models.Entry{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return translateError("update", "entry", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("entry")
	}
	return nil
}

// IncrementCounters adjusts the denormalized comment/pingback counters. The
// store never recomputes these on its own; this is the caller's lever.
func (r *EntryRepo) IncrementCounters(id uuid.UUID, comments, pingbacks int) error {
	updates := map[string]any{}
	if comments != 0 {
		updates["number_of_comments"] = gorm.Expr("number_of_comments + ?", comments)
	}
	if pingbacks != 0 {
		updates["number_of_pingbacks"] = gorm.Expr("number_of_pingbacks + ?", pingbacks)
	}
	if len(updates) == 0 {
		return nil
	}
	tx := r.db.Model(&models.Entry{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return translateError("update", "entry", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("entry")
	}
	return nil
}

// Delete removes an entry. Comments referencing it keep their rows with the
// entry reference cleared.
func (r *EntryRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.Entry{}, "id = ?", id)
	if tx.Error != nil {
		return translateError("delete", "entry", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("entry")
	}
	return nil
}

// ReplaceAuthors idempotently replaces the full author membership of a
// persisted entry.
func (r *EntryRepo) ReplaceAuthors(entry *models.Entry, authors []*models.AuthorProfile) error {
	if entry.ID == uuid.Nil {
		return errs.NewInvalidState("entry must be persisted before assigning authors")
	}
	err := r.db.Model(entry).Association("Authors").Replace(authors)
	return translateError("replace authors", "entry", err)
}

// ReplaceTags idempotently replaces the full tag membership of a persisted
// entry.
func (r *EntryRepo) ReplaceTags(entry *models.Entry, tags []*models.Tag) error {
	if entry.ID == uuid.Nil {
		return errs.NewInvalidState("entry must be persisted before assigning tags")
	}
	err := r.db.Model(entry).Association("Tags").Replace(tags)
	return translateError("replace tags", "entry", err)
}
