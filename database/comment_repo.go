package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dsmelov/blogstore-backend/errs"
	"github.com/dsmelov/blogstore-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindAll returns comments narrowed by the given options.
func (r *CommentRepo) FindAll(opts ListOptions) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := opts.apply(r.db.Model(&models.Comment{})).Find(&comments).Error
	return comments, translateError("list", "comments", err)
}

// FindByID returns a comment by its ID.
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, translateError("find", "comment", err)
	}
	return &comment, nil
}

// FindByEntry returns every comment on an entry, oldest first. Thread
// structure is carried by ParentID; callers rebuild trees by identifier, not
// by following loaded object references.
func (r *CommentRepo) FindByEntry(entryID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("entry_id = ?", entryID).Order("created_at ASC").Find(&comments).Error
	return comments, translateError("list", "comments", err)
}

// FindReplies returns the direct children of a comment, oldest first.
func (r *CommentRepo) FindReplies(parentID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("parent_id = ?", parentID).Order("created_at ASC").Find(&comments).Error
	return comments, translateError("list", "comments", err)
}

// Add inserts a new comment without field validation.
func (r *CommentRepo) Add(comment *models.Comment) error {
	return translateError("create", "comment", r.db.Create(comment).Error)
}

// AddValidated runs field rules before inserting.
func (r *CommentRepo) AddValidated(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return errs.NewValidationErrorWithCause("comment", err)
	}
	return translateError("create", "comment", r.db.Create(comment).Error)
}

// AddBatch inserts pre-constructed comments as one transaction,
// all-or-nothing. When validate is set, any invalid comment rejects the whole
// batch up front.
func (r *CommentRepo) AddBatch(comments []*models.Comment, validate bool) error {
	if len(comments) == 0 {
		return nil
	}
	if validate {
		for _, comment := range comments {
			if err := comment.Validate(); err != nil {
				return errs.NewValidationErrorWithCause("comment", err)
			}
		}
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&comments).Error
	})
	return translateError("batch create", "comments", err)
}

// Update saves the full comment record.
func (r *CommentRepo) Update(comment *models.Comment) error {
	return translateError("update", "comment", r.db.Save(comment).Error)
}

// Delete removes a comment. The database cascades the delete through the
// whole reply subtree via the parent_id foreign key.
func (r *CommentRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.Comment{}, "id = ?", id)
	if tx.Error != nil {
		return translateError("delete", "comment", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("comment")
	}
	return nil
}
