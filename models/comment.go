package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to an entry and optionally replies to another comment.
// Deleting the user or the entry clears the reference but keeps the comment;
// deleting a parent comment removes the whole reply subtree.
type Comment struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    *uuid.UUID `json:"userId,omitempty" db:"user_id" gorm:"type:uuid;index:idx_comments_user_id"`
	EntryID   *uuid.UUID `json:"entryId,omitempty" db:"entry_id" gorm:"type:uuid;index:idx_comments_entry_id"`
	ParentID  *uuid.UUID `json:"parentId,omitempty" db:"parent_id" gorm:"type:uuid;index:idx_comments_parent_id"`
	Text      string     `json:"text" db:"text" gorm:"type:text;not null" validate:"required"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL"`
	Entry    *Entry    `json:"entry,omitempty" gorm:"foreignKey:EntryID;references:ID;constraint:OnDelete:SET NULL"`
	Parent   *Comment  `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE"`
	Children []Comment `json:"children,omitempty" gorm:"foreignKey:ParentID;references:ID"`
}

// IsReply reports whether the comment is part of a thread rather than
// top-level on its entry.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
