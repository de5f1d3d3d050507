package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a named collection of entries. Name and Slug are each unique on
// their own, and the (name, slug) pair is additionally unique as a group.
type Blog struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"size:100;not null;unique;uniqueIndex:idx_blogs_name_slug" validate:"required,max=100"`
	Slug        string    `json:"slug" db:"slug" gorm:"size:100;not null;unique;uniqueIndex:idx_blogs_name_slug" validate:"required,max=100,slug"`
	Headline    *string   `json:"headline,omitempty" db:"headline" gorm:"size:255" validate:"omitempty,max=255"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`

	Entries []Entry `json:"entries,omitempty" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE"`
}
