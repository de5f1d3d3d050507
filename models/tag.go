package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag labels entries. Unlike Blog there is no uniqueness on Name; the schema
// permits duplicate tag names.
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"size:50;not null" validate:"required,max=50"`
	Slug      string    `json:"slug" db:"slug" gorm:"size:50;not null" validate:"required,max=50,slug"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
}
