package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthorProfile extends a User with authoring data, one profile per user.
// Deleting the user removes the profile.
type AuthorProfile struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;unique" validate:"required"`
	Bio       *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}
