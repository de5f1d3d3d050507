package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile extends a User with presentation data, one profile per user.
// Avatar holds the storage key produced by storage.AvatarKey. Phone, when
// present, must match +79 followed by nine digits and is unique across
// profiles. Deleting the user removes the profile.
type UserProfile struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;unique" validate:"required"`
	Avatar    *string   `json:"avatar,omitempty" db:"avatar" gorm:"size:255"`
	Phone     *string   `json:"phone,omitempty" db:"phone" gorm:"size:12;unique" validate:"omitempty,ru_mobile"`
	City      *string   `json:"city,omitempty" db:"city" gorm:"size:120" validate:"omitempty,max=120"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}
