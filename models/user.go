package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is the identity row referenced by profiles and comments. Sessions and
// login flows live outside this service; the store only owns the row and the
// delete behavior of everything pointing at it.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username     string    `json:"username" db:"username" gorm:"size:150;not null;unique" validate:"required,max=150"`
	Email        string    `json:"email" db:"email" gorm:"size:254;not null" validate:"omitempty,email"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"size:128;not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
}

// SetPassword stores a bcrypt hash of the given password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
