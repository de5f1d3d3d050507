package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var (
	phoneRegex = regexp.MustCompile(`^\+79\d{9}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Russian mobile numbers only: +79 followed by exactly nine digits.
	v.RegisterValidation("ru_mobile", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegex.MatchString(fl.Field().String())
	})

	return v
}

// Validation is opt-in: repositories never call these on the plain write path.
// Callers that want field checks run Validate explicitly before persisting.

// Validate checks field rules on the blog.
func (b *Blog) Validate() error {
	return validate.Struct(b)
}

// Validate checks field rules on the entry.
func (e *Entry) Validate() error {
	return validate.Struct(e)
}

// Validate checks field rules on the tag.
func (t *Tag) Validate() error {
	return validate.Struct(t)
}

// Validate checks field rules on the user.
func (u *User) Validate() error {
	return validate.Struct(u)
}

// Validate checks field rules on the author profile.
func (p *AuthorProfile) Validate() error {
	return validate.Struct(p)
}

// Validate checks field rules on the user profile, including the phone
// number pattern.
func (p *UserProfile) Validate() error {
	return validate.Struct(p)
}

// Validate checks field rules on the comment.
func (c *Comment) Validate() error {
	return validate.Struct(c)
}
