package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBlogValidate(t *testing.T) {
	blog := Blog{Name: "Travel", Slug: "travel"}
	assert.NoError(t, blog.Validate())

	t.Run("missing name", func(t *testing.T) {
		b := Blog{Slug: "travel"}
		assert.Error(t, b.Validate())
	})

	t.Run("bad slug", func(t *testing.T) {
		b := Blog{Name: "Travel", Slug: "Travel Blog!"}
		assert.Error(t, b.Validate())
	})
}

func TestEntryValidate(t *testing.T) {
	entry := Entry{
		BlogID:   uuid.New(),
		Headline: "A",
		Slug:     "a",
		Summary:  "short",
		Body:     "full text",
	}
	assert.NoError(t, entry.Validate())

	t.Run("missing body", func(t *testing.T) {
		e := entry
		e.Body = ""
		assert.Error(t, e.Validate())
	})

	t.Run("negative counter", func(t *testing.T) {
		e := entry
		e.NumberOfComments = -1
		assert.Error(t, e.Validate())
	})
}

func TestUserProfilePhoneValidation(t *testing.T) {
	profile := UserProfile{UserID: uuid.New()}

	t.Run("absent phone is fine", func(t *testing.T) {
		assert.NoError(t, profile.Validate())
	})

	valid := []string{"+79123456789", "+79000000000"}
	for _, phone := range valid {
		p := profile
		p.Phone = strPtr(phone)
		assert.NoError(t, p.Validate(), phone)
	}

	invalid := []string{
		"+78123456789",  // wrong prefix
		"+7912345678",   // too short
		"+791234567890", // too long
		"79123456789",   // missing plus
		"+79abcdefghi",  // not digits
		"",              // empty string is not "absent"
	}
	for _, phone := range invalid {
		p := profile
		p.Phone = strPtr(phone)
		assert.Error(t, p.Validate(), phone)
	}
}

func TestUserPassword(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("sw0rdfish"))
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotContains(t, u.PasswordHash, "sw0rdfish")
	assert.True(t, u.CheckPassword("sw0rdfish"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCommentIsReply(t *testing.T) {
	c := Comment{Text: "hello"}
	assert.False(t, c.IsReply())

	parent := uuid.New()
	c.ParentID = &parent
	assert.True(t, c.IsReply())
}
