package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarKeyDeterministic(t *testing.T) {
	data := []byte("image bytes")

	first := AvatarKey("alice", data, "selfie.PNG")
	second := AvatarKey("alice", data, "selfie.PNG")
	assert.Equal(t, first, second, "same bytes and owner must map to the same key")

	assert.True(t, strings.HasPrefix(first, "avatars/alice_"))
	assert.True(t, strings.HasSuffix(first, ".png"), "extension is kept, lowercased")
}

func TestAvatarKeyVariesByInput(t *testing.T) {
	data := []byte("image bytes")

	assert.NotEqual(t,
		AvatarKey("alice", data, "a.png"),
		AvatarKey("bob", data, "a.png"),
		"different owners get different keys")

	assert.NotEqual(t,
		AvatarKey("alice", data, "a.png"),
		AvatarKey("alice", []byte("other bytes"), "a.png"),
		"different bytes get different keys")
}

func TestAvatarKeyWithoutExtension(t *testing.T) {
	key := AvatarKey("alice", []byte("x"), "raw")
	assert.NotContains(t, key, ".")
}
