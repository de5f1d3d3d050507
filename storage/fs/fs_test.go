package fs

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmelov/blogstore-backend/storage"
)

func TestFSBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend, err := New(Config{BaseDir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, backend.Save(ctx, "avatars/alice_abc.png", strings.NewReader("bytes")))

	exists, err := backend.Exists(ctx, "avatars/alice_abc.png")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := backend.Open(ctx, "avatars/alice_abc.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(data))

	require.NoError(t, backend.Delete(ctx, "avatars/alice_abc.png"))
	exists, err = backend.Exists(ctx, "avatars/alice_abc.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFSBackendMissingKey(t *testing.T) {
	ctx := context.Background()
	backend, err := New(Config{BaseDir: t.TempDir()})
	require.NoError(t, err)

	_, err = backend.Open(ctx, "avatars/nope.png")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)

	assert.NoError(t, backend.Delete(ctx, "avatars/nope.png"))
}

func TestFSBackendRequiresBaseDir(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
