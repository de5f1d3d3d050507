// Package storage holds avatar images for user profiles. The store keeps only
// the object key; bytes live behind a Storage backend.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound indicates no object exists under the requested key.
var ErrObjectNotFound = errors.New("object not found")

// Storage is a media backend addressed by deterministic keys.
type Storage interface {
	// Save writes the object under key, replacing any previous content.
	Save(ctx context.Context, key string, r io.Reader) error
	// Open returns a reader for the object, or ErrObjectNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}
