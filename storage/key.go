package storage

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
)

// AvatarKey derives the storage key for an avatar image: a pure function of
// the image bytes and the owning user's name, so re-uploading identical bytes
// lands on the same key.
func AvatarKey(username string, data []byte, filename string) string {
	sum := md5.Sum(data)
	ext := strings.ToLower(path.Ext(filename))
	return path.Join("avatars", fmt.Sprintf("%s_%s%s", username, hex.EncodeToString(sum[:]), ext))
}
