// Package storage persists uploaded image binaries. Resource rows only
// keep the generated key in their image columns; the binary lives here.
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ImageStore is the attachment contract shared by the local-disk and S3
// implementations. Remove on an absent key is a no-op, not an error.
// Replace is remove-then-store and is not atomic: if the store fails
// after the remove succeeded the caller is left holding a stale key.
type ImageStore interface {
	Store(file *multipart.FileHeader) (string, error)
	Remove(key string) error
	Replace(oldKey string, file *multipart.FileHeader) (string, error)
	Exists(key string) bool
}

// GenerateKey builds a time-based unique key for an upload, keeping the
// original extension so content types stay guessable.
func GenerateKey(fileName string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], filepath.Ext(fileName))
}

// NewImageStoreFromEnv picks the S3 store when S3_IMAGE_BUCKET is set
// and falls back to a local directory otherwise (IMAGE_DIR, defaulting
// to storage/images).
func NewImageStoreFromEnv() (ImageStore, error) {
	if bucket := os.Getenv("S3_IMAGE_BUCKET"); bucket != "" {
		return NewS3ImageStore(bucket)
	}
	dir := os.Getenv("IMAGE_DIR")
	if dir == "" {
		dir = "storage/images"
	}
	return NewLocalImageStore(dir)
}
