package storage

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

//go:generate mockgen -source=storage.go -destination=../service/storage_mocks_test.go -package=service_test

// FileStorage is the blob store training media lives in.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// PublicURL is the stable URL an uploaded object is read from.
	PublicURL(objectKey string) string

	// ObjectKey is the inverse of PublicURL. It reports false for URLs
	// that do not point into this store.
	ObjectKey(publicURL string) (string, bool)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// TrainingMediaKey builds a unique object key for a media file of a
// training. Only the extension of fileName is kept.
func TrainingMediaKey(trainingID, fileName string) string {
	ext := strings.ToLower(path.Ext(path.Base(fileName)))
	return "trainings/" + trainingID + "/" + uuid.NewString() + ext
}
