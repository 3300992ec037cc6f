// Package storage persists uploaded files under opaque reference keys. Two
// drivers exist: a local uploads directory and an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload is one file received from a client, fully buffered.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// BlobStore saves uploads and deletes the blobs a row no longer references.
// Delete tolerates references that do not resolve anymore.
type BlobStore interface {
	Save(ctx context.Context, up Upload) (string, error)
	Delete(ctx context.Context, ref string) error
}

// NewKey builds a unique blob reference for an upload.
func NewKey(filename string) string {
	base := strings.ReplaceAll(filepath.Base(filename), " ", "-")
	return fmt.Sprintf("%s_%s", uuid.New().String(), base)
}
