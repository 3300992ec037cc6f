package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DiskStore keeps blobs as plain files in a single uploads directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) Save(_ context.Context, up Upload) (string, error) {
	key := NewKey(up.Filename)
	if err := os.WriteFile(filepath.Join(d.dir, key), up.Data, 0o644); err != nil {
		return "", fmt.Errorf("write blob %s: %w", key, err)
	}
	return key, nil
}

func (d *DiskStore) Delete(_ context.Context, ref string) error {
	err := os.Remove(filepath.Join(d.dir, filepath.Base(ref)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove blob %s: %w", ref, err)
	}
	return nil
}

// Dir exposes the backing directory so the router can serve it under /files.
func (d *DiskStore) Dir() string { return d.dir }
