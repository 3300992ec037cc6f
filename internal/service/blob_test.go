package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intranet/internal/storage"
)

type fakeBlobStore struct {
	mu         sync.Mutex
	saved      map[string][]byte
	deleted    []string
	failDelete bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{saved: map[string][]byte{}}
}

func (f *fakeBlobStore) Save(_ context.Context, up storage.Upload) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref := fmt.Sprintf("blob%d_%s", len(f.saved), up.Filename)
	f.saved[ref] = up.Data
	return ref, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return errors.New("storage offline")
	}
	f.deleted = append(f.deleted, ref)
	delete(f.saved, ref)
	return nil
}

func TestSaveAllKeepsUploadOrder(t *testing.T) {
	blobs := newFakeBlobStore()
	uploads := []storage.Upload{
		{Filename: "first.png", Data: []byte("1")},
		{Filename: "second.png", Data: []byte("2")},
		{Filename: "third.png", Data: []byte("3")},
	}

	refs, err := saveAll(context.Background(), blobs, uploads)
	require.NoError(t, err)
	require.Len(t, refs, 3)

	assert.Contains(t, refs[0], "first.png")
	assert.Contains(t, refs[1], "second.png")
	assert.Contains(t, refs[2], "third.png")
}

func TestSaveAllEmpty(t *testing.T) {
	refs, err := saveAll(context.Background(), newFakeBlobStore(), nil)
	require.NoError(t, err)
	assert.NotNil(t, refs)
	assert.Empty(t, refs)
}

func TestDropBlobs(t *testing.T) {
	blobs := newFakeBlobStore()
	dropBlobs(context.Background(), blobs, "a_x.png", "", "b_y.png")
	assert.Equal(t, []string{"a_x.png", "b_y.png"}, blobs.deleted)
}

// A blob store failure during cleanup must not propagate.
func TestDropBlobsToleratesFailures(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.failDelete = true
	dropBlobs(context.Background(), blobs, "a_x.png", "b_y.png")
	assert.Empty(t, blobs.deleted)
}
