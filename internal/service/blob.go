package service

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"intranet/internal/storage"
)

// saveAll persists every upload. Saves are dispatched concurrently and the
// resulting references are re-joined in upload order.
func saveAll(ctx context.Context, blobs storage.BlobStore, uploads []storage.Upload) ([]string, error) {
	refs := make([]string, len(uploads))
	g, ctx := errgroup.WithContext(ctx)
	for i, up := range uploads {
		g.Go(func() error {
			ref, err := blobs.Save(ctx, up)
			if err != nil {
				return err
			}
			refs[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return refs, nil
}

// dropBlobs deletes references best-effort. A blob that refuses to go away
// must not fail the row mutation that orphaned it, so failures only log.
func dropBlobs(ctx context.Context, blobs storage.BlobStore, refs ...string) {
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if err := blobs.Delete(ctx, ref); err != nil {
			log.Printf("orphaned blob %s not deleted: %v", ref, err)
		}
	}
}
