// Package sweep removes stored objects that no catalog record references.
// The upload flow has no rollback: a file uploaded through a presigned URL
// whose catalog-write never happened stays in the bucket. This pass cleans
// those up offline.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/darshan/catalog/internal/catalog"
	"github.com/darshan/catalog/internal/storage"
	"github.com/darshan/catalog/internal/upload"
)

// DefaultMinAge keeps the sweep from racing an in-flight upload whose
// catalog-write has not landed yet.
const DefaultMinAge = 24 * time.Hour

// Report summarizes one sweep pass.
type Report struct {
	Scanned    int
	Referenced int
	TooYoung   int
	Deleted    []string
}

// Sweeper deletes unreferenced objects under the originals prefix.
type Sweeper struct {
	store  storage.Storage
	repo   catalog.Repository
	minAge time.Duration
	dryRun bool
	now    func() time.Time
}

// New creates a Sweeper. minAge <= 0 falls back to DefaultMinAge; with
// dryRun set the sweep reports deletions without performing them.
func New(store storage.Storage, repo catalog.Repository, minAge time.Duration, dryRun bool) *Sweeper {
	if minAge <= 0 {
		minAge = DefaultMinAge
	}
	return &Sweeper{store: store, repo: repo, minAge: minAge, dryRun: dryRun, now: time.Now}
}

// Sweep lists every object under originals/, collects every fileKey and
// thumbKey referenced by any catalog record of either type, and deletes the
// unreferenced objects older than the cutoff.
func (s *Sweeper) Sweep(ctx context.Context) (*Report, error) {
	referenced, err := s.referencedKeys(ctx)
	if err != nil {
		return nil, err
	}

	objects, err := s.store.List(ctx, upload.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list stored objects: %w", err)
	}

	cutoff := s.now().Add(-s.minAge)
	report := &Report{Scanned: len(objects)}

	for _, obj := range objects {
		if referenced[obj.Key] {
			report.Referenced++
			continue
		}
		if obj.LastModified.After(cutoff) {
			report.TooYoung++
			continue
		}
		if !s.dryRun {
			if err := s.store.Delete(ctx, obj.Key); err != nil {
				return report, fmt.Errorf("delete orphan %q: %w", obj.Key, err)
			}
		}
		slog.Info("orphan swept", "key", obj.Key, "dryRun", s.dryRun)
		report.Deleted = append(report.Deleted, obj.Key)
	}
	return report, nil
}

// referencedKeys pages through both media types and collects every object
// key the catalog points at.
func (s *Sweeper) referencedKeys(ctx context.Context) (map[string]bool, error) {
	keys := make(map[string]bool)
	for _, mediaType := range []string{catalog.TypeWallpaper, catalog.TypeMusic} {
		token := ""
		for {
			page, err := s.repo.ListByType(ctx, mediaType, catalog.DefaultLimit, token)
			if err != nil {
				return nil, fmt.Errorf("list %s records: %w", mediaType, err)
			}
			for _, it := range page.Items {
				if it.FileKey != "" {
					keys[it.FileKey] = true
				}
				if it.ThumbKey != "" {
					keys[it.ThumbKey] = true
				}
			}
			if page.NextToken == "" {
				break
			}
			token = page.NextToken
		}
	}
	return keys, nil
}
