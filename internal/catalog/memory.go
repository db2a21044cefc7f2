package catalog

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepository is an in-process Repository used by tests and local
// development. It reproduces the table's continuation-token pagination over
// an insertion-ordered slice.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Put appends or replaces the item with the same primary key.
func (r *MemoryRepository) Put(_ context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].PK == item.PK && r.items[i].SK == item.SK {
			r.items[i] = item
			return nil
		}
	}
	r.items = append(r.items, item)
	return nil
}

// ListByType pages through items of the given type in insertion order,
// sorting each page newest first like the table adapter.
func (r *MemoryRepository) ListByType(_ context.Context, mediaType string, limit int32, startToken string) (*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skip := startToken != ""
	var after pageToken
	if skip {
		t, err := decodeToken(startToken)
		if err != nil {
			return nil, err
		}
		after = t
	}

	prefix := TypePrefix(mediaType)
	page := &Page{Items: []Item{}}
	for i, it := range r.items {
		if skip {
			if it.PK == after.PK && it.SK == after.SK {
				skip = false
			}
			continue
		}
		if !strings.HasPrefix(it.PK, prefix) {
			continue
		}
		if int32(len(page.Items)) == limit {
			last := page.Items[len(page.Items)-1]
			if r.hasMore(prefix, i) {
				page.NextToken = encodeToken(last.PK, last.SK)
			}
			break
		}
		it.Palette = append([]string(nil), it.Palette...)
		if err := (&it).DeriveIdentity(); err != nil {
			return nil, err
		}
		page.Items = append(page.Items, it)
	}
	sortNewestFirst(page.Items)
	return page, nil
}

// hasMore reports whether any item at index >= from matches the prefix.
func (r *MemoryRepository) hasMore(prefix string, from int) bool {
	for _, it := range r.items[from:] {
		if strings.HasPrefix(it.PK, prefix) {
			return true
		}
	}
	return false
}
