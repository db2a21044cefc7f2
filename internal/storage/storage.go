// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the S3 implementation works with any S3-compatible provider (AWS S3,
// MinIO, LocalStack).
package storage

import (
	"context"
	"time"
)

// Object describes one stored object as seen by a listing.
type Object struct {
	Key          string
	LastModified time.Time
}

// Storage is the interface for issuing upload URLs and managing objects.
type Storage interface {
	// PresignPut returns a time-limited URL granting one PUT of an object
	// with the given key and content type. Issuance alone stores nothing.
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
	// List returns every object under the given key prefix.
	List(ctx context.Context, prefix string) ([]Object, error)
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}
