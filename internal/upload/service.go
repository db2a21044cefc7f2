// Package upload implements presigned upload-URL issuance.
package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/darshan/catalog/internal/catalog"
	"github.com/darshan/catalog/internal/storage"
)

// ErrInvalidInput marks user-correctable validation failures.
var ErrInvalidInput = errors.New("invalid input")

// KeyPrefix is where every uploaded original lands.
const KeyPrefix = "originals/"

// Target is an issued upload destination: the presigned URL and the key the
// caller must echo back in the catalog-write.
type Target struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
}

// Service issues presigned upload URLs.
type Service struct {
	store storage.Storage
	ttl   time.Duration
}

// NewService creates an upload Service. ttl bounds the lifetime of issued
// URLs.
func NewService(store storage.Storage, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl}
}

// Issue validates the request and returns a fresh upload target with key
// "originals/{uuid}.{ext}". The extension is used verbatim. Nothing is
// reserved in storage until the client actually uploads.
func (s *Service) Issue(ctx context.Context, contentType, fileExt, mediaType string) (*Target, error) {
	if contentType == "" || fileExt == "" || mediaType == "" {
		return nil, fmt.Errorf("%w: Missing required fields: contentType, fileExt, type", ErrInvalidInput)
	}
	if !catalog.ValidType(mediaType) {
		return nil, fmt.Errorf(`%w: Type must be "wallpaper" or "music"`, ErrInvalidInput)
	}

	key := KeyPrefix + uuid.NewString() + "." + fileExt

	url, err := s.store.PresignPut(ctx, key, contentType, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("issue upload url: %w", err)
	}
	return &Target{UploadURL: url, Key: key}, nil
}

// IsInvalidInput reports whether err is a validation failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// userMessage strips wrapping context from a validation error so the wire
// carries only the contract message.
func userMessage(err error) string {
	msg := err.Error()
	marker := ErrInvalidInput.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
