package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput marks user-correctable validation failures. Handlers map
// it to a 400 with the wrapped message; everything else is internal.
var ErrInvalidInput = errors.New("invalid input")

// DefaultLimit is the page size used when the caller does not supply one.
const DefaultLimit int32 = 50

// CreateRequest carries the fields of a catalog-write call. Type, Title and
// FileKey are mandatory; the rest default per the API contract.
type CreateRequest struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Caption  string   `json:"caption"`
	Shloka   string   `json:"shloka"`
	Meaning  string   `json:"meaning"`
	FileKey  string   `json:"fileKey"`
	ThumbKey string   `json:"thumbKey"`
	Ratio    string   `json:"ratio"`
	Palette  []string `json:"palette"`
	Style    string   `json:"style"`
}

// ItemSummary echoes the stored identity and headline fields of a freshly
// created record.
type ItemSummary struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	FileKey   string `json:"fileKey"`
	CreatedAt string `json:"createdAt"`
}

// Service contains the catalog business logic: validation, identity
// stamping, defaults, and delegation to the repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a catalog Service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates the request, stamps a fresh id and creation time, applies
// defaults, and persists the record. Nothing is written on validation
// failure.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*ItemSummary, error) {
	if req.Type == "" || req.Title == "" || req.FileKey == "" {
		return nil, fmt.Errorf("%w: Missing required fields: type, title, fileKey", ErrInvalidInput)
	}
	if !ValidType(req.Type) {
		return nil, fmt.Errorf(`%w: Type must be "wallpaper" or "music"`, ErrInvalidInput)
	}

	id := uuid.NewString()
	createdAt := s.now().UTC().Format(time.RFC3339)

	item := Item{
		PK:        PartitionKey(req.Type, id),
		SK:        SortKey(Version),
		ID:        id,
		Version:   Version,
		Type:      req.Type,
		Title:     req.Title,
		Caption:   req.Caption,
		Shloka:    req.Shloka,
		Meaning:   req.Meaning,
		FileKey:   req.FileKey,
		ThumbKey:  req.ThumbKey,
		Ratio:     req.Ratio,
		Palette:   req.Palette,
		Style:     req.Style,
		CreatedAt: createdAt,
	}
	if item.Ratio == "" {
		item.Ratio = "16:9"
	}
	if item.Palette == nil {
		item.Palette = []string{}
	}

	if err := s.repo.Put(ctx, item); err != nil {
		return nil, fmt.Errorf("create catalog item: %w", err)
	}

	return &ItemSummary{
		ID:        id,
		Version:   Version,
		Type:      item.Type,
		Title:     item.Title,
		FileKey:   item.FileKey,
		CreatedAt: item.CreatedAt,
	}, nil
}

// List returns one page of records for a media type. limit <= 0 falls back
// to DefaultLimit; startToken resumes a previous listing. An empty page is a
// valid result, not an error.
func (s *Service) List(ctx context.Context, mediaType string, limit int32, startToken string) (*Page, error) {
	if !ValidType(mediaType) {
		return nil, fmt.Errorf(`%w: Type parameter must be "wallpaper" or "music"`, ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	page, err := s.repo.ListByType(ctx, mediaType, limit, startToken)
	if err != nil {
		return nil, fmt.Errorf("list %s catalog: %w", mediaType, err)
	}
	return page, nil
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
