package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Page is one slice of a paginated listing. NextToken is empty when the
// listing is exhausted.
type Page struct {
	Items     []Item
	NextToken string
}

// Repository is the catalog table adapter. Put is a single conditionless
// write (last-write-wins); ListByType pages through every item whose
// partition key begins with the type's prefix.
type Repository interface {
	Put(ctx context.Context, item Item) error
	ListByType(ctx context.Context, mediaType string, limit int32, startToken string) (*Page, error)
}

// pageToken is the decoded form of a continuation token: the primary key of
// the last item the previous page evaluated.
type pageToken struct {
	PK string `json:"pk"`
	SK string `json:"sk"`
}

// encodeToken renders a primary key as an opaque continuation token.
func encodeToken(pk, sk string) string {
	b, _ := json.Marshal(pageToken{PK: pk, SK: sk})
	return base64.RawURLEncoding.EncodeToString(b)
}

// decodeToken parses a continuation token back into a primary key. A
// malformed token is the caller's mistake, so failures carry ErrInvalidInput.
func decodeToken(token string) (pageToken, error) {
	var t pageToken
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return t, fmt.Errorf("%w: invalid lastEvaluatedKey", ErrInvalidInput)
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("%w: invalid lastEvaluatedKey", ErrInvalidInput)
	}
	if t.PK == "" || t.SK == "" {
		return t, fmt.Errorf("%w: invalid lastEvaluatedKey", ErrInvalidInput)
	}
	return t, nil
}
