// Package client is the Go client for the catalog API: the three endpoint
// calls, the admin upload orchestration, and the gallery-side helpers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/darshan/catalog/internal/catalog"
	"github.com/darshan/catalog/internal/upload"
)

// Client talks to the catalog API. The zero value is not usable; construct
// with New.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpc = c }
}

// WithToken attaches a Bearer token to every API request (not to the
// presigned upload itself, which carries its own authorization).
func WithToken(token string) Option {
	return func(cl *Client) { cl.token = token }
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateResponse is the body of a successful catalog-write.
type CreateResponse struct {
	ID      string              `json:"id"`
	Version string              `json:"version"`
	Message string              `json:"message"`
	Item    catalog.ItemSummary `json:"item"`
}

// ListResponse is the body of a successful catalog-query.
type ListResponse struct {
	Items            []catalog.Item `json:"items"`
	Count            int            `json:"count"`
	Type             string         `json:"type"`
	LastEvaluatedKey string         `json:"lastEvaluatedKey,omitempty"`
}

// GetUploadURL requests a presigned upload target.
func (c *Client) GetUploadURL(ctx context.Context, contentType, fileExt, mediaType string) (*upload.Target, error) {
	body := map[string]string{
		"contentType": contentType,
		"fileExt":     fileExt,
		"type":        mediaType,
	}
	var target upload.Target
	if err := c.post(ctx, "/api/upload-url", body, http.StatusOK, &target); err != nil {
		return nil, err
	}
	return &target, nil
}

// PutObject uploads raw bytes to a presigned URL. contentType must match the
// type the URL was issued for.
func (c *Client) PutObject(ctx context.Context, uploadURL string, r io.Reader, size int64, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, r)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload object: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// CreateItem writes a catalog record for an already-uploaded object.
func (c *Client) CreateItem(ctx context.Context, req catalog.CreateRequest) (*CreateResponse, error) {
	var out CreateResponse
	if err := c.post(ctx, "/api/catalog", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Catalog fetches one page of records for a media type. token resumes a
// previous listing; limit <= 0 uses the server default.
func (c *Client) Catalog(ctx context.Context, mediaType string, limit int, token string) (*ListResponse, error) {
	q := url.Values{"type": {mediaType}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if token != "" {
		q.Set("lastEvaluatedKey", token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/catalog?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	var out ListResponse
	if err := c.do(req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body any, wantStatus int, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, wantStatus, out)
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var eb struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Error == "" {
			eb.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s %s: %s (status %d)", req.Method, req.URL.Path, eb.Error, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
