package client

import (
	"context"
	"fmt"
	"io"

	"github.com/darshan/catalog/internal/catalog"
)

// UploadRequest is everything needed for one end-to-end media upload.
type UploadRequest struct {
	// File is the raw media bytes; Size its exact byte count.
	File io.Reader
	Size int64

	ContentType string
	FileExt     string

	Type    string
	Title   string
	Caption string
	Shloka  string
	Meaning string
	Ratio   string
	Palette []string
	Style   string

	// ThumbKey points at an already-uploaded thumbnail, if any.
	ThumbKey string
}

// UploadMedia runs the three-step admin upload: issue a presigned URL, PUT
// the file bytes, then write the catalog record with the issued key. The
// chain is linear with no rollback — the first failure aborts and is
// returned, and a completed upload without a catalog record stays in storage
// until swept.
func (c *Client) UploadMedia(ctx context.Context, req UploadRequest) (*CreateResponse, error) {
	target, err := c.GetUploadURL(ctx, req.ContentType, req.FileExt, req.Type)
	if err != nil {
		return nil, fmt.Errorf("get upload url: %w", err)
	}

	if err := c.PutObject(ctx, target.UploadURL, req.File, req.Size, req.ContentType); err != nil {
		return nil, fmt.Errorf("upload %q: %w", target.Key, err)
	}

	created, err := c.CreateItem(ctx, catalog.CreateRequest{
		Type:     req.Type,
		Title:    req.Title,
		Caption:  req.Caption,
		Shloka:   req.Shloka,
		Meaning:  req.Meaning,
		FileKey:  target.Key,
		ThumbKey: req.ThumbKey,
		Ratio:    req.Ratio,
		Palette:  req.Palette,
		Style:    req.Style,
	})
	if err != nil {
		return nil, fmt.Errorf("write catalog record for %q: %w", target.Key, err)
	}
	return created, nil
}
