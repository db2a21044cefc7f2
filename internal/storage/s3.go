package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage implements Storage on an S3 (or S3-compatible) bucket.
type S3Storage struct {
	client     *s3.Client
	presign    *s3.PresignClient
	bucket     string
	publicBase string
}

// NewS3Storage builds an S3 client from the shared AWS config. endpoint, if
// non-empty, overrides the service endpoint with path-style addressing for
// local S3-compatible backends.
func NewS3Storage(awsCfg aws.Config, bucket, publicBase, endpoint string) *S3Storage {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:     client,
		presign:    s3.NewPresignClient(client),
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

// PresignPut issues a write-capable URL scoped to exactly this key and
// content type. The uploader must send the same Content-Type header or the
// signature check fails.
func (s *S3Storage) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}
	return req.URL, nil
}

// Delete removes the object at key from the bucket.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}

// List walks every object under prefix using the ListObjectsV2 paginator.
func (s *S3Storage) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object

	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			o := Object{Key: aws.ToString(obj.Key)}
			if obj.LastModified != nil {
				o.LastModified = *obj.LastModified
			}
			objects = append(objects, o)
		}
	}
	return objects, nil
}

// PublicURL returns the browser-accessible URL for the given key, e.g.
// "https://cdn.example.org/originals/abc.png".
func (s *S3Storage) PublicURL(key string) string {
	return s.publicBase + "/" + key
}
