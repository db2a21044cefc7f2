package upload

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshan/catalog/internal/storage"
)

// fakeStorage records presign calls and returns a deterministic URL.
type fakeStorage struct {
	lastKey         string
	lastContentType string
	lastExpires     time.Duration
	presignErr      error
}

func (f *fakeStorage) PresignPut(_ context.Context, key, contentType string, expires time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	f.lastKey = key
	f.lastContentType = contentType
	f.lastExpires = expires
	return "https://bucket.example.org/" + key + "?signature=abc", nil
}

func (f *fakeStorage) Delete(context.Context, string) error { return nil }
func (f *fakeStorage) List(context.Context, string) ([]storage.Object, error) {
	return nil, nil
}
func (f *fakeStorage) PublicURL(key string) string { return "https://cdn.example.org/" + key }

var keyPattern = regexp.MustCompile(`^originals/([0-9a-f-]{36})\.([^.]+)$`)

func TestIssueKeyShape(t *testing.T) {
	fs := &fakeStorage{}
	svc := NewService(fs, time.Hour)

	for _, ext := range []string{"png", "jpg", "mp3", "JPEG"} {
		target, err := svc.Issue(context.Background(), "image/png", ext, "wallpaper")
		require.NoError(t, err)

		m := keyPattern.FindStringSubmatch(target.Key)
		require.NotNil(t, m, "key %q must match originals/<uuid>.<ext>", target.Key)
		_, err = uuid.Parse(m[1])
		require.NoError(t, err)
		// extension is used verbatim, never normalized
		assert.Equal(t, ext, m[2])

		assert.Equal(t, target.Key, fs.lastKey)
		assert.True(t, strings.Contains(target.UploadURL, target.Key))
	}
}

func TestIssueScopesPresign(t *testing.T) {
	fs := &fakeStorage{}
	svc := NewService(fs, 30*time.Minute)

	_, err := svc.Issue(context.Background(), "audio/mpeg", "mp3", "music")
	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", fs.lastContentType)
	assert.Equal(t, 30*time.Minute, fs.lastExpires)
}

func TestIssueKeysAreUnique(t *testing.T) {
	svc := NewService(&fakeStorage{}, time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		target, err := svc.Issue(context.Background(), "image/png", "png", "wallpaper")
		require.NoError(t, err)
		assert.False(t, seen[target.Key], "duplicate key %s", target.Key)
		seen[target.Key] = true
	}
}

func TestIssueValidation(t *testing.T) {
	svc := NewService(&fakeStorage{}, time.Hour)

	tests := []struct {
		name                            string
		contentType, fileExt, mediaType string
		msg                             string
	}{
		{"missing contentType", "", "png", "wallpaper", "Missing required fields: contentType, fileExt, type"},
		{"missing fileExt", "image/png", "", "wallpaper", "Missing required fields: contentType, fileExt, type"},
		{"missing type", "image/png", "png", "", "Missing required fields: contentType, fileExt, type"},
		{"invalid type", "image/png", "png", "gif", `Type must be "wallpaper" or "music"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Issue(context.Background(), tt.contentType, tt.fileExt, tt.mediaType)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
			assert.Equal(t, tt.msg, userMessage(err))
		})
	}
}

func TestIssueSurfacesPresignFailure(t *testing.T) {
	svc := NewService(&fakeStorage{presignErr: errors.New("s3 unreachable")}, time.Hour)

	_, err := svc.Issue(context.Background(), "image/png", "png", "wallpaper")
	require.Error(t, err)
	assert.False(t, IsInvalidInput(err))
}
