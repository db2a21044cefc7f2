package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshan/catalog/internal/catalog"
	"github.com/darshan/catalog/internal/storage"
	"github.com/darshan/catalog/internal/upload"
)

// uploadSink is a stand-in object store endpoint: it accepts presigned PUTs
// and remembers what was uploaded under each key.
type uploadSink struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	fail    bool
}

func newUploadSink() *uploadSink {
	return &uploadSink{objects: map[string][]byte{}, types: map[string]string{}}
}

func (u *uploadSink) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if u.fail {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	body, _ := io.ReadAll(r.Body)
	u.mu.Lock()
	defer u.mu.Unlock()
	key := strings.TrimPrefix(r.URL.Path, "/")
	u.objects[key] = body
	u.types[key] = r.Header.Get("Content-Type")
	w.WriteHeader(http.StatusOK)
}

// sinkStorage presigns URLs pointing at the sink server.
type sinkStorage struct {
	baseURL string
}

func (s *sinkStorage) PresignPut(_ context.Context, key, contentType string, _ time.Duration) (string, error) {
	return s.baseURL + "/" + key + "?signature=test", nil
}
func (s *sinkStorage) Delete(context.Context, string) error { return nil }
func (s *sinkStorage) List(context.Context, string) ([]storage.Object, error) {
	return nil, nil
}
func (s *sinkStorage) PublicURL(key string) string { return "https://cdn.test/" + key }

// newTestAPI assembles the real handlers over an in-memory repository, the
// way cmd/api wires them.
func newTestAPI(t *testing.T, sink *httptest.Server) (*httptest.Server, *catalog.MemoryRepository) {
	t.Helper()

	repo := catalog.NewMemoryRepository()
	catalogHandler := catalog.NewHandler(catalog.NewService(repo))
	uploadHandler := upload.NewHandler(upload.NewService(&sinkStorage{baseURL: sink.URL}, time.Hour))

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", catalogHandler.List)
		r.Post("/catalog", catalogHandler.Create)
		r.Get("/upload-url", uploadHandler.Issue)
		r.Post("/upload-url", uploadHandler.Issue)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, repo
}

func TestUploadMediaEndToEnd(t *testing.T) {
	sink := newUploadSink()
	sinkSrv := httptest.NewServer(sink)
	defer sinkSrv.Close()

	api, _ := newTestAPI(t, sinkSrv)
	c := New(api.URL)

	fileBytes := []byte("png-bytes")
	created, err := c.UploadMedia(context.Background(), UploadRequest{
		File:        bytes.NewReader(fileBytes),
		Size:        int64(len(fileBytes)),
		ContentType: "image/png",
		FileExt:     "png",
		Type:        "wallpaper",
		Title:       "Test",
		Style:       "traditional",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "1", created.Version)
	assert.True(t, strings.HasPrefix(created.Item.FileKey, "originals/"))
	assert.True(t, strings.HasSuffix(created.Item.FileKey, ".png"))
	assert.NotEmpty(t, created.Item.CreatedAt)

	// the exact bytes and content type landed under the issued key
	sink.mu.Lock()
	assert.Equal(t, fileBytes, sink.objects[created.Item.FileKey])
	assert.Equal(t, "image/png", sink.types[created.Item.FileKey])
	sink.mu.Unlock()

	// and the record is visible through the query endpoint
	page, err := c.Catalog(context.Background(), "wallpaper", 0, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, "Test", page.Items[0].Title)
	assert.Equal(t, created.Item.FileKey, page.Items[0].FileKey)
	assert.Equal(t, "traditional", page.Items[0].Style)
}

func TestUploadMediaAbortsOnIssuanceFailure(t *testing.T) {
	sink := newUploadSink()
	sinkSrv := httptest.NewServer(sink)
	defer sinkSrv.Close()

	api, repo := newTestAPI(t, sinkSrv)
	c := New(api.URL)

	_, err := c.UploadMedia(context.Background(), UploadRequest{
		File:        strings.NewReader("x"),
		Size:        1,
		ContentType: "image/gif",
		FileExt:     "gif",
		Type:        "gif", // rejected at step one
		Title:       "Bad",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Type must be "wallpaper" or "music"`)

	// neither storage nor catalog was touched
	assert.Empty(t, sink.objects)
	page, err := repo.ListByType(context.Background(), catalog.TypeWallpaper, catalog.DefaultLimit, "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestUploadMediaAbortsOnUploadFailure(t *testing.T) {
	sink := newUploadSink()
	sink.fail = true
	sinkSrv := httptest.NewServer(sink)
	defer sinkSrv.Close()

	api, repo := newTestAPI(t, sinkSrv)
	c := New(api.URL)

	_, err := c.UploadMedia(context.Background(), UploadRequest{
		File:        strings.NewReader("x"),
		Size:        1,
		ContentType: "image/png",
		FileExt:     "png",
		Type:        "wallpaper",
		Title:       "Test",
	})
	require.Error(t, err)

	// the failed upload leaves no catalog record behind
	page, err := repo.ListByType(context.Background(), catalog.TypeWallpaper, catalog.DefaultLimit, "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestClientSurfacesAPIErrorMessages(t *testing.T) {
	sink := newUploadSink()
	sinkSrv := httptest.NewServer(sink)
	defer sinkSrv.Close()

	api, _ := newTestAPI(t, sinkSrv)
	c := New(api.URL)

	_, err := c.Catalog(context.Background(), "video", 0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Type parameter must be "wallpaper" or "music"`)
}
