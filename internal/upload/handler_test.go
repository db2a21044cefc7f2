package upload

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueHandlerPost(t *testing.T) {
	h := NewHandler(NewService(&fakeStorage{}, time.Hour))

	body := `{"contentType":"image/png","fileExt":"png","type":"wallpaper"}`
	req := httptest.NewRequest(http.MethodPost, "/api/upload-url", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Issue(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var target Target
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&target))
	assert.True(t, strings.HasPrefix(target.Key, "originals/"))
	assert.True(t, strings.HasSuffix(target.Key, ".png"))
	assert.NotEmpty(t, target.UploadURL)
}

func TestIssueHandlerGetQuery(t *testing.T) {
	h := NewHandler(NewService(&fakeStorage{}, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/upload-url?contentType=audio%2Fmpeg&fileExt=mp3&type=music", nil)
	rec := httptest.NewRecorder()
	h.Issue(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var target Target
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&target))
	assert.True(t, strings.HasSuffix(target.Key, ".mp3"))
}

func TestIssueHandlerValidation(t *testing.T) {
	h := NewHandler(NewService(&fakeStorage{}, time.Hour))

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"malformed json", `not json`, "Missing required fields: contentType, fileExt, type"},
		{"missing fields", `{"contentType":"image/png"}`, "Missing required fields: contentType, fileExt, type"},
		{"bad type", `{"contentType":"image/png","fileExt":"png","type":"gif"}`, `Type must be "wallpaper" or "music"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/upload-url", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Issue(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var eb struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&eb))
			assert.Equal(t, tt.msg, eb.Error)
		})
	}
}

func TestIssueHandlerInternalError(t *testing.T) {
	h := NewHandler(NewService(&fakeStorage{presignErr: assert.AnError}, time.Hour))

	body := `{"contentType":"image/png","fileExt":"png","type":"wallpaper"}`
	req := httptest.NewRequest(http.MethodPost, "/api/upload-url", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Issue(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var eb struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&eb))
	assert.Equal(t, "Internal server error", eb.Error)
}
