package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "CATALOG_TABLE", "ASSETS_BUCKET", "UPLOAD_URL_TTL", "ADMIN_JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "catalog", cfg.CatalogTable)
	assert.Equal(t, "assets", cfg.AssetsBucket)
	assert.Equal(t, time.Hour, cfg.UploadURLTTL)
	assert.Empty(t, cfg.AdminJWTSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CATALOG_TABLE", "media-catalog")
	t.Setenv("UPLOAD_URL_TTL", "30m")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "media-catalog", cfg.CatalogTable)
	assert.Equal(t, 30*time.Minute, cfg.UploadURLTTL)
	assert.True(t, cfg.IsProduction())
}

func TestGetDuration(t *testing.T) {
	t.Setenv("TTL_TEST", "3600")
	assert.Equal(t, time.Hour, getDuration("TTL_TEST", time.Minute))

	t.Setenv("TTL_TEST", "15m")
	assert.Equal(t, 15*time.Minute, getDuration("TTL_TEST", time.Minute))

	t.Setenv("TTL_TEST", "soon")
	assert.Equal(t, time.Minute, getDuration("TTL_TEST", time.Minute))
}
