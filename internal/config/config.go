// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// AWS region for both the catalog table and the assets bucket.
	AWSRegion    string
	CatalogTable string
	AssetsBucket string

	// StorageEndpoint overrides the S3 endpoint for S3-compatible backends
	// (MinIO, LocalStack). Empty means the real AWS endpoint for AWSRegion.
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string

	// APIBaseURL is the public base URL of this API, used by clients.
	// CDNBaseURL is the browser-accessible base for served objects.
	APIBaseURL string
	CDNBaseURL string

	// AdminJWTSecret, when set, gates the write endpoints behind a Bearer
	// HS256 token. Empty leaves every endpoint open.
	AdminJWTSecret string

	// UploadURLTTL is the lifetime of issued presigned upload URLs.
	UploadURLTTL time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		AWSRegion:    getEnv("AWS_REGION", "ap-south-1"),
		CatalogTable: getEnv("CATALOG_TABLE", "catalog"),
		AssetsBucket: getEnv("ASSETS_BUCKET", "assets"),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),

		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		CDNBaseURL: getEnv("CDN_BASE_URL", "http://localhost:9000/assets"),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		UploadURLTTL: getDuration("UPLOAD_URL_TTL", time.Hour),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses the variable as a Go duration ("30m") or a number of
// seconds ("3600"); invalid values fall back.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("invalid %s=%q, using default %v", key, v, fallback)
	return fallback
}
