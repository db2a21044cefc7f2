//	@title			Media Catalog API
//	@version		1.0
//	@description	Upload-URL issuance and catalog browsing for the wallpaper/music site.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin JWT. Format: **Bearer {token}**

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/darshan/catalog/internal/awsx"
	"github.com/darshan/catalog/internal/catalog"
	"github.com/darshan/catalog/internal/config"
	appMiddleware "github.com/darshan/catalog/internal/middleware"
	"github.com/darshan/catalog/internal/storage"
	"github.com/darshan/catalog/internal/upload"

	_ "github.com/darshan/catalog/docs/swagger"
)

func main() {
	cfg := config.Load()

	awsCfg, err := awsx.Load(context.Background(), cfg)
	if err != nil {
		log.Fatalf("aws config failed: %v", err)
	}

	store := storage.NewS3Storage(awsCfg, cfg.AssetsBucket, cfg.CDNBaseURL, cfg.StorageEndpoint)
	repo := catalog.NewDynamoRepository(awsCfg, cfg.CatalogTable, cfg.StorageEndpoint)

	// Wire dependencies: repository/adapter → service → handler
	catalogSvc := catalog.NewService(repo)
	catalogHandler := catalog.NewHandler(catalogSvc)

	uploadSvc := upload.NewService(store, cfg.UploadURLTTL)
	uploadHandler := upload.NewHandler(uploadSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		// Public catalog read
		r.Get("/catalog", catalogHandler.List)

		// Write endpoints; guarded only when an admin secret is configured
		r.Group(func(r chi.Router) {
			if cfg.AdminJWTSecret != "" {
				r.Use(appMiddleware.RequireAdmin(cfg.AdminJWTSecret))
			}
			r.Get("/upload-url", uploadHandler.Issue)
			r.Post("/upload-url", uploadHandler.Issue)
			r.Post("/catalog", catalogHandler.Create)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server listening", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	slog.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	slog.Info("server stopped")
}
