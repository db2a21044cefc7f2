// Command gc sweeps stored objects that no catalog record references.
// Uploads whose catalog-write never completed are the only way such objects
// appear; see internal/sweep.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/darshan/catalog/internal/awsx"
	"github.com/darshan/catalog/internal/catalog"
	"github.com/darshan/catalog/internal/config"
	"github.com/darshan/catalog/internal/storage"
	"github.com/darshan/catalog/internal/sweep"
)

func main() {
	minAge := flag.Duration("min-age", sweep.DefaultMinAge, "only delete objects older than this")
	dryRun := flag.Bool("dry-run", false, "report orphans without deleting them")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	awsCfg, err := awsx.Load(ctx, cfg)
	if err != nil {
		log.Fatalf("aws config failed: %v", err)
	}

	store := storage.NewS3Storage(awsCfg, cfg.AssetsBucket, cfg.CDNBaseURL, cfg.StorageEndpoint)
	repo := catalog.NewDynamoRepository(awsCfg, cfg.CatalogTable, cfg.StorageEndpoint)

	report, err := sweep.New(store, repo, *minAge, *dryRun).Sweep(ctx)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	verb := "deleted"
	if *dryRun {
		verb = "would delete"
	}
	fmt.Printf("scanned %d objects: %d referenced, %d too young, %s %d\n",
		report.Scanned, report.Referenced, report.TooYoung, verb, len(report.Deleted))
	for _, key := range report.Deleted {
		fmt.Println("  " + key)
	}
}
