// cachehealth opens the snapshot database, runs the schema migration and
// prints per-table row counts. Handy for checking what a device has cached.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/communityhub/mobilecore/internal/common"
	"github.com/communityhub/mobilecore/internal/snapshot"
)

func main() {
	_ = godotenv.Load()

	cfg, err := common.LoadConfig(getenv("CONFIG_PATH", "config.toml"))
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	entc, err := snapshot.Open(ctx, cfg.Cache.Path, logger)
	if err != nil {
		log.Fatalf("opening snapshot database: %v", err)
	}
	defer snapshot.Close(entc, logger)

	log.Printf("snapshot health: OK (%s)", cfg.Cache.Path)

	news, err := entc.CachedNewsItem.Query().Count(ctx)
	if err != nil {
		log.Fatalf("counting cached news: %v", err)
	}
	gallery, err := entc.CachedGalleryImage.Query().Count(ctx)
	if err != nil {
		log.Fatalf("counting cached gallery images: %v", err)
	}
	transactions, err := entc.CachedTransaction.Query().Count(ctx)
	if err != nil {
		log.Fatalf("counting cached transactions: %v", err)
	}
	pins, err := entc.PinnedCategory.Query().Count(ctx)
	if err != nil {
		log.Fatalf("counting pinned categories: %v", err)
	}

	log.Printf("- cached news items:      %d", news)
	log.Printf("- cached gallery images:  %d", gallery)
	log.Printf("- cached transactions:    %d", transactions)
	log.Printf("- pinned categories:      %d", pins)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
