// Command prunethumbs deletes thumbnail files that no sticker pack
// references anymore. It makes no network calls.
//
// Usage:
//
//	prunethumbs [-packs-dir PATH] [-thumbs-dir PATH] [-dry-run] [-v]
package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/mtx01cc/mmrtools/internal/config"
	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/tasks"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.Verbose).With("tool", "prunethumbs", "run_id", uuid.NewString())

	if err := tasks.PruneThumbs(ctx, cfg.PacksDir, cfg.ThumbsDir, cfg.DryRun, log); err != nil {
		log.Error(ctx, "prune run failed", "error", err)
		return 1
	}
	return 0
}
