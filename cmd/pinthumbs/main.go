// Command pinthumbs marks every media ID named by a thumbnail file as
// pinned. Thumbnail files are stored under their media ID, so the
// directory listing is the candidate list.
//
// Usage:
//
//	pinthumbs <token> [-server NAME] [-thumbs-dir PATH] [-dry-run] [-v]
package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/mtx01cc/mmrtools/internal/config"
	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/mmradmin"
	"github.com/mtx01cc/mmrtools/internal/tasks"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.Verbose).With("tool", "pinthumbs", "run_id", uuid.NewString())

	token, err := cfg.ResolveToken()
	if err != nil {
		log.Error(ctx, "no access token provided")
		return 1
	}

	client := mmradmin.NewClient(cfg.Server, token)
	if err := tasks.PinThumbs(ctx, client, cfg.ThumbsDir, cfg.DryRun, log); err != nil {
		log.Error(ctx, "pin run failed", "error", err)
		return 1
	}
	return 0
}
