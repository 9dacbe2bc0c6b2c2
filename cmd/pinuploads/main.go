// Command pinuploads marks every media ID listed in the upload log as
// pinned, so the media repository's purge job leaves it alone.
//
// Usage:
//
//	pinuploads <token> [-server NAME] [-uploads-file PATH] [-dry-run] [-v]
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
	log := logging.New(os.Stderr, cfg.Verbose).With("tool", "pinuploads", "run_id", uuid.NewString())

	token, err := cfg.ResolveToken()
	if err != nil {
		log.Error(ctx, "no access token provided")
		return 1
	}

	client := mmradmin.NewClient(cfg.Server, token)
	if err := tasks.PinUploads(ctx, client, cfg.UploadsFile, cfg.DryRun, log); err != nil {
		log.Error(ctx, "pin run failed", "error", err)
		return 1
	}
	return 0
}
