// Command syncuploads reconciles the upload log against the media still
// referenced by sticker packs (or, with -from-thumbs, still present as
// thumbnail files). Entries for vanished media are un-pinned on the
// server, recorded in a side-channel NDJSON file, and dropped from the
// log.
//
// Usage:
//
//	syncuploads <token> [-server NAME] [-uploads-file PATH] [-packs-dir PATH]
//	            [-thumbs-dir PATH] [-removed-out PATH] [-from-thumbs]
//	            [-dry-run] [-v]
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
	log := logging.New(os.Stderr, cfg.Verbose).With("tool", "syncuploads", "run_id", uuid.NewString())

	token, err := cfg.ResolveToken()
	if err != nil {
		log.Error(ctx, "no access token provided")
		return 1
	}

	client := mmradmin.NewClient(cfg.Server, token)
	opts := tasks.SyncOptions{
		UploadsFile: cfg.UploadsFile,
		PacksDir:    cfg.PacksDir,
		ThumbsDir:   cfg.ThumbsDir,
		RemovedOut:  cfg.RemovedOut,
		FromThumbs:  cfg.FromThumbs,
		DryRun:      cfg.DryRun,
	}
	if err := tasks.SyncUploads(ctx, client, opts, log); err != nil {
		log.Error(ctx, "sync run failed", "error", err)
		return 1
	}
	return 0
}
