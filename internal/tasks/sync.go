package tasks

import (
	"context"
	"fmt"

	"github.com/mtx01cc/mmrtools/internal/common"
	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/mediaid"
	"github.com/mtx01cc/mmrtools/internal/refset"
	"github.com/mtx01cc/mmrtools/internal/uploadlog"
)

// SyncOptions configures SyncUploads. Path resolution happens in the
// commands; the workflow only sees final paths.
type SyncOptions struct {
	UploadsFile string
	PacksDir    string
	ThumbsDir   string
	RemovedOut  string
	FromThumbs  bool
	DryRun      bool
}

// SyncUploads reconciles the upload log against the media still referenced
// by sticker packs (or, with FromThumbs, still present as thumbnail
// files). Entries for vanished media are un-pinned on the server, recorded
// in the side-channel NDJSON file, and dropped from the log.
//
// The log rewrite happens exactly once, after all attribute calls: an
// interrupted run leaves the log in its pre-sync state, at the price of
// some media possibly being un-pinned already.
func SyncUploads(ctx context.Context, client AttributeSetter, opts SyncOptions, log logging.Logger) error {
	var collector refset.Collector
	if opts.FromThumbs {
		collector = &refset.ThumbDirCollector{Dir: opts.ThumbsDir}
	} else {
		// Lenient parsing: one broken pack must not block reconciling
		// the uploads the remaining packs still account for.
		collector = &refset.PackCollector{Dir: opts.PacksDir, Strict: false, Log: log}
	}

	refs, err := collector.Collect(ctx)
	if err != nil {
		return err
	}
	log.Debug(ctx, "collected reference set", "count", refs.Len(), "from_thumbs", opts.FromThumbs)

	lines, err := uploadlog.ReadLines(opts.UploadsFile)
	if err != nil {
		return err
	}

	kept, removed := uploadlog.Filter(ctx, lines, refs, true, log)
	log.Info(ctx, "reconciled upload log",
		"total", len(lines), "kept", len(kept), "removed", len(removed), "dry_run", opts.DryRun)

	if opts.DryRun {
		if len(removed) > 0 {
			log.Info(ctx, "preview: entries would be marked purpose=none and removed", "count", len(removed))
		} else {
			log.Info(ctx, "preview: nothing to remove")
		}
		return nil
	}

	if len(removed) == 0 {
		log.Info(ctx, "sync complete: nothing to remove")
		return nil
	}

	ids := make([]string, 0, len(removed))
	for _, rec := range removed {
		ids = append(ids, mediaid.Extract(rec.URL()))
	}

	success, failed := setPurposeAll(ctx, client, ids, common.PurposeNone, false, log)
	log.Info(ctx, "purpose updates completed", "success", success, "failed", failed)

	if err := uploadlog.WriteRemoved(opts.RemovedOut, removed); err != nil {
		return err
	}
	if err := uploadlog.WriteLines(opts.UploadsFile, kept); err != nil {
		return err
	}
	log.Info(ctx, "sync complete", "removed", len(removed), "removed_out", opts.RemovedOut)

	if failed > 0 {
		return fmt.Errorf("%d of %d purpose updates failed", failed, len(removed))
	}
	return nil
}
