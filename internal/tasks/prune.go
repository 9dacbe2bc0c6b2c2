package tasks

import (
	"context"
	"fmt"

	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/refset"
	"github.com/mtx01cc/mmrtools/internal/thumbs"
)

// PruneThumbs deletes thumbnail files that no sticker pack references.
// Pack parsing is strict here: deleting files based on a half-read pack
// directory is worse than aborting.
func PruneThumbs(ctx context.Context, packsDir, thumbsDir string, dryRun bool, log logging.Logger) error {
	collector := &refset.PackCollector{Dir: packsDir, Strict: true, Log: log}
	refs, err := collector.Collect(ctx)
	if err != nil {
		return err
	}

	removed, failed, err := thumbs.Prune(ctx, thumbsDir, refs, dryRun, log)
	if err != nil {
		return err
	}

	if dryRun {
		log.Info(ctx, "preview complete", "would_remove", removed)
		return nil
	}
	log.Info(ctx, "cleanup complete", "removed", removed, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d thumbnail removals failed", failed)
	}
	return nil
}
