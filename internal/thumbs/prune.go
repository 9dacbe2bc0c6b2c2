// Package thumbs deletes thumbnail files that no sticker pack references
// anymore.
package thumbs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mtx01cc/mmrtools/internal/filex"
	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/refset"
)

// Prune removes every regular file in dir whose name is not in refs.
//
// In dry-run mode no file is touched; the would-be removals are logged and
// counted instead. A failed deletion is logged and counted but never stops
// the remaining candidates from being processed.
//
// Returns the number of files removed (or that would be removed in a dry
// run) and the number of deletions that failed.
func Prune(ctx context.Context, dir string, refs refset.Set, dryRun bool, log logging.Logger) (removed, failed int, err error) {
	names, err := filex.ListFileNames(dir)
	if err != nil {
		return 0, 0, err
	}

	toRemove := make([]string, 0, len(names))
	for _, name := range names {
		if !refs.Has(name) {
			toRemove = append(toRemove, name)
		}
	}

	log.Info(ctx, "scanned thumbnails",
		"total", len(names), "in_use", refs.Len(), "candidates", len(toRemove))

	for _, name := range toRemove {
		path := filepath.Join(dir, name)
		if dryRun {
			log.Info(ctx, "would remove", "path", path)
			removed++
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Error(ctx, "removal failed", "path", path, "error", err)
			failed++
			continue
		}
		log.Debug(ctx, "removed", "path", path)
		removed++
	}

	return removed, failed, nil
}
