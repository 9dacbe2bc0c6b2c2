package tasks

import (
	"context"
	"fmt"

	"github.com/mtx01cc/mmrtools/internal/common"
	"github.com/mtx01cc/mmrtools/internal/filex"
	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/mmradmin"
	"github.com/mtx01cc/mmrtools/internal/uploadlog"
)

// AttributeSetter is the slice of the admin client the workflows need.
// *mmradmin.Client satisfies it; tests substitute a recording fake.
type AttributeSetter interface {
	SetPurpose(ctx context.Context, mediaID, purpose string) (*mmradmin.Result, error)
	RequestURL(mediaID string) string
}

// PinUploads marks every media ID listed in the upload log as pinned so
// the repository's purge job leaves it alone.
func PinUploads(ctx context.Context, client AttributeSetter, uploadsFile string, dryRun bool, log logging.Logger) error {
	lines, err := uploadlog.ReadLines(uploadsFile)
	if err != nil {
		return err
	}

	ids, invalid := uploadlog.MediaIDs(lines)
	if invalid > 0 {
		log.Warn(ctx, "skipped invalid upload log lines", "count", invalid)
	}
	if len(ids) == 0 {
		log.Info(ctx, "no valid media IDs in upload log", "file", uploadsFile)
		return nil
	}
	log.Info(ctx, "pinning media from upload log", "file", uploadsFile, "count", len(ids), "dry_run", dryRun)

	success, failed := setPurposeAll(ctx, client, ids, common.PurposePinned, dryRun, log)
	log.Info(ctx, "pin run completed", "success", success, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d pin requests failed", failed, len(ids))
	}
	return nil
}

// PinThumbs marks every media ID named by a thumbnail file as pinned.
// Thumbnail files are stored under their media ID, so the directory
// listing is the candidate list.
func PinThumbs(ctx context.Context, client AttributeSetter, thumbsDir string, dryRun bool, log logging.Logger) error {
	ids, err := filex.ListFileNames(thumbsDir)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		log.Info(ctx, "no thumbnail files found", "dir", thumbsDir)
		return nil
	}
	log.Info(ctx, "pinning media from thumbnails", "dir", thumbsDir, "count", len(ids), "dry_run", dryRun)

	success, failed := setPurposeAll(ctx, client, ids, common.PurposePinned, dryRun, log)
	log.Info(ctx, "pin run completed", "success", success, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d pin requests failed", failed, len(ids))
	}
	return nil
}

// setPurposeAll issues one attribute call per media ID, in order, one at a
// time. Dry runs print the request that would be sent instead of sending
// it and count as successes.
func setPurposeAll(ctx context.Context, client AttributeSetter, ids []string, purpose string, dryRun bool, log logging.Logger) (success, failed int) {
	for _, id := range ids {
		if dryRun {
			log.Info(ctx, "would set purpose", "url", client.RequestURL(id), "purpose", purpose)
			success++
			continue
		}

		res, err := client.SetPurpose(ctx, id, purpose)
		if err != nil {
			log.Error(ctx, "attribute request failed", "media_id", id, "error", err)
			failed++
			continue
		}
		if !res.OK() {
			log.Error(ctx, "attribute request rejected", "media_id", id, "status", res.Status, "body", res.Body)
			failed++
			continue
		}
		log.Debug(ctx, "purpose set", "media_id", id, "purpose", purpose, "status", res.Status)
		success++
	}
	return success, failed
}
