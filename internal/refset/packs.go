package refset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mtx01cc/mmrtools/internal/common"
	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/mediaid"
)

// indexFileName is the pack-list manifest, not a pack itself.
const indexFileName = "index.json"

// PackCollector gathers media IDs referenced by the sticker pack files in
// Dir: every `*.json` file except index.json contributes the `id` and
// `info.thumbnail_url` of each of its stickers.
//
// Pack files in the wild are loosely structured, so fields are decoded
// dynamically and type-checked one by one; a wrong-typed stickers array,
// sticker, or field is skipped without touching the rest of the pack.
//
// Strict selects the policy for a pack that fails to parse at all: with
// Strict=true the whole collection aborts (the pruning workflow must not
// delete thumbnails based on an incomplete picture); with Strict=false the
// pack is skipped with a warning (the upload-sync workflow tolerates a
// broken pack and reconciles what it can see).
type PackCollector struct {
	Dir    string
	Strict bool
	Log    logging.Logger
}

var _ Collector = (*PackCollector)(nil)

func (c *PackCollector) Collect(ctx context.Context) (Set, error) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrPathNotFound, c.Dir, err)
	}

	refs := NewSet()
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".json") || name == indexFileName {
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(c.Dir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			if c.Strict {
				return nil, fmt.Errorf("reading pack %s: %w", path, err)
			}
			c.Log.Warn(ctx, "skipping unreadable pack", "path", path, "error", err)
			continue
		}

		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			if c.Strict {
				return nil, fmt.Errorf("%w: %s: %w", common.ErrMalformedPack, path, err)
			}
			c.Log.Warn(ctx, "skipping malformed pack", "path", path, "error", err)
			continue
		}

		collectPack(doc, refs)
	}

	return refs, nil
}

func collectPack(doc map[string]any, refs Set) {
	stickers, ok := doc["stickers"].([]any)
	if !ok {
		return
	}
	for _, item := range stickers {
		s, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := s["id"].(string); ok {
			refs.Add(mediaid.Extract(id))
		}
		info, ok := s["info"].(map[string]any)
		if !ok {
			continue
		}
		if thumb, ok := info["thumbnail_url"].(string); ok {
			refs.Add(mediaid.Extract(thumb))
		}
	}
}
