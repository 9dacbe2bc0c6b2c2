// Package uploadlog reads, filters, and rewrites the newline-delimited
// JSON log of media uploads kept next to the sticker picker.
//
// Each non-blank line is one JSON object with at least a `url` field of
// the form mxc://<server>/<media_id>. The log is append-only for the
// upload tooling; the sync workflow here is its only rewriter.
package uploadlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mtx01cc/mmrtools/internal/common"
	"github.com/mtx01cc/mmrtools/internal/filex"
	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/mediaid"
	"github.com/mtx01cc/mmrtools/internal/refset"
)

// Record is one decoded upload-log entry. Decoding into a map keeps every
// field of the original line intact when a record is cloned into the
// side-channel removal file.
type Record map[string]any

// URL returns the record's url field, or "" when missing or not a string.
func (r Record) URL() string {
	u, _ := r["url"].(string)
	return u
}

// ReadLines returns every line of the log file, blank lines included, so
// a later rewrite preserves the file's line-for-line structure.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrPathNotFound, path, err)
	}
	return splitLines(string(data)), nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// Filter partitions lines against the reference set.
//
// Blank lines are kept verbatim. A line that does not decode as JSON, or
// whose url field is missing or not a string, is also kept verbatim: a
// malformed line must never be mistaken for an unused upload. A decodable
// line survives iff the media ID extracted from its url is in refs.
//
// With mark=true, each dropped line's record is cloned with purpose forced
// to "none" into the returned removed list; with mark=false dropped lines
// just vanish. Filtering is idempotent: a second pass with the same refs
// removes nothing further.
func Filter(ctx context.Context, lines []string, refs refset.Set, mark bool, log logging.Logger) (kept []string, removed []Record) {
	kept = make([]string, 0, len(lines))

	for _, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" {
			kept = append(kept, ln)
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
			log.Warn(ctx, "keeping non-JSON log line", "line", ln)
			kept = append(kept, ln)
			continue
		}
		url, ok := rec["url"].(string)
		if !ok {
			log.Warn(ctx, "keeping log line without usable url", "line", ln)
			kept = append(kept, ln)
			continue
		}

		id := mediaid.Extract(url)
		if refs.Has(id) {
			kept = append(kept, ln)
			continue
		}

		log.Debug(ctx, "removing entry for missing media", "media_id", id)
		if mark {
			rec["purpose"] = common.PurposeNone
			removed = append(removed, rec)
		}
	}

	return kept, removed
}

// WriteLines overwrites the log file with lines, joined by newlines and
// ending with exactly one trailing newline to match the original style.
func WriteLines(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o660); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteRemoved writes records as NDJSON to path for downstream use,
// creating the parent directory on demand.
func WriteRemoved(path string, records []Record) error {
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}

	var b strings.Builder
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding removed record: %w", err)
		}
		b.Write(data)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o660); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MediaIDs extracts media IDs for the pinning workflow. Unlike Filter it
// is strict: a line only contributes an ID when it decodes as JSON and its
// url has the full mxc://<server>/<media_id> shape with a non-empty ID.
// Everything else counts toward the returned invalid total.
func MediaIDs(lines []string) (ids []string, invalid int) {
	const prefix = "mxc://"

	for _, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" {
			invalid++
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
			invalid++
			continue
		}
		url := rec.URL()
		if !strings.HasPrefix(url, prefix) {
			invalid++
			continue
		}
		_, id, found := strings.Cut(url[len(prefix):], "/")
		if !found || id == "" {
			invalid++
			continue
		}
		ids = append(ids, id)
	}

	return ids, invalid
}
