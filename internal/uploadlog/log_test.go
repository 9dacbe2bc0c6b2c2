package uploadlog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtx01cc/mmrtools/internal/common"
	"github.com/mtx01cc/mmrtools/internal/logging"
	"github.com/mtx01cc/mmrtools/internal/refset"
)

func discardLogger() logging.Logger {
	return logging.New(io.Discard, false)
}

func TestReadLines_PreservesBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploads")
	require.NoError(t, os.WriteFile(path, []byte("{\"url\":\"mxc://s/a1\"}\n\n{\"url\":\"mxc://s/b2\"}\n"), 0o660))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{`{"url":"mxc://s/a1"}`, "", `{"url":"mxc://s/b2"}`}, lines)
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrPathNotFound))
	require.True(t, errors.Is(err, os.ErrNotExist), "underlying cause must stay in the chain")
}

func TestFilter_KeepsReferencedDropsRest(t *testing.T) {
	lines := []string{
		`{"url":"mxc://s/a1","size":10}`,
		`{"url":"mxc://s/z9","size":20}`,
	}
	refs := refset.NewSet("a1")

	kept, removed := Filter(context.Background(), lines, refs, true, discardLogger())

	assert.Equal(t, []string{`{"url":"mxc://s/a1","size":10}`}, kept)
	require.Len(t, removed, 1)
	assert.Equal(t, "mxc://s/z9", removed[0].URL())
	assert.Equal(t, common.PurposeNone, removed[0]["purpose"])
	assert.Equal(t, float64(20), removed[0]["size"], "other fields must survive the clone")
}

func TestFilter_BlankAndMalformedLinesSurvive(t *testing.T) {
	lines := []string{
		"",
		`{"url":"mxc://s/a1"}`,
		`not json at all`,
		`{"url": 42}`,
		`{"size": 3}`,
	}
	// Reference set misses the IDs of all valid lines.
	refs := refset.NewSet()

	kept, removed := Filter(context.Background(), lines, refs, true, discardLogger())

	want := []string{"", `not json at all`, `{"url": 42}`, `{"size": 3}`}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Fatalf("kept lines mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, removed, 1)
	assert.Equal(t, "mxc://s/a1", removed[0].URL())
}

func TestFilter_EmptyURLStringIsAValidURL(t *testing.T) {
	// An empty url is still a string url: it goes through extraction and,
	// absent a matching reference, is removed like any other stale entry.
	lines := []string{
		`{"url":"","size":5}`,
		`{"url": 42}`,
	}

	kept, removed := Filter(context.Background(), lines, refset.NewSet(), true, discardLogger())

	assert.Equal(t, []string{`{"url": 42}`}, kept)
	require.Len(t, removed, 1)
	assert.Equal(t, "", removed[0]["url"])
	assert.Equal(t, common.PurposeNone, removed[0]["purpose"])
}

func TestFilter_SilentDropVariant(t *testing.T) {
	lines := []string{`{"url":"mxc://s/z9"}`}

	kept, removed := Filter(context.Background(), lines, refset.NewSet(), false, discardLogger())

	assert.Empty(t, kept)
	assert.Empty(t, removed)
}

func TestFilter_Idempotent(t *testing.T) {
	lines := []string{
		`{"url":"mxc://s/a1"}`,
		"",
		`{"url":"mxc://s/z9"}`,
		`broken`,
	}
	refs := refset.NewSet("a1")

	once, removedOnce := Filter(context.Background(), lines, refs, true, discardLogger())
	twice, removedTwice := Filter(context.Background(), once, refs, true, discardLogger())

	assert.Equal(t, once, twice)
	assert.Len(t, removedOnce, 1)
	assert.Empty(t, removedTwice)
}

func TestWriteLines_EnforcesTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploads")

	require.NoError(t, WriteLines(path, []string{`{"url":"mxc://s/a1"}`, `{"url":"mxc://s/b2"}`}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"url\":\"mxc://s/a1\"}\n{\"url\":\"mxc://s/b2\"}\n", string(data))
}

func TestWriteLines_ReadBackRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploads")
	lines := []string{`{"url":"mxc://s/a1"}`, "", `{"url":"mxc://s/b2"}`}

	require.NoError(t, WriteLines(path, lines))
	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestWriteRemoved_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "uploads_purpose_none.ndjson")
	records := []Record{
		{"url": "mxc://s/z9", "purpose": common.PurposeNone},
	}

	require.NoError(t, WriteRemoved(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"mxc://s/z9","purpose":"none"}`, string(data[:len(data)-1]))
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestMediaIDs(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantIDs     []string
		wantInvalid int
	}{
		{
			name:    "valid lines",
			lines:   []string{`{"url":"mxc://s/a1"}`, `{"url":"mxc://s/b2"}`},
			wantIDs: []string{"a1", "b2"},
		},
		{
			name:        "invalid shapes",
			lines:       []string{"", "broken", `{"url":"https://s/a1"}`, `{"url":"mxc://justserver"}`, `{"url":"mxc://s/"}`},
			wantInvalid: 5,
		},
		{
			name:        "mixed",
			lines:       []string{`{"url":"mxc://s/a1"}`, "junk"},
			wantIDs:     []string{"a1"},
			wantInvalid: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, invalid := MediaIDs(tt.lines)
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantInvalid, invalid)
		})
	}
}
