package refset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtx01cc/mmrtools/internal/common"
)

func TestThumbDirCollector_FileNamesAreIDs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a1"), []byte("img"), 0o660))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b2"), []byte("img"), 0o660))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o770))

	c := &ThumbDirCollector{Dir: dir}
	refs, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, refs.Len())
	assert.True(t, refs.Has("a1"))
	assert.True(t, refs.Has("b2"))
	assert.False(t, refs.Has("nested"))
}

func TestThumbDirCollector_MissingDir(t *testing.T) {
	c := &ThumbDirCollector{Dir: filepath.Join(t.TempDir(), "nope")}
	_, err := c.Collect(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrPathNotFound))
}
