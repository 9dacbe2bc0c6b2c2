package refset

import (
	"context"

	"github.com/mtx01cc/mmrtools/internal/filex"
)

// ThumbDirCollector treats every regular file in Dir as an in-use media
// ID: thumbnail files are stored under their media ID, so the file name
// needs no extraction.
type ThumbDirCollector struct {
	Dir string
}

var _ Collector = (*ThumbDirCollector)(nil)

func (c *ThumbDirCollector) Collect(_ context.Context) (Set, error) {
	names, err := filex.ListFileNames(c.Dir)
	if err != nil {
		return nil, err
	}
	return NewSet(names...), nil
}
