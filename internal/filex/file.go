// Package filex provides small filesystem helpers shared by the tools.
package filex

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtx01cc/mmrtools/internal/common"
)

// EnsureParentDir creates the parent directory of path if it does not exist
// yet, so the file itself can be written right after.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ListFileNames returns the names of the immediate regular files inside dir,
// in directory order. Subdirectories and other non-regular entries are
// skipped. A missing or unreadable directory yields common.ErrPathNotFound.
func ListFileNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrPathNotFound, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
