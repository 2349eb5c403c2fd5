// Package fs implements filesystem side effects of the pipeline.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hpwbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Remover deletes files matching a glob pattern.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// RemoveGlob deletes every regular file matching pattern and returns the
// removed paths in match order. Directories are left alone, and a file that
// disappears before it is removed counts as removed. Any other I/O error stops
// the removal.
func (r *Remover) RemoveGlob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidGlob.Error()), "pattern", pattern)
	}

	removed := make([]string, 0, len(matches))
	for _, path := range matches {
		info, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return removed, cleanupError(err, pattern, path)
		}
		if info.IsDir() {
			continue
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, cleanupError(err, pattern, path)
		}
		removed = append(removed, path)
	}

	return removed, nil
}

func cleanupError(err error, pattern, path string) error {
	err = zerr.Wrap(err, domain.ErrCleanupFailed.Error())
	err = zerr.With(err, "pattern", pattern)
	return zerr.With(err, "path", path)
}
