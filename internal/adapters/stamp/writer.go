// Package stamp writes the game's version source file.
package stamp

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hpwbuild/internal/core/domain"
	"go.trai.ch/hpwbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Writer implements ports.VersionWriter. The stamp combines the configured
// base version with the git commit and dirty state of the project.
type Writer struct {
	logger ports.Logger
	now    func() time.Time
}

// NewWriter creates a new Writer.
func NewWriter(log ports.Logger) *Writer {
	return &Writer{logger: log, now: time.Now}
}

// WriteVersion renders the stamp for cfg into cfg.VersionFile. The file is left
// untouched when its content would not change, so the build tool does not
// recompile it.
func (w *Writer) WriteVersion(ctx context.Context, cfg domain.BuildConfig) (domain.VersionStamp, error) {
	if err := ctx.Err(); err != nil {
		return domain.VersionStamp{}, err
	}

	path := cfg.Path(cfg.VersionFile)

	state, err := readGitState(cfg.Root, path)
	if err != nil {
		w.logger.Warn("could not read git state: " + err.Error())
		state = gitState{}
	}

	stamp := domain.VersionStamp{
		Base:   cfg.BaseVersion,
		Commit: domain.ShortCommit(state.Commit),
		Dirty:  state.Dirty,
		Debug:  cfg.Debug,
		Date:   w.now(),
	}

	content, err := Render(stamp)
	if err != nil {
		return domain.VersionStamp{}, zerr.Wrap(err, "failed to render version source")
	}

	unchanged, err := sameContent(path, content)
	if err != nil {
		return domain.VersionStamp{}, zerr.With(zerr.Wrap(err, "failed to read version source"), "path", path)
	}
	if unchanged {
		return stamp, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return domain.VersionStamp{}, zerr.With(zerr.Wrap(err, "failed to create version directory"), "path", path)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // source file read by the compiler
		return domain.VersionStamp{}, zerr.With(zerr.Wrap(err, "failed to write version source"), "path", path)
	}

	return stamp, nil
}

func sameContent(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // path comes from the build config
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return xxhash.Sum64(existing) == xxhash.Sum64(content), nil
}
