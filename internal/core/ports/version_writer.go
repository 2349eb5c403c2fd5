package ports

import (
	"context"

	"go.trai.ch/hpwbuild/internal/core/domain"
)

// VersionWriter defines the interface for stamping the game version.
//
//go:generate mockgen -source=version_writer.go -destination=mocks/mock_version_writer.go -package=mocks
type VersionWriter interface {
	// WriteVersion writes the version stamp for cfg and returns it.
	WriteVersion(ctx context.Context, cfg domain.BuildConfig) (domain.VersionStamp, error)
}
