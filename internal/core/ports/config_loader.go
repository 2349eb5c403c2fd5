package ports

import "go.trai.ch/hpwbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path on top of the compiled-in defaults.
	// A missing file yields the defaults.
	Load(path string) (domain.BuildConfig, error)
}
