// Package config loads the optional hpwbuild.yaml file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/hpwbuild/internal/core/domain"
	"go.trai.ch/hpwbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the file at path on top of domain.DefaultBuildConfig. A missing
// file is not an error. Unknown keys are.
func (l *Loader) Load(path string) (domain.BuildConfig, error) {
	cfg := domain.DefaultBuildConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is user provided
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	file.apply(&cfg)
	l.Logger.Info("using config " + path)
	return cfg, nil
}

func (f *File) apply(cfg *domain.BuildConfig) {
	setString(&cfg.Tool, f.Tool)
	setString(&cfg.PrimaryScript, f.Scripts.Primary)
	setString(&cfg.PluginScript, f.Scripts.Plugin)
	setString(&cfg.CleanupGlob, f.Cleanup)
	setString(&cfg.BinaryPath, f.Binary)
	setString(&cfg.BaseVersion, f.Version.Base)
	setString(&cfg.VersionFile, f.Version.File)
	setString(&cfg.BuildLog, f.BuildLog)

	if f.Jobs != nil {
		cfg.Jobs = *f.Jobs
	}
	if f.Debug != nil {
		cfg.Debug = *f.Debug
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
