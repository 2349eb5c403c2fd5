// Package domain holds the build driver's core types.
package domain

import (
	"path/filepath"
	"strconv"

	"go.trai.ch/zerr"
)

// Compiled-in defaults. They match the layout of the game tree and must stay
// bit-exact for existing SConscript files to keep working.
const (
	DefaultTool          = "scons"
	DefaultPrimaryScript = "src/game/SConscript"
	DefaultPluginScript  = "src/plugin/graphic-effect/cxx/SConscript"
	DefaultJobs          = 4
	DefaultCleanupGlob   = "build/plugin/effect/*.a"
	DefaultBinaryPath    = "build/HPW"
	DefaultVersionFile   = "src/game/util/version.cpp"
	DefaultBaseVersion   = "0.1"
	DefaultConfigFile    = "hpwbuild.yaml"
)

// BuildConfig describes a single run of the build driver.
// It is treated as immutable once a run has started.
type BuildConfig struct {
	// Root is the project directory all relative paths are resolved against.
	Root string
	// Tool is the external build tool executable.
	Tool string
	// PrimaryScript is the build description of the game binary.
	PrimaryScript string
	// PluginScript is the build description of the graphic-effect plugin.
	PluginScript string
	// Debug selects debug (true) or release (false) compilation settings.
	Debug bool
	// Jobs is the parallelism level handed to the build tool.
	Jobs int
	// CleanupGlob matches the stale archives removed after the builds.
	CleanupGlob string
	// BinaryPath is the built game executable launched at the end of a run.
	BinaryPath string
	// VersionFile is the source file the version stamp is written to.
	VersionFile string
	// BaseVersion is the human-readable prefix of the version stamp.
	BaseVersion string
	// BuildLog, when set, receives a copy of the build tool output.
	BuildLog string
}

// DefaultBuildConfig returns the configuration of a debug build of the game.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Root:          ".",
		Tool:          DefaultTool,
		PrimaryScript: DefaultPrimaryScript,
		PluginScript:  DefaultPluginScript,
		Debug:         true,
		Jobs:          DefaultJobs,
		CleanupGlob:   DefaultCleanupGlob,
		BinaryPath:    DefaultBinaryPath,
		VersionFile:   DefaultVersionFile,
		BaseVersion:   DefaultBaseVersion,
	}
}

// Validate reports the first problem found in the configuration.
func (c BuildConfig) Validate() error {
	if c.Jobs < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidJobs, ErrInvalidConfig.Error()), "jobs", c.Jobs)
	}

	required := []struct {
		field string
		value string
	}{
		{"tool", c.Tool},
		{"primary_script", c.PrimaryScript},
		{"plugin_script", c.PluginScript},
		{"cleanup", c.CleanupGlob},
		{"binary", c.BinaryPath},
		{"version_file", c.VersionFile},
	}
	for _, r := range required {
		if r.value == "" {
			return zerr.With(zerr.Wrap(ErrEmptyPath, ErrInvalidConfig.Error()), "field", r.field)
		}
	}

	if _, err := filepath.Match(c.CleanupGlob, ""); err != nil {
		err = zerr.Wrap(zerr.Wrap(err, ErrInvalidGlob.Error()), ErrInvalidConfig.Error())
		return zerr.With(err, "pattern", c.CleanupGlob)
	}

	return nil
}

// DebugValue renders the debug flag the way the build tool expects it.
func (c BuildConfig) DebugValue() string {
	if c.Debug {
		return "1"
	}
	return "0"
}

// Path resolves p against the project root.
func (c BuildConfig) Path(p string) string {
	if filepath.IsAbs(p) || c.Root == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root, p)
}

// toolFlags returns the flags shared by every build tool invocation of a run.
// Both build commands take their debug and jobs values from this one slice.
func (c BuildConfig) toolFlags() []string {
	return []string{
		"-j" + strconv.Itoa(c.Jobs),
		"-Q", "debug=" + c.DebugValue(),
	}
}
