package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfig is returned when a build configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid build configuration")

	// ErrInvalidJobs is returned when the parallelism level is lower than one.
	ErrInvalidJobs = zerr.New("jobs must be at least 1")

	// ErrEmptyPath is returned when a required path field of the configuration is empty.
	ErrEmptyPath = zerr.New("path must not be empty")

	// ErrInvalidGlob is returned when the cleanup pattern is malformed.
	ErrInvalidGlob = zerr.New("invalid cleanup pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrVersionWriteFailed is returned when the version stamp cannot be written.
	ErrVersionWriteFailed = zerr.New("failed to write version stamp")

	// ErrBuildFailed is returned when a build tool invocation fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrCleanupFailed is returned when a stale artifact cannot be removed.
	ErrCleanupFailed = zerr.New("failed to remove stale artifacts")

	// ErrLaunchFailed is returned when the built binary cannot be run or exits non-zero.
	ErrLaunchFailed = zerr.New("failed to launch binary")

	// ErrExecutableNotFound is returned when a command's executable does not exist.
	ErrExecutableNotFound = zerr.New("executable not found")

	// ErrCommandFailed is returned when a command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a command has no executable name.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrBuildLogOpenFailed is returned when the build log file cannot be opened.
	ErrBuildLogOpenFailed = zerr.New("failed to open build log")

	// ErrUnknownStep is returned when a plan contains a step kind the orchestrator cannot run.
	ErrUnknownStep = zerr.New("unknown step kind")
)
