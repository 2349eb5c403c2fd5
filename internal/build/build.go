// Package build holds build-time information.
package build

// Build information. Populated at build-time via -ldflags.
var (
	// Version is the application version.
	// It defaults to "dev" and can be overwritten by linker flags.
	Version = "dev"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// Date is the date the binary was built.
	Date = "unknown"
)
