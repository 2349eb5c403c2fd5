package domain

import (
	"strings"
	"time"
)

// UnknownCommit is used when the project is not a git checkout or has no commits yet.
const UnknownCommit = "unknown"

// ShortCommitLength is the number of hex digits kept from a commit hash.
const ShortCommitLength = 7

// VersionStamp identifies a build of the game.
type VersionStamp struct {
	Base   string
	Commit string
	Dirty  bool
	Debug  bool
	Date   time.Time
}

// ShortCommit truncates a full commit hash to ShortCommitLength characters.
func ShortCommit(hash string) string {
	if hash == "" {
		return UnknownCommit
	}
	if len(hash) > ShortCommitLength {
		return hash[:ShortCommitLength]
	}
	return hash
}

// Flavor returns "debug" or "release".
func (v VersionStamp) Flavor() string {
	if v.Debug {
		return "debug"
	}
	return "release"
}

// String renders the stamp as shown in the game's main menu, e.g.
// "0.1-a1b2c3d-dirty (debug, 2026-10-18)".
func (v VersionStamp) String() string {
	var b strings.Builder
	b.WriteString(v.Base)
	b.WriteString("-")
	if v.Commit == "" {
		b.WriteString(UnknownCommit)
	} else {
		b.WriteString(v.Commit)
	}
	if v.Dirty {
		b.WriteString("-dirty")
	}
	b.WriteString(" (")
	b.WriteString(v.Flavor())
	b.WriteString(", ")
	b.WriteString(v.Date.Format(time.DateOnly))
	b.WriteString(")")
	return b.String()
}
