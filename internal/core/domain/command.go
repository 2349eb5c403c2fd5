package domain

import "strings"

// Command is a structured subprocess invocation. Arguments are passed to the
// process as-is and never go through a shell.
type Command struct {
	// Name is the executable, either a bare name resolved through PATH or a
	// path relative to Dir.
	Name string
	// Args are the arguments after the executable name.
	Args []string
	// Dir is the working directory of the process.
	Dir string
	// LogPath, when set, receives a copy of the process output.
	LogPath string
}

// Argv returns the full argument vector including the executable name.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// String renders the command for logs and plan output.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
