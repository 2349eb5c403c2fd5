// Package shell runs build and launch commands as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/hpwbuild/internal/core/domain"
	"go.trai.ch/hpwbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Executor implements ports.Executor using os/exec. Without a log path the
// child shares the parent's stdio. With one, output is read through a PTY and
// copied to both stdout and the log file.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor bound to the process's standard streams.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams returns a copy of e that uses the given streams instead of the
// process's own.
func (e *Executor) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{logger: e.logger, stdin: stdin, stdout: stdout, stderr: stderr}
}

// Execute runs cmd and waits for it to exit.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) error {
	if cmd.Name == "" {
		return domain.ErrEmptyCommand
	}

	executable, err := resolveExecutable(cmd)
	if err != nil {
		return err
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // argv comes from the build config
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir

	if cmd.LogPath == "" {
		c.Stdin = e.stdin
		c.Stdout = e.stdout
		c.Stderr = e.stderr
		if err := c.Run(); err != nil {
			return commandError(err)
		}
		return nil
	}

	logFile, err := openBuildLog(cmd.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	if err := e.runTee(c, logFile); err != nil {
		e.logger.Warn("build output saved to " + cmd.LogPath)
		return commandError(err)
	}
	return nil
}

// runTee starts c under a PTY so tools keep their colored output, and copies
// everything it prints to stdout and to logFile.
func (e *Executor) runTee(c *exec.Cmd, logFile io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	if f, ok := e.stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_ = pty.InheritSize(f, ptmx)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master fails with EIO once the child has exited.
		_, _ = io.Copy(io.MultiWriter(e.stdout, logFile), ptmx)
	}()

	err = c.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

func openBuildLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildLogOpenFailed.Error()), "path", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //nolint:gosec // path is user configured
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildLogOpenFailed.Error()), "path", path)
	}
	return f, nil
}

// commandError attaches the exit code of a finished child. The *exec.ExitError
// stays in the chain so callers can recover the code with errors.As.
func commandError(err error) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "exit_code", exitCode)
}

// resolveExecutable finds the file to run. Names with a path separator are
// taken relative to the command's directory, bare names are looked up in PATH.
func resolveExecutable(cmd domain.Command) (string, error) {
	if !strings.ContainsRune(cmd.Name, os.PathSeparator) && !strings.Contains(cmd.Name, "/") {
		path, err := exec.LookPath(cmd.Name)
		if err != nil {
			return "", notFound(err, cmd.Name)
		}
		return path, nil
	}

	path := cmd.Name
	if !filepath.IsAbs(path) && cmd.Dir != "" {
		path = filepath.Join(cmd.Dir, path)
	}
	if err := findExecutable(path); err != nil {
		return "", notFound(err, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", notFound(err, path)
	}
	return abs, nil
}

func notFound(err error, name string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrExecutableNotFound.Error()), "executable", name)
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
