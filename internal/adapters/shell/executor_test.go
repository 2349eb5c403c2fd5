package shell_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hpwbuild/internal/adapters/shell"
	"go.trai.ch/hpwbuild/internal/core/domain"
	"go.trai.ch/hpwbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newExecutor(t *testing.T) (*shell.Executor, *bytes.Buffer, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var out bytes.Buffer
	return shell.NewExecutor(log).WithStreams(strings.NewReader(""), &out, &out), &out, log
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)) //nolint:gosec // test script
}

func TestExecute_Success(t *testing.T) {
	executor, out, _ := newExecutor(t)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo scons: done building targets."},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "scons: done building targets.\n", out.String())
}

func TestExecute_ArgsAreNotShellExpanded(t *testing.T) {
	executor, out, _ := newExecutor(t)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", `printf '%s|' "$@"`, "sh", "script=src/game/SConscript", "a b", "$HOME", "*.a"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "script=src/game/SConscript|a b|$HOME|*.a|", out.String())
}

func TestExecute_ForwardsStdin(t *testing.T) {
	ctrl := gomock.NewController(t)
	var out bytes.Buffer
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl)).WithStreams(strings.NewReader("hello\n"), &out, &out)

	err := executor.Execute(context.Background(), domain.Command{Name: "cat", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.String())
}

func TestExecute_RelativeBinaryUsesDir(t *testing.T) {
	root := t.TempDir()
	writeScript(t, filepath.Join(root, "build", "HPW"), `echo "launched from $(pwd)"`)

	executor, out, _ := newExecutor(t)
	err := executor.Execute(context.Background(), domain.Command{Name: "build/HPW", Dir: root})
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "launched from ")
	assert.True(t,
		strings.Contains(out.String(), root) || strings.Contains(out.String(), resolved),
		"child must run inside the project root: %q", out.String(),
	)
}

func TestExecute_NonZeroExit(t *testing.T) {
	executor, _, _ := newExecutor(t)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 3"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCommandFailed.Error())

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExecute_ExecutableNotFound(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, root string)
		cmdName string
		cause   error
	}{
		{
			name:    "missing relative binary",
			setup:   func(*testing.T, string) {},
			cmdName: "build/HPW",
			cause:   os.ErrNotExist,
		},
		{
			name: "binary is not executable",
			setup: func(t *testing.T, root string) {
				t.Helper()
				require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o750))
				require.NoError(t, os.WriteFile(filepath.Join(root, "build", "HPW"), []byte("ELF"), 0o600))
			},
			cmdName: "build/HPW",
			cause:   os.ErrPermission,
		},
		{
			name:    "tool not on PATH",
			setup:   func(*testing.T, string) {},
			cmdName: "scons-definitely-not-installed",
			cause:   exec.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)

			executor, _, _ := newExecutor(t)
			err := executor.Execute(context.Background(), domain.Command{Name: tt.cmdName, Dir: root})
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrExecutableNotFound.Error())
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestExecute_EmptyCommand(t *testing.T) {
	executor, _, _ := newExecutor(t)

	err := executor.Execute(context.Background(), domain.Command{})
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecute_CanceledContext(t *testing.T) {
	executor, _, _ := newExecutor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := executor.Execute(ctx, domain.Command{Name: "sleep", Args: []string{"10"}, Dir: t.TempDir()})
	require.Error(t, err)
}

func TestExecute_TeeToBuildLog(t *testing.T) {
	root := t.TempDir()
	logPath := filepath.Join(root, "build", "logs", "build.log")

	executor, out, _ := newExecutor(t)
	cmd := domain.Command{
		Name:    "sh",
		Args:    []string{"-c", "echo compiling game"},
		Dir:     root,
		LogPath: logPath,
	}

	require.NoError(t, executor.Execute(context.Background(), cmd))
	require.NoError(t, executor.Execute(context.Background(), cmd))

	assert.Contains(t, out.String(), "compiling game")

	data, err := os.ReadFile(logPath) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "compiling game"), "log is appended, not truncated")
}

func TestExecute_TeeFailureKeepsExitCode(t *testing.T) {
	root := t.TempDir()
	logPath := filepath.Join(root, "build.log")

	executor, _, log := newExecutor(t)
	log.EXPECT().Warn("build output saved to " + logPath)

	err := executor.Execute(context.Background(), domain.Command{
		Name:    "sh",
		Args:    []string{"-c", "echo scons: building terminated because of errors.; exit 2"},
		Dir:     root,
		LogPath: logPath,
	})
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())

	data, readErr := os.ReadFile(logPath) //nolint:gosec // test path
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "building terminated")
}

func TestExecute_BuildLogOpenFailure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "build")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	executor, _, _ := newExecutor(t)
	err := executor.Execute(context.Background(), domain.Command{
		Name:    "sh",
		Args:    []string{"-c", "true"},
		Dir:     root,
		LogPath: filepath.Join(blocker, "build.log"),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrBuildLogOpenFailed.Error())
}
