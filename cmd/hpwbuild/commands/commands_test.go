package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hpwbuild/cmd/hpwbuild/commands"
	"go.trai.ch/hpwbuild/internal/app"
	"go.trai.ch/hpwbuild/internal/build"
	"go.trai.ch/hpwbuild/internal/core/domain"
)

type mockApp struct {
	calls    []string
	opts     app.RunOptions
	jsonMode bool
	err      error
}

func (m *mockApp) Run(_ context.Context, opts app.RunOptions) error {
	m.calls = append(m.calls, "run")
	m.opts = opts
	return m.err
}

func (m *mockApp) Clean(_ context.Context, opts app.RunOptions) error {
	m.calls = append(m.calls, "clean")
	m.opts = opts
	return m.err
}

func (m *mockApp) Plan(_ context.Context, opts app.RunOptions, w io.Writer) error {
	m.calls = append(m.calls, "plan")
	m.opts = opts
	_, _ = io.WriteString(w, "STEP  ACTION\n")
	return m.err
}

func (m *mockApp) ConfigureLogging(jsonMode bool) {
	m.jsonMode = jsonMode
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	cli.SetArgs(args)

	var out bytes.Buffer
	cli.SetOutput(&out, new(bytes.Buffer))
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Run(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "run")
		require.NoError(t, err)

		assert.Equal(t, []string{"run"}, m.calls)
		assert.Equal(t, app.RunOptions{Root: "."}, m.opts)
		assert.False(t, m.jsonMode)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m,
			"run", "--release", "-j", "12", "--no-launch", "--build-log", "build/build.log",
			"-C", "/src/hpw", "-c", "ci.yaml", "--json",
		)
		require.NoError(t, err)

		assert.Equal(t, app.RunOptions{
			ConfigPath: "ci.yaml",
			Root:       "/src/hpw",
			Release:    true,
			Jobs:       12,
			NoLaunch:   true,
			BuildLog:   "build/build.log",
		}, m.opts)
		assert.True(t, m.jsonMode)
	})

	t.Run("dry run prints the plan", func(t *testing.T) {
		m := &mockApp{}
		out, err := execute(t, m, "run", "--dry-run")
		require.NoError(t, err)

		assert.Equal(t, []string{"plan"}, m.calls)
		assert.Equal(t, "STEP  ACTION\n", out)
	})

	t.Run("rejects zero jobs", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "run", "-j", "0")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidJobs.Error())
		assert.Empty(t, m.calls)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "run", "game")
		require.Error(t, err)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "run")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Build(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "build", "--release")
	require.NoError(t, err)

	assert.Equal(t, []string{"run"}, m.calls)
	assert.True(t, m.opts.NoLaunch)
	assert.True(t, m.opts.Release)
}

func TestCommands_Clean(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "clean", "-C", "/src/hpw")
	require.NoError(t, err)

	assert.Equal(t, []string{"clean"}, m.calls)
	assert.Equal(t, "/src/hpw", m.opts.Root)
}

func TestCommands_Plan(t *testing.T) {
	m := &mockApp{}
	out, err := execute(t, m, "plan", "--no-launch", "-j", "2")
	require.NoError(t, err)

	assert.Equal(t, []string{"plan"}, m.calls)
	assert.True(t, m.opts.NoLaunch)
	assert.Equal(t, 2, m.opts.Jobs)
	assert.Equal(t, "STEP  ACTION\n", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Equal(t,
		"hpwbuild version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		out,
	)
}
