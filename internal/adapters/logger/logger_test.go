package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hpwbuild/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escapes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("▶ build:game: scons -j4 -Q debug=1 -Q script=src/game/SConscript")
	lg.Warn("build:plugin failed after 2s")

	g := goldie.New(t)
	g.Assert(t, "info_warn", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: field jobz not found in type config.schema"),
			goldenName: "error_multiline",
		},
		{
			name: "build failure chain",
			err: func() error {
				e := zerr.Wrap(errors.New("exit status 2"), "command failed")
				e = zerr.With(e, "exit_code", 2)
				e = zerr.Wrap(e, "build failed")
				e = zerr.With(e, "step", "build:game")
				return zerr.With(e, "command", "scons -j4 -Q debug=1 -Q script=src/game/SConscript")
			}(),
			goldenName: "error_build_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	inner := errors.New("no such file or directory")
	outer := fmt.Errorf("open build/HPW: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: open build/HPW: no such file or directory\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("version 0.1-a1b2c3d (debug, 2026-10-18)")
	lg.Error(zerr.New("build failed"))

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"msg":"version 0.1-a1b2c3d (debug, 2026-10-18)"`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"operation failed"`)

	// Switching back keeps the output destination.
	buf.Reset()
	lg.SetJSON(false)
	lg.Info("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg, _ := newTestLogger(t)
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
