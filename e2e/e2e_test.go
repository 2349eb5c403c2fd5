//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var hpwbuildBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "hpwbuild-e2e-*")
	if err != nil {
		panic(err)
	}

	hpwbuildBinary = filepath.Join(tmpDir, "hpwbuild")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", hpwbuildBinary, "./cmd/hpwbuild")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build hpwbuild binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// setupE2E puts hpwbuild and the fake scons from the script archive on PATH.
func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	binDir := filepath.Dir(hpwbuildBinary)
	fakeBin := filepath.Join(env.WorkDir, "bin")
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", fakeBin+string(os.PathListSeparator)+binDir+string(os.PathListSeparator)+currentPath)

	if scons := filepath.Join(fakeBin, "scons"); fileExists(scons) {
		if err := os.Chmod(scons, 0o755); err != nil { //nolint:gosec // fake build tool must be executable
			return err
		}
	}

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
