// Package app implements the application layer for hpwbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/tabwriter"

	"go.trai.ch/hpwbuild/internal/core/domain"
	"go.trai.ch/hpwbuild/internal/core/ports"
	"go.trai.ch/hpwbuild/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator *orchestrator.Orchestrator
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, orch *orchestrator.Orchestrator, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		orchestrator: orch,
		logger:       log,
	}
}

// RunOptions carries the command line overrides of a run. Zero values leave
// the configured value untouched.
type RunOptions struct {
	// ConfigPath is an explicitly requested config file. When empty the
	// default file is used if it exists.
	ConfigPath string
	Root       string
	Release    bool
	Jobs       int
	NoLaunch   bool
	BuildLog   string
}

// Run executes the full pipeline: version stamp, both builds, cleanup and,
// unless disabled, the game launch.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	_, err = a.orchestrator.Run(ctx, cfg, domain.PlanOptions{SkipLaunch: opts.NoLaunch})
	return err
}

// Clean removes the stale plugin archives without building anything.
func (a *App) Clean(ctx context.Context, opts RunOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	_, err = a.orchestrator.Execute(ctx, cfg, domain.Plan{domain.CleanupStep(cfg)})
	return err
}

// Plan writes the steps a run would take to w without executing any of them.
func (a *App) Plan(_ context.Context, opts RunOptions, w io.Writer) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "STEP\tACTION")
	for _, step := range domain.NewPlan(cfg, domain.PlanOptions{SkipLaunch: opts.NoLaunch}) {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", step.Name, step.Describe())
	}
	return tw.Flush()
}

// ConfigureLogging switches the logger between pretty and JSON output.
func (a *App) ConfigureLogging(jsonMode bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(jsonMode)
	}
}

// loadConfig resolves the effective configuration:
// defaults < config file < command line flags.
func (a *App) loadConfig(opts RunOptions) (domain.BuildConfig, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}

	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	} else if _, err := os.Stat(a.resolve(root, path)); errors.Is(err, fs.ErrNotExist) {
		return domain.BuildConfig{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg, err := a.configLoader.Load(a.resolve(root, path))
	if err != nil {
		return domain.BuildConfig{}, zerr.Wrap(err, "failed to load configuration")
	}

	cfg.Root = root
	if opts.Release {
		cfg.Debug = false
	}
	if opts.Jobs != 0 {
		cfg.Jobs = opts.Jobs
	}
	if opts.BuildLog != "" {
		cfg.BuildLog = opts.BuildLog
	}

	if err := cfg.Validate(); err != nil {
		return domain.BuildConfig{}, err
	}
	return cfg, nil
}

func (a *App) resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
