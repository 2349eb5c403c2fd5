package domain

// StepKind identifies what a pipeline step does.
type StepKind int

const (
	// StepVersion writes the version stamp.
	StepVersion StepKind = iota
	// StepBuild runs the external build tool.
	StepBuild
	// StepCleanup removes stale artifacts matching a pattern.
	StepCleanup
	// StepLaunch runs the built binary.
	StepLaunch
)

// String returns the string representation of the StepKind.
func (k StepKind) String() string {
	switch k {
	case StepVersion:
		return "version"
	case StepBuild:
		return "build"
	case StepCleanup:
		return "cleanup"
	case StepLaunch:
		return "launch"
	default:
		return "unknown"
	}
}

// Step names used in logs, telemetry and error metadata.
const (
	StepNameVersion     = "version"
	StepNameBuildGame   = "build:game"
	StepNameBuildPlugin = "build:plugin"
	StepNameClean       = "clean"
	StepNameLaunch      = "launch"
)

// Step is a single entry of a pipeline.
type Step struct {
	Kind StepKind
	Name string
	// Command is set for build and launch steps.
	Command Command
	// Pattern is set for cleanup steps.
	Pattern string
	// Path is set for version steps and names the stamp file.
	Path string
}

// Describe renders what the step will do, e.g. for dry runs.
func (s Step) Describe() string {
	switch s.Kind {
	case StepVersion:
		return "write " + s.Path
	case StepCleanup:
		return "remove " + s.Pattern
	case StepBuild, StepLaunch:
		return s.Command.String()
	default:
		return s.Name
	}
}

// PlanOptions tweak the pipeline produced by NewPlan.
type PlanOptions struct {
	// SkipLaunch drops the final launch step.
	SkipLaunch bool
}

// Plan is an ordered list of steps. Steps run strictly one after another.
type Plan []Step

// Names returns the step names in execution order.
func (p Plan) Names() []string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Name
	}
	return names
}

// NewPlan returns the full pipeline for cfg: version stamp, game build,
// plugin build, stale archive cleanup and finally the game launch.
func NewPlan(cfg BuildConfig, opts PlanOptions) Plan {
	flags := cfg.toolFlags()

	plan := Plan{
		{
			Kind: StepVersion,
			Name: StepNameVersion,
			Path: cfg.Path(cfg.VersionFile),
		},
		{
			Kind:    StepBuild,
			Name:    StepNameBuildGame,
			Command: buildCommand(cfg, flags, cfg.PrimaryScript),
		},
		{
			Kind:    StepBuild,
			Name:    StepNameBuildPlugin,
			Command: buildCommand(cfg, flags, cfg.PluginScript),
		},
		CleanupStep(cfg),
	}

	if !opts.SkipLaunch {
		plan = append(plan, Step{
			Kind: StepLaunch,
			Name: StepNameLaunch,
			Command: Command{
				Name: cfg.BinaryPath,
				Dir:  cfg.Root,
			},
		})
	}

	return plan
}

// CleanupStep returns the step removing stale plugin archives.
func CleanupStep(cfg BuildConfig) Step {
	return Step{
		Kind:    StepCleanup,
		Name:    StepNameClean,
		Pattern: cfg.Path(cfg.CleanupGlob),
	}
}

func buildCommand(cfg BuildConfig, flags []string, script string) Command {
	args := make([]string, 0, len(flags)+2)
	args = append(args, flags...)
	args = append(args, "-Q", "script="+script)

	cmd := Command{
		Name: cfg.Tool,
		Args: args,
		Dir:  cfg.Root,
	}
	if cfg.BuildLog != "" {
		cmd.LogPath = cfg.Path(cfg.BuildLog)
	}
	return cmd
}
