// Package orchestrator runs the build pipeline: version stamp, game build,
// plugin build, stale archive cleanup and game launch.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/hpwbuild/internal/core/domain"
	"go.trai.ch/hpwbuild/internal/core/ports"
	"go.trai.ch/hpwbuild/internal/ui/style"
	"go.trai.ch/zerr"
)

// StepStatus represents the status of a pipeline step.
type StepStatus string

const (
	// StatusPending indicates the step has not started yet.
	StatusPending StepStatus = "Pending"
	// StatusCompleted indicates the step finished successfully.
	StatusCompleted StepStatus = "Completed"
	// StatusFailed indicates the step failed and stopped the pipeline.
	StatusFailed StepStatus = "Failed"
)

// StepResult records the outcome of one step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Duration time.Duration
}

// Orchestrator executes a plan strictly in order. Each step blocks until its
// collaborator returns, and the first failure stops the run.
type Orchestrator struct {
	stamper  ports.VersionWriter
	executor ports.Executor
	remover  ports.Remover
	tracer   ports.Tracer
	logger   ports.Logger
	now      func() time.Time
}

// New creates a new Orchestrator with the given dependencies.
func New(
	stamper ports.VersionWriter,
	executor ports.Executor,
	remover ports.Remover,
	tracer ports.Tracer,
	log ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		stamper:  stamper,
		executor: executor,
		remover:  remover,
		tracer:   tracer,
		logger:   log,
		now:      time.Now,
	}
}

// Run validates cfg and executes the full pipeline for it.
func (o *Orchestrator) Run(ctx context.Context, cfg domain.BuildConfig, opts domain.PlanOptions) ([]StepResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return o.Execute(ctx, cfg, domain.NewPlan(cfg, opts))
}

// Execute runs the steps of plan one after another. It returns the results of
// every step that was attempted; steps after a failure are reported as pending.
func (o *Orchestrator) Execute(ctx context.Context, cfg domain.BuildConfig, plan domain.Plan) ([]StepResult, error) {
	ctx, span := o.tracer.Start(ctx, "pipeline")
	defer span.End()

	o.tracer.EmitPlan(ctx, plan.Names())
	span.SetAttribute("hpwbuild.debug", cfg.Debug)
	span.SetAttribute("hpwbuild.jobs", cfg.Jobs)

	results := make([]StepResult, len(plan))
	for i, step := range plan {
		results[i] = StepResult{Name: step.Name, Status: StatusPending}
	}

	for i, step := range plan {
		start := o.now()
		err := o.runStep(ctx, cfg, step)
		results[i].Duration = o.now().Sub(start)

		if err != nil {
			results[i].Status = StatusFailed
			span.RecordError(err)
			return results, err
		}
		results[i].Status = StatusCompleted
	}

	return results, nil
}

func (o *Orchestrator) runStep(ctx context.Context, cfg domain.BuildConfig, step domain.Step) error {
	ctx, span := o.tracer.Start(ctx, step.Name)
	defer span.End()

	span.SetAttribute("hpwbuild.step", step.Name)
	span.SetAttribute("hpwbuild.kind", step.Kind.String())

	o.logger.Info(fmt.Sprintf("%s %s: %s", style.Arrow, step.Name, step.Describe()))

	var err error
	switch step.Kind {
	case domain.StepVersion:
		err = o.stampVersion(ctx, cfg, step)
	case domain.StepBuild:
		span.SetAttribute("hpwbuild.command", step.Command.String())
		err = o.runCommand(ctx, span, step, domain.ErrBuildFailed)
	case domain.StepCleanup:
		span.SetAttribute("hpwbuild.pattern", step.Pattern)
		err = o.cleanup(step)
	case domain.StepLaunch:
		span.SetAttribute("hpwbuild.command", step.Command.String())
		err = o.runCommand(ctx, span, step, domain.ErrLaunchFailed)
	default:
		err = zerr.With(domain.ErrUnknownStep, "step", step.Name)
	}

	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (o *Orchestrator) stampVersion(ctx context.Context, cfg domain.BuildConfig, step domain.Step) error {
	stamp, err := o.stamper.WriteVersion(ctx, cfg)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrVersionWriteFailed.Error())
		err = zerr.With(err, "step", step.Name)
		return zerr.With(err, "path", step.Path)
	}
	o.logger.Info("version " + stamp.String())
	return nil
}

func (o *Orchestrator) runCommand(ctx context.Context, span ports.Span, step domain.Step, failure error) error {
	if err := o.executor.Execute(ctx, step.Command); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			span.SetAttribute("hpwbuild.exit_code", exitErr.ExitCode())
		}
		err = zerr.Wrap(err, failure.Error())
		err = zerr.With(err, "step", step.Name)
		return zerr.With(err, "command", step.Command.String())
	}
	return nil
}

func (o *Orchestrator) cleanup(step domain.Step) error {
	removed, err := o.remover.RemoveGlob(step.Pattern)
	if err != nil {
		return zerr.With(err, "step", step.Name)
	}

	if len(removed) == 0 {
		o.logger.Info("no stale artifacts matched " + step.Pattern)
		return nil
	}
	o.logger.Info(fmt.Sprintf("removed %d stale artifact(s): %s", len(removed), strings.Join(removed, ", ")))
	return nil
}
