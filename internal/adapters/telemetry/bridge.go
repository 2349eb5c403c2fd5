package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/hpwbuild/internal/core/ports"
	"go.trai.ch/hpwbuild/internal/ui/style"
)

// LogBridge implements sdktrace.SpanProcessor and reports finished spans
// through the logger, one line per step.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(log ports.Logger) *LogBridge {
	return &LogBridge{logger: log}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	if s.Status().Code == codes.Error {
		b.logger.Warn(fmt.Sprintf("%s failed after %s", s.Name(), elapsed))
		return
	}
	b.logger.Info(fmt.Sprintf("%s %s (%s)", style.Check, s.Name(), elapsed))
}

// Shutdown is called when the SDK shuts down.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush exports all ended spans that have not yet been exported.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}
