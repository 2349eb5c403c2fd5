package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/hpwbuild/internal/adapters/logger"
	"go.trai.ch/hpwbuild/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer used for pipeline spans.
const InstrumentationName = "hpwbuild"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(log)))
			return NewOTelTracer(tp.Tracer(InstrumentationName)), nil
		},
	})
}
