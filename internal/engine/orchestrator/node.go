package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hpwbuild/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hpwbuild/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hpwbuild/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hpwbuild/internal/adapters/stamp"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hpwbuild/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hpwbuild/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			stamp.NodeID,
			shell.NodeID,
			fs.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			stamper, err := graft.Dep[ports.VersionWriter](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			remover, err := graft.Dep[ports.Remover](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(stamper, executor, remover, tracer, log), nil
		},
	})
}
