package stamp

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hpwbuild/internal/adapters/logger"
	"go.trai.ch/hpwbuild/internal/core/ports"
)

// NodeID is the unique identifier for the version writer Graft node.
const NodeID graft.ID = "adapter.stamp"

func init() {
	graft.Register(graft.Node[ports.VersionWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionWriter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
