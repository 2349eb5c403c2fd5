package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hpwbuild/internal/core/ports"
)

// NodeID is the unique identifier for the remover Graft node.
const NodeID graft.ID = "adapter.fs.remover"

func init() {
	graft.Register(graft.Node[ports.Remover]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Remover, error) {
			return NewRemover(), nil
		},
	})
}
