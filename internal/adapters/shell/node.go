package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylegen/internal/adapters/logger"
	"go.trai.ch/stylegen/internal/core/ports"
)

// NodeID is the unique identifier for the subprocess runner Graft node.
const NodeID graft.ID = "adapter.shell.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
