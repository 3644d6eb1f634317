package ports

import (
	"context"

	"go.trai.ch/stylegen/internal/core/domain"
)

// Generator turns a compile request into CSS text.
type Generator interface {
	GenerateCSS(ctx context.Context, req domain.CompileRequest) (string, error)
}
