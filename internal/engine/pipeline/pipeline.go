// Package pipeline drives one compile-and-extract cycle: it synthesizes the
// emitter program, compiles it in a scoped temporary directory and returns
// the CSS the compiled worker emits.
package pipeline

import (
	"context"
	"strings"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/stylegen/internal/engine/template"
	"go.trai.ch/zerr"
)

var _ ports.Generator = (*Pipeline)(nil)

// Pipeline implements ports.Generator.
type Pipeline struct {
	workspace ports.Workspace
	compiler  ports.Compiler
	extractor ports.Extractor
	tracer    ports.Tracer
}

// New creates a Pipeline from its collaborators.
func New(ws ports.Workspace, compiler ports.Compiler, extractor ports.Extractor, tracer ports.Tracer) *Pipeline {
	return &Pipeline{
		workspace: ws,
		compiler:  compiler,
		extractor: extractor,
		tracer:    tracer,
	}
}

// GenerateCSS validates req, then writes, compiles and runs the emitter
// program inside a fresh temporary directory. The directory is gone by the
// time GenerateCSS returns.
func (p *Pipeline) GenerateCSS(ctx context.Context, req domain.CompileRequest) (css string, err error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.generate")
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	span.SetAttribute("stylesheet.module", req.Module)
	span.SetAttribute("stylesheet.function", req.Export)
	span.SetAttribute("mode", req.Mode.String())

	var missing []string
	domain.AssertKeysPresent(req, domain.RequiredKeys, func(names []string) {
		missing = names
	})
	if len(missing) > 0 {
		return "", zerr.With(
			zerr.Wrap(domain.ErrMissingOptions, "required: "+strings.Join(missing, ", ")),
			domain.MetaMissing, missing,
		)
	}

	program, err := template.Build(req)
	if err != nil {
		return "", err
	}

	err = p.workspace.WithTempDir(ctx, func(dir string) error {
		source := domain.EmitterSourcePath(dir)
		worker := domain.WorkerPath(dir)

		if err := p.step(ctx, "pipeline.write", func(ctx context.Context) error {
			return p.workspace.WriteFile(ctx, source, program)
		}); err != nil {
			return err
		}

		if err := p.step(ctx, "pipeline.compile", func(ctx context.Context) error {
			return p.compiler.Compile(ctx, source, worker)
		}); err != nil {
			return err
		}

		return p.step(ctx, "pipeline.extract", func(ctx context.Context) error {
			out, err := p.extractor.Extract(ctx, worker)
			css = out
			return err
		})
	})
	if err != nil {
		return "", err
	}
	return css, nil
}

func (p *Pipeline) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, name)
	defer span.End()

	err := fn(ctx)
	span.RecordError(err)
	return err
}
