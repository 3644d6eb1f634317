// Package app implements the application layer for stylegen.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/stylegen/internal/adapters/fs"
	"go.trai.ch/stylegen/internal/adapters/sheet"
	"go.trai.ch/stylegen/internal/adapters/shell"
	"go.trai.ch/stylegen/internal/adapters/telemetry"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/stylegen/internal/engine/pipeline"
	"go.trai.ch/stylegen/internal/engine/ruletable"
	"go.trai.ch/stylegen/internal/ui/output"
	"go.trai.ch/stylegen/internal/ui/style"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name used for --trace spans.
const TracerName = "stylegen"

// App represents the main application logic.
type App struct {
	logger    ports.Logger
	loader    ports.SettingsLoader
	workspace ports.Workspace
	hasher    *fs.Hasher
	runner    *shell.Runner
	tracer    ports.Tracer
	stdout    io.Writer
	traceOut  io.Writer
}

// New creates a new App instance.
func New(
	log ports.Logger,
	loader ports.SettingsLoader,
	workspace ports.Workspace,
	hasher *fs.Hasher,
	runner *shell.Runner,
	tracer ports.Tracer,
) *App {
	return &App{
		logger:    log,
		loader:    loader,
		workspace: workspace,
		hasher:    hasher,
		runner:    runner,
		tracer:    tracer,
		stdout:    os.Stdout,
		traceOut:  os.Stderr,
	}
}

// WithOutput sets where the success message is printed.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithTraceOutput sets where --trace spans are written.
func (a *App) WithTraceOutput(w io.Writer) *App {
	a.traceOut = w
	return a
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// Output is the CSS file to write. Empty means domain.DefaultOutputFile.
	Output string
	// Settings configures the compiler and the runner.
	Settings domain.Settings
	// Check loads the generated CSS into a rule table before writing it.
	Check bool
	// Force writes the output even when its content is unchanged.
	Force bool
	// Trace exports pipeline spans to the trace output.
	Trace bool
}

// Settings returns the environment-resolved settings that flags start from.
func (a *App) Settings() (domain.Settings, error) {
	return a.loader.Load()
}

// SetJSONLogs switches the logger between pretty and JSON output when it supports both.
func (a *App) SetJSONLogs(enabled bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}

// Generate compiles req to CSS and writes it to opts.Output.
func (a *App) Generate(ctx context.Context, req domain.CompileRequest, opts GenerateOptions) error {
	path := opts.Output
	if path == "" {
		path = domain.DefaultOutputFile
	}

	tracer := a.tracer
	if opts.Trace {
		otelTracer, err := telemetry.NewOTelTracer(TracerName, a.traceOut)
		if err != nil {
			return zerr.Wrap(err, "failed to start tracing")
		}
		defer func() {
			_ = otelTracer.Shutdown(context.WithoutCancel(ctx))
		}()
		tracer = otelTracer
	}

	gen := pipeline.New(
		a.workspace,
		shell.NewCompiler(a.runner, opts.Settings),
		shell.NewExtractor(a.runner, opts.Settings),
		tracer,
	)

	css, err := gen.GenerateCSS(ctx, req)
	if err != nil {
		return errors.Join(domain.ErrGenerationFailed, err)
	}

	if opts.Check {
		count, err := checkRules(css)
		if err != nil {
			return errors.Join(domain.ErrGenerationFailed, err)
		}
		a.logger.Info(fmt.Sprintf("generated stylesheet holds %d rules", count))
	}

	written, err := fs.NewOutputWriter(a.hasher, opts.Force).WriteIfChanged(ctx, path, css)
	if err != nil {
		return errors.Join(domain.ErrGenerationFailed, err)
	}
	if !written {
		a.logger.Info(path + " is up to date")
	}

	return output.Success(a.stdout, fmt.Sprintf("%s Success! styles were written to %s", style.SuccessPrefix, path))
}

// checkRules loads every top-level rule of css into a rule table in order
// and clears it again, failing on the first rule the sheet rejects.
func checkRules(css string) (int, error) {
	rules, err := sheet.Split(css)
	if err != nil {
		return 0, err
	}

	table := ruletable.New(sheet.New())
	for i, rule := range rules {
		if _, err := table.Insert(rule, i); err != nil {
			return 0, err
		}
	}

	count := table.Len()
	if _, err := table.Clear(); err != nil {
		return 0, err
	}
	return count, nil
}
