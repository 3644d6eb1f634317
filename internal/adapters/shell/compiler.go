package shell

import (
	"context"
	"fmt"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler invokes the configured compiler executable.
type Compiler struct {
	runner   *Runner
	settings domain.Settings
}

// NewCompiler creates a Compiler using settings.Compiler and settings.ProjectDir.
func NewCompiler(runner *Runner, settings domain.Settings) *Compiler {
	return &Compiler{runner: runner, settings: settings}
}

// Compile runs `<compiler> <source> --yes --output=<output>` in the project directory.
// The compiler's stdout is logged at info level and its stderr at error level.
func (c *Compiler) Compile(ctx context.Context, sourcePath, outputPath string) error {
	argv := splitCommand(c.settings.Compiler)
	if len(argv) == 0 {
		return zerr.Wrap(domain.ErrInvalidSettings, "empty compiler command")
	}
	argv = append(argv, sourcePath, "--yes", "--output="+outputPath)

	cmd, err := c.runner.command(ctx, c.settings.ProjectDir, argv)
	if err != nil {
		return err
	}

	stdout, stderr := c.runner.stdoutLog(), c.runner.stderrLog()
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	_ = stdout.Close()
	_ = stderr.Close()

	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zerr.Wrap(ctxErr, "compilation interrupted")
		}
		code := exitCode(runErr)
		return zerr.With(
			zerr.Wrap(domain.ErrCompileFailed, fmt.Sprintf("%s exited with code %d", argv[0], code)),
			domain.MetaExitCode, code,
		)
	}

	return nil
}
