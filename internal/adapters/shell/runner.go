// Package shell runs the external compiler and the compiled worker as subprocesses.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Wait keeps copying output after the process was killed.
const waitDelay = 2 * time.Second

// Runner builds subprocess commands whose output is forwarded to the logger.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// command prepares argv to run in dir. Cancelling ctx kills the process.
func (r *Runner) command(ctx context.Context, dir string, argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, zerr.Wrap(domain.ErrInvalidSettings, "empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command is configured by the user
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.WaitDelay = waitDelay
	return cmd, nil
}

func (r *Runner) stdoutLog() *logWriter {
	return &logWriter{logger: r.logger, level: levelInfo}
}

func (r *Runner) stderrLog() *logWriter {
	return &logWriter{logger: r.logger, level: levelError}
}

// exitCode extracts the process exit code from err, or -1 if the process never ran.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// splitCommand splits a configured command line on whitespace.
func splitCommand(line string) []string {
	return strings.Fields(line)
}

type logLevel int

const (
	levelInfo logLevel = iota
	levelError
)

// logWriter forwards complete lines to the logger and buffers partial ones.
type logWriter struct {
	logger ports.Logger
	level  logLevel
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line that had no newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}

	if w.level == levelInfo {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}
