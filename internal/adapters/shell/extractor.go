package shell

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

//go:embed harness.js
var harnessSource string

// maxLineSize bounds a single stdout line, which carries the whole stylesheet.
var maxLineSize = 64 << 20

var _ ports.Extractor = (*Extractor)(nil)

// portMessage is one line printed by the harness.
type portMessage struct {
	Port  string `json:"port"`
	Value string `json:"value"`
}

// Extractor runs the compiled worker through the configured runner and takes the
// first value sent on the result port.
type Extractor struct {
	runner   *Runner
	settings domain.Settings
}

// NewExtractor creates an Extractor using settings.Runner and settings.ExtractTimeout.
func NewExtractor(runner *Runner, settings domain.Settings) *Extractor {
	return &Extractor{runner: runner, settings: settings}
}

// Extract writes the harness next to workerPath, runs it and returns the first
// result. The runner is stopped as soon as the result arrives. A runner that
// exits without emitting yields domain.ErrNoResult. With a zero ExtractTimeout
// Extract waits until the runner exits or ctx is done.
func (e *Extractor) Extract(ctx context.Context, workerPath string) (string, error) {
	harnessPath := domain.HarnessPath(workerPath)
	//nolint:gosec // harness lives in the scoped temp dir
	if err := os.WriteFile(harnessPath, []byte(harnessSource), domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), domain.MetaPath, harnessPath)
	}

	waitCtx := ctx
	if e.settings.ExtractTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, e.settings.ExtractTimeout)
		defer cancel()
	}
	runCtx, stop := context.WithCancel(waitCtx)
	defer stop()

	argv := e.command(harnessPath, workerPath)
	cmd, err := e.runner.command(runCtx, e.settings.ProjectDir, argv)
	if err != nil {
		return "", err
	}

	pr, pw := io.Pipe()
	stderr := e.runner.stderrLog()
	cmd.Stdout = pw
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrRunnerFailed, err.Error()), domain.MetaExitCode, -1)
	}

	result := make(chan string, 1)
	var waitErr error

	var g errgroup.Group
	g.Go(func() error {
		waitErr = cmd.Wait()
		_ = stderr.Close()
		return pw.Close()
	})
	g.Go(func() error {
		defer pr.Close() //nolint:errcheck // unblocks the copy goroutine once we stop reading
		return e.readResult(pr, result, stop)
	})
	readErr := g.Wait()

	select {
	case css := <-result:
		return css, nil
	default:
	}

	if err := ctx.Err(); err != nil {
		return "", zerr.Wrap(err, "extraction interrupted")
	}
	if errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
		return "", zerr.With(
			zerr.Wrap(domain.ErrExtractTimeout, fmt.Sprintf("no result after %s", e.settings.ExtractTimeout.Round(time.Millisecond))),
			domain.MetaPath, workerPath,
		)
	}
	if readErr != nil {
		return "", readErr
	}

	code := exitCode(waitErr)
	if waitErr == nil {
		code = 0
	}
	return "", zerr.With(
		zerr.Wrap(domain.ErrNoResult, fmt.Sprintf("%s exited with code %d", argv[0], code)),
		domain.MetaExitCode, code,
	)
}

// readResult scans r for port messages. The first result is sent on result and
// stop is called to end the runner. Lines that are not port messages are logged.
func (e *Extractor) readResult(r io.Reader, result chan<- string, stop context.CancelFunc) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()

		var msg portMessage
		if err := json.Unmarshal(line, &msg); err != nil || msg.Port == "" {
			if text := strings.TrimSpace(string(line)); text != "" {
				e.runner.logger.Info(text)
			}
			continue
		}
		if msg.Port != domain.ResultPort {
			continue
		}

		result <- msg.Value
		stop()
		return nil
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		stop()
		return zerr.Wrap(domain.ErrRunnerFailed, err.Error())
	}
	return nil
}

// command expands the {harness} and {worker} placeholders of the runner line.
func (e *Extractor) command(harnessPath, workerPath string) []string {
	fields := splitCommand(e.settings.Runner)
	argv := make([]string, len(fields))
	for i, f := range fields {
		f = strings.ReplaceAll(f, domain.HarnessPlaceholder, harnessPath)
		argv[i] = strings.ReplaceAll(f, domain.WorkerPlaceholder, workerPath)
	}
	return argv
}
