package shell

import "testing"

// Exported for white-box tests.
var (
	ExitCode     = exitCode
	SplitCommand = splitCommand
)

// NewLogWriter exposes logWriter for tests.
func NewLogWriter(r *Runner, stderr bool) interface {
	Write(p []byte) (int, error)
	Close() error
} {
	if stderr {
		return r.stderrLog()
	}
	return r.stdoutLog()
}

// SetMaxLineSize lowers the stdout line limit for the duration of t.
func SetMaxLineSize(t *testing.T, n int) {
	t.Helper()

	old := maxLineSize
	maxLineSize = n
	t.Cleanup(func() { maxLineSize = old })
}
