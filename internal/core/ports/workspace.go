package ports

import "context"

// Workspace provisions scoped temporary directories and writes files.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// WithTempDir creates a fresh directory, calls fn with its path and removes
	// the directory recursively once fn returns, whether fn succeeded or not.
	WithTempDir(ctx context.Context, fn func(dir string) error) error

	// WriteFile writes content to path, replacing any existing file.
	WriteFile(ctx context.Context, path, content string) error
}

// OutputWriter writes generated artifacts to their final location.
type OutputWriter interface {
	// WriteIfChanged writes content to path unless the file already holds the
	// same content. It reports whether the file was written.
	WriteIfChanged(ctx context.Context, path, content string) (bool, error)
}
