package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// Compiler compiles the synthesized program into a runnable worker.
type Compiler interface {
	// Compile compiles sourcePath and writes the worker to outputPath.
	// A non-zero compiler exit is reported as domain.ErrCompileFailed.
	Compile(ctx context.Context, sourcePath, outputPath string) error
}

// Extractor runs a compiled worker and returns the first value it emits.
type Extractor interface {
	// Extract runs the worker at workerPath and returns the CSS it emits on the result port.
	Extract(ctx context.Context, workerPath string) (string, error)
}
