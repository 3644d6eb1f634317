package domain

import "path/filepath"

const (
	// EmitterModuleName is the name of the synthesized port module.
	EmitterModuleName = "StyleElementsEmitter"

	// EmitterSourceFile is the file name of the synthesized program inside the temp dir.
	EmitterSourceFile = EmitterModuleName + ".elm"

	// WorkerFile is the file name of the compiled worker inside the temp dir.
	WorkerFile = "style-elements-emitter.js"

	// HarnessFile is the file name of the runner harness written next to the worker.
	HarnessFile = "stylegen-harness.js"

	// ResultPort is the name of the single outbound port the program emits on.
	ResultPort = "result"

	// TempDirPrefix is the prefix of every scoped temporary directory.
	TempDirPrefix = "stylegen-"

	// DefaultOutputFile is the default path of the generated stylesheet.
	DefaultOutputFile = "out.css"

	// DefaultProjectDir is the default directory the compiler runs in.
	DefaultProjectDir = "."

	// DefaultCompiler is the default compiler executable.
	DefaultCompiler = "elm-make"

	// DefaultRunner is the default runner command line.
	DefaultRunner = "node {harness} {worker}"

	// HarnessPlaceholder is replaced with the harness path in the runner command line.
	HarnessPlaceholder = "{harness}"

	// WorkerPlaceholder is replaced with the worker path in the runner command line.
	WorkerPlaceholder = "{worker}"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// EmitterSourcePath returns the path of the synthesized program inside dir.
func EmitterSourcePath(dir string) string {
	return filepath.Join(dir, EmitterSourceFile)
}

// WorkerPath returns the path of the compiled worker inside dir.
func WorkerPath(dir string) string {
	return filepath.Join(dir, WorkerFile)
}

// HarnessPath returns the path of the runner harness that sits next to the worker.
func HarnessPath(workerPath string) string {
	return filepath.Join(filepath.Dir(workerPath), HarnessFile)
}
