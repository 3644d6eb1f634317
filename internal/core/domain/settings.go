package domain

import "time"

// Settings holds the toolchain configuration shared by the compiler and the extractor.
type Settings struct {
	// ProjectDir is the directory the compiler runs in.
	ProjectDir string

	// Compiler is the compiler executable.
	Compiler string

	// Runner is the runner command line, with {harness} and {worker} placeholders.
	Runner string

	// ExtractTimeout bounds the wait for the worker result. Zero waits forever.
	ExtractTimeout time.Duration
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ProjectDir: DefaultProjectDir,
		Compiler:   DefaultCompiler,
		Runner:     DefaultRunner,
	}
}
