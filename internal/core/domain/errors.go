package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingOptions is returned when a compile request lacks one or more required fields.
	ErrMissingOptions = zerr.New("missing options")

	// ErrInvalidMode is returned when the output mode is neither "layout" nor "viewport".
	ErrInvalidMode = zerr.New("invalid mode, must be either 'layout' or 'viewport'")

	// ErrTempDirFailed is returned when the scoped temporary directory cannot be created.
	ErrTempDirFailed = zerr.New("failed to create temporary directory")

	// ErrTempDirCleanupFailed is returned when the scoped temporary directory cannot be removed.
	ErrTempDirCleanupFailed = zerr.New("failed to remove temporary directory")

	// ErrFileWriteFailed is returned when a file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrFileReadFailed is returned when a file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrCompileFailed is returned when the external compiler exits with a non-zero code.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrRunnerFailed is returned when the compiled worker cannot be started.
	ErrRunnerFailed = zerr.New("failed to run compiled worker")

	// ErrNoResult is returned when the compiled worker exits without emitting a result.
	ErrNoResult = zerr.New("worker exited without emitting a result")

	// ErrExtractTimeout is returned when the compiled worker does not emit within the timeout.
	ErrExtractTimeout = zerr.New("timed out waiting for worker result")

	// ErrGenerationFailed is returned by the application when the CSS could not be generated.
	ErrGenerationFailed = zerr.New("css generation failed")

	// ErrRuleIndexOutOfRange is returned when a rule index does not address the stylesheet.
	ErrRuleIndexOutOfRange = zerr.New("rule index out of range")

	// ErrInvalidRule is returned when a rule text is not exactly one well-formed CSS rule.
	ErrInvalidRule = zerr.New("invalid css rule")

	// ErrInvalidStylesheet is returned when a stylesheet text cannot be split into rules.
	ErrInvalidStylesheet = zerr.New("invalid stylesheet")

	// ErrMissingArguments is returned when a command is invoked without its positional arguments.
	ErrMissingArguments = zerr.New("missing required arguments")

	// ErrInvalidSettings is returned when an environment or flag setting cannot be parsed.
	ErrInvalidSettings = zerr.New("invalid settings")
)

// Metadata key names attached to errors with zerr.With.
const (
	MetaMissing  = "missing"
	MetaMode     = "mode"
	MetaExitCode = "exit_code"
	MetaPath     = "path"
	MetaIndex    = "index"
	MetaLength   = "length"
)

// Lookup walks the error tree and returns the first metadata value stored under key.
func Lookup(err error, key string) (any, bool) {
	if err == nil {
		return nil, false
	}

	if z, ok := err.(*zerr.Error); ok {
		if v, ok := z.Metadata()[key]; ok {
			return v, true
		}
	}

	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if v, ok := Lookup(e, key); ok {
				return v, true
			}
		}
	case interface{ Unwrap() error }:
		return Lookup(x.Unwrap(), key)
	}

	return nil, false
}

// ExitCode returns the subprocess exit code recorded on err, or -1 if none was recorded.
func ExitCode(err error) int {
	if v, ok := Lookup(err, MetaExitCode); ok {
		if code, ok := v.(int); ok {
			return code
		}
	}
	return -1
}

// MissingOptions returns the names of the required fields recorded on err.
func MissingOptions(err error) []string {
	if v, ok := Lookup(err, MetaMissing); ok {
		if names, ok := v.([]string); ok {
			return names
		}
	}
	return nil
}
