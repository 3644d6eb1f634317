// Package output builds termenv outputs that honour NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/stylegen/internal/ui/style"
	"golang.org/x/term"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output on w (stderr when nil) using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// IsRedirected reports whether w is a file that is not attached to a terminal.
func IsRedirected(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !term.IsTerminal(int(f.Fd()))
}

// Success writes msg in the success colour followed by a newline.
// Redirected output is written without colour.
func Success(w io.Writer, msg string) error {
	if IsRedirected(w) {
		_, err := io.WriteString(w, msg+"\n")
		return err
	}

	out := New(w)
	_, err := out.WriteString(out.String(msg).Foreground(termenv.RGBColor(string(style.Green))).String() + "\n")
	return err
}
