package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Mode selects how the exported stylesheet is rendered to CSS.
type Mode string

const (
	// ModeNone emits the exported value's own css field without a render call.
	ModeNone Mode = ""

	// ModeLayout renders the stylesheet with the layout renderer.
	ModeLayout Mode = "layout"

	// ModeViewport renders the stylesheet with the viewport renderer.
	ModeViewport Mode = "viewport"
)

// ParseMode converts a user supplied mode name into a Mode.
// "none" and the empty string both select ModeNone.
func ParseMode(s string) (Mode, error) {
	switch strings.TrimSpace(s) {
	case "", "none":
		return ModeNone, nil
	case string(ModeLayout):
		return ModeLayout, nil
	case string(ModeViewport):
		return ModeViewport, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidMode, "unknown mode"), MetaMode, s)
	}
}

func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	return string(m)
}

// CompileRequest describes a single stylesheet to generate.
type CompileRequest struct {
	// Module is the name of the source module exposing the stylesheet.
	Module string `json:"stylesheetModule" validate:"required"`

	// Export is the name of the stylesheet value exported by Module.
	Export string `json:"stylesheetFunction" validate:"required"`

	// Mode selects the renderer.
	Mode Mode `json:"mode,omitempty"`
}

// RequiredKeys lists the CompileRequest fields that must be non-empty.
var RequiredKeys = []string{"Module", "Export"}
