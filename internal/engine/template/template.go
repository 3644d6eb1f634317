// Package template synthesizes the emitter program that makes the compiler
// produce the CSS of a stylesheet module.
package template

import (
	"regexp"
	"strings"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/zerr"
)

// emitterTemplate keeps the indent it has in this file; Build fills the
// {{...}} placeholders and Unindent strips the leading tab.
const emitterTemplate = `
	port module ` + domain.EmitterModuleName + ` exposing (..)

	import {{module}}
	import Element


	port ` + domain.ResultPort + ` : String -> Cmd msg


	styles =
	    {{styles}}


	main : Program Never () Never
	main =
	    Platform.program
	        { init = ( (), ` + domain.ResultPort + ` styles )
	        , update = \_ _ -> ( (), Cmd.none )
	        , subscriptions = \_ -> Sub.none
	        }
	`

// RenderFunction returns the Element renderer for mode.
// ModeNone has no renderer and returns the empty string.
func RenderFunction(mode domain.Mode) (string, error) {
	switch mode {
	case domain.ModeViewport:
		return "toViewportCss", nil
	case domain.ModeLayout:
		return "toLayoutCss", nil
	case domain.ModeNone:
		return "", nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidMode, "cannot select renderer"), domain.MetaMode, string(mode))
	}
}

// Build returns the program text for req.
func Build(req domain.CompileRequest) (string, error) {
	render, err := RenderFunction(req.Mode)
	if err != nil {
		return "", err
	}

	value := req.Module + "." + req.Export
	styles := "Element." + render + " " + value
	if render == "" {
		styles = value + ".css"
	}

	text := strings.NewReplacer(
		"{{module}}", req.Module,
		"{{styles}}", styles,
	).Replace(emitterTemplate)

	return Unindent(text), nil
}

var indentPattern = regexp.MustCompile(`^(\s*)\S`)

// Unindent takes the leading whitespace of the first non-blank line as the
// indent and removes it from the start of every line that begins with it.
// When that line is not indented the text is returned unchanged, which makes
// Unindent(Unindent(s)) == Unindent(s).
func Unindent(text string) string {
	lines := strings.Split(text, "\n")

	indent := ""
	for _, line := range lines {
		if m := indentPattern.FindStringSubmatch(line); m != nil {
			indent = m[1]
			break
		}
	}
	if indent == "" {
		return text
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.Join(lines, "\n")
}
