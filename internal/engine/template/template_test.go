package template_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/engine/template"
)

func TestBuild_Golden(t *testing.T) {
	tests := []struct {
		name       string
		req        domain.CompileRequest
		goldenName string
	}{
		{
			name:       "layout",
			req:        domain.CompileRequest{Module: "Demo", Export: "stylesheet", Mode: domain.ModeLayout},
			goldenName: "program_layout",
		},
		{
			name:       "viewport",
			req:        domain.CompileRequest{Module: "Styles", Export: "main", Mode: domain.ModeViewport},
			goldenName: "program_viewport",
		},
		{
			name:       "no mode",
			req:        domain.CompileRequest{Module: "Demo", Export: "stylesheet"},
			goldenName: "program_none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := template.Build(tt.req)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(program))
		})
	}
}

func TestBuild_SelectsRenderer(t *testing.T) {
	program, err := template.Build(domain.CompileRequest{Module: "Styles", Export: "main", Mode: domain.ModeViewport})
	require.NoError(t, err)

	assert.Contains(t, program, "toViewportCss")
	assert.NotContains(t, program, "toLayoutCss")
	assert.Contains(t, program, "import Styles\n")
	assert.Contains(t, program, "port result : String -> Cmd msg")
}

func TestBuild_InvalidMode(t *testing.T) {
	_, err := template.Build(domain.CompileRequest{Module: "Demo", Export: "stylesheet", Mode: "print"})

	require.ErrorIs(t, err, domain.ErrInvalidMode)
	mode, ok := domain.Lookup(err, domain.MetaMode)
	require.True(t, ok)
	assert.Equal(t, "print", mode)
}

func TestRenderFunction(t *testing.T) {
	tests := []struct {
		mode    domain.Mode
		want    string
		wantErr bool
	}{
		{mode: domain.ModeLayout, want: "toLayoutCss"},
		{mode: domain.ModeViewport, want: "toViewportCss"},
		{mode: domain.ModeNone, want: ""},
		{mode: "Layout", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got, err := template.RenderFunction(tt.mode)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnindent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips first indent from every line",
			in:   "\n    a\n      b\n    c\n    ",
			want: "\na\n  b\nc\n",
		},
		{
			name: "prefix removal is per line",
			in:   "\t\tx\n\ty\n\t\tz",
			want: "x\n\ty\nz",
		},
		{
			name: "no indent returns text unchanged",
			in:   "a\n  b\nc",
			want: "a\n  b\nc",
		},
		{
			name: "blank lines are skipped when finding the indent",
			in:   "\n   \n  a\n  b",
			want: "\n \na\nb",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, template.Unindent(tt.in))
		})
	}
}

func TestUnindent_Idempotent(t *testing.T) {
	inputs := []string{
		"\n    a\n      b\n    c\n    ",
		"\t\tx\n\ty\n\t\tz",
		"a\n  b\nc",
		"\n   \n  a\n  b",
		"  only",
	}

	for _, in := range inputs {
		once := template.Unindent(in)
		assert.Equal(t, once, template.Unindent(once), "input %q", in)
	}
}
