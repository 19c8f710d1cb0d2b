package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/seyuna/seyuna/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingMinifier struct{ calls int }

func (f *failingMinifier) String(_, _ string) (string, error) {
	f.calls++
	return "", errors.New("unsupported syntax")
}

func defaultFragments(t *testing.T) []string {
	t.Helper()
	ui := *config.Default().UI
	upscale, err := Upscale(config.XL2, config.XL4, ui.Breakpoints.Viewport)
	require.NoError(t, err)
	return []string{Variables(ui), upscale}
}

func findRule(rules []*css.Rule, prelude string) *css.Rule {
	for _, r := range rules {
		if strings.ReplaceAll(r.Prelude, `"`, "") == prelude {
			return r
		}
	}
	return nil
}

func TestAssembleDefault(t *testing.T) {
	sheet, err := Assemble(defaultFragments(t), AssembleOptions{Targets: DefaultTargets})
	require.NoError(t, err)

	assert.NotContains(t, sheet.CSS, "\n")
	assert.Less(t, len(sheet.CSS), sheet.Bytes)

	// :root, light, dark, 2 system media queries, html, 20 upscale media queries
	assert.Equal(t, 26, sheet.Rules)

	parsed, err := parser.Parse(sheet.CSS)
	require.NoError(t, err)

	root := findRule(parsed.Rules, ":root")
	require.NotNil(t, root)
	assert.Len(t, root.Declarations, 24)
	require.NotNil(t, findRule(parsed.Rules, "[data-mode=light]"))
	require.NotNil(t, findRule(parsed.Rules, "[data-mode=dark]"))
}

func TestAssembleLowersOKLCHForOldChrome(t *testing.T) {
	sheet, err := Assemble(defaultFragments(t), AssembleOptions{Targets: Targets{Chrome: 80}})
	require.NoError(t, err)
	assert.NotContains(t, sheet.CSS, "oklch(")

	modern, err := Assemble(defaultFragments(t), AssembleOptions{Targets: Targets{Chrome: 120}})
	require.NoError(t, err)
	assert.Contains(t, modern.CSS, "oklch(")

	evergreen, err := Assemble(defaultFragments(t), AssembleOptions{})
	require.NoError(t, err)
	assert.Equal(t, modern.CSS, evergreen.CSS)
}

func TestAssembleOrderFollowsFragments(t *testing.T) {
	sheet, err := Assemble([]string{"b{color:red}", "a{color:blue}"}, AssembleOptions{})
	require.NoError(t, err)
	assert.Less(t, strings.Index(sheet.CSS, "b{"), strings.Index(sheet.CSS, "a{"))
}

func TestAssembleParseError(t *testing.T) {
	long := strings.Repeat("a{color:red}", 40) + "}"

	sheet, err := Assemble([]string{long}, AssembleOptions{})
	require.Error(t, err)
	assert.Nil(t, sheet)
	require.ErrorIs(t, err, ErrParse)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, len(long), perr.Length)
	assert.Len(t, perr.Snippet, 200)
	assert.True(t, strings.HasPrefix(long, perr.Snippet))
}

func TestAssembleUnclosedBlock(t *testing.T) {
	sheet, err := Assemble([]string{":root {", "--a: 1;"}, AssembleOptions{})
	require.ErrorIs(t, err, ErrParse)
	assert.Nil(t, sheet)
}

func TestAssembleMinifyFailureReturnsNothing(t *testing.T) {
	m := &failingMinifier{}
	sheet, err := Assemble(defaultFragments(t), AssembleOptions{Minifier: m})
	require.ErrorIs(t, err, ErrMinify)
	assert.Nil(t, sheet)
	assert.Equal(t, 1, m.calls)
}

func TestLowerOKLCH(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"white", "a{--c:oklch(1 0 0)}", "a{--c:#ffffff}"},
		{"black", "a{--c:oklch(0 0 0)}", "a{--c:#000000}"},
		{"percent lightness", "a{--c:oklch(100% 0 0)}", "a{--c:#ffffff}"},
		{"hue in degrees", "a{--c:oklch(0 0 90deg)}", "a{--c:#000000}"},
		{"uppercase name", "a{--c:OKLCH(1 0 0)}", "a{--c:#ffffff}"},
		{"alpha kept", "a{--c:oklch(1 0 0 / .5)}", "a{--c:oklch(1 0 0 / .5)}"},
		{"var kept", "a{--c:oklch(var(--l) 0 0)}", "a{--c:oklch(var(--l) 0 0)}"},
		{"no color", "a{color:red}", "a{color:red}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lowerOKLCH(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
