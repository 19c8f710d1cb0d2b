package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/seyuna/seyuna/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRenderStyleWithoutColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
	assert.Equal(t, "plain", Primary("plain", false))
}

func TestGradientKeepsText(t *testing.T) {
	out := Secondary("Error:", true)
	for _, r := range "Error:" {
		assert.Contains(t, out, string(r))
	}
}

func TestShouldUseColors(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	assert.True(t, ShouldUseColors(&buf, true))
	assert.False(t, ShouldUseColors(&buf, false))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(&buf, false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColors(&buf, false))
}

func TestReporter(t *testing.T) {
	tests := []struct {
		name string
		opts ReporterOptions
		want []string
		not  []string
	}{
		{
			name: "default",
			opts: ReporterOptions{},
			want: []string{"• Compiling CSS...", "✔ done", "Warning: flaky"},
			not:  []string{"saving"},
		},
		{
			name: "verbose",
			opts: ReporterOptions{Verbose: true},
			want: []string{"• Compiling CSS...", "  saving styles/seyuna-global.css", "✔ done"},
		},
		{
			name: "quiet",
			opts: ReporterOptions{Quiet: true, Verbose: true},
			not:  []string{"Compiling", "saving", "done", "flaky"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FORCE_COLOR", "")
			var buf bytes.Buffer
			r := NewReporter(&buf, tt.opts)
			r.Start("Compiling CSS")
			r.Progress("saving %s", "styles/seyuna-global.css")
			r.Done("done")
			r.Warn(errors.New("flaky"))

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			for _, n := range tt.not {
				assert.NotContains(t, buf.String(), n)
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "Error: boom", ErrorText(errors.New("boom"), false))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ffffff", Hex(config.Color{Lightness: 1}))
	assert.Equal(t, "#000000", Hex(config.Color{}))
}

func TestWritePreviewPlain(t *testing.T) {
	var buf bytes.Buffer
	WritePreview(&buf, *config.Default().UI, false)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Seyuna\n"))
	assert.Contains(t, out, "light   Aa light  bg #ffffff  text #000000")
	assert.Contains(t, out, "dark    Aa dark  bg #000000  text #ffffff")
	assert.Contains(t, out, "alpha=#")
	assert.Contains(t, out, "omega=#")
}

func TestJSONTree(t *testing.T) {
	out, err := JSONTree("seyuna.json", []byte(`{"license":"MIT","ui":{"mode":"dark","container":[320,384]}}`))
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "seyuna.json", lines[0])
	assert.Contains(t, lines[1], `license: "MIT"`)
	assert.Contains(t, lines[2], "ui")
	assert.Contains(t, out, `mode: "dark"`)
	assert.Contains(t, out, "[0]: 320")
	assert.Contains(t, out, "[1]: 384")
	assert.Less(t, strings.Index(out, "license"), strings.Index(out, "mode"))
}

func TestJSONTreeInvalid(t *testing.T) {
	_, err := JSONTree("seyuna.json", []byte(`{"ui":`))
	assert.Error(t, err)
}
