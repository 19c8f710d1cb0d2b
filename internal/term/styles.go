// Package term renders seyuna's terminal output: styled status lines, gradient
// headings and palette previews.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleBold is used for headings.
	StyleBold = lipgloss.NewStyle().Bold(true)
	// StyleRed is used for failures.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for non-fatal warnings such as notifier errors.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGray is used for paths and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Gradient endpoints of the brand text styles.
var (
	primaryFrom   = colorful.Color{R: 0, G: 1, B: 135.0 / 255}
	primaryTo     = colorful.Color{R: 96.0 / 255, G: 239.0 / 255, B: 1}
	secondaryFrom = colorful.Color{R: 1, G: 15.0 / 255, B: 123.0 / 255}
	secondaryTo   = colorful.Color{R: 248.0 / 255, G: 155.0 / 255, B: 41.0 / 255}
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// Gradient colors each rune of text along a blend from one color to another.
func Gradient(text string, from, to colorful.Color, useColors bool) string {
	if !useColors || text == "" {
		return text
	}
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(len(runes))
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// Primary renders text in the green-to-cyan brand gradient.
func Primary(text string, useColors bool) string {
	return Gradient(text, primaryFrom, primaryTo, useColors)
}

// Secondary renders text in the pink-to-orange brand gradient.
func Secondary(text string, useColors bool) string {
	return Gradient(text, secondaryFrom, secondaryTo, useColors)
}

// ShouldUseColors determines if colors should be enabled for w.
func ShouldUseColors(w io.Writer, force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
