package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/seyuna/seyuna/internal/config"
)

// swatchWidth is the number of cells each hue swatch occupies.
const swatchWidth = 2

// Hex converts an OKLCH colour to the nearest sRGB hex string.
func Hex(c config.Color) string {
	return colorful.OkLch(c.Lightness, c.Chroma, c.Hue).Clamped().Hex()
}

// WritePreview renders both palettes: a text sample on the background, then one
// swatch per theme hue at the palette's lightness and chroma.
func WritePreview(w io.Writer, ui config.UI, useColors bool) {
	if ui.Theme == nil {
		fmt.Fprintln(w, "no theme configured")
		return
	}
	fmt.Fprintln(w, RenderStyle(StyleBold, ui.Name, useColors))
	writePalette(w, "light", ui.Theme.Light, ui.Theme.Colors, useColors)
	writePalette(w, "dark", ui.Theme.Dark, ui.Theme.Colors, useColors)
}

func writePalette(w io.Writer, name string, p *config.Palette, hues config.Hues, useColors bool) {
	if p == nil || p.Background == nil || p.Text == nil {
		fmt.Fprintf(w, "%-6s (incomplete palette)\n", name)
		return
	}
	bg := Hex(*p.Background)
	fg := Hex(*p.Text)

	sample := " Aa " + name + " "
	if useColors {
		sample = lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(fg)).
			Render(sample)
	}
	fmt.Fprintf(w, "%-6s %s %s\n", name, sample, RenderStyle(StyleGray, fmt.Sprintf("bg %s  text %s", bg, fg), useColors))

	var row strings.Builder
	for _, h := range hues {
		hex := Hex(config.Color{Hue: h.Value, Chroma: p.Chroma, Lightness: p.Lightness})
		if useColors {
			row.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchWidth)))
		} else {
			fmt.Fprintf(&row, "%s=%s ", h.Name, hex)
		}
	}
	fmt.Fprintf(w, "%-6s %s\n", "", strings.TrimRight(row.String(), " "))
}
