package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seyuna/seyuna/internal/config"
)

// Variables renders the theme as custom-property blocks.
//
// Block order is fixed: :root hues, light, dark, the system-preference mirror of both,
// then the html base rule. Identical input always yields identical bytes.
func Variables(ui config.UI) string {
	var b strings.Builder
	theme := ui.Theme
	if theme == nil {
		theme = &config.Theme{}
	}

	b.WriteString(":root {\n")
	for _, h := range theme.Colors {
		fmt.Fprintf(&b, "  --%s: %s;\n", h.Name, formatNumber(h.Value))
	}
	b.WriteString("}\n")

	writePaletteBlock(&b, `[data-mode="light"]`, theme.Light, "")
	writePaletteBlock(&b, `[data-mode="dark"]`, theme.Dark, "")

	b.WriteString("@media (prefers-color-scheme: light) {\n")
	writePaletteBlock(&b, `[data-mode="system"]`, theme.Light, "  ")
	b.WriteString("}\n")
	b.WriteString("@media (prefers-color-scheme: dark) {\n")
	writePaletteBlock(&b, `[data-mode="system"]`, theme.Dark, "  ")
	b.WriteString("}\n")

	b.WriteString("html {\n")
	b.WriteString("  color: var(--text);\n")
	b.WriteString("  background-color: var(--background);\n")
	b.WriteString("}\n")

	return b.String()
}

func writePaletteBlock(b *strings.Builder, selector string, p *config.Palette, indent string) {
	if p == nil {
		p = &config.Palette{}
	}
	fmt.Fprintf(b, "%s%s {\n", indent, selector)
	fmt.Fprintf(b, "%s  --background: %s;\n", indent, oklch(p.Background))
	fmt.Fprintf(b, "%s  --text: %s;\n", indent, oklch(p.Text))
	fmt.Fprintf(b, "%s  --chroma: %s;\n", indent, formatNumber(p.Chroma))
	fmt.Fprintf(b, "%s  --lightness: %s;\n", indent, formatNumber(p.Lightness))
	fmt.Fprintf(b, "%s}\n", indent)
}

// oklch formats a colour as oklch(<lightness> <chroma> <hue>).
func oklch(c *config.Color) string {
	if c == nil {
		c = &config.Color{}
	}
	return fmt.Sprintf("oklch(%s %s %s)",
		formatNumber(c.Lightness), formatNumber(c.Chroma), formatNumber(c.Hue))
}

// formatNumber prints the shortest representation that round-trips.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
