package config

// Merge combines a possibly partial override with a base configuration, field by field.
// It never fails: anything override leaves out falls back to base. Neither input is
// modified and the result shares no memory with them.
//
// Mode is the exception to the fallback rule: override's mode always wins. Only call
// Merge through Resolve (base = Default()) so that a present UI section always carries a
// decoded, validated mode.
func Merge(base, override Config) Config {
	base = base.Clone()
	override = override.Clone()

	out := Config{License: base.License}
	if override.License != "" {
		out.License = override.License
	}

	switch {
	case base.UI != nil && override.UI != nil:
		ui := mergeUI(*base.UI, *override.UI)
		out.UI = &ui
	case override.UI != nil:
		out.UI = override.UI
	default:
		out.UI = base.UI
	}
	return out
}

// Resolve merges user configuration over the built-in defaults exactly once.
func Resolve(user Config) Config {
	return Merge(Default(), user)
}

func mergeUI(base, override UI) UI {
	out := UI{
		Name:        base.Name,
		Slogan:      base.Slogan,
		Mode:        override.Mode,
		Breakpoints: base.Breakpoints,
		OutputDir:   base.OutputDir,
	}
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Slogan != "" {
		out.Slogan = override.Slogan
	}
	if override.Breakpoints != nil {
		out.Breakpoints = override.Breakpoints
	}
	if override.OutputDir != "" {
		out.OutputDir = override.OutputDir
	}

	switch {
	case base.Theme != nil && override.Theme != nil:
		t := mergeTheme(*base.Theme, *override.Theme)
		out.Theme = &t
	case override.Theme != nil:
		out.Theme = override.Theme
	default:
		out.Theme = base.Theme
	}
	return out
}

func mergeTheme(base, override Theme) Theme {
	colors := base.Colors
	if colors == nil && override.Colors != nil {
		colors = Hues{}
	}
	for _, h := range override.Colors {
		colors.Set(h.Name, h.Value)
	}
	return Theme{
		Colors: colors,
		Light:  mergePalette(base.Light, override.Light),
		Dark:   mergePalette(base.Dark, override.Dark),
	}
}

func mergePalette(base, override *Palette) *Palette {
	if override == nil {
		return base
	}
	if base == nil {
		return override
	}
	return &Palette{
		Chroma:     override.Chroma,
		Lightness:  override.Lightness,
		Background: mergeColor(base.Background, override.Background),
		Text:       mergeColor(base.Text, override.Text),
	}
}

// mergeColor takes every channel from override when it is present at all.
func mergeColor(base, override *Color) *Color {
	if override == nil {
		return base
	}
	return override
}
