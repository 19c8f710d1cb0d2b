package config

// defaultConfig is built once and never handed out directly; Default returns copies.
var defaultConfig = Config{
	UI: &UI{
		Name:   "Seyuna",
		Slogan: "Another cool Seyuna app.",
		Theme: &Theme{
			Colors: Hues{
				{"alpha", 0},
				{"beta", 15},
				{"gamma", 30},
				{"delta", 45},
				{"epsilon", 60},
				{"zeta", 75},
				{"eta", 90},
				{"theta", 105},
				{"iota", 120},
				{"kappa", 135},
				{"lambda", 150},
				{"mu", 165},
				{"nu", 180},
				{"xi", 195},
				{"omicron", 210},
				{"pi", 225},
				{"rho", 240},
				{"sigma", 255},
				{"tau", 270},
				{"upsilon", 285},
				{"phi", 300},
				{"chi", 315},
				{"psi", 330},
				{"omega", 345},
			},
			Light: &Palette{
				Chroma:     0.70,
				Lightness:  0.9,
				Background: &Color{Hue: 0, Chroma: 0, Lightness: 1},
				Text:       &Color{Hue: 0, Chroma: 0, Lightness: 0},
			},
			Dark: &Palette{
				Chroma:     0.70,
				Lightness:  0.9,
				Background: &Color{Hue: 0, Chroma: 0, Lightness: 0},
				Text:       &Color{Hue: 0, Chroma: 0, Lightness: 1},
			},
		},
		Mode: ModeSystem,
		Breakpoints: &Breakpoints{
			Viewport: map[Breakpoint]float64{
				SM:  640,
				MD:  768,
				LG:  1024,
				XL:  1280,
				XL2: 1536,
				XL3: 1728,
				XL4: 1920,
			},
			Container: []float64{320, 384, 448, 512, 576, 672, 768, 896, 1024, 1152, 1280},
		},
		OutputDir: "styles",
	},
}

// Default returns a fresh deep copy of the built-in configuration.
func Default() Config {
	return defaultConfig.Clone()
}
