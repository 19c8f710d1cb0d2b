package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Config is the root of a seyuna.json document.
type Config struct {
	License string `json:"license,omitempty"`
	UI      *UI    `json:"ui,omitempty"`
}

// UI holds everything the stylesheet generator consumes.
type UI struct {
	Name        string       `json:"name,omitempty"`
	Slogan      string       `json:"slogan,omitempty"`
	Theme       *Theme       `json:"theme,omitempty"`
	Mode        Mode         `json:"mode"`
	Breakpoints *Breakpoints `json:"breakpoints,omitempty"`
	OutputDir   string       `json:"outputDir,omitempty"`
}

// Theme is the set of named hues plus the two colour schemes.
type Theme struct {
	Colors Hues     `json:"colors,omitempty"`
	Light  *Palette `json:"light,omitempty"`
	Dark   *Palette `json:"dark,omitempty"`
}

// Palette describes the tonal parameters of one colour scheme.
type Palette struct {
	Chroma     float64 `json:"chroma"`
	Lightness  float64 `json:"lightness"`
	Background *Color  `json:"background,omitempty"`
	Text       *Color  `json:"text,omitempty"`
}

// Color is an OKLCH triple.
type Color struct {
	Hue       float64 `json:"hue"`
	Chroma    float64 `json:"chroma"`
	Lightness float64 `json:"lightness"`
}

// Mode selects which colour scheme the page starts in.
type Mode string

// Supported modes.
const (
	ModeSystem Mode = "system"
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeSystem, ModeLight, ModeDark:
		return true
	}
	return false
}

// UnmarshalJSON accepts the lowercase mode names and nothing else.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("mode must be a string: %w", err)
	}
	mode := Mode(strings.ToLower(s))
	if !mode.Valid() {
		return fmt.Errorf("unknown mode %q (expected system, light or dark)", s)
	}
	*m = mode
	return nil
}

// Clone returns a deep copy so callers can never alias another config's maps or pointers.
func (c Config) Clone() Config {
	out := Config{License: c.License}
	if c.UI != nil {
		ui := c.UI.clone()
		out.UI = &ui
	}
	return out
}

func (u *UI) clone() UI {
	out := *u
	if u.Theme != nil {
		t := u.Theme.clone()
		out.Theme = &t
	}
	if u.Breakpoints != nil {
		b := u.Breakpoints.clone()
		out.Breakpoints = &b
	}
	return out
}

func (t *Theme) clone() Theme {
	return Theme{
		Colors: t.Colors.Clone(),
		Light:  t.Light.clone(),
		Dark:   t.Dark.clone(),
	}
}

func (p *Palette) clone() *Palette {
	if p == nil {
		return nil
	}
	out := *p
	out.Background = p.Background.clone()
	out.Text = p.Text.clone()
	return &out
}

func (c *Color) clone() *Color {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
