package config

import (
	"fmt"
	"strings"
)

// Breakpoint names a viewport width threshold.
type Breakpoint int

// The closed set of breakpoints, smallest first.
const (
	SM Breakpoint = iota
	MD
	LG
	XL
	XL2
	XL3
	XL4
)

// AllBreakpoints lists every breakpoint in ascending order.
var AllBreakpoints = []Breakpoint{SM, MD, LG, XL, XL2, XL3, XL4}

var breakpointNames = [...]string{
	SM:  "sm",
	MD:  "md",
	LG:  "lg",
	XL:  "xl",
	XL2: "2xl",
	XL3: "3xl",
	XL4: "4xl",
}

func (b Breakpoint) String() string {
	if b < SM || b > XL4 {
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// ParseBreakpoint maps "sm" … "4xl" (case-insensitive, optional leading underscore) to a Breakpoint.
func ParseBreakpoint(s string) (Breakpoint, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "_"))
	for i, n := range breakpointNames {
		if n == name {
			return Breakpoint(i), nil
		}
	}
	return 0, fmt.Errorf("unknown breakpoint %q", s)
}

// MarshalText makes Breakpoint usable as a JSON object key.
func (b Breakpoint) MarshalText() ([]byte, error) {
	if b < SM || b > XL4 {
		return nil, fmt.Errorf("invalid breakpoint %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (b *Breakpoint) UnmarshalText(text []byte) error {
	bp, err := ParseBreakpoint(string(text))
	if err != nil {
		return err
	}
	*b = bp
	return nil
}

// Breakpoints are the viewport widths keyed by name plus the container-query widths.
type Breakpoints struct {
	Viewport  map[Breakpoint]float64 `json:"viewport"`
	Container []float64              `json:"container,omitempty"`
}

func (b *Breakpoints) clone() Breakpoints {
	out := Breakpoints{}
	if b.Viewport != nil {
		out.Viewport = make(map[Breakpoint]float64, len(b.Viewport))
		for k, v := range b.Viewport {
			out.Viewport[k] = v
		}
	}
	if b.Container != nil {
		out.Container = append([]float64(nil), b.Container...)
	}
	return out
}
