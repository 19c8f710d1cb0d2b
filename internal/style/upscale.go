package style

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/seyuna/seyuna/internal/config"
)

// Errors returned by Upscale.
var (
	ErrMissingBreakpoint = errors.New("missing breakpoint")
	ErrInvalidNumber     = errors.New("breakpoint value is not a finite number")
	ErrInvalidBreakpoint = errors.New("invalid breakpoint range")
)

// The upscale range is fixed; the breakpoints only set the slope.
const (
	upscaleFrom = 1920
	upscaleTo   = 3840 // inclusive bound; the last emitted width is 3820
	upscaleStep = 100
)

// Upscale emits one html font-size media query per 100px from 1920px to 3840px.
// The font size grows linearly from 1rem at the rate implied by scaling the start
// breakpoint's width to the end breakpoint's width.
func Upscale(start, end config.Breakpoint, viewport map[config.Breakpoint]float64) (string, error) {
	startPx, err := breakpointValue(start, viewport)
	if err != nil {
		return "", err
	}
	endPx, err := breakpointValue(end, viewport)
	if err != nil {
		return "", err
	}
	// The slope reduces to 100/startPx, so only equal widths are undefined.
	if endPx == startPx {
		return "", fmt.Errorf("%w: %s and %s are both %gpx",
			ErrInvalidBreakpoint, start, end, startPx)
	}

	const base = 1.0
	scalingFactor := endPx/startPx - base
	incrementFactor := (endPx - startPx) / 100.0
	incrementPerStep := scalingFactor / incrementFactor

	var b strings.Builder
	current := base
	for i := upscaleFrom; i <= upscaleTo; i += upscaleStep {
		current += incrementPerStep
		fmt.Fprintf(&b, "@media (min-width: %dpx) {\n  html {\n    font-size: %.4frem;\n  }\n}\n", i, current)
	}
	return b.String(), nil
}

func breakpointValue(bp config.Breakpoint, viewport map[config.Breakpoint]float64) (float64, error) {
	v, ok := viewport[bp]
	if !ok {
		return 0, fmt.Errorf("%w: %s not set in ui.breakpoints.viewport", ErrMissingBreakpoint, bp)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s = %v", ErrInvalidNumber, bp, v)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidBreakpoint, bp, v)
	}
	return v, nil
}
