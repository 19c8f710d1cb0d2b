package seyuna

import (
	"errors"

	"github.com/seyuna/seyuna/internal/config"
	"github.com/seyuna/seyuna/internal/style"
	"github.com/seyuna/seyuna/internal/watch"
)

// Pipeline errors. Every error returned by this package wraps one of these;
// match with errors.Is.
var (
	ErrConfigNotFound   = config.ErrConfigNotFound
	ErrConfigParse      = config.ErrConfigParse
	ErrMissingUISection = config.ErrMissingUISection

	ErrMissingBreakpoint = style.ErrMissingBreakpoint
	ErrInvalidNumber     = style.ErrInvalidNumber
	ErrInvalidBreakpoint = style.ErrInvalidBreakpoint

	ErrParse  = style.ErrParse
	ErrMinify = style.ErrMinify

	ErrWatch = watch.ErrWatch

	// ErrIO reports a failure to create the output directory or write the stylesheet.
	ErrIO = errors.New("i/o error")
)

// ParseError carries the length and a leading snippet of CSS that failed to parse.
type ParseError = style.ParseError
