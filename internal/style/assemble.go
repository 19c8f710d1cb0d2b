package style

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
)

// Errors returned by Assemble.
var (
	ErrParse  = errors.New("failed to parse generated CSS")
	ErrMinify = errors.New("failed to minify stylesheet")
)

// snippetLimit bounds the source excerpt carried by a ParseError.
const snippetLimit = 200

// ParseError reports a stylesheet that could not be parsed, with enough of the
// source to diagnose it.
type ParseError struct {
	Length  int    // length of the whole source in bytes
	Snippet string // at most the first 200 characters of the source
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s as a stylesheet (content length %d, first %d chars %q): %v",
		ErrParse, e.Length, snippetLimit, e.Snippet, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Targets is the browser baseline the printed stylesheet must work in.
// A zero Chrome version means "evergreen": no lowering is applied.
type Targets struct {
	Chrome int
}

// DefaultTargets matches the baseline the generated stylesheet has always shipped for.
var DefaultTargets = Targets{Chrome: 80}

// oklchChrome is the first Chrome release with native oklch() support.
const oklchChrome = 111

func (t Targets) supportsOKLCH() bool {
	return t.Chrome == 0 || t.Chrome >= oklchChrome
}

// Minifier is the part of *minify.M that Assemble uses.
type Minifier interface {
	String(mediatype, v string) (string, error)
}

// AssembleOptions configures Assemble.
type AssembleOptions struct {
	Targets Targets
	// Precision is the number of significant digits kept by the minifier (0 keeps all).
	Precision int
	// Minifier overrides the tdewolff CSS minifier.
	Minifier Minifier
}

func (o AssembleOptions) minifier() Minifier {
	if o.Minifier != nil {
		return o.Minifier
	}
	m := minify.New()
	m.Add("text/css", &css.Minifier{Precision: o.Precision})
	return m
}

// Stylesheet is the printed result of Assemble.
type Stylesheet struct {
	CSS         string
	Rules       int // top-level rules in the printed output
	Bytes       int // size of the unminified source
}

// Assemble concatenates fragments in order, parses, minifies and prints them for the
// configured targets. It returns either a complete stylesheet or an error, never both.
func Assemble(fragments []string, opts AssembleOptions) (*Stylesheet, error) {
	source := strings.Join(fragments, "")

	if err := checkSyntax(source); err != nil {
		return nil, &ParseError{Length: len(source), Snippet: snippet(source), Err: err}
	}

	m := opts.minifier()
	minified, err := m.String("text/css", source)
	if err != nil {
		return nil, fmt.Errorf("%w: the CSS may contain invalid or unsupported syntax: %v", ErrMinify, err)
	}

	printed, err := printFor(m, minified, opts.Targets)
	if err != nil {
		return nil, err
	}

	sheet, err := parser.Parse(printed)
	if err != nil {
		return nil, fmt.Errorf("%w: printed stylesheet does not re-parse: %v", ErrMinify, err)
	}

	return &Stylesheet{
		CSS:         printed,
		Rules:       len(sheet.Rules),
		Bytes:       len(source),
	}, nil
}

// printFor lowers syntax the target browsers lack and re-minifies what was rewritten.
func printFor(m Minifier, minified string, targets Targets) (string, error) {
	if targets.supportsOKLCH() {
		return minified, nil
	}
	lowered, err := lowerOKLCH(minified)
	if err != nil {
		return "", fmt.Errorf("%w: lowering oklch() for chrome %d: %v", ErrMinify, targets.Chrome, err)
	}
	out, err := m.String("text/css", lowered)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMinify, err)
	}
	return out, nil
}

// checkSyntax walks the source with the CSS grammar parser and rejects unbalanced blocks,
// which the grammar parser itself tolerates.
func checkSyntax(source string) error {
	depth := 0
	l := cssparse.NewLexer(parse.NewInputString(source))
	for {
		tt, _ := l.Next()
		if tt == cssparse.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return err
			}
			break
		}
		switch tt {
		case cssparse.LeftBraceToken:
			depth++
		case cssparse.RightBraceToken:
			depth--
			if depth < 0 {
				return errors.New("unexpected '}'")
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%d unclosed block(s)", depth)
	}

	p := cssparse.NewParser(parse.NewInputString(source), false)
	for {
		gt, _, _ := p.Next()
		if gt == cssparse.ErrorGrammar {
			if err := p.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		}
	}
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) > snippetLimit {
		r = r[:snippetLimit]
	}
	return string(r)
}
