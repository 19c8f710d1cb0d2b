package style

import (
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
)

// lowerOKLCH rewrites every oklch(l c h) function into the nearest sRGB hex colour.
// Functions it cannot evaluate (alpha, var(), calc(), unknown units) are copied verbatim.
func lowerOKLCH(src string) (string, error) {
	var b strings.Builder
	l := cssparse.NewLexer(parse.NewInputString(src))
	for {
		tt, data := l.Next()
		if tt == cssparse.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return "", err
			}
			return b.String(), nil
		}
		if tt == cssparse.FunctionToken && strings.EqualFold(string(data), "oklch(") {
			raw, hex, ok := readOKLCH(l)
			if ok {
				b.WriteString(hex)
			} else {
				b.Write(data)
				b.WriteString(raw)
			}
			continue
		}
		b.Write(data)
	}
}

// readOKLCH consumes the arguments of an oklch( function up to and including the
// closing parenthesis. It returns the consumed text, and the hex colour when the
// arguments are three plain channels.
func readOKLCH(l *cssparse.Lexer) (raw, hex string, ok bool) {
	var consumed strings.Builder
	var channels []string
	convertible := true
	for {
		tt, data := l.Next()
		if tt == cssparse.ErrorToken {
			return consumed.String(), "", false
		}
		consumed.Write(data)

		switch tt {
		case cssparse.RightParenthesisToken:
			if !convertible || len(channels) != 3 {
				return consumed.String(), "", false
			}
			c, err := oklchColor(channels)
			if err != nil {
				return consumed.String(), "", false
			}
			return consumed.String(), c.Clamped().Hex(), true
		case cssparse.WhitespaceToken, cssparse.CommentToken:
		case cssparse.NumberToken, cssparse.PercentageToken, cssparse.DimensionToken:
			channels = append(channels, string(data))
		default:
			// nested functions, separators and keywords are left alone
			convertible = false
			if tt == cssparse.FunctionToken || tt == cssparse.LeftParenthesisToken {
				rest, closed := skipBalanced(l)
				consumed.WriteString(rest)
				if !closed {
					return consumed.String(), "", false
				}
			}
		}
	}
}

// skipBalanced copies tokens until the parenthesis opened by the previous token closes.
func skipBalanced(l *cssparse.Lexer) (string, bool) {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tt, data := l.Next()
		if tt == cssparse.ErrorToken {
			return b.String(), false
		}
		b.Write(data)
		switch tt {
		case cssparse.FunctionToken, cssparse.LeftParenthesisToken:
			depth++
		case cssparse.RightParenthesisToken:
			depth--
		}
	}
	return b.String(), true
}

// oklchColor evaluates lightness, chroma and hue tokens. Percentages follow CSS Color 4:
// 100% lightness is 1 and 100% chroma is 0.4.
func oklchColor(channels []string) (colorful.Color, error) {
	l, err := channel(channels[0], 1)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := channel(channels[1], 0.4)
	if err != nil {
		return colorful.Color{}, err
	}
	h, err := hue(channels[2])
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.OkLch(l, c, h), nil
}

func channel(tok string, percentScale float64) (float64, error) {
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, err
		}
		return v / 100 * percentScale, nil
	}
	return strconv.ParseFloat(tok, 64)
}

func hue(tok string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(tok), "deg"), 64)
}
