package pp

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/tidwall/pretty"
)

// Palette assigns a color to each JSON token kind. A zero field
// ([text.Reset]) leaves that token kind uncolored. Palette is a plain value;
// build one with [DefaultPalette] or [ParseColor] and pass it around.
type Palette struct {
	Null    text.Color
	Boolean text.Color
	Number  text.Color
	String  text.Color
	Key     text.Color
}

// DefaultPalette returns the standard coloring: null cyan, booleans
// yellow, numbers magenta, strings green and object keys blue.
func DefaultPalette() Palette {
	return Palette{
		Null:    text.FgCyan,
		Boolean: text.FgYellow,
		Number:  text.FgMagenta,
		String:  text.FgGreen,
		Key:     text.FgBlue,
	}
}

var colorNames = map[string]text.Color{
	"none":       text.Reset,
	"black":      text.FgBlack,
	"red":        text.FgRed,
	"green":      text.FgGreen,
	"yellow":     text.FgYellow,
	"blue":       text.FgBlue,
	"magenta":    text.FgMagenta,
	"cyan":       text.FgCyan,
	"white":      text.FgWhite,
	"hi-black":   text.FgHiBlack,
	"hi-red":     text.FgHiRed,
	"hi-green":   text.FgHiGreen,
	"hi-yellow":  text.FgHiYellow,
	"hi-blue":    text.FgHiBlue,
	"hi-magenta": text.FgHiMagenta,
	"hi-cyan":    text.FgHiCyan,
	"hi-white":   text.FgHiWhite,
}

// ParseColor parses a color name such as "cyan" or "hi-blue". "none"
// disables coloring for a token kind.
func ParseColor(s string) (text.Color, error) {
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// span returns the escape sequences that open and close a token of color c.
func span(c text.Color) [2]string {
	if c == text.Reset {
		return [2]string{}
	}
	return [2]string{c.EscapeSeq(), text.Reset.EscapeSeq()}
}

// Style converts the palette into a tidwall/pretty color style.
func (p Palette) Style() *pretty.Style {
	return &pretty.Style{
		Key:    span(p.Key),
		String: span(p.String),
		Number: span(p.Number),
		True:   span(p.Boolean),
		False:  span(p.Boolean),
		Null:   span(p.Null),
	}
}

// Colorize wraps each token of the JSON document src in the palette's
// escape sequences. Whitespace and punctuation are copied unchanged, so the
// layout of src is preserved.
func (p Palette) Colorize(src string) string {
	return string(pretty.Color([]byte(src), p.Style()))
}
