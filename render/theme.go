package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsort/frame"
	"github.com/lixenwraith/termsort/terminal"
)

// Glyphs are the single-cell strings used to draw columns
type Glyphs struct {
	Element string // plain frame, filled cell
	Access  string // plain frame, highlighted cell
	Sorted  string // plain frame, finalized cell
	Blank   string // both modes, unfilled cell

	// ANSIElement is drawn in Palette.Foreground over the column color
	ANSIElement string
}

// Palette holds the ANSI column colors
type Palette struct {
	Element    tcell.Color
	Access     tcell.Color
	Sorted     tcell.Color
	Background tcell.Color
	Foreground tcell.Color
}

// Theme is everything a strategy needs to decide what a cell looks like
type Theme struct {
	Glyphs  Glyphs
	Palette Palette
	Mode    terminal.ColorMode
}

// DefaultTheme returns the stock look: white columns on blue, red highlight,
// green once sorted
func DefaultTheme() Theme {
	return Theme{
		Glyphs: Glyphs{
			Element:     "▓",
			Access:      "░",
			Sorted:      "▒",
			Blank:       " ",
			ANSIElement: "_",
		},
		Palette: Palette{
			Element:    tcell.ColorWhite,
			Access:     tcell.ColorRed,
			Sorted:     tcell.ColorGreen,
			Background: tcell.ColorBlue,
			Foreground: tcell.ColorBlack,
		},
		Mode: terminal.ColorMode256,
	}
}

// Glyph returns the plain-mode glyph for a frame cell
func (t Theme) Glyph(c frame.Cell) string {
	switch c {
	case frame.Element:
		return t.Glyphs.Element
	case frame.Access:
		return t.Glyphs.Access
	case frame.Sorted:
		return t.Glyphs.Sorted
	default:
		return t.Glyphs.Blank
	}
}

// colorAliases maps ANSI color names missing from tcell's W3C name table
var colorAliases = map[string]tcell.Color{
	"magenta": tcell.ColorFuchsia,
	"cyan":    tcell.ColorAqua,
}

// ParseColor accepts tcell color names ("red", "navy"), the ANSI names
// "magenta" and "cyan", and hex triplets ("#1a1b26")
func ParseColor(name string) (tcell.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := colorAliases[key]; ok {
		return c, nil
	}
	c := tcell.GetColor(key)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// toRGB resolves a tcell color to the 24-bit value the ANSI emitter works with
func toRGB(c tcell.Color) terminal.RGB {
	r, g, b := c.RGB()
	if r < 0 {
		return terminal.RGBBlack
	}
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}
