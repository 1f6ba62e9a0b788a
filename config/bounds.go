package config

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termsort/render"
	"github.com/lixenwraith/termsort/terminal"
)

// Bounds are the validated parameters of the random input array
type Bounds struct {
	Min    int
	Max    int
	Length int
}

// BoundsError is a rejected setting; TerminalSize marks errors relative to the terminal
type BoundsError struct {
	Msg          string
	TerminalSize bool
}

func (e *BoundsError) Error() string { return e.Msg }

// Resolve validates the array settings against a columns x lines terminal
func (c Config) Resolve(columns, lines int) (Bounds, error) {
	b := Bounds{Min: c.Min, Max: c.Max, Length: c.Length}

	if b.Min <= 0 {
		return b, &BoundsError{Msg: "--min value must be greater than 0"}
	}
	if b.Min >= lines {
		return b, &BoundsError{Msg: "--min value must be less than your terminal size", TerminalSize: true}
	}

	if b.Max == 0 {
		b.Max = lines / 2
	} else if b.Max >= lines {
		return b, &BoundsError{Msg: "--max value must be less than your terminal size", TerminalSize: true}
	}
	if b.Max < b.Min {
		return b, &BoundsError{Msg: "--max value must be greater than or equal to --min value"}
	}

	if b.Length == 0 {
		b.Length = columns / 2
		if b.Length == 0 {
			return b, &BoundsError{Msg: "--length value must be greater than 0", TerminalSize: true}
		}
	} else if b.Length < 0 {
		return b, &BoundsError{Msg: "--length value must be greater than 0"}
	} else if b.Length >= columns {
		return b, &BoundsError{Msg: "--length value must be less than terminal size", TerminalSize: true}
	}

	return b, nil
}

// BuildTheme applies the theme overrides on top of the default theme
func (c Config) BuildTheme(mode terminal.ColorMode) (render.Theme, error) {
	theme := render.DefaultTheme()
	theme.Mode = mode

	colors := []struct {
		name string
		dst  *tcell.Color
	}{
		{c.Theme.Element, &theme.Palette.Element},
		{c.Theme.Access, &theme.Palette.Access},
		{c.Theme.Sorted, &theme.Palette.Sorted},
		{c.Theme.Background, &theme.Palette.Background},
	}
	for _, col := range colors {
		if col.name == "" {
			continue
		}
		parsed, err := render.ParseColor(col.name)
		if err != nil {
			return theme, err
		}
		*col.dst = parsed
	}

	glyphs := []struct {
		value string
		dst   *string
	}{
		{c.Theme.Glyphs.Element, &theme.Glyphs.Element},
		{c.Theme.Glyphs.Access, &theme.Glyphs.Access},
		{c.Theme.Glyphs.Sorted, &theme.Glyphs.Sorted},
		{c.Theme.Glyphs.Blank, &theme.Glyphs.Blank},
		{c.Theme.Glyphs.ANSIElement, &theme.Glyphs.ANSIElement},
	}
	for _, g := range glyphs {
		if g.value != "" {
			*g.dst = g.value
		}
	}
	return theme, nil
}
