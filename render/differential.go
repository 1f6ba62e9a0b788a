package render

import (
	"github.com/lixenwraith/termsort/frame"
	"github.com/lixenwraith/termsort/terminal"
)

// Differential repaints only the accessed column and the previously
// highlighted one, O(height) bytes per access.
//
// Between frames the cursor rests on the line directly below the grid, in
// column cursor. Columns are painted bottom-aligned: move up h rows, then
// stroke down one cell at a time back to the resting line.
type Differential struct {
	em    *Emitter
	theme Theme
	seq   *terminal.Sequence

	values  []int
	maximum int
	heights []int // column heights as last painted

	cursor      int
	highlighted int
	committing  int // index of the finalizing column, -1 outside the completion pass

	fg, element, access, sorted, background terminal.RGB
}

// NewDifferential creates the ANSI strategy
func NewDifferential(em *Emitter, theme Theme) *Differential {
	return &Differential{
		em:          em,
		theme:       theme,
		seq:         terminal.NewSequence(theme.Mode),
		highlighted: frame.NoHighlight,
		committing:  -1,
		fg:          toRGB(theme.Palette.Foreground),
		element:     toRGB(theme.Palette.Element),
		access:      toRGB(theme.Palette.Access),
		sorted:      toRGB(theme.Palette.Sorted),
		background:  toRGB(theme.Palette.Background),
	}
}

// Start clears the screen and paints the whole grid once
func (d *Differential) Start(values []int, maximum int) error {
	d.values = values
	d.maximum = maximum
	d.heights = make([]int, len(values))
	copy(d.heights, values)
	d.cursor = 0
	d.highlighted = frame.NoHighlight
	d.committing = -1

	g := frame.Render(values, maximum, frame.NoHighlight)

	s := d.seq
	s.Reset()
	s.HideCursor()
	s.Clear()
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.At(row, col) == frame.Blank {
				s.Style(d.fg, d.background)
				s.Text(d.theme.Glyphs.Blank)
			} else {
				s.Style(d.fg, d.element)
				s.Text(d.theme.Glyphs.ANSIElement)
			}
		}
		s.Newline()
	}
	return d.em.Emit(s.Bytes())
}

// Read flashes the highlight on index
func (d *Differential) Read(index int) error {
	return d.touch(index)
}

// BeforeWrite paints nothing, the new height is painted by AfterWrite
func (d *Differential) BeforeWrite(index int) error {
	return nil
}

// AfterWrite repaints index at its new height
func (d *Differential) AfterWrite(index int) error {
	return d.touch(index)
}

// Commit highlights index and leaves the previous column in the sorted color
func (d *Differential) Commit(index int) error {
	d.committing = index
	return d.touch(index)
}

// Finish paints the last highlighted column sorted
func (d *Differential) Finish() error {
	d.committing = len(d.values)
	if d.highlighted == frame.NoHighlight {
		return nil
	}
	d.seq.Reset()
	h := d.heights[d.highlighted]
	d.paintColumn(d.highlighted, h, h, d.sorted)
	d.highlighted = frame.NoHighlight
	return d.em.Emit(d.seq.Bytes())
}

// touch emits one frame: index in the access color, then the old highlight
// back to its resting color
func (d *Differential) touch(index int) error {
	d.seq.Reset()

	d.paintColumn(index, d.heights[index], d.values[index], d.access)

	if prev := d.highlighted; prev != frame.NoHighlight && prev != index {
		h := d.heights[prev]
		d.paintColumn(prev, h, h, d.restColor(prev))
	}
	d.highlighted = index

	return d.em.Emit(d.seq.Bytes())
}

func (d *Differential) restColor(index int) terminal.RGB {
	if d.committing >= 0 && index < d.committing {
		return d.sorted
	}
	return d.element
}

// paintColumn moves to index and repaints it from prev to next rows tall
// Equal heights take the growing branch so an unchanged column still shows the color
func (d *Differential) paintColumn(index, prev, next int, color terminal.RGB) {
	s := d.seq
	s.CursorHorizontal(index - d.cursor)
	d.cursor = index

	if next >= prev {
		s.Style(d.fg, color)
		s.CursorUp(next)
		d.stroke(d.theme.Glyphs.ANSIElement, next)
	} else {
		s.Style(d.fg, d.background)
		s.CursorUp(prev)
		d.stroke(d.theme.Glyphs.Blank, prev-next)
		s.Style(d.fg, color)
		d.stroke(d.theme.Glyphs.ANSIElement, next)
	}
	d.heights[index] = next
}

// stroke writes glyph n times going down the current column
func (d *Differential) stroke(glyph string, n int) {
	for range n {
		d.seq.Text(glyph)
		d.seq.CursorBack(1)
		d.seq.CursorDown(1)
	}
}
