package render

import (
	"bytes"

	"github.com/lixenwraith/termsort/frame"
)

// FullRedraw repaints the whole grid on every notification, for terminals
// without escape sequence support. Each frame is padded with blank lines so
// it scrolls the previous one off screen.
type FullRedraw struct {
	em    *Emitter
	theme Theme
	buf   []byte

	values  []int
	maximum int
}

// NewFullRedraw creates the plain-terminal strategy
func NewFullRedraw(em *Emitter, theme Theme) *FullRedraw {
	return &FullRedraw{
		em:    em,
		theme: theme,
	}
}

// Start clears the terminal and prints the initial grid without padding
func (f *FullRedraw) Start(values []int, maximum int) error {
	f.values = values
	f.maximum = maximum

	if err := f.em.Clear(); err != nil {
		return err
	}
	g := frame.Render(values, maximum, frame.NoHighlight)
	f.buf = g.AppendText(f.buf[:0], f.theme.Glyph)
	return f.em.Emit(f.buf)
}

// Read shows index highlighted
func (f *FullRedraw) Read(index int) error {
	return f.emit(frame.Render(f.values, f.maximum, index))
}

// BeforeWrite shows index highlighted at its old value
func (f *FullRedraw) BeforeWrite(index int) error {
	return f.emit(frame.Render(f.values, f.maximum, index))
}

// AfterWrite shows index highlighted at its new value
func (f *FullRedraw) AfterWrite(index int) error {
	return f.emit(frame.Render(f.values, f.maximum, index))
}

// Commit shows columns left of index sorted
func (f *FullRedraw) Commit(index int) error {
	return f.emit(frame.RenderCommit(f.values, f.maximum, index))
}

// Finish shows every column sorted
func (f *FullRedraw) Finish() error {
	return f.emit(frame.RenderCommit(f.values, f.maximum, len(f.values)))
}

func (f *FullRedraw) emit(g frame.Grid) error {
	f.buf = g.AppendText(f.buf[:0], f.theme.Glyph)
	if pad := f.em.Geometry().Lines - f.maximum; pad > 0 {
		f.buf = append(f.buf, bytes.Repeat([]byte{'\n'}, pad)...)
	}
	return f.em.Emit(f.buf)
}
