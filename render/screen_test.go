package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/hinshun/vt10x"

	"github.com/lixenwraith/termsort/frame"
)

// screenBackend replays every write into a VT emulator and keeps the raw frames
type screenBackend struct {
	vt     vt10x.Terminal
	w, h   int
	writes [][]byte
}

func newScreen(t *testing.T, w, h int) *screenBackend {
	t.Helper()
	return &screenBackend{
		vt: vt10x.New(vt10x.WithSize(w, h)),
		w:  w,
		h:  h,
	}
}

func (s *screenBackend) Size() (int, int) { return s.w, s.h }

func (s *screenBackend) Write(p []byte) error {
	s.writes = append(s.writes, bytes.Clone(p))
	_, err := s.vt.Write(p)
	return err
}

func (s *screenBackend) last() []byte {
	if len(s.writes) == 0 {
		return nil
	}
	return s.writes[len(s.writes)-1]
}

// filled reads back the ANSI grid: a filled cell carries the element glyph
func (s *screenBackend) filled(width, height int) frame.Grid {
	g := frame.Grid{Width: width, Height: height, Cells: make([]frame.Cell, width*height)}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if s.vt.Cell(col, row).Char == '_' {
				g.Cells[row*width+col] = frame.Element
			}
		}
	}
	return g
}

func (s *screenBackend) bg(col, row int) vt10x.Color {
	return s.vt.Cell(col, row).BG
}

func newTestDifferential(t *testing.T, screen *screenBackend) (*Differential, *Emitter) {
	t.Helper()
	em := NewEmitter(context.Background(), screen, 0)
	return NewDifferential(em, DefaultTheme()), em
}

// 256-color indices of the default palette
const (
	bgElement vt10x.Color = 231 // white
	bgAccess  vt10x.Color = 196 // red
	bgSorted  vt10x.Color = 28  // green
)
