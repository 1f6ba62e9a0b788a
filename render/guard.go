package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/termsort/terminal"
)

// GeometryChangedMessage is printed when the guard stops an animation
const GeometryChangedMessage = "Error. Terminal size changed. Execution stopped"

var ErrGeometryChanged = errors.New("terminal size changed")

// Geometry is a terminal size in cells
type Geometry struct {
	Columns int
	Lines   int
}

// Guard detects terminal resizes between frames
// Grid math and relative cursor motion are only valid for the captured size
type Guard struct {
	backend  terminal.Backend
	captured Geometry
}

// NewGuard captures the current backend size
func NewGuard(b terminal.Backend) *Guard {
	w, h := b.Size()
	return &Guard{
		backend:  b,
		captured: Geometry{Columns: w, Lines: h},
	}
}

// Geometry returns the size captured at construction
func (g *Guard) Geometry() Geometry {
	return g.captured
}

// Check returns ErrGeometryChanged if the terminal no longer has the captured size
func (g *Guard) Check() error {
	w, h := g.backend.Size()
	if w != g.captured.Columns || h != g.captured.Lines {
		return fmt.Errorf("%w: %dx%d became %dx%d", ErrGeometryChanged,
			g.captured.Columns, g.captured.Lines, w, h)
	}
	return nil
}
