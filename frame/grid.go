// Package frame maps an array snapshot to the bar-chart grid shown on screen.
// Everything here is pure: no terminal state, no I/O.
package frame

// Cell is the visual class of one grid position
type Cell uint8

const (
	Blank   Cell = iota // not filled
	Element             // filled, plain column
	Access              // filled, highlighted column
	Sorted              // filled, finalized column
)

// NoHighlight marks a frame without a highlighted column
const NoHighlight = -1

// Grid is a row-major character grid, row 0 is the top row
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// Filled reports whether a column of the given value reaches row in a grid of height maximum
// Row r has threshold maximum-r, so the bottom row is filled by every positive value
func Filled(value, maximum, row int) bool {
	return value >= maximum-row
}

// Render builds the grid for values with one optionally highlighted column
func Render(values []int, maximum, highlighted int) Grid {
	return build(values, maximum, func(col int) Cell {
		if col == highlighted {
			return Access
		}
		return Element
	})
}

// RenderCommit builds a completion-animation frame: columns left of index are
// sorted, the column at index is being finalized, the rest are plain.
// index == len(values) yields the fully sorted frame.
func RenderCommit(values []int, maximum, index int) Grid {
	return build(values, maximum, func(col int) Cell {
		switch {
		case col < index:
			return Sorted
		case col == index:
			return Access
		default:
			return Element
		}
	})
}

func build(values []int, maximum int, class func(col int) Cell) Grid {
	if maximum < 0 {
		maximum = 0
	}
	g := Grid{
		Width:  len(values),
		Height: maximum,
		Cells:  make([]Cell, len(values)*maximum),
	}
	for col, v := range values {
		c := class(col)
		// Value v fills the bottom v rows
		top := maximum - v
		if top < 0 {
			top = 0
		}
		for row := top; row < maximum; row++ {
			g.Cells[row*g.Width+col] = c
		}
	}
	return g
}

// At returns the cell at (row, col), Blank when out of range
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return Blank
	}
	return g.Cells[row*g.Width+col]
}

// ColumnHeight returns the number of filled cells in col
func (g Grid) ColumnHeight(col int) int {
	n := 0
	for row := 0; row < g.Height; row++ {
		if g.At(row, col) != Blank {
			n++
		}
	}
	return n
}

// Diff counts positions whose filled state differs between g and other
// Grids of different shape compare over the union of both extents
func (g Grid) Diff(other Grid) int {
	w := max(g.Width, other.Width)
	h := max(g.Height, other.Height)
	// Shorter grids are aligned at the bottom row
	gOff := h - g.Height
	oOff := h - other.Height

	n := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			a := g.At(row-gOff, col) != Blank
			b := other.At(row-oOff, col) != Blank
			if a != b {
				n++
			}
		}
	}
	return n
}

// AppendText appends the grid as text, one line per row each ending in '\n'
func (g Grid) AppendText(dst []byte, glyph func(Cell) string) []byte {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			dst = append(dst, glyph(g.Cells[row*g.Width+col])...)
		}
		dst = append(dst, '\n')
	}
	return dst
}

// String renders the grid with '#' for filled cells and '.' for blanks
func (g Grid) String() string {
	return string(g.AppendText(nil, func(c Cell) string {
		if c == Blank {
			return "."
		}
		return "#"
	}))
}
