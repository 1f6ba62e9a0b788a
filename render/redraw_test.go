package render

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/lixenwraith/termsort/frame"
)

// plainBackend records frames from the full redraw strategy
type plainBackend struct {
	w, h   int
	writes [][]byte
}

func (p *plainBackend) Size() (int, int) { return p.w, p.h }

func (p *plainBackend) Write(b []byte) error {
	p.writes = append(p.writes, bytes.Clone(b))
	return nil
}

func (p *plainBackend) last() string {
	return string(p.writes[len(p.writes)-1])
}

// parsePlain reads the first height lines of a plain frame back into a grid
func parsePlain(t *testing.T, text string, width, height int) frame.Grid {
	t.Helper()
	lines := strings.Split(text, "\n")
	if len(lines) < height {
		t.Fatalf("frame has %d lines, want at least %d", len(lines), height)
	}
	g := frame.Grid{Width: width, Height: height, Cells: make([]frame.Cell, width*height)}
	for row := 0; row < height; row++ {
		runes := []rune(lines[row])
		if len(runes) != width {
			t.Fatalf("line %d has %d cells, want %d", row, len(runes), width)
		}
		for col, r := range runes {
			if r != ' ' {
				g.Cells[row*width+col] = frame.Element
			}
		}
	}
	return g
}

func TestFullRedraw_FirstFrame(t *testing.T) {
	b := &plainBackend{w: 20, h: 10}
	theme := DefaultTheme()
	f := NewFullRedraw(NewEmitter(context.Background(), b, 0), theme)

	values := []int{3, 1, 2}
	if err := f.Start(values, 3); err != nil {
		t.Fatalf("Start: %v", err)
	}

	want := string(frame.Render(values, 3, frame.NoHighlight).AppendText(nil, theme.Glyph))
	if got := b.last(); got != want {
		t.Fatalf("first frame = %q, want %q", got, want)
	}
	if want != "▓  \n▓ ▓\n▓▓▓\n" {
		t.Errorf("unexpected glyph layout %q", want)
	}
}

func TestFullRedraw_Padding(t *testing.T) {
	b := &plainBackend{w: 20, h: 10}
	f := NewFullRedraw(NewEmitter(context.Background(), b, 0), DefaultTheme())

	values := []int{3, 1, 2}
	if err := f.Start(values, 3); err != nil {
		t.Fatal(err)
	}
	if err := f.Read(1); err != nil {
		t.Fatal(err)
	}

	got := b.last()
	// 3 grid lines plus 10-3 padding lines
	if n := strings.Count(got, "\n"); n != 10 {
		t.Errorf("frame has %d newlines, want 10", n)
	}
	if !strings.HasPrefix(got, "▓  \n▓ ▓\n▓░▓\n") {
		t.Errorf("read frame = %q", got)
	}
}

func TestFullRedraw_WriteShowsOldThenNew(t *testing.T) {
	b := &plainBackend{w: 20, h: 4}
	f := NewFullRedraw(NewEmitter(context.Background(), b, 0), DefaultTheme())

	values := []int{3, 1, 2}
	if err := f.Start(values, 3); err != nil {
		t.Fatal(err)
	}
	if err := f.BeforeWrite(1); err != nil {
		t.Fatal(err)
	}
	old := b.last()
	values[1] = 3
	if err := f.AfterWrite(1); err != nil {
		t.Fatal(err)
	}
	updated := b.last()

	if !strings.HasPrefix(old, "▓  \n▓ ▓\n▓░▓\n") {
		t.Errorf("before-write frame = %q", old)
	}
	if !strings.HasPrefix(updated, "▓░ \n▓░▓\n▓░▓\n") {
		t.Errorf("after-write frame = %q", updated)
	}
}

func TestFullRedraw_Completion(t *testing.T) {
	b := &plainBackend{w: 20, h: 3}
	f := NewFullRedraw(NewEmitter(context.Background(), b, 0), DefaultTheme())

	values := []int{1, 2}
	if err := f.Start(values, 2); err != nil {
		t.Fatal(err)
	}

	wantFrames := []string{
		" ▓\n░▓\n\n",
		" ░\n▒░\n\n",
	}
	for i, want := range wantFrames {
		if err := f.Commit(i); err != nil {
			t.Fatal(err)
		}
		if got := b.last(); got != want {
			t.Errorf("Commit(%d) frame = %q, want %q", i, got, want)
		}
	}
	if err := f.Finish(); err != nil {
		t.Fatal(err)
	}
	if got, want := b.last(), " ▒\n▒▒\n\n"; got != want {
		t.Errorf("final frame = %q, want %q", got, want)
	}
}

// Both strategies replay the same accesses and end on the same filled grid
func TestStrategies_Converge(t *testing.T) {
	const (
		length  = 10
		maximum = 6
	)
	rng := rand.New(rand.NewPCG(3, 5))
	initial := make([]int, length)
	for i := range initial {
		initial[i] = 1 + rng.IntN(maximum)
	}
	initial[length-1] = maximum

	type op struct{ index, value int }
	ops := make([]op, 200)
	for i := range ops {
		ops[i] = op{rng.IntN(length), rng.IntN(maximum + 1)}
	}

	run := func(s Strategy) []int {
		values := append([]int(nil), initial...)
		if err := s.Start(values, maximum); err != nil {
			t.Fatal(err)
		}
		for _, o := range ops {
			if err := s.BeforeWrite(o.index); err != nil {
				t.Fatal(err)
			}
			values[o.index] = o.value
			if err := s.AfterWrite(o.index); err != nil {
				t.Fatal(err)
			}
		}
		return values
	}

	screen := newScreen(t, 30, 12)
	diffValues := run(New(true, NewEmitter(context.Background(), screen, 0), DefaultTheme()))

	plain := &plainBackend{w: 30, h: 12}
	plainValues := run(New(false, NewEmitter(context.Background(), plain, 0), DefaultTheme()))

	want := frame.Render(diffValues, maximum, frame.NoHighlight)
	if got := screen.filled(length, maximum); got.Diff(want) != 0 {
		t.Errorf("differential screen\n%s\nwant\n%s", got, want)
	}
	if got := parsePlain(t, plain.last(), length, maximum); got.Diff(want) != 0 {
		t.Errorf("full redraw frame\n%s\nwant\n%s", got, want)
	}
	if frame.Render(plainValues, maximum, frame.NoHighlight).Diff(want) != 0 {
		t.Error("strategies saw different values")
	}
}

func TestFullRedraw_GeometryChange(t *testing.T) {
	b := &plainBackend{w: 20, h: 10}
	f := NewFullRedraw(NewEmitter(context.Background(), b, 0), DefaultTheme())
	if err := f.Start([]int{1, 2}, 2); err != nil {
		t.Fatal(err)
	}
	writes := len(b.writes)

	b.h = 11
	if err := f.Read(0); !errors.Is(err, ErrGeometryChanged) {
		t.Fatalf("Read after resize = %v, want ErrGeometryChanged", err)
	}
	if len(b.writes) != writes {
		t.Error("frame written after geometry change")
	}
}
