package terminal

import (
	"testing"
)

func TestAppendInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-5, "0"},
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{255, "255"},
		{1000, "1000"},
		{65535, "65535"},
	}
	for _, tt := range tests {
		if got := string(appendInt(nil, tt.n)); got != tt.want {
			t.Errorf("appendInt(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSequence_CursorMotion(t *testing.T) {
	s := NewSequence(ColorMode256)

	s.CursorUp(3)
	s.CursorDown(1)
	s.CursorForward(12)
	s.CursorBack(2)

	want := "\x1b[3A\x1b[B\x1b[12C\x1b[2D"
	if got := string(s.Bytes()); got != want {
		t.Fatalf("motion bytes = %q, want %q", got, want)
	}
}

// Zero-length moves must be dropped: terminals treat CSI 0 A as CSI 1 A
func TestSequence_ZeroMotionSkipped(t *testing.T) {
	s := NewSequence(ColorMode256)
	s.CursorUp(0)
	s.CursorDown(-1)
	s.CursorHorizontal(0)

	if s.Len() != 0 {
		t.Fatalf("expected no bytes for zero motion, got %q", s.Bytes())
	}
}

func TestSequence_CursorHorizontal(t *testing.T) {
	s := NewSequence(ColorMode256)
	s.CursorHorizontal(4)
	s.CursorHorizontal(-3)

	if got, want := string(s.Bytes()), "\x1b[4C\x1b[3D"; got != want {
		t.Fatalf("horizontal bytes = %q, want %q", got, want)
	}
}

func TestSequence_StyleCoalescing(t *testing.T) {
	s := NewSequence(ColorMode256)
	white := RGB{255, 255, 255}
	red := RGB{255, 0, 0}

	s.Style(RGBBlack, white)
	first := s.Len()
	if first == 0 {
		t.Fatal("first Style call must emit SGR")
	}

	s.Style(RGBBlack, white)
	if s.Len() != first {
		t.Errorf("repeated Style emitted %q", s.Bytes()[first:])
	}

	s.Style(RGBBlack, red)
	if got, want := string(s.Bytes()[first:]), "\x1b[48;5;196m"; got != want {
		t.Errorf("bg-only change = %q, want %q", got, want)
	}

	// Reset invalidates the cached style
	s.Reset()
	s.Style(RGBBlack, red)
	if got, want := string(s.Bytes()), "\x1b[38;5;16;48;5;196m"; got != want {
		t.Errorf("style after reset = %q, want %q", got, want)
	}
}

func TestSequence_TrueColor(t *testing.T) {
	s := NewSequence(ColorModeTrueColor)
	s.Style(RGB{1, 2, 3}, RGB{200, 100, 50})

	if got, want := string(s.Bytes()), "\x1b[38;2;1;2;3;48;2;200;100;50m"; got != want {
		t.Fatalf("truecolor style = %q, want %q", got, want)
	}
}

func TestSequence_ClearInvalidatesStyle(t *testing.T) {
	s := NewSequence(ColorMode256)
	s.Style(RGBBlack, RGBBlack)
	s.Clear()
	n := s.Len()
	s.Style(RGBBlack, RGBBlack)
	if s.Len() == n {
		t.Error("Style after Clear must be re-emitted")
	}
}

func TestSequence_ResetsInvalidateStyle(t *testing.T) {
	resets := map[string]func(*Sequence){
		"ResetStyle":    (*Sequence).ResetStyle,
		"DefaultColors": (*Sequence).DefaultColors,
	}
	for name, reset := range resets {
		s := NewSequence(ColorMode256)
		s.Style(RGBBlack, RGBBlack)
		reset(s)
		n := s.Len()
		s.Style(RGBBlack, RGBBlack)
		if s.Len() == n {
			t.Errorf("Style after %s must be re-emitted", name)
		}
	}
}
