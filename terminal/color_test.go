package terminal

import (
	"bytes"
	"testing"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"red", RGB{255, 0, 0}, 196},
		{"green", RGB{0, 128, 0}, 28},
		{"blue", RGB{0, 0, 255}, 21},
		{"mid gray", RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		if got := RGBTo256(tt.c); got != tt.want {
			t.Errorf("%s: RGBTo256(%v) = %d, want %d", tt.name, tt.c, got, tt.want)
		}
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, k := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "ALACRITTY_LOG", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TERM", "xterm")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("COLORTERM=truecolor: got %v", got)
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if got := DetectColorMode(); got != ColorMode256 {
		t.Errorf("TERM=xterm-256color: got %v", got)
	}
}

type recordingBackend struct {
	bytes.Buffer
	w, h int
}

func (b *recordingBackend) Size() (int, int) { return b.w, b.h }

func (b *recordingBackend) Write(p []byte) error {
	_, err := b.Buffer.Write(p)
	return err
}

func TestClear(t *testing.T) {
	ansi := &recordingBackend{w: 80, h: 24}
	if err := Clear(ansi, true); err != nil {
		t.Fatalf("Clear(ansi): %v", err)
	}
	if want := "\x1b[39m\x1b[49m\x1b[0m\x1b[2J\x1b[H"; ansi.String() != want {
		t.Errorf("ANSI Clear = %q, want %q", ansi.String(), want)
	}

	// Non-file backend cannot run the clear command, so it scrolls instead
	plain := &recordingBackend{w: 80, h: 24}
	if err := Clear(plain, false); err != nil {
		t.Fatalf("Clear(plain): %v", err)
	}
	if got := plain.Len(); got != plainClearLines {
		t.Errorf("plain clear wrote %d bytes, want %d", got, plainClearLines)
	}
	if bytes.ContainsRune(plain.Bytes(), 0x1b) {
		t.Error("plain clear must not emit escape sequences")
	}
}

func TestRestore(t *testing.T) {
	b := &recordingBackend{}
	if err := Restore(b, true); err != nil {
		t.Fatal(err)
	}
	if want := "\x1b[0m\x1b[39m\x1b[49m\x1b[?25h\r\n"; b.String() != want {
		t.Errorf("ANSI Restore = %q, want %q", b.String(), want)
	}

	b.Reset()
	if err := Restore(b, false); err != nil {
		t.Fatal(err)
	}
	if b.String() != "\n" {
		t.Errorf("plain Restore = %q", b.String())
	}
}
