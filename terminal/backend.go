package terminal

import (
	"os"

	"golang.org/x/term"
)

// Backend abstracts the output side of a terminal.
// The renderer owns it exclusively for the lifetime of an animation.
type Backend interface {
	// Size returns the current terminal dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error
}

// fileBackend is implemented by backends bound to an OS file, which lets
// Clear fall back to the platform clear command
type fileBackend interface {
	File() *os.File
}

// Fallback dimensions when the output is not a terminal
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// NewBackend creates a backend writing to out
func NewBackend(out *os.File) Backend {
	return newBackend(out)
}

// sizeOf queries the terminal size through x/term
func sizeOf(fd int) (int, int) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
