// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"
)

// plainClearLines is the scroll-off fallback when no clear command is usable
const plainClearLines = 120

// Clear erases the terminal.
// ANSI terminals get an escape sequence; plain terminals get the platform
// clear command when the backend is a real tty, otherwise blank lines.
func Clear(b Backend, ansi bool) error {
	if ansi {
		s := NewSequence(ColorMode256)
		s.DefaultColors()
		s.Clear()
		return b.Write(s.Bytes())
	}

	if fb, ok := b.(fileBackend); ok {
		f := fb.File()
		if term.IsTerminal(int(f.Fd())) {
			if err := runClearCommand(f); err == nil {
				return nil
			}
		}
	}
	return b.Write(bytes.Repeat([]byte{'\n'}, plainClearLines))
}

// runClearCommand delegates to the OS clear utility
func runClearCommand(out io.Writer) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = out
	return cmd.Run()
}

// Restore returns the terminal to default attributes after an animation
// and moves output to a fresh line
func Restore(b Backend, ansi bool) error {
	if !ansi {
		return b.Write([]byte{'\n'})
	}
	s := NewSequence(ColorMode256)
	s.ResetStyle()
	s.DefaultColors()
	s.ShowCursor()
	s.Newline()
	return b.Write(s.Bytes())
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery when the renderer cannot finish normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiDefaultFg)
	w.Write(csiDefaultBg)
	w.Write(csiCursorShow)
	w.Write(crlf)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
