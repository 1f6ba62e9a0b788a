package core

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureCrash(t *testing.T) (out, errOut *bytes.Buffer, code *int) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	code = new(int)
	*code = -1

	stdout, stderr = out, errOut
	exit = func(c int) { *code = c }
	t.Cleanup(func() {
		stdout, stderr = io.Writer(os.Stdout), io.Writer(os.Stderr)
		exit = os.Exit
	})
	return out, errOut, code
}

func TestHandleCrash_Nil(t *testing.T) {
	out, errOut, code := captureCrash(t)
	HandleCrash(nil)
	if out.Len() != 0 || errOut.Len() != 0 || *code != -1 {
		t.Error("HandleCrash(nil) should do nothing")
	}
}

func TestHandleCrash(t *testing.T) {
	out, errOut, code := captureCrash(t)

	func() {
		defer func() {
			HandleCrash(recover())
		}()
		panic("column index -1")
	}()

	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	// Cursor is shown again and colors reset
	if !bytes.Contains(out.Bytes(), []byte("\x1b[?25h")) || !bytes.Contains(out.Bytes(), []byte("\x1b[0m")) {
		t.Errorf("terminal not restored: %q", out.String())
	}
	if s := errOut.String(); !strings.Contains(s, "column index -1") || !strings.Contains(s, "Stack Trace") {
		t.Errorf("stderr = %q", s)
	}
}
