// Package core holds process-level safety for the command.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termsort/logger"
	"github.com/lixenwraith/termsort/terminal"
)

// Replaced in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	terminal.EmergencyReset(stdout)

	stack := debug.Stack()
	logger.Logger.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\r\n%s\r\n", stack)

	if f, ok := stderr.(*os.File); ok {
		f.Sync()
	}

	exit(1)
}
