// @focus: #sys { term }
// Package terminal provides direct ANSI terminal output for the sorting animation.
//
// Features:
//   - True color (24-bit) and 256-color SGR emission
//   - Frame buffers with relative cursor motion and style coalescing
//   - Terminal geometry queries via ioctl with x/term fallback
//   - ANSI capability and color mode detection
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
