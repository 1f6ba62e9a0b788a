// @lixen: #focus{sys[term,ansi]}
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Color prefixes
	csiFg256     = []byte("38;5;") // followed by N
	csiBg256     = []byte("48;5;") // followed by N
	csiFgRGB     = []byte("38;2;") // followed by R;G;B
	csiBgRGB     = []byte("48;2;") // followed by R;G;B
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")

	crlf = []byte("\r\n")
)

// appendInt appends an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	return append(dst, buf[i+1:]...)
}

// Sequence accumulates the bytes of a single frame
// A frame is written to the terminal in one call, so partial frames never reach the screen
type Sequence struct {
	buf  []byte
	mode ColorMode

	// Style state for coalescing, invalidated on Reset since the terminal
	// state between frames is not tracked
	lastFg    RGB
	lastBg    RGB
	lastValid bool
}

// NewSequence creates a frame buffer emitting colors in the given mode
func NewSequence(mode ColorMode) *Sequence {
	return &Sequence{
		buf:  make([]byte, 0, 4096),
		mode: mode,
	}
}

// Reset discards buffered bytes and forgets the last emitted style
func (s *Sequence) Reset() {
	s.buf = s.buf[:0]
	s.lastValid = false
}

// Bytes returns the buffered frame, valid until the next Reset
func (s *Sequence) Bytes() []byte {
	return s.buf
}

// Len returns the number of buffered bytes
func (s *Sequence) Len() int {
	return len(s.buf)
}

// Text appends literal text
func (s *Sequence) Text(text string) {
	s.buf = append(s.buf, text...)
}

// Newline moves to the first column of the next line
func (s *Sequence) Newline() {
	s.buf = append(s.buf, crlf...)
}

// Clear erases the screen and homes the cursor
func (s *Sequence) Clear() {
	s.buf = append(s.buf, csiSGR0...)
	s.buf = append(s.buf, csiClear...)
	s.lastValid = false
}

// HideCursor hides the terminal cursor
func (s *Sequence) HideCursor() {
	s.buf = append(s.buf, csiCursorHide...)
}

// ShowCursor shows the terminal cursor
func (s *Sequence) ShowCursor() {
	s.buf = append(s.buf, csiCursorShow...)
}

// ResetStyle emits SGR 0
func (s *Sequence) ResetStyle() {
	s.buf = append(s.buf, csiSGR0...)
	s.lastValid = false
}

// cursorMove writes CSI n <final>, skipping zero moves
// CSI 0 A is interpreted as CSI 1 A by terminals, so n must never be emitted as 0
func (s *Sequence) cursorMove(n int, final byte) {
	if n <= 0 {
		return
	}
	s.buf = append(s.buf, csi...)
	if n > 1 {
		s.buf = appendInt(s.buf, n)
	}
	s.buf = append(s.buf, final)
}

// CursorUp moves the cursor up n rows
func (s *Sequence) CursorUp(n int) { s.cursorMove(n, 'A') }

// CursorDown moves the cursor down n rows
func (s *Sequence) CursorDown(n int) { s.cursorMove(n, 'B') }

// CursorForward moves the cursor right n columns
func (s *Sequence) CursorForward(n int) { s.cursorMove(n, 'C') }

// CursorBack moves the cursor left n columns
func (s *Sequence) CursorBack(n int) { s.cursorMove(n, 'D') }

// CursorHorizontal moves the cursor by delta columns, forward when positive
func (s *Sequence) CursorHorizontal(delta int) {
	if delta > 0 {
		s.CursorForward(delta)
	} else if delta < 0 {
		s.CursorBack(-delta)
	}
}

// Style emits a single combined SGR sequence when fg or bg changed since the last call
func (s *Sequence) Style(fg, bg RGB) {
	fgChanged := !s.lastValid || fg != s.lastFg
	bgChanged := !s.lastValid || bg != s.lastBg
	if !fgChanged && !bgChanged {
		return
	}

	s.buf = append(s.buf, csi...)
	switch {
	case fgChanged && bgChanged:
		s.appendFg(fg)
		s.buf = append(s.buf, ';')
		s.appendBg(bg)
	case fgChanged:
		s.appendFg(fg)
	default:
		s.appendBg(bg)
	}
	s.buf = append(s.buf, 'm')

	s.lastFg = fg
	s.lastBg = bg
	s.lastValid = true
}

// DefaultColors restores terminal default fg and bg
func (s *Sequence) DefaultColors() {
	s.buf = append(s.buf, csiDefaultFg...)
	s.buf = append(s.buf, csiDefaultBg...)
	s.lastValid = false
}

// appendFg writes fg color parameters (no CSI prefix, no 'm' suffix)
func (s *Sequence) appendFg(fg RGB) {
	if s.mode == ColorModeTrueColor {
		s.buf = append(s.buf, csiFgRGB...)
		s.appendRGB(fg)
		return
	}
	s.buf = append(s.buf, csiFg256...)
	s.buf = appendInt(s.buf, int(RGBTo256(fg)))
}

// appendBg writes bg color parameters (no CSI prefix, no 'm' suffix)
func (s *Sequence) appendBg(bg RGB) {
	if s.mode == ColorModeTrueColor {
		s.buf = append(s.buf, csiBgRGB...)
		s.appendRGB(bg)
		return
	}
	s.buf = append(s.buf, csiBg256...)
	s.buf = appendInt(s.buf, int(RGBTo256(bg)))
}

func (s *Sequence) appendRGB(c RGB) {
	s.buf = appendInt(s.buf, int(c.R))
	s.buf = append(s.buf, ';')
	s.buf = appendInt(s.buf, int(c.G))
	s.buf = append(s.buf, ';')
	s.buf = appendInt(s.buf, int(c.B))
}
