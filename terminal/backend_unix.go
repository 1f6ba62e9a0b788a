//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

type unixBackend struct {
	out   *os.File
	outFd int
}

func newBackend(out *os.File) Backend {
	return &unixBackend{
		out:   out,
		outFd: int(out.Fd()),
	}
}

func (b *unixBackend) Size() (int, int) {
	return getTerminalSize(b.outFd)
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

func (b *unixBackend) File() *os.File {
	return b.out
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return sizeOf(fd)
	}
	return int(ws.Col), int(ws.Row)
}
