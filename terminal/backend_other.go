//go:build !unix

package terminal

import (
	"os"
)

type fileOnlyBackend struct {
	out *os.File
}

func newBackend(out *os.File) Backend {
	return &fileOnlyBackend{out: out}
}

func (b *fileOnlyBackend) Size() (int, int) {
	return sizeOf(int(b.out.Fd()))
}

func (b *fileOnlyBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

func (b *fileOnlyBackend) File() *os.File {
	return b.out
}
