// Package buffer provides the read-only byte views binary objects are built
// from.
package buffer

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// Buffer is a read-only view of a file's bytes.
type Buffer interface {
	// Bytes returns the backing view. Callers must not modify it.
	Bytes() []byte
	// Size returns len(Bytes()).
	Size() uint64
	Close() error
}

// Covers reports whether b holds the whole range [off, off+size).
func Covers(b Buffer, off, size uint64) bool {
	if b == nil || b.Bytes() == nil {
		return false
	}
	end := off + size
	return end >= off && end <= b.Size()
}

// Slice returns b[off:off+size] clamped to the available bytes, or nil if
// off is past the end.
func Slice(b Buffer, off, size uint64) []byte {
	if b == nil {
		return nil
	}
	p := b.Bytes()
	if off > uint64(len(p)) {
		return nil
	}
	avail := uint64(len(p)) - off
	if size > avail {
		size = avail
	}
	return p[off : off+size]
}

type bytesBuffer struct {
	b []byte
}

// New wraps b without copying.
func New(b []byte) Buffer {
	return &bytesBuffer{b: b}
}

func (b *bytesBuffer) Bytes() []byte { return b.b }
func (b *bytesBuffer) Size() uint64  { return uint64(len(b.b)) }
func (b *bytesBuffer) Close() error  { return nil }

type mmapBuffer struct {
	f *os.File
	m mmap.MMap
}

// Open maps the file at path read-only. Empty files yield an empty buffer.
func Open(path string) (Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.Size() == 0 {
		f.Close()
		return New([]byte{}), nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "failed to mmap %s", path)
	}
	return &mmapBuffer{f: f, m: m}, nil
}

func (b *mmapBuffer) Bytes() []byte { return b.m }
func (b *mmapBuffer) Size() uint64  { return uint64(len(b.m)) }

func (b *mmapBuffer) Close() error {
	if err := b.m.Unmap(); err != nil {
		b.f.Close()
		return err
	}
	return b.f.Close()
}
