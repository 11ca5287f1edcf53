// ABOUTME: In-memory io.WriteSeeker
// ABOUTME: Buffers the whole container when the real sink cannot seek
package encode

import (
	"errors"
	"io"
)

// seekBuffer is a growable byte buffer implementing io.WriteSeeker. The
// WAV encoder needs to seek back over the header to patch sizes; when
// the destination is a pipe, the container is assembled here first and
// flushed in one write.
type seekBuffer struct {
	buf []byte
	pos int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.buf) {
		if end > cap(b.buf) {
			grown := make([]byte, len(b.buf), end+len(p))
			copy(grown, b.buf)
			b.buf = grown
		}
		b.buf = b.buf[:end]
	}
	copy(b.buf[b.pos:], p)
	b.pos += len(p)
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	pos := int(offset)
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		pos += b.pos
	case io.SeekEnd:
		pos += len(b.buf)
	}
	if pos < 0 {
		return 0, errors.New("seek before start of buffer")
	}
	b.pos = pos
	return int64(pos), nil
}

func (b *seekBuffer) Bytes() []byte {
	return b.buf
}
