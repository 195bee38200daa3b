// Package binio provides a positioned, byte-order aware reader over a seekable stream.
package binio

import (
	"errors"
	"io"

	"github.com/arloliu/msbt/endian"
)

// Reader reads fixed-width unsigned integers and raw bytes from an io.ReadSeeker.
//
// Reader keeps the first error it encounters. Once an error is recorded every
// subsequent call is a no-op returning zero values, and Err reports the original
// failure. Callers check Err at loop boundaries and before returning results.
//
// Note: Reader is NOT thread-safe; it owns the cursor of the underlying stream.
type Reader struct {
	rs      io.ReadSeeker
	engine  endian.EndianEngine
	pos     int64
	err     error
	scratch [4]byte
}

// NewReader creates a reader positioned at the current offset of rs.
func NewReader(rs io.ReadSeeker, engine endian.EndianEngine) *Reader {
	r := &Reader{rs: rs, engine: engine}
	r.pos, r.err = rs.Seek(0, io.SeekCurrent)

	return r
}

// SetEngine switches the byte order used by subsequent multi-byte reads.
func (r *Reader) SetEngine(engine endian.EndianEngine) {
	r.engine = engine
}

// Engine returns the byte order currently in use.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// Err returns the first error encountered by the reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// Pos returns the absolute stream position of the cursor.
func (r *Reader) Pos() int64 {
	return r.pos
}

// ReadFull fills buf from the current position.
func (r *Reader) ReadFull(buf []byte) {
	if r.err != nil {
		return
	}
	n, err := io.ReadFull(r.rs, buf)
	r.pos += int64(n)
	r.err = err
}

// Uint8 reads an unsigned 8-bit integer.
func (r *Reader) Uint8() uint8 {
	b := r.scratch[:1]
	r.ReadFull(b)
	if r.err != nil {
		return 0
	}

	return b[0]
}

// Uint16 reads an unsigned 16-bit integer in the reader's byte order.
func (r *Reader) Uint16() uint16 {
	return r.Uint16With(r.engine)
}

// Uint16With reads an unsigned 16-bit integer in an explicit byte order.
func (r *Reader) Uint16With(engine endian.EndianEngine) uint16 {
	b := r.scratch[:2]
	r.ReadFull(b)
	if r.err != nil {
		return 0
	}

	return engine.Uint16(b)
}

// Uint32 reads an unsigned 32-bit integer in the reader's byte order.
func (r *Reader) Uint32() uint32 {
	b := r.scratch[:4]
	r.ReadFull(b)
	if r.err != nil {
		return 0
	}

	return r.engine.Uint32(b)
}

// CopyN copies exactly n bytes from the current position into w.
//
// The copy is streamed so that a corrupt length cannot force a single large
// allocation; a short source fails with io.ErrUnexpectedEOF.
func (r *Reader) CopyN(w io.Writer, n int64) {
	if r.err != nil || n <= 0 {
		return
	}
	written, err := io.CopyN(w, r.rs, n)
	r.pos += written
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	r.err = err
}

// SeekTo moves the cursor to an absolute stream position.
func (r *Reader) SeekTo(pos int64) {
	if r.err != nil {
		return
	}
	r.pos, r.err = r.rs.Seek(pos, io.SeekStart)
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int64) {
	if r.err != nil || n == 0 {
		return
	}
	r.pos, r.err = r.rs.Seek(n, io.SeekCurrent)
}

// Align advances the cursor to the next multiple of alignment.
// If already aligned, the position is unchanged.
func (r *Reader) Align(alignment int64) {
	if alignment <= 1 {
		return
	}
	if remainder := r.pos % alignment; remainder != 0 {
		r.Skip(alignment - remainder)
	}
}
