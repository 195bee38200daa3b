package binio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/msbt/endian"
)

func TestReader_Integers(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}

	t.Run("little endian", func(t *testing.T) {
		r := NewReader(bytes.NewReader(data), endian.GetLittleEndianEngine())
		require.Equal(t, uint8(0x01), r.Uint8())
		require.Equal(t, uint16(0x0302), r.Uint16())
		require.Equal(t, uint32(0x07060504), r.Uint32())
		require.NoError(t, r.Err())
		require.Equal(t, int64(7), r.Pos())
	})

	t.Run("big endian", func(t *testing.T) {
		r := NewReader(bytes.NewReader(data), endian.GetBigEndianEngine())
		require.Equal(t, uint8(0x01), r.Uint8())
		require.Equal(t, uint16(0x0203), r.Uint16())
		require.Equal(t, uint32(0x04050607), r.Uint32())
		require.NoError(t, r.Err())
	})

	t.Run("explicit order overrides engine", func(t *testing.T) {
		r := NewReader(bytes.NewReader([]byte{0xFF, 0xFE}), endian.GetLittleEndianEngine())
		require.Equal(t, uint16(0xFFFE), r.Uint16With(endian.GetBigEndianEngine()))
	})
}

func TestReader_ShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}), endian.GetLittleEndianEngine())

	require.Equal(t, uint32(0), r.Uint32())
	require.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)

	// Sticky: later calls do nothing and keep the first error.
	require.Equal(t, uint8(0), r.Uint8())
	r.SeekTo(0)
	require.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)
}

func TestReader_EOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), endian.GetLittleEndianEngine())

	require.Equal(t, uint8(0), r.Uint8())
	require.ErrorIs(t, r.Err(), io.EOF)
}

func TestReader_CopyN(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		r := NewReader(bytes.NewReader([]byte("hello world")), endian.GetLittleEndianEngine())
		var buf bytes.Buffer
		r.CopyN(&buf, 5)
		require.NoError(t, r.Err())
		require.Equal(t, "hello", buf.String())
		require.Equal(t, int64(5), r.Pos())
	})

	t.Run("short source", func(t *testing.T) {
		r := NewReader(bytes.NewReader([]byte("abc")), endian.GetLittleEndianEngine())
		var buf bytes.Buffer
		r.CopyN(&buf, 10)
		require.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)
	})

	t.Run("zero length", func(t *testing.T) {
		r := NewReader(bytes.NewReader(nil), endian.GetLittleEndianEngine())
		var buf bytes.Buffer
		r.CopyN(&buf, 0)
		require.NoError(t, r.Err())
		require.Zero(t, buf.Len())
	})
}

func TestReader_SeekToAndSkip(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}
	r := NewReader(bytes.NewReader(data), endian.GetLittleEndianEngine())

	r.Skip(10)
	require.Equal(t, int64(10), r.Pos())
	require.Equal(t, uint8(10), r.Uint8())

	r.SeekTo(40)
	require.Equal(t, int64(40), r.Pos())
	require.Equal(t, uint8(40), r.Uint8())
	require.NoError(t, r.Err())
}

func TestReader_Align(t *testing.T) {
	tests := []struct {
		name  string
		start int64
		want  int64
	}{
		{name: "already aligned at zero", start: 0, want: 0},
		{name: "already aligned", start: 32, want: 32},
		{name: "one past boundary", start: 33, want: 48},
		{name: "one before boundary", start: 47, want: 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(make([]byte, 64)), endian.GetLittleEndianEngine())
			r.SeekTo(tt.start)
			r.Align(16)
			require.NoError(t, r.Err())
			require.Equal(t, tt.want, r.Pos())
		})
	}
}

func TestReader_StartsAtCurrentOffset(t *testing.T) {
	src := bytes.NewReader(make([]byte, 32))
	_, err := src.Seek(5, io.SeekStart)
	require.NoError(t, err)

	r := NewReader(src, endian.GetLittleEndianEngine())
	require.Equal(t, int64(5), r.Pos())
}

type failingSeeker struct{ io.Reader }

func (failingSeeker) Seek(int64, int) (int64, error) { return 0, errors.New("seek failed") }

func TestReader_SeekFailure(t *testing.T) {
	r := NewReader(failingSeeker{bytes.NewReader(nil)}, endian.GetLittleEndianEngine())
	require.EqualError(t, r.Err(), "seek failed")
}
