package pool

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, bb.Cap())
	require.Empty(t, bb.Bytes())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("he"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Grows past the initial capacity
	n, err = bb.Write([]byte("llo!"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("hello!"), bb.Bytes())
	require.Equal(t, 6, bb.Len())
}

func TestByteBuffer_CopyTarget(t *testing.T) {
	bb := NewByteBuffer(TextBufferDefaultSize)
	src := bytes.Repeat([]byte{0xAB}, 3*TextBufferDefaultSize)

	n, err := io.Copy(bb, bytes.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, int64(len(src)), n)
	require.Equal(t, src, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("data"))
	capBefore := bb.Cap()

	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("Get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())
		require.GreaterOrEqual(t, bb.Cap(), 32)
	})

	t.Run("Put resets buffer", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		_, _ = bb.Write([]byte("abc"))

		p.Put(bb)
		require.Equal(t, 0, bb.Len())
	})

	t.Run("Put drops oversized buffer", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		bb := NewByteBuffer(64)
		_, _ = bb.Write([]byte("abc"))

		p.Put(bb)
		// Oversized buffers are discarded untouched
		require.Equal(t, 3, bb.Len())
	})

	t.Run("Put nil is a no-op", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		require.NotPanics(t, func() { p.Put(nil) })
	})
}

func TestTextBuffer(t *testing.T) {
	bb := GetTextBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte{'h', 0, 'i', 0})
	PutTextBuffer(bb)
	require.Equal(t, 0, bb.Len())
}
