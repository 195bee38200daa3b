package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/msbt/endian"
	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/format"
)

func utf16Bytes(engine endian.EndianEngine, units ...uint16) []byte {
	var b []byte
	for _, u := range units {
		b = engine.AppendUint16(b, u)
	}

	return b
}

func TestDecodeUTF8(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s, err := DecodeUTF8([]byte("héllo, 世界"))
		require.NoError(t, err)
		require.Equal(t, "héllo, 世界", s)
	})

	t.Run("Empty", func(t *testing.T) {
		s, err := DecodeUTF8(nil)
		require.NoError(t, err)
		require.Empty(t, s)
	})

	t.Run("Invalid sequence", func(t *testing.T) {
		_, err := DecodeUTF8([]byte{'a', 0xC3, 0x28})
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	})
}

func TestDecodeUTF16(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			t.Run("BMP characters", func(t *testing.T) {
				s, err := DecodeUTF16(utf16Bytes(engine, 'h', 'i', 0x4E16), engine)
				require.NoError(t, err)
				require.Equal(t, "hi世", s)
			})

			t.Run("Surrogate pair", func(t *testing.T) {
				// U+1F600
				s, err := DecodeUTF16(utf16Bytes(engine, 0xD83D, 0xDE00), engine)
				require.NoError(t, err)
				require.Equal(t, "\U0001F600", s)
			})

			t.Run("Odd length", func(t *testing.T) {
				_, err := DecodeUTF16([]byte{'h', 0, 'i'}, engine)
				require.ErrorIs(t, err, errs.ErrUTF16Alignment)
			})

			t.Run("Lone low surrogate", func(t *testing.T) {
				_, err := DecodeUTF16(utf16Bytes(engine, 'a', 0xDC00), engine)
				require.ErrorIs(t, err, errs.ErrInvalidUTF16)
			})

			t.Run("High surrogate at end", func(t *testing.T) {
				_, err := DecodeUTF16(utf16Bytes(engine, 'a', 0xD800), engine)
				require.ErrorIs(t, err, errs.ErrInvalidUTF16)
			})

			t.Run("High surrogate followed by BMP", func(t *testing.T) {
				_, err := DecodeUTF16(utf16Bytes(engine, 0xD800, 'a'), engine)
				require.ErrorIs(t, err, errs.ErrInvalidUTF16)
			})

			t.Run("Literal replacement character", func(t *testing.T) {
				s, err := DecodeUTF16(utf16Bytes(engine, 0xFFFD), engine)
				require.NoError(t, err)
				require.Equal(t, "�", s)
			})
		})
	}

	t.Run("Byte order matters", func(t *testing.T) {
		data := utf16Bytes(endian.GetBigEndianEngine(), 0x0041)
		s, err := DecodeUTF16(data, endian.GetLittleEndianEngine())
		require.NoError(t, err)
		require.Equal(t, "䄀", s)
	})
}

func TestDecode(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	s, err := Decode([]byte("abc"), format.EncodingUTF8, engine)
	require.NoError(t, err)
	require.Equal(t, "abc", s)

	s, err = Decode(utf16Bytes(engine, 'a', 'b'), format.EncodingUTF16, engine)
	require.NoError(t, err)
	require.Equal(t, "ab", s)

	_, err = Decode([]byte("abc"), format.Encoding(9), engine)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestTrimNUL(t *testing.T) {
	require.Equal(t, "hi", TrimNUL("hi\x00\x00"))
	require.Equal(t, "a\x00b", TrimNUL("a\x00b\x00"))
	require.Equal(t, "", TrimNUL("\x00\x00"))
	require.Equal(t, "plain", TrimNUL("plain"))
}

func TestDecodeUTF16_EmbeddedTerminator(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	s, err := DecodeUTF16(utf16Bytes(engine, 'a', 0, 'b', 0, 0), engine)
	require.NoError(t, err)
	require.Equal(t, "a\x00b", TrimNUL(s))
}
