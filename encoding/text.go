package encoding

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/msbt/endian"
	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/format"
)

// MaxNameLength is the maximum byte length of a label name.
// Names are prefixed with an 8-bit length.
const MaxNameLength = 255

const (
	highSurrogateStart = 0xD800
	lowSurrogateStart  = 0xDC00
)

// Decode decodes data according to enc, using engine for UTF-16 code units.
func Decode(data []byte, enc format.Encoding, engine endian.EndianEngine) (string, error) {
	switch enc {
	case format.EncodingUTF8:
		return DecodeUTF8(data)
	case format.EncodingUTF16:
		return DecodeUTF16(data, engine)
	default:
		return "", fmt.Errorf("%w: %d", errs.ErrUnsupportedEncoding, uint8(enc))
	}
}

// DecodeUTF8 validates data as UTF-8 and returns it as a string.
func DecodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidUTF8, data)
	}

	return string(data), nil
}

// DecodeUTF16 decodes data as UTF-16 code units stored in engine's byte order.
//
// Code units are assembled explicitly from byte pairs, so data needs no
// particular memory alignment, only an even length.
func DecodeUTF16(data []byte, engine endian.EndianEngine) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("%w: %d bytes", errs.ErrUTF16Alignment, len(data))
	}

	var sb strings.Builder
	sb.Grow(len(data) / 2)

	for i := 0; i < len(data); i += 2 {
		unit := rune(engine.Uint16(data[i:]))
		if !utf16.IsSurrogate(unit) {
			sb.WriteRune(unit)
			continue
		}

		if !isHighSurrogate(unit) || i+2 >= len(data) {
			return "", fmt.Errorf("%w: unpaired surrogate 0x%04X at code unit %d", errs.ErrInvalidUTF16, unit, i/2)
		}

		next := rune(engine.Uint16(data[i+2:]))
		r := utf16.DecodeRune(unit, next)
		if r == utf8.RuneError {
			return "", fmt.Errorf("%w: unpaired surrogate 0x%04X at code unit %d", errs.ErrInvalidUTF16, unit, i/2)
		}
		sb.WriteRune(r)
		i += 2
	}

	return sb.String(), nil
}

// TrimNUL removes all trailing NUL characters from s.
func TrimNUL(s string) string {
	return strings.TrimRight(s, "\x00")
}

// isHighSurrogate reports whether unit starts a surrogate pair.
func isHighSurrogate(unit rune) bool {
	return unit >= highSurrogateStart && unit < lowSurrogateStart
}
