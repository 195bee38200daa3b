// Package errs defines the sentinel errors returned by the msbt packages.
//
// Decoders wrap these values with positional context, so callers should match
// them with errors.Is rather than by equality.
package errs

import "errors"

// Container level errors.
var (
	ErrInvalidMagic           = errors.New("invalid format: message header magic mismatch")
	ErrUnsupportedByteOrder   = errors.New("unsupported byte order marker")
	ErrUnsupportedEncoding    = errors.New("unsupported encoding")
	ErrUnalignedInput         = errors.New("input size is not aligned to 16 bytes")
	ErrFileSizeMismatch       = errors.New("declared file size does not match input size")
	ErrUnsupportedSection     = errors.New("unsupported section")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// Section content errors.
var (
	ErrInvalidUTF8     = errors.New("invalid UTF-8 sequence")
	ErrInvalidUTF16    = errors.New("invalid UTF-16 sequence")
	ErrUTF16Alignment  = errors.New("UTF-16 data is not aligned to 2 bytes")
	ErrInvalidOffset   = errors.New("invalid text offset: end precedes start")
	ErrIndexOutOfRange = errors.New("label index out of range")
)

// Consumer errors.
var (
	ErrLabelSectionMissing = errors.New("label section is not available")
	ErrTextSectionMissing  = errors.New("text section is not available")
	ErrLabelNotFound       = errors.New("label not found")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// Decoder usage errors.
var ErrHeaderNotRead = errors.New("message header has not been read")
