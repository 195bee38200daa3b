package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/format"
)

// Compressor compresses a whole bundle into a container.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor unwraps a container produced by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with incompatible algorithm
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// maxDecodedSize bounds the memory a single container may expand to.
const maxDecodedSize = 256 << 20

var (
	zstdMagic         = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic     = []byte{0x04, 0x22, 0x4D, 0x18}
	s2StreamMagic     = []byte("\xff\x06\x00\x00S2sTwO")
	snappyStreamMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Detect identifies the container format of data by its magic bytes.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4FrameMagic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2StreamMagic), bytes.HasPrefix(data, snappyStreamMagic):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// Decompress detects the container format of data and unwraps it.
// Uncompressed data is returned unchanged.
func Decompress(data []byte) ([]byte, format.CompressionType, error) {
	ctype := Detect(data)
	codec, err := GetCodec(ctype)
	if err != nil {
		return nil, ctype, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, ctype, err
	}

	return out, ctype, nil
}
