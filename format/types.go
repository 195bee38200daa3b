package format

type (
	Encoding        uint8
	CompressionType uint8
	SectionTag      [4]byte
)

const (
	EncodingUTF8  Encoding = 0x0 // EncodingUTF8 stores texts as UTF-8 bytes.
	EncodingUTF16 Encoding = 0x1 // EncodingUTF16 stores texts as UTF-16 code units in the file byte order.

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed container.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 (or Snappy) stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame.
)

var (
	TagAttribute = SectionTag{'A', 'T', 'R', '1'} // TagAttribute identifies the attribute section.
	TagLabel     = SectionTag{'L', 'B', 'L', '1'} // TagLabel identifies the label section.
	TagText      = SectionTag{'T', 'X', 'T', '2'} // TagText identifies the text section.
)

// ParseEncoding maps the header encoding selector to an Encoding.
func ParseEncoding(b uint8) (Encoding, bool) {
	switch Encoding(b) {
	case EncodingUTF8, EncodingUTF16:
		return Encoding(b), true
	default:
		return 0, false
	}
}

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16:
		return "UTF-16"
	default:
		return "Unknown"
	}
}

func (t SectionTag) String() string {
	return string(t[:])
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
