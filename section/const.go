package section

// Sizes and offsets in the bundle layout.
const (
	HeaderSize    = 32 // fixed message header size in bytes
	MagicLength   = 8  // length of the header magic
	TagLength     = 4  // length of a section tag
	SubHeaderSize = 12 // body size (4) + reserved (8); the entry count opens the body
	Alignment     = 16 // every section body is padded to this boundary

	headerReservedAfterMarker   = 2
	headerReservedAfterEncoding = 1
	headerReservedAfterCount    = 2
	headerReservedTrailer       = 10
	subHeaderReserved           = 8

	// maxPrealloc caps slice preallocation driven by counts read from the stream.
	maxPrealloc = 1024
)

// Magic is the identifier every message bundle starts with.
var Magic = [MagicLength]byte{'M', 's', 'g', 'S', 't', 'd', 'B', 'n'}
