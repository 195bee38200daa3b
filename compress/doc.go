// Package compress unwraps compressed bundle containers.
//
// Bundles are frequently shipped compressed as a whole (for example the ".zs"
// Zstandard files found next to uncompressed ones). This package recognizes a
// container by its leading magic bytes and returns the raw bundle:
//
//	Format  | Magic (hex)                  | format.CompressionType
//	--------|------------------------------|------------------------
//	Zstd    | 28 B5 2F FD                  | CompressionZstd
//	LZ4     | 04 22 4D 18                  | CompressionLZ4
//	S2      | FF 06 00 00 "S2sTwO"         | CompressionS2
//	Snappy  | FF 06 00 00 "sNaPpY"         | CompressionS2
//
// Anything else is treated as an uncompressed bundle.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// All codecs produce and consume self-describing stream formats, so any output
// of Compress is recognized by Detect.
//
// # Zstd Backends
//
// The default Zstd codec is the pure Go github.com/klauspost/compress/zstd.
// Building with cgo and the "gozstd" tag switches to github.com/valyala/gozstd.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use; internal
// encoders and decoders are pooled.
package compress
