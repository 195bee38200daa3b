// Package section decodes the header and sections of a message bundle.
//
// # Bundle Structure
//
// A bundle is a fixed header followed by a variable number of tagged sections:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Message Header (32 bytes, fixed)                        │
//	│  - Magic "MsgStdBn" (8 bytes)                           │
//	│  - Byte order marker (2 bytes, read big-endian)         │
//	│  - Encoding, section count, file size                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Section (repeated section-count times)                  │
//	│  - Tag (4 bytes): "ATR1" | "LBL1" | "TXT2"              │
//	│  - Body size (4 bytes)                                  │
//	│  - Reserved (8 bytes)                                   │
//	│  - Body (body-size bytes, starts with the entry count)  │
//	│  - Padding (0-15 bytes, to a 16-byte boundary)          │
//	└─────────────────────────────────────────────────────────┘
//
// All multi-byte integers use the byte order selected by the header marker:
// 0xFFFE selects little-endian, 0xFEFF big-endian.
//
// # Body Start
//
// The stream position right after the reserved sub-header bytes is the body
// start. Every offset inside a section body is relative to it. Padding bytes
// after a body are skipped, never validated.
//
// # Label Section
//
//	entry count N (4 bytes)
//	N × { record count (4 bytes), record offset (4 bytes) }
//	records: { name length (1 byte), name (UTF-8), text index (4 bytes) }
//
// # Text Section
//
//	entry count N (4 bytes)
//	N × text offset (4 bytes)
//	text data
//
// Text i spans [offset[i], offset[i+1]); the last text ends at the body size.
//
// # Thread Safety
//
// Decoded sections are immutable and safe for concurrent use. A Decoder is
// not; it owns the cursor of its stream.
package section
