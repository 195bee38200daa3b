// Package bundle assembles message bundle bytes for tests.
package bundle

import (
	"unicode/utf16"

	"github.com/arloliu/msbt/endian"
	"github.com/arloliu/msbt/format"
)

// Label is one label record of a bucket.
type Label struct {
	Name  string
	Index uint32
}

// Builder assembles a bundle section by section. Header fields are derived
// from the added sections unless overridden.
type Builder struct {
	order    endian.ByteOrder
	engine   endian.EndianEngine
	encoding uint8
	magic    [8]byte
	marker   uint16
	sections [][]byte

	sectionCount *uint16
	fileSize     *uint32
}

// New creates a builder for the given byte order and encoding.
func New(order endian.ByteOrder, enc format.Encoding) *Builder {
	return &Builder{
		order:    order,
		engine:   order.Engine(),
		encoding: uint8(enc),
		magic:    [8]byte{'M', 's', 'g', 'S', 't', 'd', 'B', 'n'},
		marker:   order.Marker(),
	}
}

// Magic overrides the header magic.
func (b *Builder) Magic(magic [8]byte) *Builder {
	b.magic = magic
	return b
}

// Marker overrides the byte order marker.
func (b *Builder) Marker(marker uint16) *Builder {
	b.marker = marker
	return b
}

// EncodingByte overrides the encoding selector.
func (b *Builder) EncodingByte(v uint8) *Builder {
	b.encoding = v
	return b
}

// SectionCount overrides the declared section count.
func (b *Builder) SectionCount(n uint16) *Builder {
	b.sectionCount = &n
	return b
}

// FileSize overrides the declared file size.
func (b *Builder) FileSize(n uint32) *Builder {
	b.fileSize = &n
	return b
}

// Raw appends a section with an arbitrary tag. The body is prefixed with the
// entry count.
func (b *Builder) Raw(tag string, entryCount uint32, payload []byte) *Builder {
	body := b.engine.AppendUint32(nil, entryCount)
	body = append(body, payload...)

	return b.RawBody(tag, uint32(len(body)), body) //nolint: gosec
}

// RawBody appends a section whose body bytes and declared body size are given
// verbatim; the body must already start with the entry count.
func (b *Builder) RawBody(tag string, bodySize uint32, body []byte) *Builder {
	sec := append([]byte(nil), tag...)
	sec = b.engine.AppendUint32(sec, bodySize)
	sec = append(sec, make([]byte, 8)...)
	sec = append(sec, body...)
	sec = append(sec, make([]byte, padding(len(sec)))...)
	b.sections = append(b.sections, sec)

	return b
}

// Attribute appends an attribute section with opaque payload bytes.
func (b *Builder) Attribute(entryCount uint32, payload []byte) *Builder {
	return b.Raw("ATR1", entryCount, payload)
}

// Labels appends a label section with one bucket per element of buckets.
func (b *Builder) Labels(buckets ...[]Label) *Builder {
	descriptorEnd := 4 + 8*len(buckets)

	var descriptors, records []byte
	for _, bucket := range buckets {
		count, offset := uint32(len(bucket)), uint32(descriptorEnd+len(records)) //nolint: gosec
		descriptors = b.engine.AppendUint32(descriptors, count)
		descriptors = b.engine.AppendUint32(descriptors, offset)
		for _, l := range bucket {
			records = append(records, byte(len(l.Name)))
			records = append(records, l.Name...)
			records = b.engine.AppendUint32(records, l.Index)
		}
	}

	return b.Raw("LBL1", uint32(len(buckets)), append(descriptors, records...)) //nolint: gosec
}

// Texts appends a text section, encoding each text with the builder's
// encoding and a trailing NUL terminator.
func (b *Builder) Texts(texts ...string) *Builder {
	encoded := make([][]byte, len(texts))
	for i, t := range texts {
		encoded[i] = b.EncodeText(t + "\x00")
	}

	return b.TextEntries(encoded...)
}

// TextEntries appends a text section from already encoded entries.
func (b *Builder) TextEntries(entries ...[]byte) *Builder {
	dataStart := 4 + 4*len(entries)

	var offsets, data []byte
	for _, e := range entries {
		offsets = b.engine.AppendUint32(offsets, uint32(dataStart+len(data))) //nolint: gosec
		data = append(data, e...)
	}

	return b.Raw("TXT2", uint32(len(entries)), append(offsets, data...)) //nolint: gosec
}

// EncodeText encodes s with the builder's encoding and byte order.
func (b *Builder) EncodeText(s string) []byte {
	if format.Encoding(b.encoding) != format.EncodingUTF16 {
		return []byte(s)
	}

	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = b.engine.AppendUint16(out, u)
	}

	return out
}

// Bytes returns the assembled bundle.
func (b *Builder) Bytes() []byte {
	size := 32
	for _, s := range b.sections {
		size += len(s)
	}

	count := uint16(len(b.sections)) //nolint: gosec
	if b.sectionCount != nil {
		count = *b.sectionCount
	}
	fileSize := uint32(size) //nolint: gosec
	if b.fileSize != nil {
		fileSize = *b.fileSize
	}

	out := make([]byte, 0, size)
	out = append(out, b.magic[:]...)
	out = endian.GetBigEndianEngine().AppendUint16(out, b.marker)
	out = append(out, 0, 0)
	out = append(out, b.encoding, 0)
	out = b.engine.AppendUint16(out, count)
	out = append(out, 0, 0)
	out = b.engine.AppendUint32(out, fileSize)
	out = append(out, make([]byte, 10)...)

	for _, s := range b.sections {
		out = append(out, s...)
	}

	return out
}

func padding(n int) int {
	if rem := n % 16; rem != 0 {
		return 16 - rem
	}

	return 0
}
