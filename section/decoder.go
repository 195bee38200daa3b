package section

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/arloliu/msbt/endian"
	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/format"
	"github.com/arloliu/msbt/internal/binio"
	"github.com/arloliu/msbt/internal/options"
)

// Section is one decoded section of a bundle.
type Section interface {
	Tag() format.SectionTag
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithLogger sets the logger receiving per-section debug events.
func WithLogger(logger zerolog.Logger) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.logger = logger
	})
}

// Decoder reads the header and sections of a bundle from a seekable stream.
//
// Usage:
//
//	dec, err := section.NewDecoder(f)
//	hdr, err := dec.ReadHeader()
//	for range hdr.SectionCount {
//	    s, err := dec.Next()
//	    ...
//	}
//
// Note: The Decoder is NOT thread-safe. It owns the stream cursor from creation
// until decoding finishes; the stream itself is never closed by the Decoder.
type Decoder struct {
	r      *binio.Reader
	header MessageHeader
	ready  bool
	logger zerolog.Logger
}

// NewDecoder creates a Decoder reading from the current position of rs.
func NewDecoder(rs io.ReadSeeker, opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		r:      binio.NewReader(rs, endian.GetBigEndianEngine()),
		logger: zerolog.Nop(),
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}
	if err := d.r.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// ReadHeader decodes and validates the message header.
// It must be called once before Next.
func (d *Decoder) ReadHeader() (MessageHeader, error) {
	hdr, err := readHeader(d.r)
	if err != nil {
		return MessageHeader{}, err
	}
	d.header = hdr
	d.ready = true

	d.logger.Debug().
		Stringer("byte_order", hdr.ByteOrder).
		Stringer("encoding", hdr.Encoding).
		Uint16("section_count", hdr.SectionCount).
		Uint32("file_size", hdr.FileSize).
		Msg("message header decoded")

	return hdr, nil
}

// Header returns the header decoded by ReadHeader.
func (d *Decoder) Header() MessageHeader {
	return d.header
}

// Next reads a section tag and dispatches to the matching section decoder.
//
// An unrecognized tag is fatal: the body size is only known after the
// tag-specific decoder reads the sub-header, so an unknown section cannot be
// skipped.
func (d *Decoder) Next() (Section, error) {
	if !d.ready {
		return nil, errs.ErrHeaderNotRead
	}

	start := d.r.Pos()
	var tag format.SectionTag
	d.r.ReadFull(tag[:])
	if err := d.r.Err(); err != nil {
		return nil, err
	}

	var (
		s   Section
		err error
	)
	switch tag {
	case format.TagAttribute:
		s, err = readAttributeSection(d.r)
	case format.TagLabel:
		s, err = readLabelSection(d.r)
	case format.TagText:
		s, err = readTextSection(d.r, d.header.Encoding)
	default:
		return nil, fmt.Errorf("%w: tag %q at offset %d", errs.ErrUnsupportedSection, tag[:], start)
	}
	if err != nil {
		return nil, fmt.Errorf("%s section at offset %d: %w", tag, start, err)
	}

	d.logger.Debug().
		Stringer("tag", tag).
		Int64("offset", start).
		Int64("next", d.r.Pos()).
		Msg("section decoded")

	return s, nil
}
