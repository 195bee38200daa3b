// Package msbt decodes message bundles: binary containers that store localized
// text keyed by symbolic labels.
//
// A bundle is a 32-byte header followed by tagged sections. Three section kinds
// are understood:
//
//   - ATR1: attribute metadata. Its entries have no documented schema, so only
//     its presence is recorded.
//   - LBL1: a hash table of labels, each naming an index into the text section.
//   - TXT2: the texts, decoded as UTF-8 or UTF-16 as the header declares.
//
// # Basic Usage
//
// Parsing a file from disk, compressed or not:
//
//	msg, err := msbt.Open("Common.msbt.zs")
//	if err != nil {
//	    return err
//	}
//	text, err := msg.Lookup("Menu_Start")
//
// Parsing from any seekable stream:
//
//	msg, err := msbt.Parse(r, msbt.WithExpectedSize(size))
//
// # Validation
//
// When the input length is known it must be a multiple of 16 bytes and equal
// to the file size declared in the header. Every other fault (bad magic,
// unknown byte order, encoding or section tag, malformed text, short reads)
// aborts the parse; no partial Message is ever returned. Errors wrap the
// sentinels of package errs.
//
// # Package Structure
//
// This package wraps the section package, which decodes the individual
// sections. Use section directly to stream sections one by one.
package msbt

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/msbt/compress"
	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/format"
	"github.com/arloliu/msbt/section"
)

// Message is a decoded bundle. Each section is nil when the bundle did not
// contain it. A Message is immutable and safe for concurrent use.
type Message struct {
	attributes *section.AttributeSection
	labels     *section.LabelSection
	texts      *section.TextSection
}

// AttributeSection returns the attribute section, or nil.
func (m *Message) AttributeSection() *section.AttributeSection {
	return m.attributes
}

// LabelSection returns the label section, or nil.
func (m *Message) LabelSection() *section.LabelSection {
	return m.labels
}

// TextSection returns the text section, or nil.
func (m *Message) TextSection() *section.TextSection {
	return m.texts
}

// HasAttributes reports whether the bundle contained an attribute section.
func (m *Message) HasAttributes() bool {
	return m.attributes != nil
}

// HasLabels reports whether the bundle contained a label section.
func (m *Message) HasLabels() bool {
	return m.labels != nil
}

// HasTexts reports whether the bundle contained a text section.
func (m *Message) HasTexts() bool {
	return m.texts != nil
}

// Lookup returns the text the named label points to.
func (m *Message) Lookup(name string) (string, error) {
	if m.labels == nil {
		return "", errs.ErrLabelSectionMissing
	}
	if m.texts == nil {
		return "", errs.ErrTextSectionMissing
	}

	label, ok := m.labels.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrLabelNotFound, name)
	}
	text, ok := m.texts.At(int(label.Index))
	if !ok {
		return "", fmt.Errorf("%w: label %q has index %d but only %d texts",
			errs.ErrIndexOutOfRange, name, label.Index, m.texts.Len())
	}

	return text, nil
}

// Parse decodes a bundle from the current position of rs.
//
// Section padding is computed from absolute stream offsets, so the bundle
// must start at a stream offset that is a multiple of 16 (offset 0 for a
// plain file). A bundle embedded at any other offset fails to decode.
//
// The size checks only run when WithExpectedSize is given. The stream is never
// closed by Parse.
func Parse(rs io.ReadSeeker, opts ...ParseOption) (*Message, error) {
	cfg, err := newParseConfig(opts...)
	if err != nil {
		return nil, err
	}

	return parse(rs, cfg)
}

// ParseBytes decodes a bundle held in memory. The input length is checked
// against the header, and compressed containers are unwrapped first unless
// WithDecompression(false) is given.
func ParseBytes(data []byte, opts ...ParseOption) (*Message, error) {
	cfg, err := newParseConfig(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.decompress {
		var ctype format.CompressionType
		data, ctype, err = compress.Decompress(data)
		if err != nil {
			return nil, err
		}
		if ctype != format.CompressionNone {
			cfg.logger.Debug().
				Stringer("compression", ctype).
				Int("size", len(data)).
				Msg("bundle decompressed")
		}
	}

	if cfg.expectedSize < 0 {
		cfg.expectedSize = int64(len(data))
	}

	return parse(bytes.NewReader(data), cfg)
}

// ParseFile decodes a bundle from an open file, using the file's size for the
// size checks. The file is not closed.
func ParseFile(f *os.File, opts ...ParseOption) (*Message, error) {
	cfg, err := newParseConfig(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.expectedSize < 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		cfg.expectedSize = info.Size()
	}

	return parse(f, cfg)
}

// Open reads and decodes the bundle at path.
func Open(path string, opts ...ParseOption) (*Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseBytes(data, opts...)
}

func parse(rs io.ReadSeeker, cfg *parseConfig) (*Message, error) {
	size, checkSize := cfg.sizeToCheck()
	if checkSize && size%section.Alignment != 0 {
		return nil, fmt.Errorf("%w: input is %d bytes", errs.ErrUnalignedInput, size)
	}

	dec, err := section.NewDecoder(rs, section.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	hdr, err := dec.ReadHeader()
	if err != nil {
		return nil, err
	}
	if checkSize && int64(hdr.FileSize) != size {
		return nil, fmt.Errorf("%w: expect %d bytes but actual %d bytes",
			errs.ErrFileSizeMismatch, hdr.FileSize, size)
	}

	msg := &Message{}
	for range hdr.SectionCount {
		s, err := dec.Next()
		if err != nil {
			return nil, err
		}

		// A repeated tag replaces the earlier section.
		switch v := s.(type) {
		case *section.AttributeSection:
			msg.attributes = v
		case *section.LabelSection:
			msg.labels = v
		case *section.TextSection:
			msg.texts = v
		}
	}

	return msg, nil
}
