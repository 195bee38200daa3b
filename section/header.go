package section

import (
	"fmt"

	"github.com/arloliu/msbt/endian"
	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/format"
	"github.com/arloliu/msbt/internal/binio"
)

// MessageHeader is the fixed 32-byte header at the start of a bundle.
//
// Layout:
//
//	Bytes  | Field             | Width
//	-------|-------------------|------
//	0-7    | magic "MsgStdBn"  | 8
//	8-9    | byte order marker | 2 (always big-endian)
//	10-11  | reserved          | 2
//	12     | encoding          | 1 (0=UTF-8, 1=UTF-16)
//	13     | reserved          | 1
//	14-15  | section count     | 2
//	16-17  | reserved          | 2
//	18-21  | file size         | 4
//	22-31  | reserved          | 10
type MessageHeader struct {
	ByteOrder    endian.ByteOrder
	Encoding     format.Encoding
	SectionCount uint16
	FileSize     uint32
}

// readHeader decodes the message header from the current position of r.
//
// On success the reader's byte order is switched to the one the header declares.
func readHeader(r *binio.Reader) (MessageHeader, error) {
	var hdr MessageHeader

	var magic [MagicLength]byte
	r.ReadFull(magic[:])
	if err := r.Err(); err != nil {
		return hdr, err
	}
	if magic != Magic {
		return hdr, fmt.Errorf("%w: got %q", errs.ErrInvalidMagic, magic[:])
	}

	// The order is not known yet, so the marker is always read big-endian.
	marker := r.Uint16With(endian.GetBigEndianEngine())
	if err := r.Err(); err != nil {
		return hdr, err
	}
	order, ok := endian.FromMarker(marker)
	if !ok {
		return hdr, fmt.Errorf("%w: 0x%04X", errs.ErrUnsupportedByteOrder, marker)
	}
	hdr.ByteOrder = order
	r.SetEngine(order.Engine())
	r.Skip(headerReservedAfterMarker)

	selector := r.Uint8()
	if err := r.Err(); err != nil {
		return hdr, err
	}
	enc, ok := format.ParseEncoding(selector)
	if !ok {
		return hdr, fmt.Errorf("%w: %d", errs.ErrUnsupportedEncoding, selector)
	}
	hdr.Encoding = enc
	r.Skip(headerReservedAfterEncoding)

	hdr.SectionCount = r.Uint16()
	r.Skip(headerReservedAfterCount)
	hdr.FileSize = r.Uint32()
	r.Skip(headerReservedTrailer)

	return hdr, r.Err()
}
