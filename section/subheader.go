package section

import "github.com/arloliu/msbt/internal/binio"

// subHeader is the layout shared by every section kind, read right after the tag.
type subHeader struct {
	bodySize   uint32
	entryCount uint32
	// bodyStart anchors every offset inside the section. The entry count is
	// the first field of the body.
	bodyStart int64
}

func readSubHeader(r *binio.Reader) (subHeader, error) {
	var h subHeader

	h.bodySize = r.Uint32()
	r.Skip(subHeaderReserved)
	h.bodyStart = r.Pos()
	h.entryCount = r.Uint32()

	return h, r.Err()
}

// at returns the absolute stream position of a body-relative offset.
func (h subHeader) at(offset uint32) int64 {
	return h.bodyStart + int64(offset)
}

// bodyEnd returns the absolute stream position just past the body.
func (h subHeader) bodyEnd() int64 {
	return h.at(h.bodySize)
}

// finish moves r past the body and its padding.
func (h subHeader) finish(r *binio.Reader) error {
	r.SeekTo(h.bodyEnd())
	r.Align(Alignment)

	return r.Err()
}
