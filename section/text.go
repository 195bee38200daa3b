package section

import (
	"fmt"

	"github.com/arloliu/msbt/encoding"
	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/format"
	"github.com/arloliu/msbt/internal/binio"
	"github.com/arloliu/msbt/internal/pool"
)

// TextSection holds the decoded texts of a bundle, in offset-table order.
// Trailing NUL characters are removed from every text.
type TextSection struct {
	texts []string
}

var _ Section = (*TextSection)(nil)

// NewTextSection creates a text section from texts, copying them.
func NewTextSection(texts []string) *TextSection {
	return &TextSection{texts: append([]string(nil), texts...)}
}

// Tag returns format.TagText.
func (*TextSection) Tag() format.SectionTag {
	return format.TagText
}

// Texts returns a copy of the decoded texts.
func (s *TextSection) Texts() []string {
	return append([]string(nil), s.texts...)
}

// Len returns the number of texts.
func (s *TextSection) Len() int {
	return len(s.texts)
}

// At returns the text at index i, reporting false when i is out of range.
func (s *TextSection) At(i int) (string, bool) {
	if i < 0 || i >= len(s.texts) {
		return "", false
	}

	return s.texts[i], true
}

func readTextSection(r *binio.Reader, enc format.Encoding) (*TextSection, error) {
	h, err := readSubHeader(r)
	if err != nil {
		return nil, err
	}

	scratch, release := pool.GetUint32Slice(int(min(h.entryCount, maxPrealloc)) + 1)
	defer release()

	offsets, err := readTextOffsets(r, h, scratch[:0])
	if err != nil {
		return nil, err
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	texts := make([]string, 0, len(offsets)-1)
	for i := 0; i+1 < len(offsets); i++ {
		start, end := offsets[i], offsets[i+1]
		if end < start {
			return nil, fmt.Errorf("%w: text %d spans [%d, %d)", errs.ErrInvalidOffset, i, start, end)
		}

		buf.Reset()
		r.SeekTo(h.at(start))
		r.CopyN(buf, int64(end-start))
		if err := r.Err(); err != nil {
			return nil, err
		}

		text, err := encoding.Decode(buf.Bytes(), enc, r.Engine())
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		texts = append(texts, encoding.TrimNUL(text))
	}

	if err := h.finish(r); err != nil {
		return nil, err
	}

	return &TextSection{texts: texts}, nil
}

// readTextOffsets appends the offset table to offsets, followed by the body
// size as the closing boundary of the last text.
func readTextOffsets(r *binio.Reader, h subHeader, offsets []uint32) ([]uint32, error) {
	for range h.entryCount {
		offset := r.Uint32()
		if err := r.Err(); err != nil {
			return nil, err
		}
		offsets = append(offsets, offset)
	}

	return append(offsets, h.bodySize), nil
}
