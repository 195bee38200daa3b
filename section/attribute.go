package section

import (
	"github.com/arloliu/msbt/format"
	"github.com/arloliu/msbt/internal/binio"
)

// AttributeSection marks the presence of an attribute section.
// Attribute entries have no documented schema and are not decoded.
type AttributeSection struct{}

var _ Section = (*AttributeSection)(nil)

// Tag returns format.TagAttribute.
func (*AttributeSection) Tag() format.SectionTag {
	return format.TagAttribute
}

func readAttributeSection(r *binio.Reader) (*AttributeSection, error) {
	h, err := readSubHeader(r)
	if err != nil {
		return nil, err
	}
	if err := h.finish(r); err != nil {
		return nil, err
	}

	return &AttributeSection{}, nil
}
