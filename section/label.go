package section

import (
	"fmt"

	"github.com/arloliu/msbt/encoding"
	"github.com/arloliu/msbt/format"
	"github.com/arloliu/msbt/internal/binio"
)

// Label binds a symbolic name to an index into the text section.
//
// Index is not range-checked at parse time; resolving it against the text
// section is the consumer's responsibility.
type Label struct {
	Name  string
	Index uint32
}

// LabelSection is the two-level label table of a bundle.
//
// Buckets keep the order they have in the file; a bucket's position is its
// hash slot (see LabelHash), and labels keep their order inside each bucket.
type LabelSection struct {
	buckets [][]Label
}

var _ Section = (*LabelSection)(nil)

// NewLabelSection creates a label section from buckets, copying them.
func NewLabelSection(buckets [][]Label) *LabelSection {
	return &LabelSection{buckets: cloneBuckets(buckets)}
}

// Tag returns format.TagLabel.
func (*LabelSection) Tag() format.SectionTag {
	return format.TagLabel
}

// Buckets returns a copy of the bucket table.
func (s *LabelSection) Buckets() [][]Label {
	return cloneBuckets(s.buckets)
}

// BucketCount returns the number of buckets.
func (s *LabelSection) BucketCount() int {
	return len(s.buckets)
}

// Len returns the total number of labels across all buckets.
func (s *LabelSection) Len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}

	return n
}

// Labels returns every label, in bucket order then record order.
func (s *LabelSection) Labels() []Label {
	out := make([]Label, 0, s.Len())
	for _, b := range s.buckets {
		out = append(out, b...)
	}

	return out
}

// Find looks a label up by name.
//
// The name is hashed to its bucket first. Tables that do not follow the
// hash layout are still searched completely before reporting a miss.
func (s *LabelSection) Find(name string) (Label, bool) {
	if len(s.buckets) == 0 {
		return Label{}, false
	}

	slot := LabelHash(name, len(s.buckets))
	for _, l := range s.buckets[slot] {
		if l.Name == name {
			return l, true
		}
	}

	for i, b := range s.buckets {
		if i == slot {
			continue
		}
		for _, l := range b {
			if l.Name == name {
				return l, true
			}
		}
	}

	return Label{}, false
}

func cloneBuckets(buckets [][]Label) [][]Label {
	out := make([][]Label, len(buckets))
	for i, b := range buckets {
		out[i] = make([]Label, len(b))
		copy(out[i], b)
	}

	return out
}

// bucketDescriptor locates one bucket's records inside the label body.
type bucketDescriptor struct {
	count  uint32
	offset uint32
}

// readLabelSection decodes the label table in two passes: the descriptor table
// is loaded first, then each bucket body is read by seeking to its offset.
func readLabelSection(r *binio.Reader) (*LabelSection, error) {
	h, err := readSubHeader(r)
	if err != nil {
		return nil, err
	}

	descriptors, err := readBucketDescriptors(r, h.entryCount)
	if err != nil {
		return nil, err
	}

	buckets := make([][]Label, 0, len(descriptors))
	for i, desc := range descriptors {
		labels, err := readBucket(r, h, desc)
		if err != nil {
			return nil, fmt.Errorf("bucket %d: %w", i, err)
		}
		buckets = append(buckets, labels)
	}

	if err := h.finish(r); err != nil {
		return nil, err
	}

	return &LabelSection{buckets: buckets}, nil
}

// readBucketDescriptors reads count (record count, offset) pairs from the
// current position.
func readBucketDescriptors(r *binio.Reader, count uint32) ([]bucketDescriptor, error) {
	descriptors := make([]bucketDescriptor, 0, min(count, maxPrealloc))
	for range count {
		desc := bucketDescriptor{
			count:  r.Uint32(),
			offset: r.Uint32(),
		}
		if err := r.Err(); err != nil {
			return nil, err
		}
		descriptors = append(descriptors, desc)
	}

	return descriptors, nil
}

// readBucket reads the records of one bucket, starting at its body offset.
func readBucket(r *binio.Reader, h subHeader, desc bucketDescriptor) ([]Label, error) {
	r.SeekTo(h.at(desc.offset))

	labels := make([]Label, 0, min(desc.count, maxPrealloc))
	var name [encoding.MaxNameLength]byte
	for range desc.count {
		n := r.Uint8()
		r.ReadFull(name[:n])
		index := r.Uint32()
		if err := r.Err(); err != nil {
			return nil, err
		}

		decoded, err := encoding.DecodeUTF8(name[:n])
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", len(labels), err)
		}
		labels = append(labels, Label{Name: decoded, Index: index})
	}

	return labels, nil
}
