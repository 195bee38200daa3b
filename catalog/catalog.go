// Package catalog resolves the labels of a decoded bundle to their texts.
//
// A Catalog is what a reader of a bundle usually wants: a sorted mapping from
// label name to text. Building one follows each label's index into the text
// section. Labels whose index is out of range do not abort the build; they are
// collected as warnings and the remaining labels are still resolved.
//
// Each entry carries an xxHash64 fingerprint of its text, which Diff uses to
// compare two versions of a bundle.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/msbt"
	"github.com/arloliu/msbt/errs"
	"github.com/arloliu/msbt/internal/collision"
	"github.com/arloliu/msbt/internal/hash"
	"github.com/arloliu/msbt/section"
)

// Entry is one resolved label.
type Entry struct {
	Label       string `json:"label"`
	Index       uint32 `json:"index"`
	Text        string `json:"text"`
	Fingerprint uint64 `json:"fingerprint"`
}

// Warning reports a label whose index points past the end of the text section.
type Warning struct {
	Label     string `json:"label"`
	Index     uint32 `json:"index"`
	Available int    `json:"available"`
}

func (w Warning) String() string {
	return fmt.Sprintf("index out of range: the index of %s is %d but only %d items", w.Label, w.Index, w.Available)
}

// Catalog is an immutable, name-sorted set of resolved labels.
type Catalog struct {
	entries    []Entry
	warnings   []Warning
	duplicates []string
	fpClash    bool
}

// Build resolves every label of msg. Both a label and a text section are required.
func Build(msg *msbt.Message) (*Catalog, error) {
	if !msg.HasLabels() {
		return nil, errs.ErrLabelSectionMissing
	}
	if !msg.HasTexts() {
		return nil, errs.ErrTextSectionMissing
	}

	return FromSections(msg.LabelSection(), msg.TextSection()), nil
}

// FromSections resolves labels against texts.
//
// Labels are visited in bucket order; when a name occurs more than once the
// last occurrence wins.
func FromSections(labels *section.LabelSection, texts *section.TextSection) *Catalog {
	c := &Catalog{}
	byName := make(map[string]Entry, labels.Len())
	tracker := collision.NewTracker()

	for _, l := range labels.Labels() {
		tracker.TrackLabel(l.Name)
		text, ok := texts.At(int(l.Index))
		if !ok {
			c.warnings = append(c.warnings, Warning{Label: l.Name, Index: l.Index, Available: texts.Len()})
			continue
		}
		fp := hash.Fingerprint(text)
		tracker.TrackText(fp, text)
		byName[l.Name] = Entry{
			Label:       l.Name,
			Index:       l.Index,
			Text:        text,
			Fingerprint: fp,
		}
	}
	c.duplicates = slices.Clone(tracker.Duplicates())
	c.fpClash = tracker.HasCollision()

	c.entries = make([]Entry, 0, len(byName))
	for _, e := range byName {
		c.entries = append(c.entries, e)
	}
	slices.SortFunc(c.entries, func(a, b Entry) int {
		return strings.Compare(a.Label, b.Label)
	})

	return c
}

// Entries returns the resolved entries sorted by label name.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Warnings returns the labels that could not be resolved, in bucket order.
func (c *Catalog) Warnings() []Warning {
	return slices.Clone(c.warnings)
}

// Duplicates returns the label names that occur more than once in the
// bundle. Only the last occurrence of each is kept in the catalog.
func (c *Catalog) Duplicates() []string {
	return slices.Clone(c.duplicates)
}

// HasFingerprintCollision reports whether two different texts share a
// fingerprint.
func (c *Catalog) HasFingerprintCollision() bool {
	return c.fpClash
}

// Len returns the number of resolved entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the entry for label.
func (c *Catalog) Get(label string) (Entry, bool) {
	i, found := slices.BinarySearchFunc(c.entries, label, func(e Entry, name string) int {
		return strings.Compare(e.Label, name)
	})
	if !found {
		return Entry{}, false
	}

	return c.entries[i], true
}

// Map returns the resolved entries as a label to text map.
func (c *Catalog) Map() map[string]string {
	m := make(map[string]string, len(c.entries))
	for _, e := range c.entries {
		m[e.Label] = e.Text
	}

	return m
}
