package catalog

import "strings"

// ChangeKind classifies a difference between two catalogs.
type ChangeKind uint8

const (
	Added ChangeKind = iota + 1
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Change is one label that differs between two catalogs.
type Change struct {
	Kind    ChangeKind `json:"kind"`
	Label   string     `json:"label"`
	OldText string     `json:"old,omitempty"`
	NewText string     `json:"new,omitempty"`
}

// Diff lists the labels added, removed or modified between old and new,
// sorted by label name. Texts are compared by fingerprint.
func Diff(old, new *Catalog) []Change {
	var changes []Change
	i, j := 0, 0
	for i < len(old.entries) || j < len(new.entries) {
		switch {
		case j >= len(new.entries):
			changes = append(changes, removed(old.entries[i]))
			i++
		case i >= len(old.entries):
			changes = append(changes, added(new.entries[j]))
			j++
		default:
			a, b := old.entries[i], new.entries[j]
			switch cmp := strings.Compare(a.Label, b.Label); {
			case cmp < 0:
				changes = append(changes, removed(a))
				i++
			case cmp > 0:
				changes = append(changes, added(b))
				j++
			default:
				if a.Fingerprint != b.Fingerprint || a.Text != b.Text {
					changes = append(changes, Change{Kind: Modified, Label: a.Label, OldText: a.Text, NewText: b.Text})
				}
				i++
				j++
			}
		}
	}

	return changes
}

func added(e Entry) Change {
	return Change{Kind: Added, Label: e.Label, NewText: e.Text}
}

func removed(e Entry) Change {
	return Change{Kind: Removed, Label: e.Label, OldText: e.Text}
}
