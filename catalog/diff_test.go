package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/msbt/section"
)

func catalogOf(pairs ...string) *Catalog {
	var bucket []section.Label
	texts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		bucket = append(bucket, section.Label{Name: pairs[i], Index: uint32(len(texts))}) //nolint: gosec
		texts = append(texts, pairs[i+1])
	}

	return FromSections(section.NewLabelSection([][]section.Label{bucket}), section.NewTextSection(texts))
}

func TestDiff(t *testing.T) {
	old := catalogOf("a", "1", "b", "2", "c", "3")
	cur := catalogOf("b", "2", "c", "three", "d", "4")

	changes := Diff(old, cur)
	require.Equal(t, []Change{
		{Kind: Removed, Label: "a", OldText: "1"},
		{Kind: Modified, Label: "c", OldText: "3", NewText: "three"},
		{Kind: Added, Label: "d", NewText: "4"},
	}, changes)
}

func TestDiff_Identical(t *testing.T) {
	c := catalogOf("a", "1", "b", "2")
	require.Empty(t, Diff(c, c))
}

func TestDiff_Empty(t *testing.T) {
	empty := catalogOf()
	full := catalogOf("x", "1")

	require.Equal(t, []Change{{Kind: Added, Label: "x", NewText: "1"}}, Diff(empty, full))
	require.Equal(t, []Change{{Kind: Removed, Label: "x", OldText: "1"}}, Diff(full, empty))
}

func TestChangeKind_String(t *testing.T) {
	require.Equal(t, "added", Added.String())
	require.Equal(t, "removed", Removed.String())
	require.Equal(t, "modified", Modified.String())
	require.Equal(t, "unknown", ChangeKind(0).String())
}

func TestChangeKind_MarshalText(t *testing.T) {
	b, err := Modified.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "modified", string(b))
}
