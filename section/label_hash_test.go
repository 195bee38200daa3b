package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelHash(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		// h("a") = 0x61; h("ab") = 0x61*0x492 + 0x62
		require.Equal(t, 0x61%101, LabelHash("a", 101))
		require.Equal(t, (0x61*0x492+0x62)%101, LabelHash("ab", 101))
	})

	t.Run("Wraps at 32 bits", func(t *testing.T) {
		var h uint32
		name := "a_rather_long_label_name_0001"
		for i := 0; i < len(name); i++ {
			h = h*0x492 + uint32(name[i])
		}
		require.Equal(t, int(h%59), LabelHash(name, 59))
	})

	t.Run("Empty name", func(t *testing.T) {
		require.Equal(t, 0, LabelHash("", 7))
	})

	t.Run("Non-positive bucket count", func(t *testing.T) {
		require.Equal(t, 0, LabelHash("abc", 0))
		require.Equal(t, 0, LabelHash("abc", -3))
	})
}

func TestLabelSection_Find(t *testing.T) {
	const buckets = 5
	table := make([][]Label, buckets)
	for i, name := range []string{"Title", "Menu_Start", "Menu_Quit", "Credits"} {
		slot := LabelHash(name, buckets)
		table[slot] = append(table[slot], Label{Name: name, Index: uint32(i)}) //nolint: gosec
	}
	s := NewLabelSection(table)

	l, ok := s.Find("Menu_Quit")
	require.True(t, ok)
	require.Equal(t, Label{Name: "Menu_Quit", Index: 2}, l)

	_, ok = s.Find("Missing")
	require.False(t, ok)

	t.Run("Label outside its hash slot", func(t *testing.T) {
		slot := LabelHash("Stray", buckets)
		misplaced := make([][]Label, buckets)
		misplaced[(slot+1)%buckets] = []Label{{Name: "Stray", Index: 9}}

		l, ok := NewLabelSection(misplaced).Find("Stray")
		require.True(t, ok)
		require.Equal(t, uint32(9), l.Index)
	})

	t.Run("Empty table", func(t *testing.T) {
		_, ok := NewLabelSection(nil).Find("Title")
		require.False(t, ok)
	})
}

func TestLabelSection_Accessors(t *testing.T) {
	s := NewLabelSection([][]Label{
		{{Name: "b", Index: 1}},
		{},
		{{Name: "a", Index: 0}, {Name: "c", Index: 2}},
	})

	require.Equal(t, 3, s.BucketCount())
	require.Equal(t, 3, s.Len())
	require.Equal(t, []Label{{Name: "b", Index: 1}, {Name: "a", Index: 0}, {Name: "c", Index: 2}}, s.Labels())

	// Buckets returns a copy.
	buckets := s.Buckets()
	buckets[0][0].Name = "mutated"
	require.Equal(t, "b", s.Labels()[0].Name)
}

func TestTextSection_Accessors(t *testing.T) {
	s := NewTextSection([]string{"x", "y"})

	require.Equal(t, 2, s.Len())
	texts := s.Texts()
	texts[0] = "mutated"
	v, ok := s.At(0)
	require.True(t, ok)
	require.Equal(t, "x", v)

	_, ok = s.At(-1)
	require.False(t, ok)
}
