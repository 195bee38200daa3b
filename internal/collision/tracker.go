// Package collision tracks label names and text fingerprints while a catalog
// is built.
package collision

// Tracker detects repeated label names and fingerprint collisions.
//
// A repeated name is not an error: the later label replaces the earlier one,
// and the name is remembered so callers can report it. A fingerprint
// collision (different texts, same hash) only sets a flag; comparisons that
// rely on fingerprints must then fall back to the texts themselves.
type Tracker struct {
	labels       map[string]int    // Name → occurrences
	duplicates   []string          // Names seen more than once, in order of first repeat
	fingerprints map[uint64]string // Fingerprint → first text
	hasCollision bool
}

// NewTracker creates a new tracker.
func NewTracker() *Tracker {
	return &Tracker{
		labels:       make(map[string]int),
		duplicates:   make([]string, 0),
		fingerprints: make(map[uint64]string),
	}
}

// TrackLabel records an occurrence of name and reports whether it was seen before.
func (t *Tracker) TrackLabel(name string) bool {
	n := t.labels[name]
	t.labels[name] = n + 1
	if n == 1 {
		t.duplicates = append(t.duplicates, name)
	}

	return n > 0
}

// TrackText records the fingerprint of text.
func (t *Tracker) TrackText(fingerprint uint64, text string) {
	if existing, exists := t.fingerprints[fingerprint]; exists {
		if existing != text {
			t.hasCollision = true
		}

		return
	}
	t.fingerprints[fingerprint] = text
}

// HasCollision returns true if two different texts shared a fingerprint.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Duplicates returns the names tracked more than once.
func (t *Tracker) Duplicates() []string {
	return t.duplicates
}

// Count returns the number of distinct label names tracked.
func (t *Tracker) Count() int {
	return len(t.labels)
}

// Reset clears all tracked state.
func (t *Tracker) Reset() {
	// Clear maps but preserve capacity to avoid allocations
	clear(t.labels)
	clear(t.fingerprints)
	t.duplicates = t.duplicates[:0]
	t.hasCollision = false
}
