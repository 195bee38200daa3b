package section

// labelHashMultiplier is the multiplier of the label bucket hash.
const labelHashMultiplier = 0x492

// LabelHash returns the bucket slot of name in a table of buckets slots.
//
// The hash multiplies by 0x492 and adds each byte of the name, wrapping at
// 32 bits. It returns 0 when buckets is not positive.
func LabelHash(name string, buckets int) int {
	if buckets <= 0 {
		return 0
	}

	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*labelHashMultiplier + uint32(name[i])
	}

	return int(h % uint32(buckets)) //nolint: gosec
}
