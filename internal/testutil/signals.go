package testutil

// BitPattern parses a string of '0' and '1' characters into a sample
// slice. Any other character panics; this is a test helper.
func BitPattern(s string) []uint8 {
	out := make([]uint8, len(s))

	for i, c := range s {
		switch c {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			panic("testutil: bit pattern must contain only '0' and '1'")
		}
	}

	return out
}

// Repeat tiles pattern reps times into a single signal buffer.
func Repeat(pattern []uint8, reps int) []uint8 {
	out := make([]uint8, 0, len(pattern)*reps)

	for range reps {
		out = append(out, pattern...)
	}

	return out
}

// Ramp returns n samples counting 0, 1, 2, ... wrapping at 256.
func Ramp(n int) []uint8 {
	out := make([]uint8, n)

	for i := range out {
		out[i] = uint8(i)
	}

	return out
}
