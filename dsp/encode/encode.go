// Package encode expands byte values into the repeating binary waveforms
// analyzed by dsp/dtft and dsp/decode.
//
// A byte is transmitted as its 8-bit pattern, most significant bit first,
// repeated a fixed number of times. Repetition concentrates the spectral
// energy of the pattern at multiples of its fundamental, which is what
// makes the nearest-neighbor spectral match in dsp/decode robust.
package encode

import (
	"errors"
	"fmt"
)

// PatternBits is the number of samples produced per encoded byte.
const PatternBits = 8

// ErrEmptyPattern is returned when a pattern to repeat has no samples.
var ErrEmptyPattern = errors.New("encode: empty pattern")

// Bits expands value into its 8-bit pattern, most significant bit first.
func Bits(value byte) []uint8 {
	out := make([]uint8, PatternBits)

	for i := range out {
		out[i] = (value >> (PatternBits - 1 - i)) & 1
	}

	return out
}

// Repeat tiles pattern reps times into one contiguous signal buffer.
func Repeat(pattern []uint8, reps int) ([]uint8, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	if reps < 1 {
		return nil, fmt.Errorf("encode: repetitions must be >= 1: %d", reps)
	}

	out := make([]uint8, 0, len(pattern)*reps)
	for range reps {
		out = append(out, pattern...)
	}

	return out, nil
}

// Signal encodes value as its bit pattern repeated reps times.
func Signal(value byte, reps int) ([]uint8, error) {
	return Repeat(Bits(value), reps)
}
