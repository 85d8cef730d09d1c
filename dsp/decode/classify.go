package decode

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dtft/dsp/dtft"
)

// Match pairs a candidate byte value with its squared Euclidean distance
// from the classified spectrum.
type Match struct {
	Value    byte
	Distance float64
}

// Euclidean returns the non-squared Euclidean distance, for reporting.
func (m Match) Euclidean() float64 {
	return mathSqrt(m.Distance)
}

// Classify finds the dictionary entry closest to the given
// squared-magnitude spectrum. power must have exactly Points bins or
// ErrSpectrumLength is returned; a length mismatch never yields a byte
// value, since any byte would be ambiguous with a legitimate match.
//
// Ties keep the lowest byte value: the scan runs 0..255 and only a
// strictly smaller distance replaces the current best.
func (d *Dictionary) Classify(power []float64) (Match, error) {
	if len(power) != d.points {
		return Match{}, fmt.Errorf("%w: got %d bins, want %d", ErrSpectrumLength, len(power), d.points)
	}

	best := Match{Distance: math.Inf(1)}

	for value := range entryCount {
		dist := sqDistance(power, d.entries[value])
		if dist < best.Distance {
			best = Match{Value: byte(value), Distance: dist}
		}
	}

	return best, nil
}

// ClassifySpectrum derives squared magnitudes from a complex spectrum and
// classifies them.
func (d *Dictionary) ClassifySpectrum(spec []complex128) (Match, error) {
	if len(spec) != d.points {
		return Match{}, fmt.Errorf("%w: got %d bins, want %d", ErrSpectrumLength, len(spec), d.points)
	}

	return d.Classify(dtft.Power(spec))
}

// TopMatches returns the n closest dictionary entries in ascending
// distance order. Reporting only; Classify is the authoritative decoder.
// n is clamped to [1, 256].
func (d *Dictionary) TopMatches(power []float64, n int) ([]Match, error) {
	if len(power) != d.points {
		return nil, fmt.Errorf("%w: got %d bins, want %d", ErrSpectrumLength, len(power), d.points)
	}

	if n < 1 {
		n = 1
	}

	if n > entryCount {
		n = entryCount
	}

	all := make([]Match, entryCount)
	for value := range entryCount {
		all[value] = Match{
			Value:    byte(value),
			Distance: sqDistance(power, d.entries[value]),
		}
	}

	// Partial selection: only the first n positions need to be ordered.
	for i := range n {
		minIdx := i
		for j := i + 1; j < entryCount; j++ {
			if all[j].Distance < all[minIdx].Distance {
				minIdx = j
			}
		}

		all[i], all[minIdx] = all[minIdx], all[i]
	}

	return all[:n], nil
}

// sqDistance is the squared Euclidean distance between two equal-length
// spectra.
func sqDistance(a, b []float64) float64 {
	sum := 0.0

	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return sum
}
