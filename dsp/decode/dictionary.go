package decode

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dtft/dsp/dtft"
	"github.com/cwbudde/algo-dtft/dsp/encode"
)

// Defaults matching the reference encoding: an 8-bit pattern repeated 10
// times (80 samples) evaluated on a 41-point half-spectrum grid.
const (
	DefaultPoints      = 41
	DefaultRepetitions = 10
)

const entryCount = 256

// Errors returned by dictionary construction and classification.
var (
	ErrSpectrumLength = errors.New("decode: spectrum length does not match dictionary")
	ErrDictionarySize = errors.New("decode: dictionary must have 256 entries")
)

// Dictionary holds one reference squared-magnitude spectrum per possible
// byte value.
type Dictionary struct {
	points  int
	entries [entryCount][]float64
}

// Config controls how NewDictionary derives its reference spectra.
type Config struct {
	// Points is the number of half-spectrum bins. Defaults to
	// DefaultPoints when zero.
	Points int

	// Repetitions is how many times the 8-bit pattern is tiled before
	// evaluation. Defaults to DefaultRepetitions when zero.
	Repetitions int
}

// NewDictionary computes reference spectra for all 256 byte values: each
// value is encoded, its half-spectrum evaluated, and the squared
// magnitudes stored. This is the offline step; the result is immutable.
func NewDictionary(cfg Config) (*Dictionary, error) {
	if cfg.Points == 0 {
		cfg.Points = DefaultPoints
	}

	if cfg.Repetitions == 0 {
		cfg.Repetitions = DefaultRepetitions
	}

	omegas, err := dtft.HalfSpectrum(cfg.Points)
	if err != nil {
		return nil, fmt.Errorf("decode: dictionary grid: %w", err)
	}

	d := &Dictionary{points: cfg.Points}

	for value := range entryCount {
		sig, err := encode.Signal(byte(value), cfg.Repetitions)
		if err != nil {
			return nil, fmt.Errorf("decode: encoding value %#02x: %w", value, err)
		}

		spec, err := dtft.ComputeSpectrum(sig, omegas)
		if err != nil {
			return nil, fmt.Errorf("decode: reference spectrum for %#02x: %w", value, err)
		}

		d.entries[value] = dtft.Power(spec)
	}

	return d, nil
}

// FromSpectra builds a dictionary from externally supplied squared-magnitude
// spectra, one per byte value in index order. All 256 entries must be
// present with the same nonzero length. The spectra are copied.
func FromSpectra(spectra [][]float64) (*Dictionary, error) {
	if len(spectra) != entryCount {
		return nil, fmt.Errorf("%w: got %d", ErrDictionarySize, len(spectra))
	}

	points := len(spectra[0])
	if points == 0 {
		return nil, fmt.Errorf("decode: reference spectra must not be empty")
	}

	d := &Dictionary{points: points}

	for value, spec := range spectra {
		if len(spec) != points {
			return nil, fmt.Errorf("decode: entry %#02x has %d bins, want %d", value, len(spec), points)
		}

		entry := make([]float64, points)
		copy(entry, spec)
		d.entries[value] = entry
	}

	return d, nil
}

// Points returns the number of bins each reference spectrum carries.
func (d *Dictionary) Points() int {
	return d.points
}

// Entry returns a copy of the reference spectrum stored for value.
func (d *Dictionary) Entry(value byte) []float64 {
	out := make([]float64, d.points)
	copy(out, d.entries[value])

	return out
}
