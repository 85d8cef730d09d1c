// Package decode recovers byte values from computed DTFT spectra by
// nearest-neighbor matching against a precomputed reference dictionary.
//
// The dictionary maps every possible byte (0..255) to the squared-magnitude
// spectrum its encoded waveform produces on a fixed half-spectrum grid.
// Classification scans all 256 entries and keeps the one with the smallest
// squared Euclidean distance; the square root is omitted because it is
// monotonic and cannot change which entry is closest. Ties keep the
// lowest byte value because the comparison is strict less-than.
//
// Dictionaries are immutable after construction and safe for concurrent
// use.
package decode
