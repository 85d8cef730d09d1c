// Package trig provides a precomputed sine/cosine lookup table with linear
// interpolation for fast trigonometric evaluation in hot DSP loops.
//
// A Table holds sine and cosine samples evenly spaced over one full period
// [0, 2*pi). Lookups map an arbitrary angle onto a continuous table index,
// floor it to the nearest lower entry, and interpolate linearly to the next
// entry. The table size must be a power of two so that index wrapping is a
// single bitmask.
//
// # Accuracy
//
// For a table of M entries the worst-case linear interpolation error is on
// the order of (2*pi/M)^2/8, since |sin''| and |cos''| are bounded by 1.
// The default 1024-entry table keeps the error below 1e-5, which is
// sufficient for short direct DTFT evaluations. For IEEE-accurate results
// use math.Sin and math.Cos instead.
//
// Tables are immutable after construction and safe for concurrent use.
package trig
