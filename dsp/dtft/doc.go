// Package dtft evaluates the Discrete-Time Fourier Transform of short
// integer-valued signals at a fixed grid of frequencies.
//
// The package intentionally does not implement an FFT. Evaluation is direct
// O(N*K) accumulation per bin, which for the short signals this package
// targets (tens of samples, tens of bins) is simpler and fast enough, and
// places no power-of-two constraint on either N or K.
//
// Per bin the accumulation is
//
//	X(w) = sum_n x[n] * (cos(-w*n) + i*sin(-w*n))
//
// with the angle advanced incrementally by -w per sample and looked up in a
// shared trigonometric table (package trig). The incremental update trades
// a multiply for an add and introduces a bounded drift on the order of
// N times the table's interpolation error.
//
// # Split evaluation
//
// An Engine owns a persistent secondary worker goroutine. A split
// evaluation partitions the bin range [0, K) into two contiguous halves:
// the calling goroutine computes the first half while the worker computes
// the second, both writing disjoint index ranges of the same output slice.
// The handoff is a lock-free single-slot mailbox (internal/spsc); the
// signal must not be mutated until the call returns.
package dtft
