package dtft

import (
	"errors"

	"github.com/cwbudde/algo-dtft/dsp/trig"
)

// Errors returned by evaluation functions.
var (
	ErrEmptySignal  = errors.New("dtft: empty signal")
	ErrEmptyGrid    = errors.New("dtft: empty frequency grid")
	ErrEngineClosed = errors.New("dtft: engine closed")
	ErrWorkerBusy   = errors.New("dtft: split worker busy with a previous call")
	ErrTimeout      = errors.New("dtft: split wait timed out")
)

// ComputeBin evaluates one DTFT bin of x at angular frequency omega using
// the shared default trigonometric table.
func ComputeBin(x []uint8, omega float64) complex128 {
	return computeBin(trig.Default(), x, omega)
}

// ComputeSpectrum evaluates one DTFT bin per grid frequency, in grid
// order, using the shared default trigonometric table.
//
// The call either returns a complete spectrum of len(omegas) bins or an
// error; it never returns a partial result.
func ComputeSpectrum(x []uint8, omegas []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	if len(omegas) == 0 {
		return nil, ErrEmptyGrid
	}

	lut := trig.Default()
	out := make([]complex128, len(omegas))

	for k, omega := range omegas {
		out[k] = computeBin(lut, x, omega)
	}

	return out, nil
}

// computeBin accumulates real and imaginary parts over all samples with an
// incrementally advanced negated angle. The inner loop is unrolled four
// ways; samples are still consumed in strictly increasing order, so the
// rounding behavior is deterministic for a given signal and frequency.
func computeBin(lut *trig.Table, x []uint8, omega float64) complex128 {
	var re, im float64

	negOmega := -omega
	angle := 0.0
	n := 0

	for unrolled := len(x) &^ 3; n < unrolled; n += 4 {
		s0, c0 := lut.SinCos(angle)
		s1, c1 := lut.SinCos(angle + negOmega)
		s2, c2 := lut.SinCos(angle + 2*negOmega)
		s3, c3 := lut.SinCos(angle + 3*negOmega)

		re += float64(x[n])*c0 + float64(x[n+1])*c1 + float64(x[n+2])*c2 + float64(x[n+3])*c3
		im += float64(x[n])*s0 + float64(x[n+1])*s1 + float64(x[n+2])*s2 + float64(x[n+3])*s3

		angle += 4 * negOmega
	}

	for ; n < len(x); n++ {
		s, c := lut.SinCos(angle)
		re += float64(x[n]) * c
		im += float64(x[n]) * s
		angle += negOmega
	}

	return complex(re, im)
}
