package dtft

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratch holds pooled memory for unpacking complex bins into separate
// real and imaginary slices for vecmath.
type scratch struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{} },
}

func splitParts(in []complex128) (re, im []float64, buf *scratch) {
	buf = scratchPool.Get().(*scratch)

	need := 2 * len(in)
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	re = buf.data[:len(in)]
	im = buf.data[len(in):need]

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im, buf
}

// Power returns the squared magnitude |X[k]|^2 of each spectrum bin.
//
// Squared magnitudes are the native representation of the decode reference
// dictionary; omitting the square root also keeps nearest-neighbor
// comparisons cheap. Scratch memory is pooled, so in steady state only the
// output slice is allocated.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := splitParts(in)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)

	return out
}

// Magnitude returns the magnitude |X[k]| of each spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := splitParts(in)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)

	return out
}
