package trig

import (
	"fmt"
	"math"
	"sync"
)

// DefaultSize is the entry count of the shared table returned by [Default].
const DefaultSize = 1024

const minSize = 4

// Table holds precomputed sine and cosine samples over one full period.
type Table struct {
	sin   []float64
	cos   []float64
	mask  int
	scale float64
}

// NewTable creates a lookup table with size entries evenly spaced over
// [0, 2*pi). size must be a power of two and at least 4.
func NewTable(size int) (*Table, error) {
	if size < minSize {
		return nil, fmt.Errorf("trig: table size must be >= %d: %d", minSize, size)
	}
	if size&(size-1) != 0 {
		return nil, fmt.Errorf("trig: table size must be a power of two: %d", size)
	}

	t := &Table{
		sin:   make([]float64, size),
		cos:   make([]float64, size),
		mask:  size - 1,
		scale: float64(size) / (2 * math.Pi),
	}
	for i := range size {
		angle := 2 * math.Pi * float64(i) / float64(size)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}

	return t, nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(DefaultSize)
	if err != nil {
		panic(err)
	}

	return t
})

// Default returns a shared table with [DefaultSize] entries.
func Default() *Table {
	return defaultTable()
}

// Size returns the number of entries.
func (t *Table) Size() int {
	return t.mask + 1
}

// Sin returns an interpolated approximation of sin(angle).
//
// The continuous index is floored, not truncated, so negative angles
// interpolate continuously across zero.
func (t *Table) Sin(angle float64) float64 {
	scaled := angle * t.scale
	base := math.Floor(scaled)
	frac := scaled - base
	i := int(base) & t.mask
	j := (i + 1) & t.mask

	return t.sin[i] + frac*(t.sin[j]-t.sin[i])
}

// Cos returns an interpolated approximation of cos(angle).
func (t *Table) Cos(angle float64) float64 {
	scaled := angle * t.scale
	base := math.Floor(scaled)
	frac := scaled - base
	i := int(base) & t.mask
	j := (i + 1) & t.mask

	return t.cos[i] + frac*(t.cos[j]-t.cos[i])
}

// SinCos returns interpolated approximations of sin(angle) and cos(angle)
// sharing a single index computation.
func (t *Table) SinCos(angle float64) (sin, cos float64) {
	scaled := angle * t.scale
	base := math.Floor(scaled)
	frac := scaled - base
	i := int(base) & t.mask
	j := (i + 1) & t.mask

	sin = t.sin[i] + frac*(t.sin[j]-t.sin[i])
	cos = t.cos[i] + frac*(t.cos[j]-t.cos[i])

	return sin, cos
}
