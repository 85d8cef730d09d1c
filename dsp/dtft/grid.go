package dtft

import (
	"fmt"
	"math"
)

// FullCircle returns the angular frequency grid 2*pi*k/points for
// k = 0..points-1, covering one full revolution. points must be >= 1.
func FullCircle(points int) ([]float64, error) {
	if points < 1 {
		return nil, fmt.Errorf("dtft: full-circle grid needs >= 1 point: %d", points)
	}

	omegas := make([]float64, points)
	step := 2 * math.Pi / float64(points)

	for k := range omegas {
		omegas[k] = step * float64(k)
	}

	return omegas, nil
}

// HalfSpectrum returns the angular frequency grid pi*k/(points-1) for
// k = 0..points-1, covering [0, pi] inclusive. points must be >= 2.
//
// For real-valued signals the spectrum is conjugate symmetric around pi,
// so this half grid carries the full information of a full revolution.
func HalfSpectrum(points int) ([]float64, error) {
	if points < 2 {
		return nil, fmt.Errorf("dtft: half-spectrum grid needs >= 2 points: %d", points)
	}

	omegas := make([]float64, points)
	step := math.Pi / float64(points-1)

	for k := range omegas {
		omegas[k] = step * float64(k)
	}

	return omegas, nil
}
