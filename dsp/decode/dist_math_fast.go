//go:build fastmath

package decode

import "github.com/meko-christian/algo-approx"

// mathSqrt computes sqrt(x) using a fast approximation. Distances are
// reporting-only values, so the accuracy trade-off is acceptable.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
