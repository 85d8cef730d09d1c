package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireComplexNearlyEqual fails t if got and want differ in bin count or
// if any bin pair differs by more than eps in either component.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("bin count mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		dRe := math.Abs(real(got[i]) - real(want[i]))
		dIm := math.Abs(imag(got[i]) - imag(want[i]))

		if dRe > eps || dIm > eps {
			t.Fatalf("bin %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// NearlyEqualRel reports whether a and b agree within relative tolerance
// rel, falling back to an absolute comparison for values below 1.
func NearlyEqualRel(a, b, rel float64) bool {
	diff := math.Abs(a - b)

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest < 1 {
		return diff <= rel
	}

	return diff/largest <= rel
}
