package rainflow

import "golang.org/x/exp/constraints"

// sorted2 returns its two arguments in ascending order. Generalizes the
// teacher's ringBuffer[E constraints.Ordered] (catrate/ring.go) to the plain
// two-value bracketing the four-point detector and the damage/class helpers
// need, rather than hand-duplicating a swap per call site.
func sorted2[T constraints.Ordered](a, b T) (lo, hi T) {
	if a > b {
		return b, a
	}
	return a, b
}
