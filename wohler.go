package rainflow

import "math"

// Wohler holds the S-N curve parameters used to convert a cycle's amplitude
// into a pseudo-damage value: D(Sa) = (Sa/SD)^|K| / ND.
type Wohler struct {
	SD float64 // endurance amplitude, > 0
	ND float64 // endurance cycle count, > 0
	K  float64 // slope, stored negative (K < 0)
}

// DefaultWohler returns the engine's default Wohler parameters.
func DefaultWohler() Wohler {
	return Wohler{SD: 1e3, ND: 1e7, K: -5}
}

func (w Wohler) validate() error {
	if w.SD <= 0 {
		return errInvalidArgument("wohler: SD must be > 0, got %v", w.SD)
	}
	if w.ND <= 0 {
		return errInvalidArgument("wohler: ND must be > 0, got %v", w.ND)
	}
	if w.K >= 0 {
		return errInvalidArgument("wohler: K must be < 0, got %v", w.K)
	}
	return nil
}

// damage computes the pseudo-damage of one full cycle with amplitude sa,
// using the logarithmic form to preserve precision for small sa.
func (w Wohler) damage(sa float64) float64 {
	if sa <= 0 {
		return 0
	}
	absK := -w.K
	return math.Exp(absK*(math.Log(sa)-math.Log(w.SD)) - math.Log(w.ND))
}
