// Package rainflow implements an online rainflow cycle-counting engine for
// fatigue analysis of stress/strain time series.
//
// Samples are fed incrementally to a Context. The engine filters raw samples
// into turning points (hysteresis + peak-valley filter), runs the four-point
// closed-cycle detector over the residue of unresolved turning points, and on
// every closed cycle updates a rainflow matrix (from-class -> to-class
// histogram) and a Wohler-curve pseudo-damage accumulator.
//
// The engine is streaming-equivalent: feeding a sequence in one call produces
// the same matrix, damage, and residue as feeding it split across any number
// of Feed calls. A Context is not safe for concurrent use; use one Context
// per goroutine.
package rainflow
