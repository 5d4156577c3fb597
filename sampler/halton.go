// Package sampler provides deterministic low-discrepancy sample sequences.
package sampler

import "math"

// The largest float32 below 1. Long digit expansions can round up to 1 in
// single precision; results are capped here to keep them inside [0, 1).
var oneMinusEpsilon = math.Nextafter32(1, 0)

// Halton returns the index-th element of the Halton sequence in the given base.
// The result lies in [0, 1); index 0 maps to 0. The digits of index in the
// given base are mirrored around the radix point, so consecutive indices
// spread evenly across the unit interval. Base must be at least 2.
//
// The function is stateless and can be called from any number of goroutines.
func Halton(index, base uint32) float32 {
	fraction := float32(1.0)
	value := float32(0.0)
	baseF := float32(base)
	for index > 0 {
		fraction /= baseF
		value += fraction * float32(index%base)
		index /= base
	}
	return min(value, oneMinusEpsilon)
}

// Halton2D returns a 2D point built from the Halton sequences in bases 2 and 3.
func Halton2D(index uint32) (float32, float32) {
	return Halton(index, 2), Halton(index, 3)
}
