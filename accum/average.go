// Package accum folds per-pixel radiance samples into a running average that
// is stored as a packed 32-bit color.
package accum

import "github.com/achilleasa/sampletrace/types"

// Samples are scaled to [0, 255] before averaging. Values above 1 are kept
// (the average is clamped afterwards) but capped here so that the integer
// arithmetic below can never overflow.
const maxScaledSample = 1 << 16

// IncrementalAverage returns the color word holding the running average of
// sampleCount samples, given the average of the previous sampleCount-1
// samples in prev and the newest sample whose channels are expected in [0, 1].
//
// Each channel is updated as ((n-1)*old + sample) / n using truncating integer
// division and clamped to 255. The alpha byte of prev is ignored and the result
// is always opaque. For sampleCount 1 the result is the scaled sample itself.
// Counts below 1 are treated as 1.
//
// The function is pure; callers must serialize updates to the same pixel and
// supply the true number of samples folded in so far.
func IncrementalAverage(sample types.Vec3, prev PackedColor, sampleCount uint32) PackedColor {
	n := uint64(max(sampleCount, 1))

	r := averageChannel(uint64(prev.R()), scaleChannel(sample[0]), n)
	g := averageChannel(uint64(prev.G()), scaleChannel(sample[1]), n)
	b := averageChannel(uint64(prev.B()), scaleChannel(sample[2]), n)

	return Pack(r, g, b)
}

func averageChannel(old, sample, n uint64) uint8 {
	return uint8(min(((n-1)*old+sample)/n, 255))
}

// Convert a [0, 1] channel to the [0, 255] integer scale truncating any
// fractional part. NaN and negative values map to 0.
func scaleChannel(v float32) uint64 {
	scaled := v * 255
	if !(scaled > 0) {
		return 0
	}
	if scaled >= maxScaledSample {
		return maxScaledSample
	}
	return uint64(scaled)
}
