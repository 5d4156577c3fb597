package types

import "math"

// Wrap returns the fractional part of each component so that texture
// coordinates tile into [0, 1). Negative values wrap around instead of
// producing negative fractions (-0.25 becomes 0.75).
func (v Vec2) Wrap() Vec2 {
	return Vec2{fract(v[0]), fract(v[1])}
}

// NormalizeColor rescales the color so that its largest channel is at most 1
// while preserving the ratio between channels. Colors whose largest channel
// does not exceed 1 are returned as-is; negative channels are not clamped.
func (v Vec3) NormalizeColor() Vec3 {
	m := v.MaxComponent()
	if m > 1.0 {
		return Vec3{v[0] / m, v[1] / m, v[2] / m}
	}
	return v
}

func fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}
