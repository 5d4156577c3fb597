package types

import "math"

// Epsilon is the tolerance shared by every float comparison in the module.
// All deduplication and equality decisions must go through Equal so that
// they agree with each other.
const Epsilon float32 = 1.0e-06

// Equal reports whether a and b differ by less than Epsilon.
func Equal(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < Epsilon
}

// EqualVec3 reports whether all components of v1 and v2 are Equal.
func EqualVec3(v1, v2 Vec3) bool {
	res := Equal(v1[0], v2[0])
	for i := 1; i < len(v1); i++ {
		res = Equal(v1[i], v2[i]) && res
	}
	return res
}

// IsValid reports whether value is neither NaN nor infinite.
func IsValid(value float32) bool {
	f := float64(value)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsValidVec3 reports whether every component of v is valid.
func IsValidVec3(v Vec3) bool {
	return IsValid(v[0]) && IsValid(v[1]) && IsValid(v[2])
}
