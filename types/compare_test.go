package types

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	type spec struct {
		a, b  float32
		equal bool
	}
	specs := []spec{
		spec{0, 0, true},
		spec{0.5, 0.5, true},
		spec{-3, -3, true},
		spec{0, 2 * Epsilon, false},
		spec{0.5, 0.5 + 2*Epsilon, false},
		spec{-3, -3 + 2*Epsilon, false},
		spec{1, 1 + Epsilon/4, true},
	}

	for index, s := range specs {
		if got := Equal(s.a, s.b); got != s.equal {
			t.Fatalf("[spec %d] expected Equal(%v, %v) to be %t; got %t", index, s.a, s.b, s.equal, got)
		}
		if got := Equal(s.b, s.a); got != s.equal {
			t.Fatalf("[spec %d] expected Equal to be symmetric for (%v, %v)", index, s.a, s.b)
		}
	}
}

func TestEqualVec3(t *testing.T) {
	type spec struct {
		v1, v2 Vec3
		equal  bool
	}
	specs := []spec{
		spec{XYZ(1, 2, 3), XYZ(1, 2, 3), true},
		spec{XYZ(0, 0, 0), XYZ(0, 0, Epsilon/2), true},
		spec{XYZ(1, 2, 3), XYZ(1.1, 2, 3), false},
		spec{XYZ(1, 2, 3), XYZ(1, 2.1, 3), false},
		spec{XYZ(1, 2, 3), XYZ(1, 2, 3.1), false},
		spec{XYZ(1, 2, 3), XYZ(9, 9, 9), false},
	}

	for index, s := range specs {
		if got := EqualVec3(s.v1, s.v2); got != s.equal {
			t.Fatalf("[spec %d] expected EqualVec3(%v, %v) to be %t; got %t", index, s.v1, s.v2, s.equal, got)
		}
	}
}

func TestIsValid(t *testing.T) {
	type spec struct {
		value float32
		valid bool
	}
	specs := []spec{
		spec{0, true},
		spec{-1.5, true},
		spec{math.MaxFloat32, true},
		spec{float32(math.NaN()), false},
		spec{float32(math.Inf(1)), false},
		spec{float32(math.Inf(-1)), false},
	}

	for index, s := range specs {
		if got := IsValid(s.value); got != s.valid {
			t.Fatalf("[spec %d] expected IsValid(%v) to be %t; got %t", index, s.value, s.valid, got)
		}
	}

	if IsValidVec3(XYZ(0, float32(math.NaN()), 0)) {
		t.Fatal("expected vector with a NaN component to be invalid")
	}
	if !IsValidVec3(XYZ(0, 1, 2)) {
		t.Fatal("expected finite vector to be valid")
	}
}
