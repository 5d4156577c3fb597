package types

import "testing"

func TestWrap(t *testing.T) {
	type spec struct {
		in  Vec2
		exp Vec2
	}
	specs := []spec{
		spec{XY(1.5, -0.5), XY(0.5, 0.5)},
		spec{XY(0.25, 0.75), XY(0.25, 0.75)},
		spec{XY(2, -1), XY(0, 0)},
		spec{XY(-0.25, 3.125), XY(0.75, 0.125)},
	}

	for index, s := range specs {
		got := s.in.Wrap()
		if !Equal(got[0], s.exp[0]) || !Equal(got[1], s.exp[1]) {
			t.Fatalf("[spec %d] expected %v to wrap to %v; got %v", index, s.in, s.exp, got)
		}
		if got[0] < 0 || got[0] >= 1 || got[1] < 0 || got[1] >= 1 {
			t.Fatalf("[spec %d] expected wrapped components in [0, 1); got %v", index, got)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	type spec struct {
		in  Vec3
		exp Vec3
	}
	specs := []spec{
		spec{XYZ(2, 1, 0.5), XYZ(1, 0.5, 0.25)},
		spec{XYZ(0.5, 0.3, 0.1), XYZ(0.5, 0.3, 0.1)},
		spec{XYZ(1, 1, 1), XYZ(1, 1, 1)},
		spec{XYZ(-1, 4, 2), XYZ(-0.25, 1, 0.5)},
		spec{XYZ(-1, -2, 0.5), XYZ(-1, -2, 0.5)},
	}

	for index, s := range specs {
		if got := s.in.NormalizeColor(); !EqualVec3(got, s.exp) {
			t.Fatalf("[spec %d] expected %v to normalize to %v; got %v", index, s.in, s.exp, got)
		}
	}
}
