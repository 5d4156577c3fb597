package sampler

import "testing"

func TestHaltonKnownValues(t *testing.T) {
	type spec struct {
		index uint32
		base  uint32
		exp   float32
	}
	specs := []spec{
		spec{0, 2, 0},
		spec{0, 3, 0},
		spec{0, 7, 0},
		spec{1, 2, 0.5},
		spec{2, 2, 0.25},
		spec{3, 2, 0.75},
		spec{4, 2, 0.125},
		spec{5, 2, 0.625},
		spec{1, 3, 1.0 / 3.0},
		spec{2, 3, 2.0 / 3.0},
		spec{3, 3, 1.0 / 9.0},
		spec{4, 3, 4.0 / 9.0},
	}

	for index, s := range specs {
		got := Halton(s.index, s.base)
		if diff := got - s.exp; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("[spec %d] expected Halton(%d, %d) to be %v; got %v", index, s.index, s.base, s.exp, got)
		}
	}
}

func TestHaltonRange(t *testing.T) {
	for _, base := range []uint32{2, 3, 5, 7, 10, 255} {
		for index := uint32(1); index < 4096; index++ {
			v := Halton(index, base)
			if v < 0 || v >= 1 {
				t.Fatalf("expected Halton(%d, %d) in [0, 1); got %v", index, base, v)
			}
		}
	}

	if v := Halton(^uint32(0), 2); v < 0 || v >= 1 {
		t.Fatalf("expected max index to stay in [0, 1); got %v", v)
	}
}

func TestHaltonDeterministic(t *testing.T) {
	for index := uint32(0); index < 64; index++ {
		if Halton(index, 3) != Halton(index, 3) {
			t.Fatalf("expected Halton(%d, 3) to be deterministic", index)
		}
	}
}

func TestHalton2D(t *testing.T) {
	x, y := Halton2D(1)
	if x != 0.5 || y != Halton(1, 3) {
		t.Fatalf("expected (0.5, %v); got (%v, %v)", Halton(1, 3), x, y)
	}
}
