package tracer

import (
	"testing"

	"github.com/achilleasa/sampletrace/accum"
)

func TestRoundDownToMultipleOf(t *testing.T) {
	type spec struct {
		value    int32
		multiple int32
		exp      int32
	}
	specs := []spec{
		// remainder 1 is kept
		spec{10, 3, 10},
		// remainder 2 is stripped
		spec{11, 3, 9},
		spec{9, 3, 9},
		spec{0, 4, 0},
		spec{7, 8, 0},
		spec{1, 8, 1},
		spec{17, 16, 17},
		spec{30, 16, 16},
		spec{5, 0, 5},
	}

	for index, s := range specs {
		if got := RoundDownToMultipleOf(s.value, s.multiple); got != s.exp {
			t.Fatalf("[spec %d] expected RoundDownToMultipleOf(%d, %d) to be %d; got %d", index, s.value, s.multiple, s.exp, got)
		}
	}
}

func TestAlignedScheduler(t *testing.T) {
	type spec struct {
		speeds []float32
		frameH uint32
		align  uint32
		exp    []uint32
	}
	specs := []spec{
		spec{[]float32{1, 1}, 10, 1, []uint32{5, 5}},
		spec{[]float32{1, 2}, 10, 1, []uint32{4, 6}},
		spec{[]float32{1, 1, 1}, 105, 8, []uint32{41, 32, 32}},
		// 33 % 8 == 1 so the block is left unaligned
		spec{[]float32{1, 1}, 66, 8, []uint32{33, 33}},
		spec{[]float32{1, 1, 1, 1}, 2, 1, []uint32{1, 1, 0, 0}},
		spec{[]float32{0, 0}, 10, 1, []uint32{5, 5}},
		spec{[]float32{1}, 0, 4, []uint32{0}},
	}

	for index, s := range specs {
		tracers := make([]Tracer, len(s.speeds))
		for i, speed := range s.speeds {
			tracers[i] = makeMockTracer("mock", speed)
		}

		blockAssignment := NewAlignedScheduler(s.align).Schedule(tracers, s.frameH)
		if len(blockAssignment) != len(s.exp) {
			t.Fatalf("[spec %d] expected %d assignments; got %d", index, len(s.exp), len(blockAssignment))
		}

		var total uint32
		for i, rows := range blockAssignment {
			if rows != s.exp[i] {
				t.Fatalf("[spec %d] expected tracer %d to be assigned %d rows; got %d", index, i, s.exp[i], rows)
			}
			total += rows
		}
		if total != s.frameH {
			t.Fatalf("[spec %d] expected assignments to add up to %d; got %d", index, s.frameH, total)
		}
	}

	if got := NewAlignedScheduler(1).Schedule(nil, 10); got != nil {
		t.Fatalf("expected no assignment without tracers; got %v", got)
	}
}

type mockTracer struct {
	id    string
	speed float32
	stats *Stats
}

func makeMockTracer(id string, speed float32) *mockTracer {
	return &mockTracer{
		id:    id,
		speed: speed,
		stats: &Stats{},
	}
}

func (mt *mockTracer) Id() string {
	return mt.id
}

func (mt *mockTracer) SpeedEstimate() float32 {
	return mt.speed
}

func (mt *mockTracer) Setup(_, _ uint32, _ []accum.PackedColor) error {
	return nil
}

func (mt *mockTracer) Close() {
}

func (mt *mockTracer) Trace(_ BlockRequest) error {
	return nil
}

func (mt *mockTracer) Stats() *Stats {
	return mt.stats
}
