package tracer

import "math"

// RoundDownToMultipleOf strips the remainder of value / multiple from value,
// but only when that remainder is larger than 1; a remainder of exactly 1 is
// left in place. Block heights computed this way keep most blocks aligned to
// the multiple without shaving a single leftover row. A zero multiple returns
// value unchanged.
func RoundDownToMultipleOf(value, multiple int32) int32 {
	if multiple == 0 {
		return value
	}
	rest := value % multiple
	if rest > 1 {
		return value - rest
	}
	return value
}

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign to the pool
	// of tracers.
	//
	// This function returns the block height assignment for each tracer
	// in the input list. The assignments always add up to frameH.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The aligned scheduler splits frame rows proportionally to each tracer's
// speed estimate and aligns block heights to a fixed row multiple.
type alignedScheduler struct {
	align int32
}

// Create a new scheduler that aligns block heights to the given row multiple.
// An alignment of 0 or 1 disables alignment.
func NewAlignedScheduler(align uint32) BlockScheduler {
	return &alignedScheduler{align: int32(max(align, 1))}
}

func (sch *alignedScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	if len(tracers) == 0 {
		return nil
	}

	var total float64
	for _, tr := range tracers {
		total += float64(max(tr.SpeedEstimate(), 0))
	}

	blockAssignment := make([]uint32, len(tracers))
	remaining := frameH
	for idx, tr := range tracers {
		share := float64(frameH) / float64(len(tracers))
		if total > 0 {
			share = float64(max(tr.SpeedEstimate(), 0)) * float64(frameH) / total
		}

		rows := uint32(RoundDownToMultipleOf(int32(math.Floor(share)), sch.align))
		rows = min(max(rows, 1), remaining)
		blockAssignment[idx] = rows
		remaining -= rows
	}

	// In case rows don't add up to the frame height append the missing ones to the first tracer
	blockAssignment[0] += remaining

	return blockAssignment
}
