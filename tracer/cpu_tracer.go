package tracer

import (
	"fmt"
	"time"

	"github.com/achilleasa/sampletrace/accum"
	"github.com/achilleasa/sampletrace/sampler"
	"github.com/achilleasa/sampletrace/types"
)

// CPUTracer evaluates a shader on the calling goroutine and folds the results
// into the attached frame. A tracer only writes to the rows of the block it is
// asked to trace.
type CPUTracer struct {
	id     string
	shader Shader

	frameW uint32
	frameH uint32
	frame  []accum.PackedColor

	stats Stats
}

// Create a new CPU tracer.
func NewCPUTracer(id string, shader Shader) *CPUTracer {
	return &CPUTracer{
		id:     id,
		shader: shader,
	}
}

func (tr *CPUTracer) Id() string {
	return tr.id
}

func (tr *CPUTracer) SpeedEstimate() float32 {
	return 1.0
}

func (tr *CPUTracer) Close() {
	tr.frame = nil
}

func (tr *CPUTracer) Stats() *Stats {
	return &tr.stats
}

func (tr *CPUTracer) Setup(frameW, frameH uint32, frame []accum.PackedColor) error {
	if uint64(len(frame)) != uint64(frameW)*uint64(frameH) {
		return fmt.Errorf("%w: expected %d pixels; got %d", ErrFrameSize, uint64(frameW)*uint64(frameH), len(frame))
	}
	tr.frameW = frameW
	tr.frameH = frameH
	tr.frame = frame
	return nil
}

// Trace one jittered sample per pixel for the rows in the block. Sample
// positions are offset inside each pixel by the 2D Halton point of the sample
// index so that successive passes cover the pixel footprint evenly.
func (tr *CPUTracer) Trace(req BlockRequest) error {
	if tr.frame == nil {
		return ErrNotAttached
	}
	if uint64(req.BlockY)+uint64(req.BlockH) > uint64(tr.frameH) {
		return fmt.Errorf("%w: rows [%d, %d) of %d", ErrBlockOutOfRange, req.BlockY, req.BlockY+req.BlockH, tr.frameH)
	}

	start := time.Now()
	jx, jy := sampler.Halton2D(req.SampleIndex)
	invW := 1.0 / float32(tr.frameW)
	invH := 1.0 / float32(tr.frameH)
	sampleCount := req.SampleIndex + 1

	for y := req.BlockY; y < req.BlockY+req.BlockH; y++ {
		row := tr.frame[y*tr.frameW : (y+1)*tr.frameW]
		v := (float32(y) + jy) * invH
		for x := range row {
			u := (float32(x) + jx) * invW
			radiance := sanitize(tr.shader.Shade(u, v)).NormalizeColor()
			row[x] = accum.IncrementalAverage(radiance, row[x], sampleCount)
		}
	}

	tr.stats.BlockH = req.BlockH
	tr.stats.BlockTime = time.Since(start).Nanoseconds()
	return nil
}

// Replace NaN and infinite channels with 0 so a single bad sample does not
// poison the running average.
func sanitize(v types.Vec3) types.Vec3 {
	for i := range v {
		if !types.IsValid(v[i]) {
			v[i] = 0
		}
	}
	return v
}
