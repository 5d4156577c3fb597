package tracer

import (
	"github.com/achilleasa/sampletrace/accum"
	"github.com/achilleasa/sampletrace/types"
)

// A Shader computes the radiance arriving through a point on the image plane.
// The u and v coordinates are in [0, 1) with (0, 0) at the top-left corner.
// Shaders are invoked concurrently by tracers and must be safe for that.
type Shader interface {
	Shade(u, v float32) types.Vec3
}

// ShaderFunc adapts a plain function to the Shader interface.
type ShaderFunc func(u, v float32) types.Vec3

func (f ShaderFunc) Shade(u, v float32) types.Vec3 {
	return f(u, v)
}

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// Zero-based index of the sample being traced. All pixels of the block
	// have already accumulated SampleIndex samples.
	SampleIndex uint32
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block (in nanoseconds)
	BlockTime int64
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracers computation speed estimate compared to a
	// baseline (single core) implementation.
	SpeedEstimate() float32

	// Attach the tracer to a frame. The frame holds frameW * frameH packed
	// colors in row-major order.
	Setup(frameW, frameH uint32, frame []accum.PackedColor) error

	// Trace one sample for every pixel in the requested block.
	Trace(BlockRequest) error

	// Retrieve last block statistics.
	Stats() *Stats
}
