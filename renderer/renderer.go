package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/achilleasa/sampletrace/accum"
	"github.com/achilleasa/sampletrace/log"
	"github.com/achilleasa/sampletrace/tracer"
)

type Renderer interface {
	// Render one more sample for every pixel.
	Render(ctx context.Context) error

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// Progressive refines a frame one sample pass at a time. Every pass splits the
// frame rows between tracers which run in parallel; each tracer folds its new
// samples into the running per-pixel average.
type Progressive struct {
	logger    log.Logger
	opts      Options
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer

	frame       []accum.PackedColor
	sampleCount uint32
	stats       FrameStats
}

// Create a progressive renderer that evaluates shader with CPU tracers.
func NewProgressive(shader tracer.Shader, opts Options) (*Progressive, error) {
	if shader == nil {
		return nil, ErrNoShader
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidFrameSize, opts.FrameW, opts.FrameH)
	}
	if opts.Workers == 0 {
		opts.Workers = uint32(runtime.NumCPU())
	}
	if opts.BlockAlign == 0 {
		opts.BlockAlign = 1
	}

	r := &Progressive{
		logger:    log.New("renderer"),
		opts:      opts,
		scheduler: tracer.NewAlignedScheduler(opts.BlockAlign),
		frame:     make([]accum.PackedColor, int(opts.FrameW)*int(opts.FrameH)),
	}

	for idx := uint32(0); idx < opts.Workers; idx++ {
		tr := tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", idx), shader)
		if err := tr.Setup(opts.FrameW, opts.FrameH, r.frame); err != nil {
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	r.Reset()
	r.logger.Noticef("rendering %dx%d frame using %d tracer(s)", opts.FrameW, opts.FrameH, len(r.tracers))
	return r, nil
}

// Render one sample pass. Cancelling ctx before the pass starts returns
// ErrInterrupted; a pass that has started always completes so the frame stays
// consistent with the sample count.
func (r *Progressive) Render(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrInterrupted
	default:
	}

	start := time.Now()
	blockAssignment := r.scheduler.Schedule(r.tracers, r.opts.FrameH)

	var wg sync.WaitGroup
	errChan := make(chan error, len(r.tracers))
	var blockY uint32
	for idx, tr := range r.tracers {
		blockH := blockAssignment[idx]
		if blockH == 0 {
			continue
		}

		req := tracer.BlockRequest{
			BlockY:      blockY,
			BlockH:      blockH,
			SampleIndex: r.sampleCount,
		}
		blockY += blockH

		wg.Add(1)
		go func(tr tracer.Tracer, req tracer.BlockRequest) {
			defer wg.Done()
			if err := tr.Trace(req); err != nil {
				errChan <- fmt.Errorf("renderer: tracer %s failed: %w", tr.Id(), err)
			}
		}(tr, req)
	}
	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return err
	}

	r.sampleCount++
	r.updateStats(blockAssignment, time.Since(start))
	r.logger.Infof("accumulated sample %d in %s", r.sampleCount, r.stats.RenderTime)
	return nil
}

// RenderAll renders passes until the configured samples per pixel have been
// accumulated or ctx is cancelled.
func (r *Progressive) RenderAll(ctx context.Context) error {
	for r.sampleCount < r.opts.SamplesPerPixel {
		if err := r.Render(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Reset starts a new image: the sample count drops to zero and every pixel
// becomes opaque black.
func (r *Progressive) Reset() {
	black := accum.Pack(0, 0, 0)
	for idx := range r.frame {
		r.frame[idx] = black
	}
	r.sampleCount = 0
	r.stats = FrameStats{}
}

// SampleCount returns the number of samples accumulated per pixel.
func (r *Progressive) SampleCount() uint32 {
	return r.sampleCount
}

// Frame returns the packed frame in row-major order. The slice is owned by
// the renderer and must not be modified or read while a pass is running.
func (r *Progressive) Frame() []accum.PackedColor {
	return r.frame
}

// Image decodes the packed frame.
func (r *Progressive) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(r.opts.FrameW), int(r.opts.FrameH)))
	for idx, c := range r.frame {
		offset := idx * 4
		img.Pix[offset] = c.R()
		img.Pix[offset+1] = c.G()
		img.Pix[offset+2] = c.B()
		img.Pix[offset+3] = c.A()
	}
	return img
}

func (r *Progressive) Stats() FrameStats {
	return r.stats
}

func (r *Progressive) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

func (r *Progressive) updateStats(blockAssignment []uint32, renderTime time.Duration) {
	stats := FrameStats{
		Tracers:     make([]TracerStat, len(r.tracers)),
		SampleCount: r.sampleCount,
		RenderTime:  renderTime,
	}
	for idx, tr := range r.tracers {
		stats.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			IsPrimary:    idx == 0,
			BlockH:       blockAssignment[idx],
			FramePercent: 100.0 * float32(blockAssignment[idx]) / float32(r.opts.FrameH),
		}
		if blockAssignment[idx] != 0 {
			stats.Tracers[idx].RenderTime = time.Duration(tr.Stats().BlockTime)
		}
	}
	r.stats = stats
}

var _ Renderer = (*Progressive)(nil)
