package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"

	"github.com/achilleasa/sampletrace/diag"
	"github.com/achilleasa/sampletrace/renderer"
	"github.com/achilleasa/sampletrace/scene"
	"github.com/achilleasa/sampletrace/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render the glass scene progressively and save the result.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		Workers:         uint32(ctx.Int("workers")),
		BlockAlign:      uint32(ctx.Int("align")),
	}
	if opts.SamplesPerPixel == 0 {
		return errors.New("spp must be at least 1")
	}

	sky, err := types.ParseVec3(ctx.String("sky"))
	if err != nil {
		return err
	}
	tint, err := types.ParseVec3(ctx.String("tint"))
	if err != nil {
		return err
	}

	ior := float32(ctx.Float64("ior"))
	if ior <= 0 {
		return errors.New("index of refraction must be positive")
	}

	aspect := float32(opts.FrameW) / float32(max(opts.FrameH, 1))
	sc := scene.NewGlassScene(aspect, ior, sky, tint)

	r, err := renderer.NewProgressive(sc, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = r.RenderAll(sigCtx)
	if errors.Is(err, renderer.ErrInterrupted) {
		logger.Warningf("interrupted after %d samples; saving partial frame", r.SampleCount())
	} else if err != nil {
		return err
	}

	displayFrameStats(r.Stats())

	return saveFrame(r.Image(), ctx.String("out"))
}

func saveFrame(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return checkedError(err, fmt.Sprintf("could not create %s", filename))
	}
	defer f.Close()

	if err = png.Encode(f, img); err != nil {
		return checkedError(err, fmt.Sprintf("could not write %s", filename))
	}

	logger.Noticef("saved frame to %s", filename)
	return nil
}

// Run err through the system error check so platform failures are reported
// with full diagnostics. Errors without a platform code are returned as-is.
func checkedError(err error, message string) error {
	if diag.Record(err) {
		if sysErr := diag.CheckSystemError(message); sysErr != nil {
			return sysErr
		}
	}
	return fmt.Errorf("%s: %w", message, err)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Primary", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%t", stat.IsPrimary),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d spp", stats.SampleCount), "LAST PASS", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
