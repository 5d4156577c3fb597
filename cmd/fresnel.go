package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/achilleasa/sampletrace/optics"
	"github.com/achilleasa/sampletrace/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print Fresnel reflectance for a range of incidence angles.
func Fresnel(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	ior := float32(ctx.Float64("ior"))
	if ior <= 0 {
		return errors.New("index of refraction must be positive")
	}
	steps := ctx.Int("steps")
	if steps < 1 {
		return errors.New("steps must be at least 1")
	}

	var buf bytes.Buffer
	writeFresnelTable(&buf, ior, steps)
	logger.Noticef("fresnel reflectance for ior %.3f\n%s", ior, buf.String())
	return nil
}

func writeFresnelTable(w io.Writer, ior float32, steps int) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Angle", "Kr (entering)", "Kt (entering)", "Kr (exiting)", "Kt (exiting)"})

	normal := types.XYZ(0, 0, 1)
	for step := 0; step <= steps; step++ {
		deg := 90.0 * float64(step) / float64(steps)
		theta := deg * math.Pi / 180
		sin, cos := float32(math.Sin(theta)), float32(math.Cos(theta))

		entering := optics.Fresnel(types.XYZ(sin, 0, -cos), normal, ior)
		exiting := optics.Fresnel(types.XYZ(sin, 0, cos), normal, ior)
		table.Append([]string{
			fmt.Sprintf("%5.1f", deg),
			fmt.Sprintf("%.4f", entering),
			fmt.Sprintf("%.4f", 1-entering),
			fmt.Sprintf("%.4f", exiting),
			fmt.Sprintf("%.4f", 1-exiting),
		})
	}
	table.Render()
}
