package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/sampletrace/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "sampletrace"
	app.Usage = "progressive sample accumulation and sampling diagnostics"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "halton",
			Usage: "print elements of the halton sequence",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count",
					Value: 16,
					Usage: "number of elements",
				},
				cli.StringFlag{
					Name:  "bases",
					Value: "2,3",
					Usage: "comma separated list of bases",
				},
			},
			Action: cmd.Halton,
		},
		{
			Name:  "fresnel",
			Usage: "print fresnel reflectance for a dielectric",
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "ior",
					Value: 1.5,
					Usage: "index of refraction",
				},
				cli.IntFlag{
					Name:  "steps",
					Value: 9,
					Usage: "number of angle steps between 0 and 90 degrees",
				},
			},
			Action: cmd.Fresnel,
		},
		{
			Name:  "render",
			Usage: "progressively render the glass sphere scene",
			Description: `
Render a glass sphere over a checkered floor. Every pass adds one jittered
sample per pixel and folds it into the running per-pixel average. Pressing
Ctrl+C stops after the current pass and saves the partial frame.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of parallel tracers (0 = one per cpu)",
				},
				cli.IntFlag{
					Name:  "align",
					Value: 8,
					Usage: "align tracer block heights to this many rows",
				},
				cli.Float64Flag{
					Name:  "ior",
					Value: 1.5,
					Usage: "index of refraction of the sphere",
				},
				cli.StringFlag{
					Name:  "sky",
					Value: "0.3,0.5,1.0",
					Usage: "sky color at the zenith",
				},
				cli.StringFlag{
					Name:  "tint",
					Value: "0.9,1.0,0.95",
					Usage: "color of light transmitted through the sphere",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "diagnose",
			Usage: "report a platform error code the way failed operations do",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "errno",
					Usage: "platform error code to inject",
				},
				cli.StringFlag{
					Name:  "message",
					Value: "diagnostic check",
					Usage: "message to include in the report",
				},
			},
			Action: cmd.Diagnose,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
