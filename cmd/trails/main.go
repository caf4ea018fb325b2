// Package main is the trails command line tool: generate trail maps from a
// seed or draw the trails found in an existing grid file.
package main

import (
	"log"
	"os"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	flagSeed        = "seed"
	flagMinLeafSize = "min-leaf-size"
	flagCanvasSize  = "canvas-size"
	flagDensity     = "density"
	flagOutput      = "output"
	flagFormat      = "format"
	flagGridOut     = "grid-out"
	flagPalette     = "palette"
	flagName        = "name"
	flagDebug       = "debug"

	formatSVG = "svg"
	formatPNG = "png"

	defaultOutput = "./test.svg"
)

func generationFlags(seedRequired bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     flagSeed,
			Aliases:  []string{"s"},
			Required: seedRequired,
			Usage:    "seed string; equal seeds give equal maps",
		},
		&cli.IntFlag{
			Name:    flagMinLeafSize,
			Aliases: []string{"m"},
			Value:   3,
			Usage:   "smallest side a partition leaf may have",
		},
		&cli.IntFlag{
			Name:    flagCanvasSize,
			Aliases: []string{"c"},
			Value:   45,
			Usage:   "grid side length in cells",
		},
		&cli.IntFlag{
			Name:    flagDensity,
			Aliases: []string{"d"},
			Value:   2,
			Usage:   "start points sampled per partition leaf",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Value:   defaultOutput,
			Usage:   "write the image to `FILE`",
		},
		&cli.StringFlag{
			Name:  flagFormat,
			Usage: "svg or png; inferred from the output extension when unset",
		},
		&cli.BoolFlag{
			Name:  flagPalette,
			Usage: "colour each trail network separately",
		},
	}
}

func newApp() *cli.App {
	var logger golog.Logger

	return &cli.App{
		Name:  "trails",
		Usage: "generate and draw number-trail maps",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("trails")
			} else {
				logger = zap.NewNop().Sugar()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate a map from a seed and draw its trails",
				Flags: append(append(generationFlags(true), outputFlags()...),
					&cli.StringFlag{
						Name:  flagGridOut,
						Usage: "also write the digit grid to `FILE`",
					},
				),
				Action: func(c *cli.Context) error {
					return GenerateAction(c, logger)
				},
			},
			{
				Name:  "from-file",
				Usage: "draw the trails found in a grid file",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     flagName,
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "read the grid from `FILE`",
					},
				}, outputFlags()...),
				Action: func(c *cli.Context) error {
					return FromFileAction(c, logger)
				},
			},
			{
				Name:  "stats",
				Usage: "print trail counts for a seed or a grid file",
				Flags: append(generationFlags(false),
					&cli.StringFlag{
						Name:    flagName,
						Aliases: []string{"n"},
						Usage:   "read the grid from `FILE` instead of generating",
					},
				),
				Action: func(c *cli.Context) error {
					return StatsAction(c, logger)
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
