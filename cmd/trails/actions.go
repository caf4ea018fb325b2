package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Ko-stant/trailmap/internal/partition"
	"github.com/Ko-stant/trailmap/internal/render"
	"github.com/Ko-stant/trailmap/internal/trail"
	"github.com/Ko-stant/trailmap/internal/trailmap"
)

func printf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format+"\n", a...)
}

func newGenerator(c *cli.Context, logger golog.Logger) (*trailmap.Generator, error) {
	rcfg := render.DefaultConfig()
	rcfg.Palette = c.Bool(flagPalette)
	return trailmap.NewGenerator(logger, partition.DefaultConfig(), rcfg)
}

func paramsFromFlags(c *cli.Context) trailmap.Params {
	return trailmap.Params{
		Seed:        c.String(flagSeed),
		CanvasSize:  c.Int(flagCanvasSize),
		MinLeafSize: c.Int(flagMinLeafSize),
		Density:     c.Int(flagDensity),
	}
}

func outputFormat(c *cli.Context) (string, error) {
	format := strings.ToLower(c.String(flagFormat))
	if format == "" {
		if strings.EqualFold(filepath.Ext(c.String(flagOutput)), ".png") {
			return formatPNG, nil
		}
		return formatSVG, nil
	}
	if format != formatSVG && format != formatPNG {
		return "", errors.Errorf("unknown format %q, want svg or png", format)
	}
	return format, nil
}

func writeImage(c *cli.Context, g *trailmap.Generator, m *trail.Map) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case formatPNG:
		if err := g.PNG(&buf, m); err != nil {
			return err
		}
	default:
		svg, err := g.SVG(m)
		if err != nil {
			return err
		}
		buf.WriteString(svg)
	}

	out := c.String(flagOutput)
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	printf(c.App.Writer, "wrote %d trails to %s", len(m.Paths), out)
	return nil
}

func readGrid(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return string(data), nil
}

// GenerateAction is the corresponding Action for 'generate'.
func GenerateAction(c *cli.Context, logger golog.Logger) error {
	g, err := newGenerator(c, logger)
	if err != nil {
		return err
	}
	params := paramsFromFlags(c)
	format, err := outputFormat(c)
	if err != nil {
		return err
	}
	if format == formatPNG {
		if err := g.CheckPNG(params); err != nil {
			return err
		}
	}
	res, err := g.Generate(params)
	if err != nil {
		return err
	}
	if gridOut := c.String(flagGridOut); gridOut != "" {
		if err := os.WriteFile(gridOut, []byte(res.Grid), 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", gridOut)
		}
	}
	return writeImage(c, g, res.Map)
}

// FromFileAction is the corresponding Action for 'from-file'.
func FromFileAction(c *cli.Context, logger golog.Logger) error {
	text, err := readGrid(c.String(flagName))
	if err != nil {
		return err
	}
	g, err := newGenerator(c, logger)
	if err != nil {
		return err
	}
	m, err := g.FromText(text)
	if err != nil {
		return errors.Wrap(err, c.String(flagName))
	}
	return writeImage(c, g, m)
}

// StatsAction is the corresponding Action for 'stats'.
func StatsAction(c *cli.Context, logger golog.Logger) error {
	g, err := newGenerator(c, logger)
	if err != nil {
		return err
	}

	var m *trail.Map
	switch name := c.String(flagName); {
	case name != "":
		text, err := readGrid(name)
		if err != nil {
			return err
		}
		if m, err = g.FromText(text); err != nil {
			return errors.Wrap(err, name)
		}
	case c.String(flagSeed) != "":
		res, err := g.Generate(paramsFromFlags(c))
		if err != nil {
			return err
		}
		m = res.Map
	default:
		return errors.New("stats needs --seed or --name")
	}

	w := c.App.Writer
	printf(w, "size:       %dx%d", m.Width, m.Height)
	printf(w, "trailheads: %d", len(m.Trailheads))
	printf(w, "drawn:      %d", len(m.Paths))
	printf(w, "score:      %d", m.Score())
	printf(w, "rating:     %d", m.Rating())
	return nil
}
