// Package trailmap wires the generation pipeline together: partition the
// canvas, carve trails from sampled start points, fill the rest with noise,
// then parse the grid back and find the trails that are actually there.
package trailmap

import (
	"io"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/Ko-stant/trailmap/internal/carve"
	"github.com/Ko-stant/trailmap/internal/partition"
	"github.com/Ko-stant/trailmap/internal/render"
	"github.com/Ko-stant/trailmap/internal/trail"
)

// Result is the outcome of one run.
type Result struct {
	Params Params
	// Grid is the digit grid as text, one row per line.
	Grid string
	Map  *trail.Map
}

type Generator struct {
	logger    golog.Logger
	partition partition.Config
	encoder   *render.Encoder
}

func NewGenerator(logger golog.Logger, pcfg partition.Config, rcfg render.Config) (*Generator, error) {
	encoder, err := render.NewEncoder(rcfg)
	if err != nil {
		return nil, err
	}
	return &Generator{
		logger:    logger,
		partition: pcfg,
		encoder:   encoder,
	}, nil
}

// Generate runs the full pipeline for params.
func (g *Generator) Generate(params Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	r := NewRand(params.Seed)
	size := params.CanvasSize

	tree := partition.NewTree(size, size, params.MinLeafSize, g.partition)
	tree.Generate(r)
	starts := tree.StartPoints(r, params.Density)
	g.logger.Debugw("partitioned canvas",
		"seed", params.Seed,
		"size", size,
		"leaves", len(tree.Leaves()),
		"starts", len(starts))

	carver := carve.New(size, size)
	carved := carver.AddTrails(starts, r)
	carver.Fill(r)
	g.logger.Debugw("carved trails", "committed", carved, "attempted", len(starts))

	text := carver.String()
	m, err := g.enumerate(text)
	if err != nil {
		return nil, errors.Wrap(err, "reparsing generated grid")
	}
	return &Result{Params: params, Grid: text, Map: m}, nil
}

// FromText skips generation and enumerates the trails of an existing grid.
func (g *Generator) FromText(text string) (*trail.Map, error) {
	return g.enumerate(text)
}

func (g *Generator) enumerate(text string) (*trail.Map, error) {
	m, err := trail.Parse(text)
	if err != nil {
		return nil, err
	}
	m.FindAllPaths()
	g.logger.Debugw("found paths",
		"width", m.Width,
		"height", m.Height,
		"trailheads", len(m.Trailheads),
		"paths", len(m.Paths))
	return m, nil
}

func (g *Generator) SVG(m *trail.Map) (string, error) {
	return g.encoder.Draw(m)
}

// CheckPNG rejects params whose PNG would exceed the raster budget, before
// any generation work is done.
func (g *Generator) CheckPNG(params Params) error {
	return g.encoder.CheckRaster(params.CanvasSize, params.CanvasSize)
}

func (g *Generator) PNG(w io.Writer, m *trail.Map) error {
	return g.encoder.EncodePNG(w, m)
}
