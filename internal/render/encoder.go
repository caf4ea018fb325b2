// Package render turns discovered trails into drawings: an SVG document with
// one compact path per trail, or the same geometry rasterised to PNG.
package render

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Ko-stant/trailmap/internal/geometry"
)

// Drawing is anything with a grid size and a list of trails to draw.
type Drawing interface {
	Size() (width, height int)
	Trails() [][]geometry.Position
}

// Encoder holds no state beyond its Config and is safe for concurrent use.
type Encoder struct {
	cfg Config
}

func NewEncoder(cfg Config) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{cfg: cfg}, nil
}

func (e *Encoder) Config() Config {
	return e.cfg
}

func (e *Encoder) pixel(v int) int {
	return v*e.cfg.TileSize + e.cfg.Offset
}

// CanvasSize returns the pixel size of a drawing of a width x height grid.
func (e *Encoder) CanvasSize(width, height int) (int, int) {
	return (width-1)*e.cfg.TileSize + 2*e.cfg.Offset,
		(height-1)*e.cfg.TileSize + 2*e.cfg.Offset
}

// stroke is the drawable form of one trail.
type stroke struct {
	head     image.Point
	tail     image.Point
	start    image.Point
	commands []Command
	colour   string
}

func (s stroke) pathData() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%d %d", s.start.X, s.start.Y)
	for _, cmd := range s.commands {
		if cmd.Orientation == geometry.Horizontal {
			b.WriteByte('h')
		} else {
			b.WriteByte('v')
		}
		b.WriteString(strconv.Itoa(cmd.Delta))
	}
	return b.String()
}

// points walks the commands from start and returns every corner.
func (s stroke) points() []image.Point {
	pts := make([]image.Point, 0, len(s.commands)+1)
	cur := s.start
	pts = append(pts, cur)
	for _, cmd := range s.commands {
		if cmd.Orientation == geometry.Horizontal {
			cur.X += cmd.Delta
		} else {
			cur.Y += cmd.Delta
		}
		pts = append(pts, cur)
	}
	return pts
}

func (e *Encoder) strokeFor(path []geometry.Position) stroke {
	n := len(path)
	entry := geometry.DirectionBetween(path[0], path[1])
	r := e.cfg.EndRadius

	cmds := MergeCommands(e.Commands(path))
	pullBack(&cmds[0], r)
	pullBack(&cmds[len(cmds)-1], r)

	head := image.Pt(e.pixel(path[0].X), e.pixel(path[0].Y))
	dx, dy := entry.Offset()
	return stroke{
		head:     head,
		tail:     image.Pt(e.pixel(path[n-1].X), e.pixel(path[n-1].Y)),
		start:    image.Pt(head.X+dx*r, head.Y+dy*r),
		commands: cmds,
		colour:   e.cfg.Colour,
	}
}

// strokes converts every drawable trail of d. Trails shorter than two cells
// are skipped.
func (e *Encoder) strokes(d Drawing) []stroke {
	width, height := d.Size()
	trails := d.Trails()

	var regions geometry.RegionMap
	if e.cfg.Palette {
		regions = geometry.BuildRegionMap(width, height, trails)
	}

	out := make([]stroke, 0, len(trails))
	for _, path := range trails {
		if len(path) < 2 {
			continue
		}
		s := e.strokeFor(path)
		if e.cfg.Palette {
			s.colour = paletteColour(regions.RegionOf(width, path[0]), regions.RegionsCount)
		}
		out = append(out, s)
	}
	return out
}

// paletteColour spreads count hues evenly around the colour wheel.
func paletteColour(region, count int) string {
	if count <= 0 || region < 0 {
		return colorful.Hsv(0, 0, 0).Hex()
	}
	hue := 360 * float64(region) / float64(count)
	return colorful.Hsv(hue, 0.65, 0.8).Hex()
}
