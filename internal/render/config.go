package render

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("render: invalid config")

// Config holds the drawing constants. Pixel coordinates of a grid cell are
// cell*TileSize + Offset.
type Config struct {
	TileSize    int
	Offset      int
	StrokeWidth int
	// EndRadius is the marker radius and the distance the line is pulled
	// back from each end.
	EndRadius int
	// Colour is a hex value or one of the names in namedColours.
	Colour string
	// Palette strokes each trail network in its own hue instead of Colour.
	Palette bool
}

func DefaultConfig() Config {
	return Config{
		TileSize:    64,
		Offset:      32,
		StrokeWidth: 2,
		EndRadius:   10,
		Colour:      "black",
	}
}

func (c Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tile size %d must be positive", c.TileSize)
	case c.Offset < 0:
		return errors.Wrapf(ErrInvalidConfig, "offset %d must not be negative", c.Offset)
	case c.StrokeWidth <= 0:
		return errors.Wrapf(ErrInvalidConfig, "stroke width %d must be positive", c.StrokeWidth)
	case c.EndRadius < 0:
		return errors.Wrapf(ErrInvalidConfig, "end radius %d must not be negative", c.EndRadius)
	case 2*c.EndRadius > c.TileSize:
		return errors.Wrapf(ErrInvalidConfig, "end radius %d does not fit a %d tile", c.EndRadius, c.TileSize)
	}
	if _, err := parseColour(c.Colour); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

var namedColours = map[string]color.Color{
	"black":  color.Black,
	"white":  color.White,
	"red":    color.RGBA{R: 0xff, A: 0xff},
	"green":  color.RGBA{G: 0x80, A: 0xff},
	"blue":   color.RGBA{B: 0xff, A: 0xff},
	"gray":   color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"grey":   color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"navy":   color.RGBA{B: 0x80, A: 0xff},
	"teal":   color.RGBA{G: 0x80, B: 0x80, A: 0xff},
	"orange": color.RGBA{R: 0xff, G: 0xa5, A: 0xff},
	"purple": color.RGBA{R: 0x80, B: 0x80, A: 0xff},
}

func parseColour(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, errors.Wrapf(err, "colour %q", s)
		}
		return c, nil
	}
	if c, ok := namedColours[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, errors.Errorf("unknown colour %q", s)
}
