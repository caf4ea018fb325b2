package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// MaxRasterPixels bounds the area of a raster canvas. At 4 bytes per pixel
// this caps one image at 64 MiB.
const MaxRasterPixels = 4096 * 4096

// ErrRasterTooLarge is returned when a drawing's canvas exceeds
// MaxRasterPixels.
var ErrRasterTooLarge = errors.New("render: raster too large")

// CheckRaster reports whether a width x height grid fits the raster budget.
func (e *Encoder) CheckRaster(width, height int) error {
	w, h := e.CanvasSize(width, height)
	if w <= 0 || h <= 0 || w > MaxRasterPixels/h {
		return errors.Wrapf(ErrRasterTooLarge, "%dx%d pixels exceeds %d", w, h, MaxRasterPixels)
	}
	return nil
}

func (e *Encoder) rasterContext(d Drawing) (*gg.Context, error) {
	if err := e.CheckRaster(d.Size()); err != nil {
		return nil, err
	}
	width, height := e.CanvasSize(d.Size())
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(float64(e.cfg.StrokeWidth))

	r := float64(e.cfg.EndRadius)
	for _, s := range e.strokes(d) {
		c, err := parseColour(s.colour)
		if err != nil {
			return nil, err
		}
		dc.SetColor(c)

		dc.SetLineCapButt()
		dc.DrawCircle(float64(s.head.X), float64(s.head.Y), r)
		dc.Stroke()
		dc.DrawRectangle(float64(s.tail.X)-r, float64(s.tail.Y)-r, 2*r, 2*r)
		dc.Stroke()

		dc.SetLineCapSquare()
		for i, p := range s.points() {
			if i == 0 {
				dc.MoveTo(float64(p.X), float64(p.Y))
				continue
			}
			dc.LineTo(float64(p.X), float64(p.Y))
		}
		dc.Stroke()
	}
	return dc, nil
}

// Raster draws d onto a white canvas of the same size as its SVG form.
func (e *Encoder) Raster(d Drawing) (image.Image, error) {
	dc, err := e.rasterContext(d)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG writes the raster form of d to w.
func (e *Encoder) EncodePNG(w io.Writer, d Drawing) error {
	dc, err := e.rasterContext(d)
	if err != nil {
		return err
	}
	return errors.Wrap(dc.EncodePNG(w), "encoding png")
}
