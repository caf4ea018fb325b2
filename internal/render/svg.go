package render

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Draw builds one SVG document for d: a start circle, an end square and a
// single path element per trail.
func (e *Encoder) Draw(d Drawing) (string, error) {
	width, height := e.CanvasSize(d.Size())

	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true

	root := doc.CreateElement("svg")
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", width, height))
	root.CreateAttr("xmlns", svgNamespace)

	strokeWidth := strconv.Itoa(e.cfg.StrokeWidth)
	r := e.cfg.EndRadius
	for _, s := range e.strokes(d) {
		start := root.CreateElement("circle")
		start.CreateAttr("cx", strconv.Itoa(s.head.X))
		start.CreateAttr("cy", strconv.Itoa(s.head.Y))
		start.CreateAttr("r", strconv.Itoa(r))
		start.CreateAttr("fill", "none")
		start.CreateAttr("stroke", s.colour)
		start.CreateAttr("stroke-width", strokeWidth)

		end := root.CreateElement("rect")
		end.CreateAttr("x", strconv.Itoa(s.tail.X-r))
		end.CreateAttr("y", strconv.Itoa(s.tail.Y-r))
		end.CreateAttr("width", strconv.Itoa(2*r))
		end.CreateAttr("height", strconv.Itoa(2*r))
		end.CreateAttr("fill", "none")
		end.CreateAttr("stroke", s.colour)
		end.CreateAttr("stroke-width", strokeWidth)

		line := root.CreateElement("path")
		line.CreateAttr("d", s.pathData())
		line.CreateAttr("fill", "none")
		line.CreateAttr("stroke", s.colour)
		line.CreateAttr("stroke-width", strokeWidth)
		line.CreateAttr("stroke-linecap", "square")
	}

	return doc.WriteToString()
}
