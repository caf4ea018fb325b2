// Package trail parses a digit grid and enumerates its trails: walks from a
// 0-cell to a 9-cell where every step goes up by exactly one.
package trail

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Ko-stant/trailmap/internal/geometry"
)

// Summit is the terminal value of every trail.
const Summit uint8 = 9

// Map is a parsed digit grid plus the paths found on it.
type Map struct {
	Width      int
	Height     int
	Cells      []uint8
	Trailheads []geometry.Position
	Paths      [][]geometry.Position

	grid *geometry.Grid[uint8]
}

// Parse reads rows of decimal digits separated by line breaks. Each row is
// trimmed and blank rows are skipped. Every 0-cell becomes a trailhead, in
// row-major order.
func Parse(input string) (*Map, error) {
	var (
		cells      []uint8
		trailheads []geometry.Position
		width      = -1
		height     int
	)
	for lineNo, line := range strings.Split(input, "\n") {
		row := strings.TrimSpace(line)
		if row == "" {
			continue
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, errors.Wrapf(ErrNonRectangular, "line %d has %d cells, want %d", lineNo+1, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			ch := row[x]
			if ch < '0' || ch > '9' {
				return nil, errors.Wrapf(ErrInvalidDigit, "line %d column %d: %q", lineNo+1, x+1, ch)
			}
			val := ch - '0'
			if val == 0 {
				trailheads = append(trailheads, geometry.Position{X: x, Y: height})
			}
			cells = append(cells, val)
		}
		height++
	}
	if height == 0 {
		return nil, ErrEmptyGrid
	}

	m := &Map{
		Width:      width,
		Height:     height,
		Cells:      cells,
		Trailheads: trailheads,
	}
	m.grid = &geometry.Grid[uint8]{Width: width, Height: height, Cells: cells}
	return m, nil
}

// At returns the digit at p.
func (m *Map) At(p geometry.Position) uint8 {
	return m.grid.At(p)
}

// Neighbours returns the cardinal neighbours of p in North, South, East,
// West order.
func (m *Map) Neighbours(p geometry.Position) []geometry.Position {
	return m.grid.Neighbours(p)
}

// Size returns the grid dimensions.
func (m *Map) Size() (width, height int) {
	return m.Width, m.Height
}

// Trails returns the paths found by FindAllPaths.
func (m *Map) Trails() [][]geometry.Position {
	return m.Paths
}

// String renders the digits back to text, one row per line.
func (m *Map) String() string {
	var b strings.Builder
	b.Grow(len(m.Cells) + m.Height)
	for i, v := range m.Cells {
		b.WriteByte('0' + v)
		if (i+1)%m.Width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
