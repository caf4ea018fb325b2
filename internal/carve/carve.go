// Package carve lays increasing digit trails onto a blank grid and fills the
// remainder with noise.
package carve

import (
	"math/rand/v2"
	"strings"

	"github.com/Ko-stant/trailmap/internal/geometry"
)

const (
	// Unset marks a cell no trail has claimed yet.
	Unset byte = '.'
	// TrailLength is the number of cells in a complete trail, digits 0 to 9.
	TrailLength = 10
)

// Carver owns the character grid for one generation run.
type Carver struct {
	grid *geometry.Grid[byte]
}

// New returns a width x height carver with every cell Unset.
func New(width, height int) *Carver {
	return &Carver{grid: geometry.NewGrid(width, height, Unset)}
}

// Grid exposes the underlying cells. Callers must not modify it.
func (c *Carver) Grid() *geometry.Grid[byte] {
	return c.grid
}

func digit(n int) byte {
	return byte('0' + n)
}

// neighbours returns the cardinal neighbours of pos that are either free or
// already hold target, so trails may cross where the digits agree.
func (c *Carver) neighbours(pos geometry.Position, target byte) []geometry.Position {
	all := c.grid.Neighbours(pos)
	out := all[:0]
	for _, n := range all {
		v := c.grid.At(n)
		if v == Unset || v == target {
			out = append(out, n)
		}
	}
	return out
}

// depthFirst extends trail from current. It commits to the first neighbour
// it can enter and never retries a sibling after that branch returns, so a
// dead end leaves the trail short.
func (c *Carver) depthFirst(visited map[geometry.Position]struct{}, trail []geometry.Position, current geometry.Position, r *rand.Rand) []geometry.Position {
	trail = append(trail, current)
	visited[current] = struct{}{}
	if len(trail) == TrailLength {
		return trail
	}

	neighbours := c.neighbours(current, digit(len(trail)))
	r.Shuffle(len(neighbours), func(i, j int) {
		neighbours[i], neighbours[j] = neighbours[j], neighbours[i]
	})

	for _, next := range neighbours {
		if _, seen := visited[next]; seen {
			continue
		}
		return c.depthFirst(visited, trail, next, r)
	}
	return trail
}

// AddTrails carves one trail per start point, in order. A trail that reaches
// TrailLength cells is written to the grid with digit i at step i; shorter
// attempts are discarded. It returns the number of trails written.
func (c *Carver) AddTrails(starts []geometry.Position, r *rand.Rand) int {
	carved := 0
	for _, start := range starts {
		visited := make(map[geometry.Position]struct{}, TrailLength)
		trail := c.depthFirst(visited, make([]geometry.Position, 0, TrailLength), start, r)
		if len(trail) != TrailLength {
			continue
		}
		for i, p := range trail {
			c.grid.Set(p, digit(i))
		}
		carved++
	}
	return carved
}

// Fill replaces every Unset cell with a uniform random digit, scanning in
// row-major order.
func (c *Carver) Fill(r *rand.Rand) {
	for i, v := range c.grid.Cells {
		if v == Unset {
			c.grid.Cells[i] = digit(r.IntN(10))
		}
	}
}

// String renders the grid one row per line, each line terminated by '\n'.
func (c *Carver) String() string {
	var b strings.Builder
	b.Grow(len(c.grid.Cells) + c.grid.Height)
	for y := range c.grid.Height {
		b.Write(c.grid.Cells[y*c.grid.Width : (y+1)*c.grid.Width])
		b.WriteByte('\n')
	}
	return b.String()
}
