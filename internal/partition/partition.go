// Package partition recursively splits a square canvas into quadrants. The
// leaves of the resulting tree are the regions trail start points are drawn
// from.
package partition

import (
	"math/rand/v2"

	"github.com/Ko-stant/trailmap/internal/geometry"
)

// Config tunes the split decision.
type Config struct {
	// SplitProbability is the chance a node deeper than AlwaysSplitDepth is
	// split again.
	SplitProbability float64
	// AlwaysSplitDepth is the deepest level that splits unconditionally
	// (subject to the minimum size).
	AlwaysSplitDepth int
}

// DefaultConfig returns SplitProbability 0.8 and AlwaysSplitDepth 2.
func DefaultConfig() Config {
	return Config{
		SplitProbability: 0.8,
		AlwaysSplitDepth: 2,
	}
}

// Leaf is one node of the tree. It has either no children or exactly four,
// ordered NW, NE, SE, SW.
type Leaf struct {
	X        int
	Y        int
	Width    int
	Height   int
	MinSize  int
	Depth    int
	Children []*Leaf
}

// NewLeaf returns an unsplit node.
func NewLeaf(x, y, width, height, minSize, depth int) *Leaf {
	return &Leaf{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		MinSize: minSize,
		Depth:   depth,
	}
}

// IsLeaf reports whether l has no children.
func (l *Leaf) IsLeaf() bool {
	return len(l.Children) == 0
}

// split draws the split decision and, when the halves are still at least
// MinSize, creates the four quadrants. The random draw happens before the
// size check so the stream is consumed the same way for every node deeper
// than cfg.AlwaysSplitDepth.
func (l *Leaf) split(r *rand.Rand, cfg Config) bool {
	shouldSplit := true
	if l.Depth > cfg.AlwaysSplitDepth {
		shouldSplit = r.Float64() < cfg.SplitProbability
	}
	halfW := l.Width / 2
	halfH := l.Height / 2
	if !shouldSplit || halfW < l.MinSize || halfH < l.MinSize {
		return false
	}

	depth := l.Depth + 1
	l.Children = []*Leaf{
		NewLeaf(l.X, l.Y, halfW, halfH, l.MinSize, depth),
		NewLeaf(l.X+halfW, l.Y, halfW, halfH, l.MinSize, depth),
		NewLeaf(l.X+halfW, l.Y+halfH, halfW, halfH, l.MinSize, depth),
		NewLeaf(l.X, l.Y+halfH, halfW, halfH, l.MinSize, depth),
	}
	return true
}

// Generate subdivides l in place. It is a no-op for a node that already has
// children. Children are generated depth-first in NW, NE, SE, SW order from
// the same random stream.
func (l *Leaf) Generate(r *rand.Rand, cfg Config) {
	if !l.IsLeaf() || !l.split(r, cfg) {
		return
	}
	for _, child := range l.Children {
		child.Generate(r, cfg)
	}
}

// AddStart appends density random points per leaf below l to points.
// Points are uniform over each leaf's region; duplicates are kept.
func (l *Leaf) AddStart(points []geometry.Position, r *rand.Rand, density int) []geometry.Position {
	if !l.IsLeaf() {
		for _, child := range l.Children {
			points = child.AddStart(points, r, density)
		}
		return points
	}
	for range density {
		x := l.X + r.IntN(l.Width)
		y := l.Y + r.IntN(l.Height)
		points = append(points, geometry.Position{X: x, Y: y})
	}
	return points
}

// Walk visits l and its descendants in pre-order.
func (l *Leaf) Walk(fn func(*Leaf)) {
	fn(l)
	for _, child := range l.Children {
		child.Walk(fn)
	}
}
