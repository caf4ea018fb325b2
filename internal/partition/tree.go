package partition

import (
	"math/rand/v2"

	"github.com/Ko-stant/trailmap/internal/geometry"
)

// Tree owns the root of a partition over a width x height canvas.
type Tree struct {
	Root *Leaf
	cfg  Config
}

func NewTree(width, height, minSize int, cfg Config) *Tree {
	return &Tree{
		Root: NewLeaf(0, 0, width, height, minSize, 0),
		cfg:  cfg,
	}
}

func (t *Tree) Generate(r *rand.Rand) {
	t.Root.Generate(r, t.cfg)
}

// StartPoints samples density points from every leaf, leaves visited in
// tree order.
func (t *Tree) StartPoints(r *rand.Rand, density int) []geometry.Position {
	return t.Root.AddStart(nil, r, density)
}

// Leaves returns the childless nodes in tree order.
func (t *Tree) Leaves() []*Leaf {
	var leaves []*Leaf
	t.Root.Walk(func(l *Leaf) {
		if l.IsLeaf() {
			leaves = append(leaves, l)
		}
	})
	return leaves
}
