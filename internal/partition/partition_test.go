package partition

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/trailmap/internal/geometry"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNewLeaf(t *testing.T) {
	got := NewLeaf(0, 0, 6, 6, 3, 0)
	want := &Leaf{X: 0, Y: 0, Width: 6, Height: 6, MinSize: 3, Depth: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NewLeaf mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got.IsLeaf())
}

func TestGenerateSplitsShallowNodesUnconditionally(t *testing.T) {
	root := NewLeaf(0, 0, 6, 6, 3, 0)
	root.Generate(newTestRand(123), DefaultConfig())

	want := &Leaf{
		X: 0, Y: 0, Width: 6, Height: 6, MinSize: 3, Depth: 0,
		Children: []*Leaf{
			{X: 0, Y: 0, Width: 3, Height: 3, MinSize: 3, Depth: 1},
			{X: 3, Y: 0, Width: 3, Height: 3, MinSize: 3, Depth: 1},
			{X: 3, Y: 3, Width: 3, Height: 3, MinSize: 3, Depth: 1},
			{X: 0, Y: 3, Width: 3, Height: 3, MinSize: 3, Depth: 1},
		},
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIsNoOpOnSplitNode(t *testing.T) {
	root := NewLeaf(0, 0, 16, 16, 2, 0)
	cfg := DefaultConfig()
	root.Generate(newTestRand(1), cfg)
	before := countLeaves(root)

	root.Generate(newTestRand(2), cfg)
	assert.Equal(t, before, countLeaves(root))
}

func TestGenerateFullSplit(t *testing.T) {
	tree := NewTree(32, 32, 2, Config{SplitProbability: 1, AlwaysSplitDepth: 2})
	tree.Generate(newTestRand(7))

	leaves := tree.Leaves()
	require.Len(t, leaves, 256)
	for _, l := range leaves {
		assert.Equal(t, 2, l.Width)
		assert.Equal(t, 2, l.Height)
		assert.True(t, l.Width/2 < l.MinSize || l.Height/2 < l.MinSize,
			"leaf %+v could still split", l)
	}
}

func TestGenerateNeverSplitsBelowAlwaysDepth(t *testing.T) {
	tree := NewTree(32, 32, 2, Config{SplitProbability: 0, AlwaysSplitDepth: 2})
	tree.Generate(newTestRand(7))

	leaves := tree.Leaves()
	require.Len(t, leaves, 64)
	for _, l := range leaves {
		assert.Equal(t, 3, l.Depth)
		assert.Equal(t, 4, l.Width)
	}
}

func TestGenerateDegeneratePartition(t *testing.T) {
	tree := NewTree(10, 10, 6, DefaultConfig())
	tree.Generate(newTestRand(3))

	leaves := tree.Leaves()
	require.Len(t, leaves, 1)
	assert.Same(t, tree.Root, leaves[0])
}

func TestChildrenTileParent(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		tree := NewTree(64, 64, 3, DefaultConfig())
		tree.Generate(newTestRand(seed))

		tree.Root.Walk(func(l *Leaf) {
			if l.IsLeaf() {
				return
			}
			require.Len(t, l.Children, 4)
			hw, hh := l.Width/2, l.Height/2
			want := []geometry.Position{
				{X: l.X, Y: l.Y},
				{X: l.X + hw, Y: l.Y},
				{X: l.X + hw, Y: l.Y + hh},
				{X: l.X, Y: l.Y + hh},
			}
			for i, c := range l.Children {
				assert.Equal(t, want[i], geometry.Position{X: c.X, Y: c.Y})
				assert.Equal(t, hw, c.Width)
				assert.Equal(t, hh, c.Height)
				assert.Equal(t, l.Depth+1, c.Depth)
			}
		})

		// Power-of-two canvas: the leaves cover every cell exactly once.
		cover := make([]int, 64*64)
		for _, l := range tree.Leaves() {
			for y := l.Y; y < l.Y+l.Height; y++ {
				for x := l.X; x < l.X+l.Width; x++ {
					cover[y*64+x]++
				}
			}
		}
		for i, n := range cover {
			require.Equal(t, 1, n, "seed %d cell %d", seed, i)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := NewTree(45, 45, 3, DefaultConfig())
	a.Generate(newTestRand(99))
	b := NewTree(45, 45, 3, DefaultConfig())
	b.Generate(newTestRand(99))

	if diff := cmp.Diff(a.Root, b.Root); diff != "" {
		t.Fatalf("same seed produced different trees (-a +b):\n%s", diff)
	}
}

func TestStartPoints(t *testing.T) {
	tree := NewTree(45, 45, 3, DefaultConfig())
	r := newTestRand(5)
	tree.Generate(r)

	const density = 2
	points := tree.StartPoints(r, density)
	leaves := tree.Leaves()
	require.Len(t, points, len(leaves)*density)

	for i, p := range points {
		l := leaves[i/density]
		assert.GreaterOrEqual(t, p.X, l.X)
		assert.Less(t, p.X, l.X+l.Width)
		assert.GreaterOrEqual(t, p.Y, l.Y)
		assert.Less(t, p.Y, l.Y+l.Height)
	}
}

func TestStartPointsZeroDensity(t *testing.T) {
	tree := NewTree(16, 16, 2, DefaultConfig())
	r := newTestRand(5)
	tree.Generate(r)
	assert.Empty(t, tree.StartPoints(r, 0))
}

func countLeaves(l *Leaf) int {
	n := 0
	l.Walk(func(l *Leaf) {
		if l.IsLeaf() {
			n++
		}
	})
	return n
}
