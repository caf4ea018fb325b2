package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIndexAndCoordinate(t *testing.T) {
	g := NewGrid[uint8](4, 4, 0)

	assert.Equal(t, 0, g.Index(Position{X: 0, Y: 0}))
	assert.Equal(t, 4, g.Index(Position{X: 0, Y: 1}))
	assert.Equal(t, 15, g.Index(Position{X: 3, Y: 3}))
	assert.Equal(t, 9, g.Index(Position{X: 1, Y: 2}))

	for i := range g.Cells {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
}

func TestGridNeighboursOrder(t *testing.T) {
	g := NewGrid[uint8](4, 4, 0)

	require.Equal(t, []Position{
		{X: 1, Y: 0},
		{X: 1, Y: 2},
		{X: 2, Y: 1},
		{X: 0, Y: 1},
	}, g.Neighbours(Position{X: 1, Y: 1}))

	require.Equal(t, []Position{
		{X: 2, Y: 1},
		{X: 3, Y: 0},
		{X: 1, Y: 0},
	}, g.Neighbours(Position{X: 2, Y: 0}))

	require.Equal(t, []Position{
		{X: 3, Y: 2},
		{X: 2, Y: 3},
	}, g.Neighbours(Position{X: 3, Y: 3}))
}

func TestGridSingleCellHasNoNeighbours(t *testing.T) {
	g := NewGrid(1, 1, '.')
	assert.Empty(t, g.Neighbours(Position{}))
	assert.True(t, g.InBounds(Position{}))
	assert.False(t, g.InBounds(Position{X: 1}))
}

func TestDirectionBetween(t *testing.T) {
	origin := Position{X: 2, Y: 2}
	cases := []struct {
		to   Position
		want Direction
	}{
		{Position{X: 2, Y: 1}, North},
		{Position{X: 2, Y: 3}, South},
		{Position{X: 3, Y: 2}, East},
		{Position{X: 1, Y: 2}, West},
	}
	for _, tc := range cases {
		got := DirectionBetween(origin, tc.to)
		assert.Equal(t, tc.want, got, "step to %+v", tc.to)

		dx, dy := got.Offset()
		assert.Equal(t, tc.to, Position{X: origin.X + dx, Y: origin.Y + dy})
	}
	assert.Equal(t, Horizontal, East.Orientation())
	assert.Equal(t, Vertical, North.Orientation())
}

func TestAdjacent(t *testing.T) {
	assert.True(t, Adjacent(Position{X: 1, Y: 1}, Position{X: 1, Y: 2}))
	assert.True(t, Adjacent(Position{X: 1, Y: 1}, Position{X: 0, Y: 1}))
	assert.False(t, Adjacent(Position{X: 1, Y: 1}, Position{X: 2, Y: 2}))
	assert.False(t, Adjacent(Position{X: 1, Y: 1}, Position{X: 1, Y: 1}))
}
