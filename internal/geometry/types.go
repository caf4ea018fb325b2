package geometry

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Position is a cell address, 0-indexed and row-major.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a cardinal step on the grid. Increasing y is South and
// increasing x is East.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Offset returns the unit step for d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) Orientation() Orientation {
	if d == East || d == West {
		return Horizontal
	}
	return Vertical
}

// DirectionBetween reports the direction of the step from -> to. The two
// positions are expected to be grid-adjacent; vertical movement wins if they
// are not.
func DirectionBetween(from, to Position) Direction {
	switch {
	case to.Y < from.Y:
		return North
	case to.Y > from.Y:
		return South
	case to.X > from.X:
		return East
	default:
		return West
	}
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Position) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

type RegionMap struct {
	TileRegionIDs []int
	RegionsCount  int
}
