package geometry

// Grid is a flat, row-major cell buffer. It carries no behaviour beyond
// coordinate math; the carving and path finding stages each keep their own.
type Grid[T any] struct {
	Width  int
	Height int
	Cells  []T
}

// NewGrid returns a width*height grid with every cell set to fill.
func NewGrid[T any](width, height int, fill T) *Grid[T] {
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{Width: width, Height: height, Cells: cells}
}

// Index maps p to its offset in Cells.
func (g *Grid[T]) Index(p Position) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts an offset in Cells back to a position.
func (g *Grid[T]) Coordinate(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

func (g *Grid[T]) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g *Grid[T]) At(p Position) T {
	return g.Cells[g.Index(p)]
}

func (g *Grid[T]) Set(p Position, v T) {
	g.Cells[g.Index(p)] = v
}

// Neighbours returns the cardinal neighbours of p in North, South, East,
// West order. Callers rely on that order for reproducible output.
func (g *Grid[T]) Neighbours(p Position) []Position {
	neighbours := make([]Position, 0, 4)
	if p.Y > 0 {
		neighbours = append(neighbours, Position{X: p.X, Y: p.Y - 1})
	}
	if p.Y < g.Height-1 {
		neighbours = append(neighbours, Position{X: p.X, Y: p.Y + 1})
	}
	if p.X < g.Width-1 {
		neighbours = append(neighbours, Position{X: p.X + 1, Y: p.Y})
	}
	if p.X > 0 {
		neighbours = append(neighbours, Position{X: p.X - 1, Y: p.Y})
	}
	return neighbours
}
