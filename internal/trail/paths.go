package trail

import (
	"slices"

	"github.com/Ko-stant/trailmap/internal/geometry"
)

// FindAllPaths searches from every trailhead and stores the discovered
// trails in m.Paths, replacing any previous result.
//
// At each step the neighbours are scanned North, South, East, West. The
// first unvisited neighbour holding the summit value one above the current
// cell completes a trail and ends that scan; the search then recurses into
// every non-summit neighbour one above the current cell. When a cell touches
// two summits only the first in scan order is recorded. Use EveryPath for the
// unbiased enumeration.
func (m *Map) FindAllPaths() {
	m.Paths = nil
	stack := make([]geometry.Position, 0, int(Summit)+1)
	for _, start := range m.Trailheads {
		stack = append(stack[:0], start)
		m.walk(&stack, Summit)
	}
}

func (m *Map) walk(stack *[]geometry.Position, end uint8) {
	current := (*stack)[len(*stack)-1]
	val := m.At(current)
	neighbours := m.Neighbours(current)

	for _, pos := range neighbours {
		if slices.Contains(*stack, pos) {
			continue
		}
		next := m.At(pos)
		if next == val+1 && next == end {
			path := make([]geometry.Position, len(*stack), len(*stack)+1)
			copy(path, *stack)
			m.Paths = append(m.Paths, append(path, pos))
			break
		}
	}

	for _, pos := range neighbours {
		next := m.At(pos)
		if next == end || slices.Contains(*stack, pos) {
			continue
		}
		if next == val+1 {
			*stack = append(*stack, pos)
			m.walk(stack, end)
			*stack = (*stack)[:len(*stack)-1]
		}
	}
}

// EveryPath returns every increasing trail from every trailhead, in
// trailhead order and then neighbour scan order. It does not touch m.Paths.
func (m *Map) EveryPath() [][]geometry.Position {
	var paths [][]geometry.Position
	stack := make([]geometry.Position, 0, int(Summit)+1)
	var climb func()
	climb = func() {
		current := stack[len(stack)-1]
		val := m.At(current)
		if val == Summit {
			paths = append(paths, slices.Clone(stack))
			return
		}
		for _, pos := range m.Neighbours(current) {
			if m.At(pos) != val+1 {
				continue
			}
			stack = append(stack, pos)
			climb()
			stack = stack[:len(stack)-1]
		}
	}
	for _, start := range m.Trailheads {
		stack = append(stack[:0], start)
		climb()
	}
	return paths
}

// Rating counts every distinct increasing trail on the map.
func (m *Map) Rating() int {
	return len(m.EveryPath())
}

// Score sums, over all trailheads, the number of distinct summits each one
// can reach.
func (m *Map) Score() int {
	score := 0
	for _, start := range m.Trailheads {
		seen := map[geometry.Position]struct{}{start: {}}
		queue := []geometry.Position{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			val := m.At(current)
			if val == Summit {
				score++
				continue
			}
			for _, pos := range m.Neighbours(current) {
				if _, ok := seen[pos]; ok || m.At(pos) != val+1 {
					continue
				}
				seen[pos] = struct{}{}
				queue = append(queue, pos)
			}
		}
	}
	return score
}
