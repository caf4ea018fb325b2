package geometry

type step struct {
	a, b Position
}

func newStep(a, b Position) step {
	if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
		a, b = b, a
	}
	return step{a: a, b: b}
}

// BuildRegionMap labels every cell that lies on one of paths with the id of
// its trail network. Two cells belong to the same network when some path
// steps directly between them, so crossing or merging trails share an id.
// Cells on no path are -1.
func BuildRegionMap(width, height int, paths [][]Position) RegionMap {
	total := width * height
	tileRegionIDs := make([]int, total)
	for i := range tileRegionIDs {
		tileRegionIDs[i] = -1
	}

	onPath := make([]bool, total)
	linked := make(map[step]struct{})
	for _, path := range paths {
		for i, p := range path {
			onPath[p.Y*width+p.X] = true
			if i > 0 {
				linked[newStep(path[i-1], p)] = struct{}{}
			}
		}
	}

	regionID := 0
	qx := make([]int, 0, total)
	qy := make([]int, 0, total)

	for y := range height {
		for x := range width {
			idx := y*width + x
			if !onPath[idx] || tileRegionIDs[idx] != -1 {
				continue
			}
			tileRegionIDs[idx] = regionID
			qx = qx[:0]
			qy = qy[:0]
			qx = append(qx, x)
			qy = append(qy, y)

			for len(qx) > 0 {
				cx := qx[0]
				cy := qy[0]
				qx = qx[1:]
				qy = qy[1:]

				from := Position{X: cx, Y: cy}
				for _, d := range []Direction{North, South, East, West} {
					dx, dy := d.Offset()
					nx, ny := cx+dx, cy+dy
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					if _, ok := linked[newStep(from, Position{X: nx, Y: ny})]; !ok {
						continue
					}
					nidx := ny*width + nx
					if tileRegionIDs[nidx] == -1 {
						tileRegionIDs[nidx] = regionID
						qx = append(qx, nx)
						qy = append(qy, ny)
					}
				}
			}
			regionID++
		}
	}

	return RegionMap{TileRegionIDs: tileRegionIDs, RegionsCount: regionID}
}

// RegionOf returns the network id of p, or -1 if p is on no path.
func (rm RegionMap) RegionOf(width int, p Position) int {
	idx := p.Y*width + p.X
	if idx < 0 || idx >= len(rm.TileRegionIDs) {
		return -1
	}
	return rm.TileRegionIDs[idx]
}
