package grid

// Regions finds all contiguous areas of passable cells under the grid's
// connectivity. Each region lists its cells in BFS discovery order; regions
// are ordered by their first cell in row-major order.
//
// Time:   O(N²·d), where d = 4 or 8.
// Memory: O(N²) for visited flags and output.
func (g *Grid) Regions() [][]Pos {
	seen := make([]bool, len(g.cells))
	var regions [][]Pos

	for i0, s := range g.cells {
		if s == Wall || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []Pos

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			for _, d := range g.offsets {
				v := u.Add(d)
				if !g.IsPassable(v) {
					continue
				}
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// SameRegion reports whether a and b are both passable and connected.
func (g *Grid) SameRegion(a, b Pos) bool {
	if !g.IsPassable(a) || !g.IsPassable(b) {
		return false
	}
	for _, r := range g.Regions() {
		var hasA, hasB bool
		for _, p := range r {
			hasA = hasA || p == a
			hasB = hasB || p == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
