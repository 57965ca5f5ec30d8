package dotprops

import "math"

// RemoveClose drops points lying within resolution of an already kept point,
// scanning in input order. Used to thin mesh vertex clouds before tangent
// estimation; it can only reduce density, never increase it. A resolution of
// zero or less keeps every point.
func RemoveClose(pts [][3]float64, resolution float64) [][3]float64 {
	if resolution <= 0 || len(pts) == 0 {
		return pts
	}

	type cellKey [3]int64
	grid := make(map[cellKey][]int)
	kept := make([][3]float64, 0, len(pts))
	r2 := resolution * resolution

	cellOf := func(p [3]float64) cellKey {
		return cellKey{
			int64(math.Floor(p[0] / resolution)),
			int64(math.Floor(p[1] / resolution)),
			int64(math.Floor(p[2] / resolution)),
		}
	}

	for _, p := range pts {
		c := cellOf(p)
		tooClose := false
	scan:
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, ki := range grid[cellKey{c[0] + dx, c[1] + dy, c[2] + dz}] {
						q := kept[ki]
						ddx := p[0] - q[0]
						ddy := p[1] - q[1]
						ddz := p[2] - q[2]
						if ddx*ddx+ddy*ddy+ddz*ddz < r2 {
							tooClose = true
							break scan
						}
					}
				}
			}
		}
		if !tooClose {
			grid[c] = append(grid[c], len(kept))
			kept = append(kept, p)
		}
	}
	return kept
}
