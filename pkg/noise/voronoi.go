package noise

import "math"

// CellResult holds the output of a Voronoi/cellular noise query: the
// distance to the nearest jittered cell point (F1), the distance to the
// second nearest (F2), and a stable identifier for the nearest cell.
type CellResult struct {
	F1     float64
	F2     float64
	CellID uint64
}

// cellPoint2 returns the jittered feature point of a 2D lattice cell.
func cellPoint2(seed int64, cx, cy float64) (px, py float64) {
	px = cx + Hash2(seed, cx, cy)
	py = cy + Hash2(seed+1, cx, cy)
	return px, py
}

// Voronoi2D scans the 3x3 lattice neighborhood of the query point, one
// jittered feature point per cell, and returns the two nearest distances
// and the winning cell's identifier.
func Voronoi2D(seed int64, x, y float64) CellResult {
	ix := math.Floor(x)
	iy := math.Floor(y)

	res := CellResult{F1: math.Inf(1), F2: math.Inf(1)}
	for dy := -1.0; dy <= 1; dy++ {
		for dx := -1.0; dx <= 1; dx++ {
			cx := ix + dx
			cy := iy + dy
			px, py := cellPoint2(seed, cx, cy)
			d := math.Hypot(px-x, py-y)
			if d < res.F1 {
				res.F2 = res.F1
				res.F1 = d
				res.CellID = hashBits(seed, cx, cy, 0)
			} else if d < res.F2 {
				res.F2 = d
			}
		}
	}
	return res
}

// cellPoint3 returns the jittered feature point of a 3D lattice cell.
func cellPoint3(seed int64, cx, cy, cz float64) (px, py, pz float64) {
	px = cx + Hash3(seed, cx, cy, cz)
	py = cy + Hash3(seed+1, cx, cy, cz)
	pz = cz + Hash3(seed+2, cx, cy, cz)
	return px, py, pz
}

// Voronoi3D is the 3x3x3 neighborhood analogue of Voronoi2D.
func Voronoi3D(seed int64, x, y, z float64) CellResult {
	ix := math.Floor(x)
	iy := math.Floor(y)
	iz := math.Floor(z)

	res := CellResult{F1: math.Inf(1), F2: math.Inf(1)}
	for dz := -1.0; dz <= 1; dz++ {
		for dy := -1.0; dy <= 1; dy++ {
			for dx := -1.0; dx <= 1; dx++ {
				cx := ix + dx
				cy := iy + dy
				cz := iz + dz
				px, py, pz := cellPoint3(seed, cx, cy, cz)
				ddx := px - x
				ddy := py - y
				ddz := pz - z
				d := math.Sqrt(ddx*ddx + ddy*ddy + ddz*ddz)
				if d < res.F1 {
					res.F2 = res.F1
					res.F1 = d
					res.CellID = hashBits(seed, cx, cy, cz)
				} else if d < res.F2 {
					res.F2 = d
				}
			}
		}
	}
	return res
}
