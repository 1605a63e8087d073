// Package mc extracts triangle meshes from signed distance fields with the
// marching cubes algorithm. The field is sampled on a regular voxel grid
// over a bounding region; each grid cell is classified by the signs at its
// eight corners and triangulated from the standard configuration tables,
// with vertices placed on cell edges by linear interpolation of the two
// corner distances.
//
// Normals are estimated from the field gradient at each interpolated vertex
// position, not from face geometry, so shading is smooth independent of
// tessellation. Vertices are shared within a cell; cross-cell welding is
// not performed, so adjacent extractions may carry micro-seams.
package mc

import (
	"fmt"
	"math"

	"github.com/chazu/regolith/pkg/mesh"
	"github.com/chazu/regolith/pkg/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Bounds is the axis-aligned region sampled by an extraction.
type Bounds struct {
	Min, Max v3.Vec
}

// validate rejects empty or inverted regions.
func (b Bounds) validate() error {
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z {
		return fmt.Errorf("mc: bounds must have positive extent on every axis, got min=%v max=%v", b.Min, b.Max)
	}
	return nil
}

// Size returns the extent of the bounds along each axis.
func (b Bounds) Size() v3.Vec {
	return b.Max.Sub(b.Min)
}

// Options tunes an extraction beyond field, bounds and resolution.
type Options struct {
	// NormalEpsilon is the central-difference step for vertex normals.
	// Zero picks a step from the cell size.
	NormalEpsilon float64

	// VertexFunc, if set, observes every emitted vertex in emission order.
	// The terrain generator uses it to record per-vertex biome and height
	// without this package knowing about biomes.
	VertexFunc func(pos, normal v3.Vec)
}

// Extract samples f on a res x res x res cell grid over b and returns the
// triangle mesh of the zero isosurface. res is the cell count per axis, so
// the field is evaluated at (res+1)^3 grid points. Identical inputs always
// produce identical meshes.
func Extract(f sdf.Field, b Bounds, res int) (*mesh.Mesh, error) {
	return ExtractOptions(f, b, res, Options{})
}

// ExtractOptions is Extract with explicit Options.
func ExtractOptions(f sdf.Field, b Bounds, res int, opts Options) (*mesh.Mesh, error) {
	if f == nil {
		return nil, fmt.Errorf("mc: field must not be nil")
	}
	if res < 2 {
		return nil, fmt.Errorf("mc: resolution must be at least 2 cells per axis, got %d", res)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	size := b.Size()
	cell := v3.Vec{
		X: size.X / float64(res),
		Y: size.Y / float64(res),
		Z: size.Z / float64(res),
	}

	eps := opts.NormalEpsilon
	if eps <= 0 {
		eps = 0.25 * math.Min(cell.X, math.Min(cell.Y, cell.Z))
	}

	// Sample every grid corner once. The slab is scratch local to this
	// call and released on return.
	n := res + 1
	values := make([]float64, n*n*n)
	idx := func(x, y, z int) int { return x + n*(y+n*z) }
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				p := v3.Vec{
					X: b.Min.X + float64(x)*cell.X,
					Y: b.Min.Y + float64(y)*cell.Y,
					Z: b.Min.Z + float64(z)*cell.Z,
				}
				values[idx(x, y, z)] = f.Evaluate(p)
			}
		}
	}

	m := &mesh.Mesh{}
	var corners [8]float64
	var cellVerts [12]uint32

	for z := 0; z < res; z++ {
		for y := 0; y < res; y++ {
			for x := 0; x < res; x++ {
				config := 0
				for i, off := range cornerOffset {
					v := values[idx(x+off[0], y+off[1], z+off[2])]
					corners[i] = v
					// A value of exactly zero counts as inside: one fixed
					// tie-break shared with the interpolation below.
					if v <= 0 {
						config |= 1 << i
					}
				}

				// All corners on the same side: no surface in this cell.
				edges := edgeTable[config]
				if edges == 0 {
					continue
				}

				// Interpolate one vertex per crossed edge, shared by every
				// triangle in this cell.
				for e := 0; e < 12; e++ {
					if edges&(1<<e) == 0 {
						continue
					}
					ca := edgeCorners[e][0]
					cb := edgeCorners[e][1]
					pa := cornerPos(b, cell, x, y, z, ca)
					pb := cornerPos(b, cell, x, y, z, cb)
					pos := interpolate(pa, pb, corners[ca], corners[cb])
					normal := sdf.Normal(f, pos, eps)

					cellVerts[e] = uint32(m.VertexCount())
					m.Vertices = append(m.Vertices,
						float32(pos.X), float32(pos.Y), float32(pos.Z))
					m.Normals = append(m.Normals,
						float32(normal.X), float32(normal.Y), float32(normal.Z))
					if opts.VertexFunc != nil {
						opts.VertexFunc(pos, normal)
					}
				}

				tris := triTable[config]
				for i := 0; i+2 < len(tris); i += 3 {
					m.Indices = append(m.Indices,
						cellVerts[tris[i]],
						cellVerts[tris[i+1]],
						cellVerts[tris[i+2]])
				}
			}
		}
	}

	return m, nil
}

// cornerPos returns the world position of a cell corner.
func cornerPos(b Bounds, cell v3.Vec, x, y, z, corner int) v3.Vec {
	off := cornerOffset[corner]
	return v3.Vec{
		X: b.Min.X + float64(x+off[0])*cell.X,
		Y: b.Min.Y + float64(y+off[1])*cell.Y,
		Z: b.Min.Z + float64(z+off[2])*cell.Z,
	}
}

// interpolate places a vertex on the edge a-b at the estimated zero
// crossing: t = dA / (dA - dB). A crossed edge has one non-positive and one
// positive endpoint, so the denominator cannot vanish; the guard covers
// float round-off only.
func interpolate(a, b v3.Vec, da, db float64) v3.Vec {
	denom := da - db
	t := 0.5
	if math.Abs(denom) > 1e-30 {
		t = da / denom
	}
	return a.Add(b.Sub(a).MulScalar(t))
}
