// Package sdfxgeo bridges regolith fields into the github.com/deadsy/sdfx
// CAD toolchain. Wrap exposes any composed field as an sdf.SDF3, so sdfx
// renderers and exporters can consume terrain geometry directly; ToMesh
// runs sdfx's own uniform marching-cubes renderer as an alternative
// extractor for debugging and CAD export.
//
// Unlike pkg/mc, the sdfx renderer emits unwelded triangle soup with face
// normals and carries no per-vertex attributes, so terrain chunks are still
// extracted by pkg/mc; this package exists for interop paths where that is
// acceptable.
package sdfxgeo

import (
	"fmt"

	"github.com/chazu/regolith/pkg/mc"
	"github.com/chazu/regolith/pkg/mesh"
	rsdf "github.com/chazu/regolith/pkg/sdf"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// fieldSDF3 adapts a regolith field to the sdfx SDF3 interface.
type fieldSDF3 struct {
	f  rsdf.Field
	bb sdf.Box3
}

// Compile-time interface check.
var _ sdf.SDF3 = (*fieldSDF3)(nil)

// Evaluate returns the field's signed distance at p.
func (s *fieldSDF3) Evaluate(p v3.Vec) float64 {
	return s.f.Evaluate(p)
}

// BoundingBox returns the declared bounds. Fields carry no intrinsic
// bounds, so the caller supplies the region of interest at Wrap time.
func (s *fieldSDF3) BoundingBox() sdf.Box3 {
	return s.bb
}

// Wrap exposes a field as an sdfx SDF3 over the given bounds.
func Wrap(f rsdf.Field, b mc.Bounds) (sdf.SDF3, error) {
	if f == nil {
		return nil, fmt.Errorf("sdfxgeo: field must not be nil")
	}
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z {
		return nil, fmt.Errorf("sdfxgeo: bounds must have positive extent, got min=%v max=%v", b.Min, b.Max)
	}
	return &fieldSDF3{f: f, bb: sdf.Box3{Min: b.Min, Max: b.Max}}, nil
}

// ToMesh renders a field through sdfx's uniform marching-cubes renderer
// and collects the triangle soup into a mesh record. cells is the renderer
// tessellation resolution; each triangle carries its face normal on all
// three vertices.
func ToMesh(f rsdf.Field, b mc.Bounds, cells int) (*mesh.Mesh, error) {
	if cells < 2 {
		return nil, fmt.Errorf("sdfxgeo: cells must be at least 2, got %d", cells)
	}
	s3, err := Wrap(f, b)
	if err != nil {
		return nil, err
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s3, renderer)

	numVerts := len(triangles) * 3
	m := &mesh.Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
	}

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}

	return m, nil
}
