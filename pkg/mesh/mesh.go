// Package mesh defines the triangle mesh record produced by isosurface
// extraction and consumed by the rendering engine. All arrays are flat:
// vertices has 3 floats per vertex (x,y,z), normals has 3 floats per
// vertex, indices has 3 uint32s per triangle. The optional per-vertex biome
// and height arrays are populated by the terrain chunk generator for
// downstream material blending.
package mesh

// Mesh is a triangle mesh. The consumer owns the arrays once the mesh is
// returned; nothing in this module retains a reference.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles

	// Optional per-vertex terrain attributes, either empty or with one
	// entry per vertex.
	Biomes  []uint8   `json:"biomes,omitempty"`
	Heights []float32 `json:"heights,omitempty"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
