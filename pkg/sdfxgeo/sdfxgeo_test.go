package sdfxgeo

import (
	"math"
	"testing"

	"github.com/chazu/regolith/pkg/mc"
	rsdf "github.com/chazu/regolith/pkg/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func unitSphere(t *testing.T) rsdf.Field {
	t.Helper()
	f, err := rsdf.NewSphere(v3.Vec{}, 1)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return f
}

func sphereBounds() mc.Bounds {
	return mc.Bounds{
		Min: v3.Vec{X: -1.5, Y: -1.5, Z: -1.5},
		Max: v3.Vec{X: 1.5, Y: 1.5, Z: 1.5},
	}
}

func TestWrapEvaluate(t *testing.T) {
	s3, err := Wrap(unitSphere(t), sphereBounds())
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	if got := s3.Evaluate(v3.Vec{}); math.Abs(got-(-1)) > 1e-12 {
		t.Errorf("Evaluate(origin) = %g, want -1", got)
	}
	if got := s3.Evaluate(v3.Vec{X: 2}); math.Abs(got-1) > 1e-12 {
		t.Errorf("Evaluate((2,0,0)) = %g, want 1", got)
	}

	bb := s3.BoundingBox()
	if bb.Min.X != -1.5 || bb.Max.Z != 1.5 {
		t.Errorf("BoundingBox = %v, want the wrap bounds", bb)
	}
}

func TestWrapValidation(t *testing.T) {
	if _, err := Wrap(nil, sphereBounds()); err == nil {
		t.Error("Wrap(nil) should fail")
	}

	bad := sphereBounds()
	bad.Max.Y = bad.Min.Y
	if _, err := Wrap(unitSphere(t), bad); err == nil {
		t.Error("Wrap with degenerate bounds should fail")
	}
}

func TestToMeshSphere(t *testing.T) {
	m, err := ToMesh(unitSphere(t), sphereBounds(), 32)
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	if m.TriangleCount() == 0 {
		t.Fatal("sphere mesh has no triangles")
	}
	if m.VertexCount() != m.TriangleCount()*3 {
		t.Errorf("triangle soup expected: %d vertices for %d triangles",
			m.VertexCount(), m.TriangleCount())
	}

	// Every vertex should sit close to the unit sphere surface.
	cellSize := 3.0 / 32.0
	tol := cellSize * math.Sqrt(3)
	for i := 0; i < m.VertexCount(); i++ {
		x := float64(m.Vertices[i*3])
		y := float64(m.Vertices[i*3+1])
		z := float64(m.Vertices[i*3+2])
		r := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(r-1) > tol {
			t.Fatalf("vertex %d at radius %g, want within %g of 1", i, r, tol)
		}
	}
}

func TestToMeshValidation(t *testing.T) {
	if _, err := ToMesh(unitSphere(t), sphereBounds(), 1); err == nil {
		t.Error("ToMesh with cells < 2 should fail")
	}
	if _, err := ToMesh(nil, sphereBounds(), 16); err == nil {
		t.Error("ToMesh with nil field should fail")
	}
}
