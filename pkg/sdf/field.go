// Package sdf provides signed distance fields for terrain composition:
// primitive shapes, boolean and smooth-blend operators, domain transforms,
// gradient-based normal estimation, and a fluent Builder. Fields form an
// explicit expression tree of immutable nodes, so a composed field can be
// evaluated concurrently from any number of goroutines.
//
// A field maps a point to a signed distance: negative inside, positive
// outside, zero on the surface. Boolean operators are exact in sign
// everywhere but exact in distance only at the surface; away from it the
// result is a conservative bound, which is all isosurface extraction needs.
package sdf

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Field is a signed distance field. Implementations must be pure: the same
// point always evaluates to the same distance, and Evaluate never mutates
// the receiver or its argument.
type Field interface {
	Evaluate(p v3.Vec) float64
}

// FieldFunc adapts a plain function into a Field.
type FieldFunc func(p v3.Vec) float64

// Evaluate calls the wrapped function.
func (f FieldFunc) Evaluate(p v3.Vec) float64 {
	return f(p)
}

// emptyField is positive infinity everywhere: all space is outside.
type emptyField struct{}

func (emptyField) Evaluate(v3.Vec) float64 {
	return math.Inf(1)
}

// Empty returns the field with no interior. Extracting it yields an empty
// mesh, never a filled volume.
func Empty() Field {
	return emptyField{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// length2D is the magnitude of a 2D offset, used by the axial primitives.
func length2D(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// maxComp returns the largest component of a vector.
func maxComp(v v3.Vec) float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// absVec returns the component-wise absolute value.
func absVec(v v3.Vec) v3.Vec {
	return v3.Vec{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// maxVecZero clamps each component to be non-negative.
func maxVecZero(v v3.Vec) v3.Vec {
	return v3.Vec{
		X: math.Max(v.X, 0),
		Y: math.Max(v.Y, 0),
		Z: math.Max(v.Z, 0),
	}
}
