package sdf

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultNormalEpsilon is the central-difference step used when the caller
// has no better length scale (such as a voxel size) at hand.
const DefaultNormalEpsilon = 1e-4

// Normal estimates the outward surface normal of a field at p by central
// finite differences along the three axes. Composed and noise-displaced
// fields have no analytic normal, so this is the normal used for every
// extracted vertex.
//
// In a degenerate region where the gradient vanishes (a perfectly flat or
// constant field) the fixed tie-break is +Y. That is an expected state, not
// an error.
func Normal(f Field, p v3.Vec, eps float64) v3.Vec {
	if eps <= 0 {
		eps = DefaultNormalEpsilon
	}
	g := v3.Vec{
		X: f.Evaluate(v3.Vec{X: p.X + eps, Y: p.Y, Z: p.Z}) - f.Evaluate(v3.Vec{X: p.X - eps, Y: p.Y, Z: p.Z}),
		Y: f.Evaluate(v3.Vec{X: p.X, Y: p.Y + eps, Z: p.Z}) - f.Evaluate(v3.Vec{X: p.X, Y: p.Y - eps, Z: p.Z}),
		Z: f.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z + eps}) - f.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z - eps}),
	}
	l := g.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return v3.Vec{Y: 1}
	}
	return g.MulScalar(1 / l)
}
