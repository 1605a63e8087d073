package sdf

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Sphere is the field of a sphere. Exact everywhere.
type Sphere struct {
	Center v3.Vec
	Radius float64
}

// NewSphere returns a sphere field. The radius must be positive.
func NewSphere(center v3.Vec, radius float64) (Field, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sdf: sphere radius must be positive, got %v", radius)
	}
	return Sphere{Center: center, Radius: radius}, nil
}

// Evaluate returns the signed distance to the sphere surface. At the center
// it is exactly -Radius.
func (s Sphere) Evaluate(p v3.Vec) float64 {
	return p.Sub(s.Center).Length() - s.Radius
}

// Box is the field of an axis-aligned box, optionally with rounded edges.
type Box struct {
	Center v3.Vec
	Half   v3.Vec // half-extents along each axis
	Round  float64
}

// NewBox returns a box field centered at center with the given half-extents.
// An optional rounding radius shrinks the sharp box and inflates it back,
// rounding edges and corners.
func NewBox(center, half v3.Vec, round float64) (Field, error) {
	if half.X <= 0 || half.Y <= 0 || half.Z <= 0 {
		return nil, fmt.Errorf("sdf: box half-extents must be positive, got %v", half)
	}
	if round < 0 {
		return nil, fmt.Errorf("sdf: box rounding radius must be non-negative, got %v", round)
	}
	if round >= math.Min(half.X, math.Min(half.Y, half.Z)) {
		return nil, fmt.Errorf("sdf: box rounding radius %v exceeds smallest half-extent", round)
	}
	return Box{Center: center, Half: half, Round: round}, nil
}

// Evaluate returns the exact signed distance to the box surface.
func (b Box) Evaluate(p v3.Vec) float64 {
	q := absVec(p.Sub(b.Center)).Sub(b.Half)
	outside := maxVecZero(q).Length()
	inside := math.Min(maxComp(q), 0)
	return outside + inside - b.Round
}

// Plane is an infinite half-space: everything below the plane along its
// normal is inside.
type Plane struct {
	Normal v3.Vec // unit length
	Offset float64
}

// NewPlane returns a horizontal ground plane at the given height. Points
// below the height are inside.
func NewPlane(height float64) (Field, error) {
	return Plane{Normal: v3.Vec{Y: 1}, Offset: -height}, nil
}

// NewPlaneNormal returns the half-space with the given outward normal and
// offset along it. The normal must have non-zero length; it is normalized.
func NewPlaneNormal(normal v3.Vec, offset float64) (Field, error) {
	l := normal.Length()
	if l == 0 {
		return nil, fmt.Errorf("sdf: plane normal must have non-zero length")
	}
	return Plane{Normal: normal.MulScalar(1 / l), Offset: offset}, nil
}

// Evaluate returns the signed distance to the plane.
func (pl Plane) Evaluate(p v3.Vec) float64 {
	return p.Dot(pl.Normal) + pl.Offset
}

// Capsule is a line segment inflated by a radius.
type Capsule struct {
	A, B   v3.Vec
	Radius float64
}

// NewCapsule returns a capsule field around the segment a-b. The endpoints
// must be distinct and the radius positive; a degenerate capsule is rejected
// rather than silently collapsing to a sphere.
func NewCapsule(a, b v3.Vec, radius float64) (Field, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sdf: capsule radius must be positive, got %v", radius)
	}
	if a.Sub(b).Length2() == 0 {
		return nil, fmt.Errorf("sdf: capsule endpoints coincide at %v", a)
	}
	return Capsule{A: a, B: b, Radius: radius}, nil
}

// Evaluate projects the point onto the segment, clamped to [0,1], and
// measures the distance to the projection.
func (c Capsule) Evaluate(p v3.Vec) float64 {
	pa := p.Sub(c.A)
	ba := c.B.Sub(c.A)
	h := clamp(pa.Dot(ba)/ba.Length2(), 0, 1)
	return pa.Sub(ba.MulScalar(h)).Length() - c.Radius
}

// Cylinder is a capped cylinder along the Y axis.
type Cylinder struct {
	Center v3.Vec
	Height float64 // full height
	Radius float64
}

// NewCylinder returns a capped Y-axis cylinder field.
func NewCylinder(center v3.Vec, height, radius float64) (Field, error) {
	if height <= 0 {
		return nil, fmt.Errorf("sdf: cylinder height must be positive, got %v", height)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("sdf: cylinder radius must be positive, got %v", radius)
	}
	return Cylinder{Center: center, Height: height, Radius: radius}, nil
}

// Evaluate returns the exact signed distance to the capped cylinder.
func (c Cylinder) Evaluate(p v3.Vec) float64 {
	q := p.Sub(c.Center)
	dx := length2D(q.X, q.Z) - c.Radius
	dy := math.Abs(q.Y) - c.Height/2
	outside := length2D(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside
}

// Torus lies in the XZ plane around its center.
type Torus struct {
	Center v3.Vec
	Major  float64 // radius from center to tube center
	Minor  float64 // tube radius
}

// NewTorus returns a torus field. Both radii must be positive and the minor
// radius smaller than the major one.
func NewTorus(center v3.Vec, major, minor float64) (Field, error) {
	if major <= 0 || minor <= 0 {
		return nil, fmt.Errorf("sdf: torus radii must be positive, got major=%v minor=%v", major, minor)
	}
	if minor >= major {
		return nil, fmt.Errorf("sdf: torus minor radius %v must be smaller than major radius %v", minor, major)
	}
	return Torus{Center: center, Major: major, Minor: minor}, nil
}

// Evaluate returns the exact signed distance to the torus surface.
func (t Torus) Evaluate(p v3.Vec) float64 {
	q := p.Sub(t.Center)
	ring := length2D(q.X, q.Z) - t.Major
	return length2D(ring, q.Y) - t.Minor
}

// Cone has its apex at Apex and opens downward (-Y) to the given height.
type Cone struct {
	Apex   v3.Vec
	Angle  float64 // half-angle at the apex, radians
	Height float64
}

// NewCone returns a capped cone field with apex at apex, half-angle angle
// and vertical extent height below the apex.
func NewCone(apex v3.Vec, angle, height float64) (Field, error) {
	if angle <= 0 || angle >= math.Pi/2 {
		return nil, fmt.Errorf("sdf: cone half-angle must be in (0, pi/2), got %v", angle)
	}
	if height <= 0 {
		return nil, fmt.Errorf("sdf: cone height must be positive, got %v", height)
	}
	return Cone{Apex: apex, Angle: angle, Height: height}, nil
}

// Evaluate returns the signed distance to the capped cone. Exact.
func (c Cone) Evaluate(p v3.Vec) float64 {
	d := p.Sub(c.Apex)

	// Work in the (radial, vertical) half-plane with the apex at the origin.
	qx := c.Height * math.Tan(c.Angle)
	qy := -c.Height
	wx := length2D(d.X, d.Z)
	wy := d.Y

	// Closest point on the slanted side.
	t := clamp((wx*qx+wy*qy)/(qx*qx+qy*qy), 0, 1)
	ax := wx - qx*t
	ay := wy - qy*t

	// Closest point on the base cap.
	bx := wx - qx*clamp(wx/qx, 0, 1)
	by := wy - qy

	dd := math.Min(ax*ax+ay*ay, bx*bx+by*by)
	s := math.Max(-(wx*qy - wy*qx), -(wy - qy))
	if s < 0 {
		return -math.Sqrt(dd)
	}
	return math.Sqrt(dd)
}

// Ellipsoid is exact only on its surface; elsewhere the value is a scaled
// bound. Callers must not treat far-field values as true distances, but the
// sign is correct everywhere, which is what extraction needs.
type Ellipsoid struct {
	Center v3.Vec
	Radii  v3.Vec
}

// NewEllipsoid returns an ellipsoid field with the given per-axis radii.
func NewEllipsoid(center, radii v3.Vec) (Field, error) {
	if radii.X <= 0 || radii.Y <= 0 || radii.Z <= 0 {
		return nil, fmt.Errorf("sdf: ellipsoid radii must be positive, got %v", radii)
	}
	return Ellipsoid{Center: center, Radii: radii}, nil
}

// Evaluate returns the approximate signed distance to the ellipsoid.
func (e Ellipsoid) Evaluate(p v3.Vec) float64 {
	q := p.Sub(e.Center)
	k0 := v3.Vec{X: q.X / e.Radii.X, Y: q.Y / e.Radii.Y, Z: q.Z / e.Radii.Z}.Length()
	k1 := v3.Vec{
		X: q.X / (e.Radii.X * e.Radii.X),
		Y: q.Y / (e.Radii.Y * e.Radii.Y),
		Z: q.Z / (e.Radii.Z * e.Radii.Z),
	}.Length()
	if k1 == 0 {
		// Query at the exact center.
		return -math.Min(e.Radii.X, math.Min(e.Radii.Y, e.Radii.Z))
	}
	return k0 * (k0 - 1) / k1
}
