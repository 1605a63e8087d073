package sdf

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// translate shifts the inner field by an offset.
type translate struct {
	inner  Field
	offset v3.Vec
}

func (t translate) Evaluate(p v3.Vec) float64 {
	return t.inner.Evaluate(p.Sub(t.offset))
}

// Translate returns f moved by offset.
func Translate(f Field, offset v3.Vec) Field {
	return translate{inner: f, offset: offset}
}

// mat3 is a row-major 3x3 rotation matrix.
type mat3 [9]float64

func (m mat3) apply(p v3.Vec) v3.Vec {
	return v3.Vec{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z,
		Y: m[3]*p.X + m[4]*p.Y + m[5]*p.Z,
		Z: m[6]*p.X + m[7]*p.Y + m[8]*p.Z,
	}
}

func (m mat3) mul(n mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i*3+k] * n[k*3+j]
			}
			r[i*3+j] = sum
		}
	}
	return r
}

func (m mat3) transpose() mat3 {
	return mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func rotX(a float64) mat3 {
	s, c := math.Sin(a), math.Cos(a)
	return mat3{1, 0, 0, 0, c, -s, 0, s, c}
}

func rotY(a float64) mat3 {
	s, c := math.Sin(a), math.Cos(a)
	return mat3{c, 0, s, 0, 1, 0, -s, 0, c}
}

func rotZ(a float64) mat3 {
	s, c := math.Sin(a), math.Cos(a)
	return mat3{c, -s, 0, s, c, 0, 0, 0, 1}
}

// rotate applies the inverse rotation to the query point. Rotations
// preserve distance, so no output correction is needed.
type rotate struct {
	inner Field
	inv   mat3
}

func (r rotate) Evaluate(p v3.Vec) float64 {
	return r.inner.Evaluate(r.inv.apply(p))
}

// Rotate returns f rotated by Euler angles in degrees, applied in X, Y, Z
// order around the origin.
func Rotate(f Field, xDeg, yDeg, zDeg float64) Field {
	const toRad = math.Pi / 180
	m := rotZ(zDeg * toRad).mul(rotY(yDeg * toRad)).mul(rotX(xDeg * toRad))
	return rotate{inner: f, inv: m.transpose()}
}

// scale evaluates the inner field in shrunk coordinates and rescales the
// distance to keep the field metric.
type scale struct {
	inner  Field
	factor float64
}

func (s scale) Evaluate(p v3.Vec) float64 {
	return s.inner.Evaluate(p.MulScalar(1/s.factor)) * s.factor
}

// Scale returns f uniformly scaled about the origin. The factor must be
// positive; the output distance is multiplied by it so the result remains a
// distance field.
func Scale(f Field, factor float64) (Field, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("sdf: scale factor must be positive, got %v", factor)
	}
	return scale{inner: f, factor: factor}, nil
}

// wrapCoord folds a coordinate into the centered period cell [-p/2, p/2).
// A period of zero leaves the axis unrepeated.
func wrapCoord(v, period float64) float64 {
	if period == 0 {
		return v
	}
	m := math.Mod(v+0.5*period, period)
	if m < 0 {
		m += period
	}
	return m - 0.5*period
}

// repeat tiles the inner field infinitely with the given period per axis.
type repeat struct {
	inner  Field
	period v3.Vec
}

func (r repeat) Evaluate(p v3.Vec) float64 {
	return r.inner.Evaluate(v3.Vec{
		X: wrapCoord(p.X, r.period.X),
		Y: wrapCoord(p.Y, r.period.Y),
		Z: wrapCoord(p.Z, r.period.Z),
	})
}

// Repeat tiles f infinitely with the given period along each axis. A zero
// component disables repetition along that axis; negative periods are
// rejected. At least one axis must repeat.
func Repeat(f Field, period v3.Vec) (Field, error) {
	if period.X < 0 || period.Y < 0 || period.Z < 0 {
		return nil, fmt.Errorf("sdf: repeat period must be non-negative, got %v", period)
	}
	if period.X == 0 && period.Y == 0 && period.Z == 0 {
		return nil, fmt.Errorf("sdf: repeat needs a positive period on at least one axis")
	}
	return repeat{inner: f, period: period}, nil
}

// clampCell folds a coordinate into the period cell nearest to a bounded
// range of cell indices.
func clampCell(v, period float64, count int) float64 {
	if period == 0 {
		return v
	}
	cell := math.Round(v / period)
	limit := float64(count)
	cell = clamp(cell, -limit, limit)
	return v - period*cell
}

// repeatLimited tiles the inner field a bounded number of times per axis.
type repeatLimited struct {
	inner  Field
	period v3.Vec
	count  [3]int
}

func (r repeatLimited) Evaluate(p v3.Vec) float64 {
	return r.inner.Evaluate(v3.Vec{
		X: clampCell(p.X, r.period.X, r.count[0]),
		Y: clampCell(p.Y, r.period.Y, r.count[1]),
		Z: clampCell(p.Z, r.period.Z, r.count[2]),
	})
}

// RepeatLimited tiles f at most count cells in each direction along each
// axis (2*count+1 copies per axis). Counts must be non-negative.
func RepeatLimited(f Field, period v3.Vec, countX, countY, countZ int) (Field, error) {
	if period.X < 0 || period.Y < 0 || period.Z < 0 {
		return nil, fmt.Errorf("sdf: repeat period must be non-negative, got %v", period)
	}
	if countX < 0 || countY < 0 || countZ < 0 {
		return nil, fmt.Errorf("sdf: repeat counts must be non-negative, got (%d,%d,%d)", countX, countY, countZ)
	}
	return repeatLimited{inner: f, period: period, count: [3]int{countX, countY, countZ}}, nil
}

// twist rotates the query point around Y by an angle proportional to its
// height before evaluating the inner field.
type twist struct {
	inner    Field
	strength float64 // radians per unit height
}

func (t twist) Evaluate(p v3.Vec) float64 {
	a := t.strength * p.Y
	s, c := math.Sin(a), math.Cos(a)
	return t.inner.Evaluate(v3.Vec{
		X: c*p.X - s*p.Z,
		Y: p.Y,
		Z: s*p.X + c*p.Z,
	})
}

// Twist returns f twisted around the Y axis by strength radians per unit of
// height. The result is a bound, not an exact distance.
func Twist(f Field, strength float64) Field {
	return twist{inner: f, strength: strength}
}

// bend rotates the query point around Z by an angle proportional to its X
// coordinate before evaluating the inner field.
type bend struct {
	inner     Field
	curvature float64 // radians per unit along X
}

func (b bend) Evaluate(p v3.Vec) float64 {
	a := b.curvature * p.X
	s, c := math.Sin(a), math.Cos(a)
	return b.inner.Evaluate(v3.Vec{
		X: c*p.X - s*p.Y,
		Y: s*p.X + c*p.Y,
		Z: p.Z,
	})
}

// Bend returns f bent around the Z axis by curvature radians per unit along
// X. The result is a bound, not an exact distance.
func Bend(f Field, curvature float64) Field {
	return bend{inner: f, curvature: curvature}
}

// displace perturbs the inner field's distance by a displacement function.
type displace struct {
	inner Field
	d     func(v3.Vec) float64
}

func (d displace) Evaluate(p v3.Vec) float64 {
	return d.inner.Evaluate(p) + d.d(p)
}

// Displace adds d(p) to f's distance, typically to stamp noise bumps onto
// an exact primitive. The displacement amplitude should stay well below the
// primitive's feature size or the field's sign can tear.
func Displace(f Field, d func(v3.Vec) float64) Field {
	return displace{inner: f, d: d}
}
