package sdf

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// union is min(a,b): the combined solid.
type union struct {
	a, b Field
}

func (u union) Evaluate(p v3.Vec) float64 {
	return math.Min(u.a.Evaluate(p), u.b.Evaluate(p))
}

// Union returns the boolean union of two fields.
func Union(a, b Field) Field {
	return union{a: a, b: b}
}

// difference is max(a,-b): b carved out of a.
type difference struct {
	a, b Field
}

func (d difference) Evaluate(p v3.Vec) float64 {
	return math.Max(d.a.Evaluate(p), -d.b.Evaluate(p))
}

// Difference returns a with b subtracted.
func Difference(a, b Field) Field {
	return difference{a: a, b: b}
}

// intersection is max(a,b): the overlap of the two solids.
type intersection struct {
	a, b Field
}

func (i intersection) Evaluate(p v3.Vec) float64 {
	return math.Max(i.a.Evaluate(p), i.b.Evaluate(p))
}

// Intersect returns the boolean intersection of two fields.
func Intersect(a, b Field) Field {
	return intersection{a: a, b: b}
}

// xor keeps the regions covered by exactly one of the two solids.
type xorOp struct {
	a, b Field
}

func (x xorOp) Evaluate(p v3.Vec) float64 {
	da := x.a.Evaluate(p)
	db := x.b.Evaluate(p)
	return math.Max(math.Min(da, db), -math.Max(da, db))
}

// Xor returns the symmetric difference of two fields.
func Xor(a, b Field) Field {
	return xorOp{a: a, b: b}
}

// smin is the polynomial smooth minimum with blend radius k. As k
// approaches zero it recovers min(a,b) exactly.
func smin(a, b, k float64) float64 {
	h := clamp(k-math.Abs(a-b), 0, k) / k
	return math.Min(a, b) - h*h*k*0.25
}

func checkBlend(k float64) error {
	if k <= 0 {
		return fmt.Errorf("sdf: blend radius must be positive, got %v (use the hard operator for k=0)", k)
	}
	return nil
}

type smoothUnion struct {
	a, b Field
	k    float64
}

func (s smoothUnion) Evaluate(p v3.Vec) float64 {
	return smin(s.a.Evaluate(p), s.b.Evaluate(p), s.k)
}

// SmoothUnion blends two fields together, rounding the seam with blend
// radius k.
func SmoothUnion(a, b Field, k float64) (Field, error) {
	if err := checkBlend(k); err != nil {
		return nil, err
	}
	return smoothUnion{a: a, b: b, k: k}, nil
}

type smoothDifference struct {
	a, b Field
	k    float64
}

func (s smoothDifference) Evaluate(p v3.Vec) float64 {
	// max(a,-b) = -min(-a,b), smoothed.
	return -smin(-s.a.Evaluate(p), s.b.Evaluate(p), s.k)
}

// SmoothDifference carves b out of a with a rounded seam of radius k.
func SmoothDifference(a, b Field, k float64) (Field, error) {
	if err := checkBlend(k); err != nil {
		return nil, err
	}
	return smoothDifference{a: a, b: b, k: k}, nil
}

type smoothIntersection struct {
	a, b Field
	k    float64
}

func (s smoothIntersection) Evaluate(p v3.Vec) float64 {
	// max(a,b) = -min(-a,-b), smoothed.
	return -smin(-s.a.Evaluate(p), -s.b.Evaluate(p), s.k)
}

// SmoothIntersect intersects two fields with a rounded seam of radius k.
func SmoothIntersect(a, b Field, k float64) (Field, error) {
	if err := checkBlend(k); err != nil {
		return nil, err
	}
	return smoothIntersection{a: a, b: b, k: k}, nil
}
