package sdf

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// opKind identifies how the next shape combines with everything composed so
// far.
type opKind int

const (
	opUnion opKind = iota
	opSubtract
	opIntersect
	opSmoothUnion
	opSmoothSubtract
	opSmoothIntersect
)

// opSpec is a combination operator plus its blend radius for the smooth
// variants.
type opSpec struct {
	kind opKind
	k    float64
}

// step pairs a shape with the operator that joins it to the composition.
type step struct {
	op    opSpec
	field Field
}

// Builder is a fluent composer of signed distance fields. Shape methods add
// a primitive; operator methods set the operator consumed by the NEXT add
// (not applied to the previous one). With no operator set, union is the
// default:
//
//	f, err := sdf.NewBuilder().
//		Sphere(v3.Vec{}, 2).
//		Subtract().
//		Box(v3.Vec{}, v3.Vec{X: 1, Y: 1, Z: 1}).
//		Build()
//
// The builder records shapes and operators as an explicit list and folds it
// into an immutable field tree at Build time, so fields returned by earlier
// Build calls are never affected by later builder use. Parameter errors are
// recorded at the offending call and reported by Build.
type Builder struct {
	steps   []step
	pending *opSpec
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// fail records the first error; later calls keep composing but Build will
// report it.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// add appends a shape, consuming the pending operator.
func (b *Builder) add(f Field, err error) *Builder {
	if err != nil {
		return b.fail(err)
	}
	op := opSpec{kind: opUnion}
	if b.pending != nil {
		op = *b.pending
		b.pending = nil
	}
	b.steps = append(b.steps, step{op: op, field: f})
	return b
}

// setOp stages an operator for the next shape.
func (b *Builder) setOp(op opSpec) *Builder {
	if len(b.steps) == 0 {
		return b.fail(fmt.Errorf("sdf: operator set before any shape was added"))
	}
	if b.pending != nil {
		return b.fail(fmt.Errorf("sdf: operator set twice without adding a shape"))
	}
	if op.kind >= opSmoothUnion {
		if err := checkBlend(op.k); err != nil {
			return b.fail(err)
		}
	}
	b.pending = &op
	return b
}

// Sphere adds a sphere.
func (b *Builder) Sphere(center v3.Vec, radius float64) *Builder {
	return b.add(NewSphere(center, radius))
}

// Box adds an axis-aligned box with the given half-extents.
func (b *Builder) Box(center, half v3.Vec) *Builder {
	return b.add(NewBox(center, half, 0))
}

// RoundedBox adds a box with rounded edges.
func (b *Builder) RoundedBox(center, half v3.Vec, round float64) *Builder {
	return b.add(NewBox(center, half, round))
}

// Torus adds a torus in the XZ plane.
func (b *Builder) Torus(center v3.Vec, major, minor float64) *Builder {
	return b.add(NewTorus(center, major, minor))
}

// Capsule adds a capsule around the segment a-b.
func (b *Builder) Capsule(a, bEnd v3.Vec, radius float64) *Builder {
	return b.add(NewCapsule(a, bEnd, radius))
}

// Custom adds an arbitrary field, such as a noise-driven terrain term.
func (b *Builder) Custom(f Field) *Builder {
	if f == nil {
		return b.fail(fmt.Errorf("sdf: Custom called with nil field"))
	}
	return b.add(f, nil)
}

// Union makes the next shape merge with the composition. This is also the
// default when no operator is set.
func (b *Builder) Union() *Builder {
	return b.setOp(opSpec{kind: opUnion})
}

// Subtract makes the next shape carve into the composition.
func (b *Builder) Subtract() *Builder {
	return b.setOp(opSpec{kind: opSubtract})
}

// Intersect keeps only the overlap of the composition and the next shape.
func (b *Builder) Intersect() *Builder {
	return b.setOp(opSpec{kind: opIntersect})
}

// SmoothUnion merges the next shape with a blended seam of radius k.
func (b *Builder) SmoothUnion(k float64) *Builder {
	return b.setOp(opSpec{kind: opSmoothUnion, k: k})
}

// SmoothSubtract carves the next shape with a blended seam of radius k.
func (b *Builder) SmoothSubtract(k float64) *Builder {
	return b.setOp(opSpec{kind: opSmoothSubtract, k: k})
}

// SmoothIntersect intersects the next shape with a blended seam of radius k.
func (b *Builder) SmoothIntersect(k float64) *Builder {
	return b.setOp(opSpec{kind: opSmoothIntersect, k: k})
}

// Build folds the recorded steps into one field. With no shapes added it
// returns Empty(): everywhere outside, never everywhere inside, so a no-op
// build extracts to an empty mesh instead of filling space. The first
// recorded error, if any, is returned instead of a field.
func (b *Builder) Build() (Field, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.pending != nil {
		return nil, fmt.Errorf("sdf: pending operator was never consumed by a shape")
	}
	if len(b.steps) == 0 {
		return Empty(), nil
	}

	acc := b.steps[0].field
	for _, s := range b.steps[1:] {
		var err error
		switch s.op.kind {
		case opUnion:
			acc = Union(acc, s.field)
		case opSubtract:
			acc = Difference(acc, s.field)
		case opIntersect:
			acc = Intersect(acc, s.field)
		case opSmoothUnion:
			acc, err = SmoothUnion(acc, s.field, s.op.k)
		case opSmoothSubtract:
			acc, err = SmoothDifference(acc, s.field, s.op.k)
		case opSmoothIntersect:
			acc, err = SmoothIntersect(acc, s.field, s.op.k)
		}
		if err != nil {
			// Blend radii are validated when the operator is set; reaching
			// this means a builder invariant broke.
			return nil, err
		}
	}
	return acc, nil
}
