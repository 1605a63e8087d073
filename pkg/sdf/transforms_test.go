package sdf

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestTranslate(t *testing.T) {
	s := mustField(t)(NewSphere(v3.Vec{}, 1))
	moved := Translate(s, v3.Vec{X: 5})
	if d := moved.Evaluate(v3.Vec{X: 5}); d != -1 {
		t.Fatalf("translated center = %v, want -1", d)
	}
	if d := moved.Evaluate(v3.Vec{X: 7}); math.Abs(d-1) > 1e-12 {
		t.Fatalf("outside translated sphere = %v, want 1", d)
	}
}

func TestRotate(t *testing.T) {
	// A box elongated along X, rotated 90 degrees around Y, becomes
	// elongated along Z.
	b := mustField(t)(NewBox(v3.Vec{}, v3.Vec{X: 2, Y: 0.5, Z: 0.5}, 0))
	r := Rotate(b, 0, 90, 0)
	if d := r.Evaluate(v3.Vec{Z: 1.5}); d >= 1e-9 {
		t.Fatalf("point along new long axis should be inside, got %v", d)
	}
	if d := r.Evaluate(v3.Vec{X: 1.5}); d <= 1e-9 {
		t.Fatalf("point along old long axis should be outside, got %v", d)
	}
}

// Scaling must keep the field metric: distances scale with the factor.
func TestScaleMetric(t *testing.T) {
	s := mustField(t)(NewSphere(v3.Vec{}, 1))
	scaled, err := Scale(s, 3)
	if err != nil {
		t.Fatal(err)
	}
	if d := scaled.Evaluate(v3.Vec{X: 5}); math.Abs(d-2) > 1e-12 {
		t.Fatalf("scaled sphere distance = %v, want 2", d)
	}
	if d := scaled.Evaluate(v3.Vec{}); math.Abs(d+3) > 1e-12 {
		t.Fatalf("scaled sphere center = %v, want -3", d)
	}
	if _, err := Scale(s, 0); err == nil {
		t.Fatal("expected error for zero scale factor")
	}
}

func TestRepeatPeriodicity(t *testing.T) {
	s := mustField(t)(NewSphere(v3.Vec{}, 0.5))
	rep, err := Repeat(s, v3.Vec{X: 4, Y: 0, Z: 4})
	if err != nil {
		t.Fatal(err)
	}
	base := rep.Evaluate(v3.Vec{X: 0.3, Z: -0.2})
	for _, cell := range []v3.Vec{{X: 4}, {X: -8}, {Z: 12}, {X: 4, Z: -4}} {
		p := v3.Vec{X: 0.3 + cell.X, Z: -0.2 + cell.Z}
		if d := rep.Evaluate(p); math.Abs(d-base) > 1e-12 {
			t.Fatalf("repeat not periodic: %v at %v, want %v", d, p, base)
		}
	}
}

func TestRepeatValidation(t *testing.T) {
	s := mustField(t)(NewSphere(v3.Vec{}, 0.5))
	if _, err := Repeat(s, v3.Vec{X: -1}); err == nil {
		t.Fatal("expected error for negative period")
	}
	if _, err := Repeat(s, v3.Vec{}); err == nil {
		t.Fatal("expected error for all-zero period")
	}
}

func TestRepeatLimited(t *testing.T) {
	s := mustField(t)(NewSphere(v3.Vec{}, 0.5))
	rep, err := RepeatLimited(s, v3.Vec{X: 4}, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Cell +1 exists, cell +2 does not: the query falls back to the edge
	// copy and the distance keeps growing.
	inCopy := rep.Evaluate(v3.Vec{X: 4})
	if inCopy != -0.5 {
		t.Fatalf("center of +1 copy = %v, want -0.5", inCopy)
	}
	beyond := rep.Evaluate(v3.Vec{X: 8})
	if beyond <= 0 {
		t.Fatalf("center of clamped +2 cell = %v, want positive", beyond)
	}
}

func TestTwistPreservesAxisPoint(t *testing.T) {
	b := mustField(t)(NewBox(v3.Vec{}, v3.Vec{X: 1, Y: 2, Z: 1}, 0))
	tw := Twist(b, 0.8)
	// Points on the twist axis are fixed points of the rotation.
	if d := tw.Evaluate(v3.Vec{Y: 1}); math.Abs(d-b.Evaluate(v3.Vec{Y: 1})) > 1e-12 {
		t.Fatalf("twist moved an axis point: %v", d)
	}
	// Zero strength is the identity.
	id := Twist(b, 0)
	p := v3.Vec{X: 0.3, Y: 1.2, Z: -0.7}
	if id.Evaluate(p) != b.Evaluate(p) {
		t.Fatal("zero-strength twist changed the field")
	}
}

func TestBendZeroIsIdentity(t *testing.T) {
	b := mustField(t)(NewBox(v3.Vec{}, v3.Vec{X: 2, Y: 0.5, Z: 0.5}, 0))
	id := Bend(b, 0)
	p := v3.Vec{X: 1.1, Y: 0.2, Z: 0.1}
	if id.Evaluate(p) != b.Evaluate(p) {
		t.Fatal("zero-curvature bend changed the field")
	}
}

func TestDisplace(t *testing.T) {
	s := mustField(t)(NewSphere(v3.Vec{}, 1))
	d := Displace(s, func(p v3.Vec) float64 { return 0.25 })
	// A constant positive displacement shrinks the solid.
	if got := d.Evaluate(v3.Vec{X: 1}); math.Abs(got-0.25) > 1e-12 {
		t.Fatalf("displaced surface = %v, want 0.25", got)
	}
}
