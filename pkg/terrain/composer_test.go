package terrain

import (
	"strings"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func testComposer(t *testing.T, seed int64) *Composer {
	t.Helper()
	biomes, err := LoadBiomes(strings.NewReader(biomeYAML))
	if err != nil {
		t.Fatalf("LoadBiomes: %v", err)
	}
	c, err := NewComposer(seed, biomes)
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	return c
}

func TestNewComposerValidation(t *testing.T) {
	if _, err := NewComposer(1, nil); err == nil {
		t.Error("NewComposer with no biomes should fail")
	}
	dup := []Biome{
		{ID: 1, Name: "a", Radius: 10, Frequency: 0.1, Octaves: 2},
		{ID: 1, Name: "b", Radius: 10, Frequency: 0.1, Octaves: 2},
	}
	if _, err := NewComposer(1, dup); err == nil {
		t.Error("NewComposer with duplicate biome ids should fail")
	}
	bad := []Biome{{ID: 1, Name: "a", Radius: -1, Frequency: 0.1, Octaves: 2}}
	if _, err := NewComposer(1, bad); err == nil {
		t.Error("NewComposer with invalid biome should fail")
	}
}

func TestHeightAtRepeatable(t *testing.T) {
	c := testComposer(t, 7)
	c2 := testComposer(t, 7)

	for _, p := range [][2]float64{{0, 0}, {13.7, -42.1}, {400, 0}, {-999, 555}} {
		h := c.HeightAt(p[0], p[1])
		if h2 := c.HeightAt(p[0], p[1]); h2 != h {
			t.Errorf("HeightAt(%v) not repeatable: %g then %g", p, h, h2)
		}
		if h2 := c2.HeightAt(p[0], p[1]); h2 != h {
			t.Errorf("HeightAt(%v) differs between same-seed composers: %g vs %g", p, h, h2)
		}
	}
}

func TestHeightAtWithinBiomeBand(t *testing.T) {
	c := testComposer(t, 7)

	// At a biome center the height is baseHeight plus a normalized FBM
	// contribution, so it must stay within the biome's amplitude band.
	for _, b := range c.Biomes() {
		h := c.HeightAt(b.CenterX, b.CenterZ)
		if h < b.BaseHeight || h > b.BaseHeight+b.Amplitude {
			t.Errorf("biome %q center height %g outside [%g, %g]",
				b.Name, h, b.BaseHeight, b.BaseHeight+b.Amplitude)
		}
	}
}

func TestBiomeAt(t *testing.T) {
	c := testComposer(t, 7)
	if got := c.BiomeAt(0, 0); got != 1 {
		t.Errorf("BiomeAt(0,0) = %d, want 1", got)
	}
	if got := c.BiomeAt(400, 0); got != 2 {
		t.Errorf("BiomeAt(400,0) = %d, want 2", got)
	}
}

func TestMaterialAt(t *testing.T) {
	c := testComposer(t, 7)
	known := map[string]bool{"grass": true, "rock": true, "snow": true, "sand": true}
	for x := -500.0; x <= 500; x += 250 {
		m := c.MaterialAt(x, x)
		if !known[m] {
			t.Errorf("MaterialAt(%g, %g) = %q, not a known material", x, x, m)
		}
	}
}

func TestFieldPositiveInOpenAir(t *testing.T) {
	c := testComposer(t, 7)
	f := c.Field()

	for _, xz := range [][2]float64{{0, 0}, {200, -100}, {400, 0}} {
		y := c.HeightAt(xz[0], xz[1]) + 500
		d := f.Evaluate(v3.Vec{X: xz[0], Y: y, Z: xz[1]})
		if d <= 0 {
			t.Errorf("field at (%g, %g, %g) = %g, want positive high above ground", xz[0], y, xz[1], d)
		}
	}
}

func TestFieldCrossesGroundSurface(t *testing.T) {
	c := testComposer(t, 7)
	f := c.Field()

	// Scanning a column from deep rock to open sky must find solid
	// somewhere below the surface and air somewhere above it.
	sawSolid, sawAir := false, false
	for y := -200.0; y <= 200; y += 2 {
		d := f.Evaluate(v3.Vec{X: 3, Y: y, Z: -7})
		if d < 0 {
			sawSolid = true
		}
		if d > 0 {
			sawAir = true
		}
	}
	if !sawSolid || !sawAir {
		t.Errorf("column scan saw solid=%v air=%v, want both", sawSolid, sawAir)
	}
}

func TestFieldDeterministic(t *testing.T) {
	a := testComposer(t, 99).Field()
	b := testComposer(t, 99).Field()

	for y := -60.0; y <= 60; y += 7.3 {
		p := v3.Vec{X: y * 1.7, Y: y, Z: -y * 0.4}
		if a.Evaluate(p) != b.Evaluate(p) {
			t.Fatalf("same-seed fields disagree at %v", p)
		}
	}
}

func TestCavesCarveBelowGround(t *testing.T) {
	c := testComposer(t, 7)
	f := c.Field()

	// Somewhere in a deep slab the tunnel network must open up: without
	// carving, every point this far down would be solid.
	found := false
	for x := -400.0; x <= 400 && !found; x += 8 {
		for z := -400.0; z <= 400 && !found; z += 8 {
			if f.Evaluate(v3.Vec{X: x, Y: -60, Z: z}) > 0 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no cave interior found in a 800x800 slab at depth -60")
	}
}
