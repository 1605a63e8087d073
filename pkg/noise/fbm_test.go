package noise

import (
	"math"
	"testing"
)

func TestFBM2DBounded(t *testing.T) {
	for _, octaves := range []int{1, 2, 4, 8} {
		p := DefaultParams()
		p.Octaves = octaves
		for i := 0; i < 300; i++ {
			x := float64(i)*0.37 - 50
			y := float64(i)*0.19 + 11
			n := FBM2D(77, x, y, p)
			if n < 0 || n > 1 {
				t.Fatalf("fbm2d(octaves=%d) out of [0,1]: %v", octaves, n)
			}
		}
	}
}

func TestFBM3DBounded(t *testing.T) {
	p := DefaultParams()
	for i := 0; i < 300; i++ {
		x := float64(i)*0.37 - 50
		n := FBM3D(77, x, x*0.5, -x, p)
		if n < 0 || n > 1 {
			t.Fatalf("fbm3d out of [0,1]: %v", n)
		}
	}
}

// One octave of fbm is plain value noise at the octave seed.
func TestFBMSingleOctave(t *testing.T) {
	p := Params{Octaves: 1, Lacunarity: 2, Gain: 0.5, Amplitude: 1, Frequency: 1}
	got := FBM2D(5, 3.7, -1.2, p)
	want := Value2D(octaveSeed(5, 0), 3.7, -1.2)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("single-octave fbm = %v, want %v", got, want)
	}
}

func TestFBMDeterministic(t *testing.T) {
	p := DefaultParams()
	if FBM3D(9, 1, 2, 3, p) != FBM3D(9, 1, 2, 3, p) {
		t.Fatal("fbm not deterministic")
	}
	if FBM3D(9, 1, 2, 3, p) == FBM3D(10, 1, 2, 3, p) {
		t.Fatal("fbm ignores seed")
	}
}

func TestFBMVariantsBounded(t *testing.T) {
	p := DefaultParams()
	for i := 0; i < 300; i++ {
		x := float64(i)*0.23 - 30
		y := x * 0.6
		z := -x * 0.4
		for name, n := range map[string]float64{
			"ridged":     RidgedFBM3D(13, x, y, z, p),
			"turbulence": Turbulence3D(13, x, y, z, p),
			"billow":     Billow3D(13, x, y, z, p),
		} {
			if n < 0 || n > 1 {
				t.Fatalf("%s out of [0,1]: %v", name, n)
			}
		}
	}
}

func TestWarpedFBMBounded(t *testing.T) {
	p := DefaultParams()
	for i := 0; i < 200; i++ {
		x := float64(i)*0.31 - 30
		n2 := WarpedFBM2D(21, x, x*0.8, 1.5, p)
		n3 := WarpedFBM3D(21, x, x*0.8, -x, 1.5, p)
		if n2 < 0 || n2 > 1 || n3 < 0 || n3 > 1 {
			t.Fatalf("warped fbm out of [0,1]: %v, %v", n2, n3)
		}
	}
}

// Zero strength must reduce the warp to plain fbm.
func TestWarpedFBMZeroStrength(t *testing.T) {
	p := DefaultParams()
	got := WarpedFBM2D(21, 2.5, -4.1, 0, p)
	want := FBM2D(21, 2.5, -4.1, p)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("zero-strength warp = %v, want %v", got, want)
	}
}

func TestParamsNormalize(t *testing.T) {
	p := Params{}.normalize()
	def := DefaultParams()
	if p != def {
		t.Fatalf("normalized zero params = %+v, want defaults %+v", p, def)
	}
}
