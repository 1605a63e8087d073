package noise

import "math"

// Params controls a fractal Brownian motion sum. The zero value is not
// useful; start from DefaultParams and override fields.
type Params struct {
	Octaves    int     // number of noise layers summed
	Lacunarity float64 // per-octave frequency multiplier
	Gain       float64 // per-octave amplitude multiplier
	Amplitude  float64 // amplitude of the first octave
	Frequency  float64 // frequency of the first octave
}

// DefaultParams returns the standard 4-octave fbm configuration.
func DefaultParams() Params {
	return Params{
		Octaves:    4,
		Lacunarity: 2.0,
		Gain:       0.5,
		Amplitude:  1.0,
		Frequency:  1.0,
	}
}

// normalize fills unset fields so that a partially specified Params still
// produces a sane sum. Octaves below 1 become 1 rather than erroring: fbm is
// called from deep inside field evaluation where there is no error channel,
// and one octave is plain value noise.
func (p Params) normalize() Params {
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Lacunarity == 0 {
		p.Lacunarity = 2.0
	}
	if p.Gain == 0 {
		p.Gain = 0.5
	}
	if p.Amplitude == 0 {
		p.Amplitude = 1.0
	}
	if p.Frequency == 0 {
		p.Frequency = 1.0
	}
	return p
}

// octaveSeed decorrelates octaves that would otherwise share lattice
// alignment at power-of-two frequencies.
func octaveSeed(seed int64, octave int) int64 {
	return seed + int64(octave)*1013
}

// FBM2D sums p.Octaves layers of 2D value noise, each octave at
// p.Lacunarity times the frequency and p.Gain times the amplitude of the
// previous one. The sum is normalized by the total amplitude, so the result
// stays in [0,1) regardless of octave count.
func FBM2D(seed int64, x, y float64, p Params) float64 {
	p = p.normalize()

	sum := 0.0
	amp := p.Amplitude
	freq := p.Frequency
	totalAmp := 0.0
	for o := 0; o < p.Octaves; o++ {
		sum += amp * Value2D(octaveSeed(seed, o), x*freq, y*freq)
		totalAmp += amp
		amp *= p.Gain
		freq *= p.Lacunarity
	}
	return sum / totalAmp
}

// FBM3D is the 3D analogue of FBM2D.
func FBM3D(seed int64, x, y, z float64, p Params) float64 {
	p = p.normalize()

	sum := 0.0
	amp := p.Amplitude
	freq := p.Frequency
	totalAmp := 0.0
	for o := 0; o < p.Octaves; o++ {
		sum += amp * Value3D(octaveSeed(seed, o), x*freq, y*freq, z*freq)
		totalAmp += amp
		amp *= p.Gain
		freq *= p.Lacunarity
	}
	return sum / totalAmp
}

// fbm3DShaped sums octaves of 3D value noise with a per-octave shaping
// function applied before accumulation. shape must map [0,1) into [0,1].
func fbm3DShaped(seed int64, x, y, z float64, p Params, shape func(float64) float64) float64 {
	p = p.normalize()

	sum := 0.0
	amp := p.Amplitude
	freq := p.Frequency
	totalAmp := 0.0
	for o := 0; o < p.Octaves; o++ {
		n := Value3D(octaveSeed(seed, o), x*freq, y*freq, z*freq)
		sum += amp * shape(n)
		totalAmp += amp
		amp *= p.Gain
		freq *= p.Lacunarity
	}
	return sum / totalAmp
}

// RidgedFBM3D applies the ridge transform 1-|2n-1| per octave, producing
// sharp crease lines suited to mountain ridgelines.
func RidgedFBM3D(seed int64, x, y, z float64, p Params) float64 {
	return fbm3DShaped(seed, x, y, z, p, func(n float64) float64 {
		return 1 - math.Abs(2*n-1)
	})
}

// Turbulence3D applies |2n-1| per octave, the classic turbulence used for
// cloud and fire textures.
func Turbulence3D(seed int64, x, y, z float64, p Params) float64 {
	return fbm3DShaped(seed, x, y, z, p, func(n float64) float64 {
		return math.Abs(2*n - 1)
	})
}

// Billow3D applies the squared ridge transform per octave, producing soft
// pillow-like bumps.
func Billow3D(seed int64, x, y, z float64, p Params) float64 {
	return fbm3DShaped(seed, x, y, z, p, func(n float64) float64 {
		r := 1 - math.Abs(2*n-1)
		return r * r
	})
}

// warpParams derives the lower-octave fbm used to displace the sample
// coordinate of a warped fbm.
func warpParams(p Params) Params {
	p = p.normalize()
	p.Octaves = p.Octaves / 2
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	return p
}

// WarpedFBM2D evaluates fbm at a coordinate displaced by a second,
// lower-octave fbm scaled by strength. The two warp channels use offset
// seeds so the displacement is not axis-aligned.
func WarpedFBM2D(seed int64, x, y, strength float64, p Params) float64 {
	wp := warpParams(p)
	wx := FBM2D(seed+7919, x, y, wp)
	wy := FBM2D(seed+104729, x, y, wp)
	return FBM2D(seed, x+strength*(wx*2-1), y+strength*(wy*2-1), p)
}

// WarpedFBM3D is the 3D analogue of WarpedFBM2D.
func WarpedFBM3D(seed int64, x, y, z, strength float64, p Params) float64 {
	wp := warpParams(p)
	wx := FBM3D(seed+7919, x, y, z, wp)
	wy := FBM3D(seed+104729, x, y, z, wp)
	wz := FBM3D(seed+1299709, x, y, z, wp)
	return FBM3D(seed,
		x+strength*(wx*2-1),
		y+strength*(wy*2-1),
		z+strength*(wz*2-1), p)
}
