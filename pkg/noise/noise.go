// Package noise provides seeded lattice noise for procedural terrain:
// coordinate hashing, value noise, gradient noise, fractal Brownian motion
// and its ridged/turbulence/billow variants, domain warping, and cellular
// (Voronoi) noise. Every function is pure and deterministic for a given
// (seed, coordinate) input; there is no package-level random state.
package noise

import "math"

// Mixing constants for the 64-bit finalizer used by the lattice hash.
const (
	mixA = 0xff51afd7ed558ccd
	mixB = 0xc4ceb9fe1a85ec53

	seedMul = 0x9e3779b97f4a7c15
	coordMulX = 0xd6e8feb86659fd93
	coordMulY = 0xa0761d6478bd642f
	coordMulZ = 0xe7037ed1a0b428db
)

// mix64 is a Murmur3-style finalizer. It spreads lattice coordinates into
// the full 64-bit range so neighboring cells decorrelate.
func mix64(h uint64) uint64 {
	h ^= h >> 33
	h *= mixA
	h ^= h >> 33
	h *= mixB
	h ^= h >> 33
	return h
}

// hashBits combines seed and coordinate bit patterns into one hash word.
// Coordinates are hashed by their exact float64 bit pattern, so integer
// lattice coordinates hash exactly and there is no periodicity.
func hashBits(seed int64, x, y, z float64) uint64 {
	h := uint64(seed) * seedMul
	h ^= math.Float64bits(x) * coordMulX
	h ^= math.Float64bits(y) * coordMulY
	h ^= math.Float64bits(z) * coordMulZ
	return mix64(h)
}

// toUnit maps a hash word onto [0,1) using the top 53 bits.
func toUnit(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}

// Hash1 returns a deterministic pseudo-random scalar in [0,1) for a seed
// and a 1D coordinate.
func Hash1(seed int64, x float64) float64 {
	return toUnit(hashBits(seed, x, 0, 0))
}

// Hash2 returns a deterministic pseudo-random scalar in [0,1) for a seed
// and a 2D coordinate.
func Hash2(seed int64, x, y float64) float64 {
	return toUnit(hashBits(seed, x, y, 0))
}

// Hash3 returns a deterministic pseudo-random scalar in [0,1) for a seed
// and a 3D coordinate.
func Hash3(seed int64, x, y, z float64) float64 {
	return toUnit(hashBits(seed, x, y, z))
}

// smoothstep is the quintic fade curve 6t^5 - 15t^4 + 10t^3. Its first
// derivative is zero at t=0 and t=1, which makes value noise C1 at lattice
// points.
func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// Value1D returns smoothstep-interpolated lattice value noise in [0,1).
func Value1D(seed int64, x float64) float64 {
	ix := math.Floor(x)
	fx := x - ix

	a := Hash1(seed, ix)
	b := Hash1(seed, ix+1)
	return lerp(smoothstep(fx), a, b)
}

// Value2D returns smoothstep-interpolated lattice value noise in [0,1).
func Value2D(seed int64, x, y float64) float64 {
	ix := math.Floor(x)
	iy := math.Floor(y)
	fx := x - ix
	fy := y - iy

	u := smoothstep(fx)
	v := smoothstep(fy)

	n00 := Hash2(seed, ix, iy)
	n10 := Hash2(seed, ix+1, iy)
	n01 := Hash2(seed, ix, iy+1)
	n11 := Hash2(seed, ix+1, iy+1)

	return lerp(v, lerp(u, n00, n10), lerp(u, n01, n11))
}

// Value3D returns smoothstep-interpolated lattice value noise in [0,1).
func Value3D(seed int64, x, y, z float64) float64 {
	ix := math.Floor(x)
	iy := math.Floor(y)
	iz := math.Floor(z)
	fx := x - ix
	fy := y - iy
	fz := z - iz

	u := smoothstep(fx)
	v := smoothstep(fy)
	w := smoothstep(fz)

	n000 := Hash3(seed, ix, iy, iz)
	n100 := Hash3(seed, ix+1, iy, iz)
	n010 := Hash3(seed, ix, iy+1, iz)
	n110 := Hash3(seed, ix+1, iy+1, iz)
	n001 := Hash3(seed, ix, iy, iz+1)
	n101 := Hash3(seed, ix+1, iy, iz+1)
	n011 := Hash3(seed, ix, iy+1, iz+1)
	n111 := Hash3(seed, ix+1, iy+1, iz+1)

	bottom := lerp(v, lerp(u, n000, n100), lerp(u, n010, n110))
	top := lerp(v, lerp(u, n001, n101), lerp(u, n011, n111))
	return lerp(w, bottom, top)
}

// The 12 edge-midpoint gradient directions of a cube, the classic Perlin
// gradient set.
var gradients = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// gradDot picks a gradient for a lattice corner by hash and dots it with
// the offset from that corner.
func gradDot(seed int64, ix, iy, iz, dx, dy, dz float64) float64 {
	g := gradients[hashBits(seed, ix, iy, iz)%12]
	return g[0]*dx + g[1]*dy + g[2]*dz
}

// Gradient3D returns Perlin-style gradient noise. The raw gradient sum lives
// in roughly [-1,1]; the result is remapped to [0,1] to match the value
// noise range so the fbm variants can consume either interchangeably.
func Gradient3D(seed int64, x, y, z float64) float64 {
	ix := math.Floor(x)
	iy := math.Floor(y)
	iz := math.Floor(z)
	fx := x - ix
	fy := y - iy
	fz := z - iz

	u := smoothstep(fx)
	v := smoothstep(fy)
	w := smoothstep(fz)

	n000 := gradDot(seed, ix, iy, iz, fx, fy, fz)
	n100 := gradDot(seed, ix+1, iy, iz, fx-1, fy, fz)
	n010 := gradDot(seed, ix, iy+1, iz, fx, fy-1, fz)
	n110 := gradDot(seed, ix+1, iy+1, iz, fx-1, fy-1, fz)
	n001 := gradDot(seed, ix, iy, iz+1, fx, fy, fz-1)
	n101 := gradDot(seed, ix+1, iy, iz+1, fx-1, fy, fz-1)
	n011 := gradDot(seed, ix, iy+1, iz+1, fx, fy-1, fz-1)
	n111 := gradDot(seed, ix+1, iy+1, iz+1, fx-1, fy-1, fz-1)

	bottom := lerp(v, lerp(u, n000, n100), lerp(u, n010, n110))
	top := lerp(v, lerp(u, n001, n101), lerp(u, n011, n111))
	n := lerp(w, bottom, top)

	// Remap [-1,1] to [0,1], clamped against gradient-set overshoot.
	n = n*0.5 + 0.5
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
