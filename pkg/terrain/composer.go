package terrain

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/regolith/pkg/noise"
	"github.com/chazu/regolith/pkg/sdf"
)

// Seed offsets keep the height, cave, and rock layers decorrelated while
// deriving from one world seed.
const (
	caveSeedA = 1000003
	caveSeedB = 2000003
	rockSeed  = 3000017
)

// Cave network shaping. Two independent noise bands are intersected so
// tunnels form along the curves where both fields sit near their midline,
// rather than as blobby voids.
const (
	caveFrequency = 1.0 / 48.0
	caveWarp      = 0.6
	caveBand      = 0.08
	caveScale     = 30.0
)

// Rock cluster placement. One candidate rock per coarse voronoi cell; the
// zero set of a rock stays well inside its cell, so the per-cell radius
// jump at cell boundaries never crosses the surface.
const (
	rockCellSize  = 24.0
	rockMinRadius = 1.5
	rockMaxRadius = 4.0
	rockBand      = 5.0
	rockBlend     = 1.2
)

// Composer combines a biome-parameterized height field, a carved cave
// network, and surface rock clusters into one scalar field. All queries
// are pure functions of (seed, coordinates, biomes) and safe to call
// concurrently.
type Composer struct {
	seed    int64
	biomes  []Biome
	climate *Climate
	field   sdf.Field
}

// NewComposer validates the biome set and builds the composed field.
func NewComposer(seed int64, biomes []Biome) (*Composer, error) {
	if len(biomes) == 0 {
		return nil, fmt.Errorf("terrain: composer needs at least one biome")
	}
	seen := make(map[uint8]string, len(biomes))
	for i := range biomes {
		b := &biomes[i]
		if err := b.validate(); err != nil {
			return nil, err
		}
		if prev, ok := seen[b.ID]; ok {
			return nil, fmt.Errorf("terrain: biome id %d used by both %q and %q", b.ID, prev, b.Name)
		}
		seen[b.ID] = b.Name
	}

	c := &Composer{
		seed:    seed,
		biomes:  append([]Biome(nil), biomes...),
		climate: NewClimate(seed),
	}
	f, err := c.buildField()
	if err != nil {
		return nil, err
	}
	c.field = f
	return c, nil
}

// Seed returns the world seed the composer was built with.
func (c *Composer) Seed() int64 {
	return c.seed
}

// Biomes returns the composer's biome set. Callers must not modify it.
func (c *Composer) Biomes() []Biome {
	return c.biomes
}

// Climate returns the composer's climate layer.
func (c *Composer) Climate() *Climate {
	return c.climate
}

// Field returns the composed terrain field. Negative below ground and
// inside rocks, positive in air and inside caves.
func (c *Composer) Field() sdf.Field {
	return c.field
}

// HeightAt returns the ground surface elevation at (x, z), before cave
// carving. Noise parameters come from the nearest biome.
func (c *Composer) HeightAt(x, z float64) float64 {
	b := nearestBiome(c.biomes, x, z)
	p := noise.Params{
		Octaves:   b.Octaves,
		Frequency: b.Frequency,
	}
	return b.BaseHeight + b.Amplitude*noise.FBM2D(c.seed, x, z, p)
}

// BiomeAt returns the id of the biome whose center is nearest to (x, z).
func (c *Composer) BiomeAt(x, z float64) uint8 {
	return nearestBiome(c.biomes, x, z).ID
}

// MaterialAt returns the surface material at (x, z): the nearest biome's
// material, overridden by the climate layer at the extremes (snow when
// cold, sand when hot and dry).
func (c *Composer) MaterialAt(x, z float64) string {
	temp := c.climate.TemperatureAt(x, z)
	if temp < 0.2 {
		return "snow"
	}
	if temp > 0.8 && c.climate.MoistureAt(x, z) < 0.15 {
		return "sand"
	}
	return nearestBiome(c.biomes, x, z).Material
}

// groundAt is the height-field term: distance above (positive) or below
// (negative) the ground surface.
func (c *Composer) groundAt(p v3.Vec) float64 {
	return p.Y - c.HeightAt(p.X, p.Z)
}

// caveAt is negative inside a tunnel. Two warped noise bands are
// intersected; a point is inside only where both fields lie within
// caveBand of their midline.
func (c *Composer) caveAt(p v3.Vec) float64 {
	x := p.X * caveFrequency
	y := p.Y * caveFrequency
	z := p.Z * caveFrequency

	n1 := noise.WarpedFBM3D(c.seed+caveSeedA, x, y, z, caveWarp, noise.Params{})
	n2 := noise.FBM3D(c.seed+caveSeedB, x, y, z, noise.Params{})

	d1 := math.Abs(n1-0.5) - caveBand
	d2 := math.Abs(n2-0.5) - caveBand
	return math.Max(d1, d2) * caveScale
}

// rockAt is the rock-cluster term: one sphere per coarse voronoi cell,
// radius derived from the cell id hash, clipped to a band around the
// ground surface so rocks never float in open air or vanish underground.
func (c *Composer) rockAt(p v3.Vec) float64 {
	res := noise.Voronoi3D(c.seed+rockSeed, p.X/rockCellSize, p.Y/rockCellSize, p.Z/rockCellSize)
	u := float64(res.CellID&0x3ff) / 1024.0
	radius := rockMinRadius + u*(rockMaxRadius-rockMinRadius)
	sphere := res.F1*rockCellSize - radius

	slab := math.Abs(c.groundAt(p)) - rockBand
	return math.Max(sphere, slab)
}

// buildField assembles ground minus caves, with rock clusters blended in.
func (c *Composer) buildField() (sdf.Field, error) {
	ground := sdf.FieldFunc(c.groundAt)
	caves := sdf.FieldFunc(c.caveAt)
	rocks := sdf.FieldFunc(c.rockAt)

	solid := sdf.Difference(ground, caves)
	return sdf.SmoothUnion(solid, rocks, rockBlend)
}
