package terrain

import "github.com/aquilax/go-perlin"

// Perlin parameters for the climate layers. Low persistence keeps the
// fields smooth at biome scale.
const (
	climateAlpha   = 2.0
	climateBeta    = 2.0
	climateOctaves = 3
	climateScale   = 1.0 / 512.0
)

// Climate provides slowly-varying temperature and moisture fields layered
// over the biome map. Values are deterministic per seed and independent of
// query order.
type Climate struct {
	temperature *perlin.Perlin
	moisture    *perlin.Perlin
}

// NewClimate builds the climate layers for a world seed.
func NewClimate(seed int64) *Climate {
	return &Climate{
		temperature: perlin.NewPerlin(climateAlpha, climateBeta, climateOctaves, seed),
		moisture:    perlin.NewPerlin(climateAlpha, climateBeta, climateOctaves, seed+1),
	}
}

// TemperatureAt returns the temperature at (x, z), remapped to [0, 1].
func (c *Climate) TemperatureAt(x, z float64) float64 {
	return remapUnit(c.temperature.Noise2D(x*climateScale, z*climateScale))
}

// MoistureAt returns the moisture at (x, z), remapped to [0, 1].
func (c *Climate) MoistureAt(x, z float64) float64 {
	return remapUnit(c.moisture.Noise2D(x*climateScale, z*climateScale))
}

// remapUnit maps the roughly [-1, 1] perlin output to [0, 1], clamped.
func remapUnit(v float64) float64 {
	v = v*0.5 + 0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
