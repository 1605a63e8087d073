// Package terrain composes noise and signed distance fields into a
// deterministic world: a height/biome query surface, cave carving, and a
// chunked mesh generator suitable for streaming to a renderer.
package terrain

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Biome is a circular region of influence with its own height-field
// parameters. The nearest biome center wins a query; regions are expected
// to tile the area of interest loosely, with the closest center acting as
// a fallback outside every radius.
type Biome struct {
	ID         uint8   `yaml:"id"`
	Name       string  `yaml:"name"`
	CenterX    float64 `yaml:"centerX"`
	CenterZ    float64 `yaml:"centerZ"`
	Radius     float64 `yaml:"radius"`
	BaseHeight float64 `yaml:"baseHeight"`
	Amplitude  float64 `yaml:"amplitude"`
	Frequency  float64 `yaml:"frequency"`
	Octaves    int     `yaml:"octaves"`
	Material   string  `yaml:"material"`
}

// biomeFile is the on-disk document shape.
type biomeFile struct {
	Biomes []Biome `yaml:"biomes"`
}

// validate checks a single biome record.
func (b *Biome) validate() error {
	if b.Name == "" {
		return fmt.Errorf("terrain: biome %d has no name", b.ID)
	}
	if b.Radius <= 0 {
		return fmt.Errorf("terrain: biome %q radius must be positive, got %g", b.Name, b.Radius)
	}
	if b.Amplitude < 0 {
		return fmt.Errorf("terrain: biome %q amplitude must not be negative, got %g", b.Name, b.Amplitude)
	}
	if b.Frequency <= 0 {
		return fmt.Errorf("terrain: biome %q frequency must be positive, got %g", b.Name, b.Frequency)
	}
	if b.Octaves <= 0 {
		return fmt.Errorf("terrain: biome %q octaves must be positive, got %d", b.Name, b.Octaves)
	}
	return nil
}

// LoadBiomes reads a YAML biome document and validates it. IDs must be
// unique; at least one biome is required.
func LoadBiomes(r io.Reader) ([]Biome, error) {
	var doc biomeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("terrain: decoding biome config: %w", err)
	}
	if len(doc.Biomes) == 0 {
		return nil, fmt.Errorf("terrain: biome config defines no biomes")
	}

	seen := make(map[uint8]string, len(doc.Biomes))
	for i := range doc.Biomes {
		b := &doc.Biomes[i]
		if err := b.validate(); err != nil {
			return nil, err
		}
		if prev, ok := seen[b.ID]; ok {
			return nil, fmt.Errorf("terrain: biome id %d used by both %q and %q", b.ID, prev, b.Name)
		}
		seen[b.ID] = b.Name
	}
	return doc.Biomes, nil
}

// nearestBiome returns the biome whose center is closest to (x, z).
// Linear scan; biome counts are small.
func nearestBiome(biomes []Biome, x, z float64) *Biome {
	best := &biomes[0]
	bestDist := math.Inf(1)
	for i := range biomes {
		b := &biomes[i]
		dx := x - b.CenterX
		dz := z - b.CenterZ
		d := dx*dx + dz*dz
		if d < bestDist {
			bestDist = d
			best = b
		}
	}
	return best
}
