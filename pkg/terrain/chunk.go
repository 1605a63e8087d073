package terrain

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sync"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/regolith/pkg/mc"
	"github.com/chazu/regolith/pkg/mesh"
)

// ChunkCoord addresses a chunk on the horizontal chunk grid. A chunk spans
// the full vertical range of the generator.
type ChunkCoord struct {
	X, Z int32
}

// Chunk is one generated unit of terrain. The caller owns the mesh after
// Generate returns; the generator keeps no reference.
//
// Key hashes everything the mesh depends on: world seed, coordinate, chunk
// layout, resolution, and the biome set. Identical inputs always produce
// the same key and, by the extraction's determinism, the same mesh, so the
// key is safe to address a cache with.
type Chunk struct {
	Coord ChunkCoord
	Mesh  *mesh.Mesh
	Key   string
}

// Generator meshes chunk volumes of a composed terrain field.
type Generator struct {
	composer   *Composer
	chunkSize  float64
	minY, maxY float64
	resolution int
}

// NewGenerator validates the chunk layout. chunkSize is the horizontal
// extent of a chunk in world units, minY/maxY the vertical slab every
// chunk covers, and resolution the marching-cubes cell count per axis.
func NewGenerator(c *Composer, chunkSize, minY, maxY float64, resolution int) (*Generator, error) {
	if c == nil {
		return nil, fmt.Errorf("terrain: generator needs a composer")
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("terrain: chunk size must be positive, got %g", chunkSize)
	}
	if maxY <= minY {
		return nil, fmt.Errorf("terrain: vertical bounds must satisfy minY < maxY, got [%g, %g]", minY, maxY)
	}
	if resolution < 2 {
		return nil, fmt.Errorf("terrain: resolution must be at least 2, got %d", resolution)
	}
	return &Generator{
		composer:   c,
		chunkSize:  chunkSize,
		minY:       minY,
		maxY:       maxY,
		resolution: resolution,
	}, nil
}

// bounds returns the world-space region of a chunk.
func (g *Generator) bounds(coord ChunkCoord) mc.Bounds {
	x0 := float64(coord.X) * g.chunkSize
	z0 := float64(coord.Z) * g.chunkSize
	return mc.Bounds{
		Min: v3.Vec{X: x0, Y: g.minY, Z: z0},
		Max: v3.Vec{X: x0 + g.chunkSize, Y: g.maxY, Z: z0 + g.chunkSize},
	}
}

// keyFor hashes everything the output mesh depends on: world seed, chunk
// coordinate, layout, resolution, and the full biome set.
func (g *Generator) keyFor(coord ChunkCoord) string {
	h := fnv.New64a()
	buf := make([]byte, 8)

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf, v)
		h.Write(buf)
	}
	writeF64 := func(v float64) {
		writeU64(math.Float64bits(v))
	}

	writeU64(uint64(g.composer.seed))
	writeU64(uint64(uint32(coord.X)))
	writeU64(uint64(uint32(coord.Z)))
	writeF64(g.chunkSize)
	writeF64(g.minY)
	writeF64(g.maxY)
	writeU64(uint64(g.resolution))

	for i := range g.composer.biomes {
		b := &g.composer.biomes[i]
		writeU64(uint64(b.ID))
		h.Write([]byte(b.Name))
		h.Write([]byte(b.Material))
		writeF64(b.CenterX)
		writeF64(b.CenterZ)
		writeF64(b.Radius)
		writeF64(b.BaseHeight)
		writeF64(b.Amplitude)
		writeF64(b.Frequency)
		writeU64(uint64(b.Octaves))
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// Generate meshes one chunk synchronously. Each vertex is tagged with the
// biome id and ground height sampled at its XZ position. Identical inputs
// produce bit-identical chunks.
func (g *Generator) Generate(coord ChunkCoord) (*Chunk, error) {
	var biomes []uint8
	var heights []float32

	m, err := mc.ExtractOptions(g.composer.Field(), g.bounds(coord), g.resolution, mc.Options{
		VertexFunc: func(pos, _ v3.Vec) {
			biomes = append(biomes, g.composer.BiomeAt(pos.X, pos.Z))
			heights = append(heights, float32(g.composer.HeightAt(pos.X, pos.Z)))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("terrain: meshing chunk (%d, %d): %w", coord.X, coord.Z, err)
	}
	m.Biomes = biomes
	m.Heights = heights

	return &Chunk{Coord: coord, Mesh: m, Key: g.keyFor(coord)}, nil
}

// ChunkResult pairs one requested coordinate with its outcome. A failed
// chunk carries a nil Chunk and its own error; siblings are unaffected.
type ChunkResult struct {
	Coord ChunkCoord
	Chunk *Chunk
	Err   error
}

// GenerateAll meshes the given chunks across a pool of workers, one chunk
// per worker at a time. Results are returned in input order. Cancellation
// is honored between chunks only: a chunk that has started runs to
// completion, and chunks never started report the context error.
func (g *Generator) GenerateAll(ctx context.Context, coords []ChunkCoord, workers int) ([]ChunkResult, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("terrain: worker count must be positive, got %d", workers)
	}
	if workers > len(coords) {
		workers = len(coords)
	}

	results := make([]ChunkResult, len(coords))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				coord := coords[i]
				if err := ctx.Err(); err != nil {
					results[i] = ChunkResult{Coord: coord, Err: err}
					continue
				}
				ch, err := g.Generate(coord)
				results[i] = ChunkResult{Coord: coord, Chunk: ch, Err: err}
			}
		}()
	}

	for i := range coords {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, ctx.Err()
}
