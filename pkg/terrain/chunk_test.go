package terrain

import (
	"context"
	"testing"
)

func testGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := NewGenerator(testComposer(t, seed), 32, -32, 96, 8)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func TestNewGeneratorValidation(t *testing.T) {
	c := testComposer(t, 1)

	if _, err := NewGenerator(nil, 32, -32, 96, 8); err == nil {
		t.Error("nil composer should fail")
	}
	if _, err := NewGenerator(c, 0, -32, 96, 8); err == nil {
		t.Error("zero chunk size should fail")
	}
	if _, err := NewGenerator(c, 32, 10, 10, 8); err == nil {
		t.Error("empty vertical range should fail")
	}
	if _, err := NewGenerator(c, 32, -32, 96, 1); err == nil {
		t.Error("resolution below 2 should fail")
	}
}

func TestGenerateTagsVertices(t *testing.T) {
	g := testGenerator(t, 5)

	ch, err := g.Generate(ChunkCoord{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	m := ch.Mesh
	if m.IsEmpty() {
		t.Fatal("surface chunk produced an empty mesh")
	}
	if len(m.Biomes) != m.VertexCount() {
		t.Errorf("got %d biome tags for %d vertices", len(m.Biomes), m.VertexCount())
	}
	if len(m.Heights) != m.VertexCount() {
		t.Errorf("got %d height tags for %d vertices", len(m.Heights), m.VertexCount())
	}
	for i, id := range m.Biomes {
		if id != 1 && id != 2 {
			t.Fatalf("vertex %d tagged with unknown biome %d", i, id)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	coord := ChunkCoord{X: 2, Z: -1}

	a, err := testGenerator(t, 5).Generate(coord)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := testGenerator(t, 5).Generate(coord)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if a.Key != b.Key {
		t.Errorf("same inputs gave keys %q and %q", a.Key, b.Key)
	}
	if len(a.Mesh.Vertices) != len(b.Mesh.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(a.Mesh.Vertices), len(b.Mesh.Vertices))
	}
	for i := range a.Mesh.Vertices {
		if a.Mesh.Vertices[i] != b.Mesh.Vertices[i] {
			t.Fatalf("vertex data differs at index %d", i)
		}
	}
	for i := range a.Mesh.Normals {
		if a.Mesh.Normals[i] != b.Mesh.Normals[i] {
			t.Fatalf("normal data differs at index %d", i)
		}
	}
	for i := range a.Mesh.Indices {
		if a.Mesh.Indices[i] != b.Mesh.Indices[i] {
			t.Fatalf("index data differs at index %d", i)
		}
	}
	for i := range a.Mesh.Biomes {
		if a.Mesh.Biomes[i] != b.Mesh.Biomes[i] {
			t.Fatalf("biome tags differ at index %d", i)
		}
	}
}

func TestChunkKeyDistinguishesInputs(t *testing.T) {
	g := testGenerator(t, 5)

	a, err := g.Generate(ChunkCoord{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := g.Generate(ChunkCoord{X: 1, Z: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Key == b.Key {
		t.Error("different coords share a key")
	}

	other, err := testGenerator(t, 6).Generate(ChunkCoord{X: 0, Z: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Key == other.Key {
		t.Error("different seeds share a key")
	}
}

func TestGenerateAllMatchesGenerate(t *testing.T) {
	g := testGenerator(t, 5)
	coords := []ChunkCoord{{0, 0}, {1, 0}, {0, 1}, {-1, -1}}

	results, err := g.GenerateAll(context.Background(), coords, 3)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(results) != len(coords) {
		t.Fatalf("got %d results, want %d", len(results), len(coords))
	}

	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("chunk %v failed: %v", r.Coord, r.Err)
		}
		if r.Coord != coords[i] {
			t.Fatalf("result %d is for %v, want %v", i, r.Coord, coords[i])
		}
		single, err := g.Generate(coords[i])
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if r.Chunk.Key != single.Key {
			t.Errorf("chunk %v: pooled key %q != direct key %q", coords[i], r.Chunk.Key, single.Key)
		}
		if len(r.Chunk.Mesh.Vertices) != len(single.Mesh.Vertices) {
			t.Errorf("chunk %v: pooled mesh differs from direct mesh", coords[i])
		}
	}
}

func TestGenerateAllCancelled(t *testing.T) {
	g := testGenerator(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := g.GenerateAll(ctx, []ChunkCoord{{0, 0}, {1, 0}}, 2)
	if err == nil {
		t.Fatal("cancelled GenerateAll should report the context error")
	}
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("chunk %v should carry the context error", r.Coord)
		}
		if r.Chunk != nil {
			t.Errorf("chunk %v should not have been generated", r.Coord)
		}
	}
}

func TestGenerateAllValidation(t *testing.T) {
	g := testGenerator(t, 5)
	if _, err := g.GenerateAll(context.Background(), []ChunkCoord{{0, 0}}, 0); err == nil {
		t.Error("zero workers should fail")
	}
}
