package terrain

import (
	"testing"

	"TerraVoxel/shared/noise"
	"TerraVoxel/shared/voxel"
	"TerraVoxel/shared/world"
)

// flatProfile devolve um perfil sem ruído: altura constante, sem árvores.
func flatProfile(h int) Profile {
	p := DefaultProfile()
	p.BaseHeight = h
	p.ContinentAmplitude = 0
	p.DetailAmplitude = 0
	p.TreeDensity = 0
	return p
}

func countBlocks(ch *world.Chunk, b voxel.Block) int {
	n := 0
	for x := 0; x < world.SX; x++ {
		for y := 0; y < world.SY; y++ {
			for z := 0; z < world.SZ; z++ {
				if ch.Get(x, y, z) == b {
					n++
				}
			}
		}
	}
	return n
}

func TestSurfaceHeightClamp(t *testing.T) {
	field := noise.New(42)

	low := NewGenerator(field, flatProfile(-100))
	if got := low.SurfaceHeight(0, 0); got != 1 {
		t.Errorf("piso = %d, esperado 1", got)
	}

	high := NewGenerator(field, flatProfile(1000))
	if got := high.SurfaceHeight(0, 0); got != world.SY-10 {
		t.Errorf("teto = %d, esperado %d", got, world.SY-10)
	}

	// Amplitude exagerada nunca escapa do intervalo.
	p := DefaultProfile()
	p.ContinentAmplitude = 500
	wild := NewGenerator(field, p)
	for wx := -64; wx <= 64; wx += 7 {
		for wz := -64; wz <= 64; wz += 7 {
			h := wild.SurfaceHeight(wx, wz)
			if h < 1 || h > world.SY-10 {
				t.Fatalf("SurfaceHeight(%d,%d) = %d fora de [1,%d]", wx, wz, h, world.SY-10)
			}
		}
	}
}

func TestSurfaceHeightDeterminism(t *testing.T) {
	a := NewGenerator(noise.New(7), DefaultProfile())
	b := NewGenerator(noise.New(7), DefaultProfile())

	for wx := -40; wx <= 40; wx += 11 {
		for wz := -40; wz <= 40; wz += 13 {
			ha, hb := a.SurfaceHeight(wx, wz), b.SurfaceHeight(wx, wz)
			if ha != hb {
				t.Fatalf("alturas divergem em (%d,%d): %d vs %d", wx, wz, ha, hb)
			}
		}
	}
}

func TestFillChunkClassification(t *testing.T) {
	p := DefaultProfile()
	p.TreeDensity = 0
	g := NewGenerator(noise.New(1337), p)

	for _, coord := range []world.ChunkCoord{{X: 0, Z: 0}, {X: -3, Z: 2}, {X: 5, Z: -5}} {
		ch := world.NewChunk(coord)
		g.FillChunk(ch)

		for x := 0; x < world.SX; x++ {
			for z := 0; z < world.SZ; z++ {
				h := g.SurfaceHeight(ch.WorldX(x), ch.WorldZ(z))
				for y := 0; y < world.SY; y++ {
					got := ch.Get(x, y, z)
					want := expectedBlock(y, h, p)
					if got != want {
						t.Fatalf("chunk %v voxel (%d,%d,%d) com h=%d: %v, esperado %v",
							coord, x, y, z, h, got, want)
					}
				}
			}
		}
	}
}

// expectedBlock espelha as regras de classificação de forma independente.
func expectedBlock(y, h int, p Profile) voxel.Block {
	switch {
	case y == 0:
		return voxel.Stone
	case y < h-p.StoneDepth:
		return voxel.Stone
	case y < h:
		return voxel.Dirt
	case y == h:
		if h <= p.SeaLevel+1 {
			return voxel.Sand
		}
		return voxel.Grass
	case y <= p.SeaLevel:
		return voxel.Water
	default:
		return voxel.Air
	}
}

func TestFillChunkOceanColumn(t *testing.T) {
	g := NewGenerator(noise.New(1), flatProfile(5))
	ch := world.NewChunk(world.ChunkCoord{})
	g.FillChunk(ch)

	checks := []struct {
		y    int
		want voxel.Block
	}{
		{0, voxel.Stone},
		{1, voxel.Dirt},
		{4, voxel.Dirt},
		{5, voxel.Sand},
		{6, voxel.Water},
		{30, voxel.Water},
		{31, voxel.Air},
	}
	for _, c := range checks {
		if got := ch.Get(8, c.y, 8); got != c.want {
			t.Errorf("coluna oceânica y=%d: %v, esperado %v", c.y, got, c.want)
		}
	}
}

func TestFillChunkGrasslandColumn(t *testing.T) {
	g := NewGenerator(noise.New(1), flatProfile(40))
	ch := world.NewChunk(world.ChunkCoord{})
	g.FillChunk(ch)

	checks := []struct {
		y    int
		want voxel.Block
	}{
		{0, voxel.Stone},
		{35, voxel.Stone},
		{36, voxel.Dirt},
		{39, voxel.Dirt},
		{40, voxel.Grass},
		{41, voxel.Air},
	}
	for _, c := range checks {
		if got := ch.Get(8, c.y, 8); got != c.want {
			t.Errorf("coluna de campo y=%d: %v, esperado %v", c.y, got, c.want)
		}
	}
}

func TestShorelineBoundary(t *testing.T) {
	// h == seaLevel+1 ainda é praia; um acima já é grama.
	sand := world.NewChunk(world.ChunkCoord{})
	NewGenerator(noise.New(1), flatProfile(31)).FillChunk(sand)
	if got := sand.Get(0, 31, 0); got != voxel.Sand {
		t.Errorf("superfície em h=31: %v, esperado Sand", got)
	}
	if got := sand.Get(0, 32, 0); got != voxel.Air {
		t.Errorf("acima da praia: %v, esperado Air", got)
	}

	grass := world.NewChunk(world.ChunkCoord{})
	NewGenerator(noise.New(1), flatProfile(32)).FillChunk(grass)
	if got := grass.Get(0, 32, 0); got != voxel.Grass {
		t.Errorf("superfície em h=32: %v, esperado Grass", got)
	}
}

func TestTreePlacementRules(t *testing.T) {
	// h <= seaLevel+2 não hospeda árvore nem com densidade máxima.
	p := flatProfile(32)
	p.TreeDensity = 1
	ch := world.NewChunk(world.ChunkCoord{})
	NewGenerator(noise.New(1), p).FillChunk(ch)
	if n := countBlocks(ch, voxel.Wood); n != 0 {
		t.Errorf("árvores plantadas em h <= nível do mar + 2: %d troncos", n)
	}

	// Um bloco acima do limite, densidade máxima: toda coluna tem tronco.
	p = flatProfile(33)
	p.TreeDensity = 1
	ch = world.NewChunk(world.ChunkCoord{})
	NewGenerator(noise.New(1), p).FillChunk(ch)
	for x := 0; x < world.SX; x++ {
		for z := 0; z < world.SZ; z++ {
			if got := ch.Get(x, 34, z); got != voxel.Wood {
				t.Fatalf("tronco ausente na coluna (%d,%d): %v", x, z, got)
			}
		}
	}

	// Densidade zero nunca planta.
	p.TreeDensity = 0
	ch = world.NewChunk(world.ChunkCoord{})
	NewGenerator(noise.New(1), p).FillChunk(ch)
	if n := countBlocks(ch, voxel.Wood); n != 0 {
		t.Errorf("densidade 0 plantou %d troncos", n)
	}
}

func TestTreeHashDeterminism(t *testing.T) {
	for wx := -50; wx <= 50; wx += 3 {
		for wz := -50; wz <= 50; wz += 3 {
			if treeAt(wx, wz, 0) {
				t.Fatalf("densidade 0 plantou em (%d,%d)", wx, wz)
			}
			if !treeAt(wx, wz, 1) {
				t.Fatalf("densidade 1 não plantou em (%d,%d)", wx, wz)
			}
			if treeAt(wx, wz, 0.08) != treeAt(wx, wz, 0.08) {
				t.Fatalf("hash instável em (%d,%d)", wx, wz)
			}
		}
	}
}

func TestCanopyShape(t *testing.T) {
	g := NewGenerator(noise.New(1), DefaultProfile())
	ch := world.NewChunk(world.ChunkCoord{})
	g.plantTree(ch, 8, 8, 20) // tronco em 21..24

	for y := 21; y <= 24; y++ {
		if got := ch.Get(8, y, 8); got != voxel.Wood {
			t.Errorf("tronco ausente em y=%d: %v", y, got)
		}
	}

	leavesAt := func(y int) int {
		n := 0
		for dz := -3; dz <= 3; dz++ {
			for dx := -3; dx <= 3; dx++ {
				if ch.Get(8+dx, y, 8+dz) == voxel.Leaves {
					n++
				}
			}
		}
		return n
	}

	// Camadas largas: 5x5 sem os 4 cantos, tronco preservado no centro.
	if got := leavesAt(23); got != 20 {
		t.Errorf("folhas em y=23: %d, esperado 20", got)
	}
	if got := leavesAt(24); got != 20 {
		t.Errorf("folhas em y=24: %d, esperado 20", got)
	}
	// Camada estreita 3x3 inteira logo acima do tronco.
	if got := leavesAt(25); got != 9 {
		t.Errorf("folhas em y=25: %d, esperado 9", got)
	}
	// Bloco único de topo.
	if got := leavesAt(26); got != 1 {
		t.Errorf("folhas em y=26: %d, esperado 1", got)
	}
	if got := ch.Get(8, 23, 8); got != voxel.Wood {
		t.Error("folha sobrescreveu o tronco")
	}
}

func TestCanopyClippedAtBorder(t *testing.T) {
	g := NewGenerator(noise.New(1), DefaultProfile())
	ch := world.NewChunk(world.ChunkCoord{})
	g.plantTree(ch, 0, 0, 20)

	// Só o quadrante local da copa sobrevive: 8 folhas menos o tronco por
	// camada larga, 2x2 na estreita, mais o topo.
	if n := countBlocks(ch, voxel.Leaves); n != 7+7+4+1 {
		t.Errorf("folhas após poda na borda = %d, esperado 19", n)
	}
	for y := 21; y <= 24; y++ {
		if got := ch.Get(0, y, 0); got != voxel.Wood {
			t.Errorf("tronco na borda ausente em y=%d: %v", y, got)
		}
	}
}

func TestFillChunkDeterminism(t *testing.T) {
	p := DefaultProfile()
	a := NewGenerator(noise.New(99), p)
	b := NewGenerator(noise.New(99), p)

	ca := world.NewChunk(world.ChunkCoord{X: 2, Z: -7})
	cb := world.NewChunk(world.ChunkCoord{X: 2, Z: -7})
	a.FillChunk(ca)
	b.FillChunk(cb)

	for x := 0; x < world.SX; x++ {
		for y := 0; y < world.SY; y++ {
			for z := 0; z < world.SZ; z++ {
				if ca.Get(x, y, z) != cb.Get(x, y, z) {
					t.Fatalf("geração divergente em (%d,%d,%d): %v vs %v",
						x, y, z, ca.Get(x, y, z), cb.Get(x, y, z))
				}
			}
		}
	}
}
