// Package terrain transforma coordenadas de mundo em colunas de voxels:
// altura de superfície por ruído em camadas, classificação vertical fixa
// e vegetação posicionada por hash determinístico.
package terrain

import (
	"math"

	"TerraVoxel/shared/noise"
	"TerraVoxel/shared/util"
	"TerraVoxel/shared/voxel"
	"TerraVoxel/shared/world"
)

// Generator implementa world.Generator. O campo de ruído é injetado na
// construção; não existe instância global compartilhada.
type Generator struct {
	field   *noise.Field
	profile Profile
}

// NewGenerator cria um gerador de terreno sobre o campo de ruído dado.
func NewGenerator(field *noise.Field, p Profile) *Generator {
	return &Generator{field: field, profile: p}
}

// SurfaceHeight calcula a altura da superfície na coluna (wx, wz):
// continente somado ao detalhe sobre a altura base, com piso e teto fixos.
// O teto em SY-10 reserva espaço vertical para troncos e copas.
func (g *Generator) SurfaceHeight(wx, wz int) int {
	p := g.profile
	fx, fz := float64(wx), float64(wz)

	continent := g.field.Octaves(fx, fz, p.ContinentOctaves, p.ContinentPersistence, p.ContinentScale)
	detail := g.field.Octaves(fx, fz, p.DetailOctaves, p.DetailPersistence, p.DetailScale)

	h := int(math.Floor(float64(p.BaseHeight) + continent*p.ContinentAmplitude + detail*p.DetailAmplitude))
	return util.Clamp(h, 1, world.SY-10)
}

// FillChunk preenche o chunk em duas passadas sobre alturas calculadas uma
// única vez por coluna: primeiro a classificação vertical, depois a
// vegetação. A ordem importa: plantar durante a primeira passada deixaria
// colunas vizinhas sobrescreverem copas recém-escritas.
func (g *Generator) FillChunk(ch *world.Chunk) {
	var heights [world.SX][world.SZ]int
	for x := 0; x < world.SX; x++ {
		for z := 0; z < world.SZ; z++ {
			heights[x][z] = g.SurfaceHeight(ch.WorldX(x), ch.WorldZ(z))
		}
	}

	for x := 0; x < world.SX; x++ {
		for z := 0; z < world.SZ; z++ {
			g.fillColumn(ch, x, z, heights[x][z])
		}
	}

	for x := 0; x < world.SX; x++ {
		for z := 0; z < world.SZ; z++ {
			h := heights[x][z]
			if h <= g.profile.SeaLevel+2 {
				continue
			}
			if treeAt(ch.WorldX(x), ch.WorldZ(z), g.profile.TreeDensity) {
				g.plantTree(ch, x, z, h)
			}
		}
	}
}

// fillColumn grava a coluna inteira do fundo ao topo conforme a altura.
func (g *Generator) fillColumn(ch *world.Chunk, x, z, height int) {
	for y := 0; y < world.SY; y++ {
		ch.Set(x, y, z, g.classify(y, height))
	}
}

// classify decide o bloco na altura y de uma coluna com a superfície dada.
func (g *Generator) classify(y, height int) voxel.Block {
	p := g.profile
	switch {
	case y == 0:
		return voxel.Stone
	case y < height-p.StoneDepth:
		return voxel.Stone
	case y < height:
		return voxel.Dirt
	case y == height:
		if height <= p.SeaLevel+1 {
			return voxel.Sand
		}
		return voxel.Grass
	case y <= p.SeaLevel:
		return voxel.Water
	default:
		return voxel.Air
	}
}

// treeAt decide presença de árvore pela parte fracionária de uma mistura
// trigonométrica de (wx, wz). Mesma coluna, mesma resposta, em toda execução.
func treeAt(wx, wz int, density float64) bool {
	v := math.Sin(float64(wx)*12.9898+float64(wz)*78.233) * 43758.5453
	return v-math.Floor(v) < density
}

// plantTree escreve tronco e copa acima da superfície. Escritas com
// coordenada local fora do chunk são descartadas pelo Set: copas nunca
// atravessam a divisa, então árvores coladas na borda ficam com a copa
// visivelmente aparada.
func (g *Generator) plantTree(ch *world.Chunk, x, z, surface int) {
	top := surface + g.profile.TrunkHeight
	for y := surface + 1; y <= top; y++ {
		ch.Set(x, y, z, voxel.Wood)
	}

	g.canopyLayer(ch, x, z, top-1, 2, true)
	g.canopyLayer(ch, x, z, top, 2, true)
	g.canopyLayer(ch, x, z, top+1, 1, false)
	ch.Set(x, top+2, z, voxel.Leaves)
}

// canopyLayer grava um quadrado de folhas centrado no tronco; com trim os
// 4 cantos ficam de fora. Folhas nunca sobrescrevem madeira.
func (g *Generator) canopyLayer(ch *world.Chunk, x, z, y, radius int, trim bool) {
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			if trim && util.Abs(dx) == radius && util.Abs(dz) == radius {
				continue
			}
			if ch.Get(x+dx, y, z+dz) == voxel.Wood {
				continue
			}
			ch.Set(x+dx, y, z+dz, voxel.Leaves)
		}
	}
}
