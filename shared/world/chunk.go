// Package world implementa o armazenamento de voxels em chunks, a extração
// de malha com culling de faces e o registro de streaming que mantém chunks
// carregados ao redor do observador.
package world

import (
	"TerraVoxel/shared/meshing"
	"TerraVoxel/shared/voxel"
)

// Dimensões fixas de um chunk, em voxels.
const (
	SX = 16
	SY = 64
	SZ = 16
)

// ChunkCoord identifica um chunk pelo par inteiro (cx, cz).
type ChunkCoord struct {
	X, Z int
}

// Chebyshev retorna a distância de tabuleiro (máximo dos eixos) até other.
func (c ChunkCoord) Chebyshev(other ChunkCoord) int {
	dx := c.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dz := c.Z - other.Z
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}

// Chunk é um bloco denso SX×SY×SZ de voxels mais os buffers de malha
// correspondentes. Coordenadas locais sempre em [0,SX)×[0,SY)×[0,SZ).
type Chunk struct {
	Coord  ChunkCoord
	blocks [SX * SY * SZ]voxel.Block

	opaque      *meshing.MeshBuffer
	water       *meshing.MeshBuffer
	meshVersion int64
}

// NewChunk cria um chunk vazio (todo Air) na coordenada dada.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord}
}

func blockIndex(x, y, z int) int {
	return (y*SZ+z)*SX + x
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < SX && y >= 0 && y < SY && z >= 0 && z < SZ
}

// Get lê o bloco local (x,y,z). Fora dos limites devolve voxel.Unknown,
// nunca um código válido: quem consome decide o que "não sei" significa.
func (c *Chunk) Get(x, y, z int) voxel.Block {
	if !inBounds(x, y, z) {
		return voxel.Unknown
	}
	return c.blocks[blockIndex(x, y, z)]
}

// Set grava o bloco local (x,y,z). Fora dos limites é um no-op silencioso,
// o que deixa o gerador de vegetação recortar copas na borda sem checagens.
func (c *Chunk) Set(x, y, z int, b voxel.Block) {
	if !inBounds(x, y, z) {
		return
	}
	c.blocks[blockIndex(x, y, z)] = b
}

// WorldX converte a coordenada local x para coordenada de mundo.
func (c *Chunk) WorldX(x int) int {
	return c.Coord.X*SX + x
}

// WorldZ converte a coordenada local z para coordenada de mundo.
func (c *Chunk) WorldZ(z int) int {
	return c.Coord.Z*SZ + z
}

// OpaqueGeometry retorna o buffer opaco atual (nil se não há malha).
func (c *Chunk) OpaqueGeometry() *meshing.GeometryData {
	if c.opaque == nil {
		return nil
	}
	return &c.opaque.Geometry
}

// WaterGeometry retorna o buffer translúcido atual (nil se não há malha).
func (c *Chunk) WaterGeometry() *meshing.GeometryData {
	if c.water == nil {
		return nil
	}
	return &c.water.Geometry
}

// MeshVersion cresce a cada rebuild; o renderizador compara com a versão do
// modelo na GPU para saber quando reenviar.
func (c *Chunk) MeshVersion() int64 {
	return c.meshVersion
}
