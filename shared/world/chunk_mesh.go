package world

import (
	"TerraVoxel/shared/meshing"
	"TerraVoxel/shared/voxel"
)

// NeighborFunc resolve um bloco por coordenada de mundo durante a extração
// de malha. É a capacidade que o dono do chunk injeta: o chunk nunca guarda
// referência aos irmãos nem ao World. Chunks não carregados respondem
// voxel.Unknown.
type NeighborFunc func(wx, wy, wz int) voxel.Block

// faceDir enumera as 6 direções axiais de uma face.
type faceDir int

const (
	faceUp faceDir = iota
	faceDown
	faceNorth // +Z
	faceSouth // -Z
	faceEast  // +X
	faceWest  // -X
)

var faceOffsets = [6][3]int{
	faceUp:    {0, 1, 0},
	faceDown:  {0, -1, 0},
	faceNorth: {0, 0, 1},
	faceSouth: {0, 0, -1},
	faceEast:  {1, 0, 0},
	faceWest:  {-1, 0, 0},
}

var faceShades = [6]float32{
	faceUp:    voxel.ShadeUp,
	faceDown:  voxel.ShadeDown,
	faceNorth: voxel.ShadeNorthS,
	faceSouth: voxel.ShadeNorthS,
	faceEast:  voxel.ShadeEastW,
	faceWest:  voxel.ShadeEastW,
}

// BuildMesh descarta a malha anterior e extrai uma nova, voxel a voxel, com
// culling de faces. Rebuild é sempre integral; nada de remendo incremental.
//
// Regra de emissão: bloco opaco emite a face a menos que o vizinho seja
// não-transparente E conhecido (vizinho Unknown na borda do streaming emite,
// já que dado ausente não pode apagar geometria visível). Water emite só
// contra Air, evitando costuras internas água-água e overdraw.
func (c *Chunk) BuildMesh(lookup NeighborFunc) {
	meshing.ReleaseBuffer(c.opaque)
	meshing.ReleaseBuffer(c.water)
	c.opaque = meshing.AcquireBuffer()
	c.water = meshing.AcquireBuffer()

	for y := 0; y < SY; y++ {
		for z := 0; z < SZ; z++ {
			for x := 0; x < SX; x++ {
				b := c.blocks[blockIndex(x, y, z)]
				if b == voxel.Air {
					continue
				}

				base := voxel.ColorOf(b)
				for dir := faceUp; dir <= faceWest; dir++ {
					off := faceOffsets[dir]
					n := c.neighborAt(x+off[0], y+off[1], z+off[2], lookup)

					if b == voxel.Water {
						if n != voxel.Air {
							continue
						}
					} else if !voxel.Transparent(n) && n != voxel.Unknown {
						continue
					}

					target := c.opaque
					if b == voxel.Water {
						target = c.water
					}
					c.emitFace(target, dir, x, y, z, voxel.Shaded(base, faceShades[dir]))
				}
			}
		}
	}

	c.meshVersion++
}

// neighborAt resolve o vizinho localmente quando possível; do contrário
// delega ao lookup injetado usando coordenadas de mundo.
func (c *Chunk) neighborAt(x, y, z int, lookup NeighborFunc) voxel.Block {
	if inBounds(x, y, z) {
		return c.blocks[blockIndex(x, y, z)]
	}
	if lookup == nil {
		return voxel.Unknown
	}
	return lookup(c.WorldX(x), y, c.WorldZ(z))
}

// emitFace adiciona o quad da face em coordenadas de mundo, com winding
// anti-horário visto de fora do cubo.
func (c *Chunk) emitFace(buf *meshing.MeshBuffer, dir faceDir, x, y, z int, col voxel.Color) {
	fx := float32(c.WorldX(x))
	fy := float32(y)
	fz := float32(c.WorldZ(z))
	rgba := [4]uint8{col.R, col.G, col.B, col.A}

	switch dir {
	case faceUp:
		buf.AddFace(
			[3]float32{fx, fy + 1, fz + 1},
			[3]float32{fx + 1, fy + 1, fz + 1},
			[3]float32{fx + 1, fy + 1, fz},
			[3]float32{fx, fy + 1, fz},
			[3]float32{0, 1, 0}, rgba,
		)
	case faceDown:
		buf.AddFace(
			[3]float32{fx, fy, fz},
			[3]float32{fx + 1, fy, fz},
			[3]float32{fx + 1, fy, fz + 1},
			[3]float32{fx, fy, fz + 1},
			[3]float32{0, -1, 0}, rgba,
		)
	case faceNorth:
		buf.AddFace(
			[3]float32{fx, fy, fz + 1},
			[3]float32{fx + 1, fy, fz + 1},
			[3]float32{fx + 1, fy + 1, fz + 1},
			[3]float32{fx, fy + 1, fz + 1},
			[3]float32{0, 0, 1}, rgba,
		)
	case faceSouth:
		buf.AddFace(
			[3]float32{fx + 1, fy, fz},
			[3]float32{fx, fy, fz},
			[3]float32{fx, fy + 1, fz},
			[3]float32{fx + 1, fy + 1, fz},
			[3]float32{0, 0, -1}, rgba,
		)
	case faceEast:
		buf.AddFace(
			[3]float32{fx + 1, fy, fz + 1},
			[3]float32{fx + 1, fy, fz},
			[3]float32{fx + 1, fy + 1, fz},
			[3]float32{fx + 1, fy + 1, fz + 1},
			[3]float32{1, 0, 0}, rgba,
		)
	case faceWest:
		buf.AddFace(
			[3]float32{fx, fy, fz},
			[3]float32{fx, fy, fz + 1},
			[3]float32{fx, fy + 1, fz + 1},
			[3]float32{fx, fy + 1, fz},
			[3]float32{-1, 0, 0}, rgba,
		)
	}
}

// DisposeMesh libera os dois buffers. Idempotente: chamar sem malha é seguro.
func (c *Chunk) DisposeMesh() {
	meshing.ReleaseBuffer(c.opaque)
	meshing.ReleaseBuffer(c.water)
	c.opaque = nil
	c.water = nil
}
