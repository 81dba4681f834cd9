package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"TerraVoxel/shared/world"
)

// ChunkModel é o par de modelos na GPU correspondente a um chunk: um para a
// geometria opaca e outro para a água, que desenha em passe separado com
// blend. MTime guarda a versão da malha que gerou os modelos; quando o chunk
// reporta uma MeshVersion maior, o Sync descarta e reenvia.
type ChunkModel struct {
	Coord world.ChunkCoord

	Opaque    rl.Model
	Water     rl.Model
	HasOpaque bool
	HasWater  bool

	MTime int64
}

// unload devolve os modelos à GPU. Seguro chamar com modelos ausentes.
func (m *ChunkModel) unload() {
	if m.HasOpaque {
		rl.UnloadModel(m.Opaque)
		m.HasOpaque = false
	}
	if m.HasWater {
		rl.UnloadModel(m.Water)
		m.HasWater = false
	}
}
