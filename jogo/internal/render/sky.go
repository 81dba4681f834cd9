package render

import (
	"math"

	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"

	"TerraVoxel/shared/world"
)

// Sky desenha uma camada decorativa de nuvens acima do teto do mundo:
// lajes translúcidas em uma grade ancorada na câmera, com densidade dada
// por ruído perlin que deriva com o tempo. Cosmético puro; nada aqui
// participa do contrato determinístico do terreno.
type Sky struct {
	noise *perlin.Perlin
}

const (
	cloudHeight    = float32(world.SY + 14)
	cloudCell      = 10.0 // lado de uma célula da grade, em voxels
	cloudRadius    = 16   // células para cada lado da câmera
	cloudThreshold = 0.18
	cloudDrift     = 0.6 // células por segundo
)

// NewSky cria a camada de nuvens sobre um gerador perlin próprio.
func NewSky(seed int64) *Sky {
	return &Sky{
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Draw desenha as nuvens ao redor da posição da câmera. A grade é presa a
// múltiplos de célula para as lajes não deslizarem junto com o observador.
func (s *Sky) Draw(camPos rl.Vector3) {
	baseX := int(math.Floor(float64(camPos.X) / cloudCell))
	baseZ := int(math.Floor(float64(camPos.Z) / cloudCell))
	drift := rl.GetTime() * cloudDrift

	for dz := -cloudRadius; dz <= cloudRadius; dz++ {
		for dx := -cloudRadius; dx <= cloudRadius; dx++ {
			cx := baseX + dx
			cz := baseZ + dz

			v := s.noise.Noise2D(float64(cx)*0.09+drift*0.05, float64(cz)*0.09)
			if v < cloudThreshold {
				continue
			}

			// Mais denso, mais opaco, até um teto discreto.
			alpha := uint8(80 + math.Min((v-cloudThreshold)*300, 100))
			center := rl.Vector3{
				X: (float32(cx) + 0.5) * cloudCell,
				Y: cloudHeight,
				Z: (float32(cz) + 0.5) * cloudCell,
			}
			rl.DrawCube(center, cloudCell*0.92, 2.0, cloudCell*0.92,
				rl.NewColor(255, 255, 255, alpha))
		}
	}
}
