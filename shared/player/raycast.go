package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"TerraVoxel/shared/voxel"
)

// RayHit identifica o voxel sólido atingido pela mira e o último voxel
// vazio atravessado antes do impacto, onde um bloco novo pode nascer.
type RayHit struct {
	X, Y, Z             int
	PrevX, PrevY, PrevZ int
}

// Raycast percorre os voxels exatos sob a linha de visada, do olho até o
// alcance máximo. Retorna ok=false quando nada sólido está ao alcance;
// diferente de mirar em ar, que também termina sem alvo mas mais longe.
func (p *Player) Raycast(src BlockSource) (RayHit, bool) {
	return raycast(p.Eye(), p.ViewDir(), Reach, src)
}

// raycast implementa a travessia incremental exata: mantém, por eixo, a
// distância paramétrica até a próxima fronteira inteira e avança sempre
// pelo eixo com a menor; nenhum voxel do caminho é pulado, por mais fino
// que o cruzamento seja.
func raycast(origin, dir mgl64.Vec3, maxDist float64, src BlockSource) (RayHit, bool) {
	x, y, z := floorInt(origin[0]), floorInt(origin[1]), floorInt(origin[2])

	stepX, tMaxX, tDeltaX := axisInit(origin[0], dir[0])
	stepY, tMaxY, tDeltaY := axisInit(origin[1], dir[1])
	stepZ, tMaxZ, tDeltaZ := axisInit(origin[2], dir[2])

	prevX, prevY, prevZ := x, y, z
	t := 0.0

	for t <= maxDist {
		if voxel.Solid(src.GetBlock(x, y, z)) {
			return RayHit{X: x, Y: y, Z: z, PrevX: prevX, PrevY: prevY, PrevZ: prevZ}, true
		}
		prevX, prevY, prevZ = x, y, z

		switch {
		case tMaxX <= tMaxY && tMaxX <= tMaxZ:
			t = tMaxX
			x += stepX
			tMaxX += tDeltaX
		case tMaxY <= tMaxZ:
			t = tMaxY
			y += stepY
			tMaxY += tDeltaY
		default:
			t = tMaxZ
			z += stepZ
			tMaxZ += tDeltaZ
		}
	}

	return RayHit{}, false
}

// axisInit calcula, para um eixo, o sentido do passo, a distância até a
// primeira fronteira inteira e o avanço paramétrico por célula. Eixo sem
// componente nunca avança: distância infinita.
func axisInit(origin, dir float64) (step int, tMax, tDelta float64) {
	switch {
	case dir > 0:
		return 1, (math.Floor(origin) + 1 - origin) / dir, 1 / dir
	case dir < 0:
		return -1, (origin - math.Floor(origin)) / -dir, -1 / dir
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// InteractBreak remove o bloco mirado. Retorna false sem alvo ao alcance.
func (p *Player) InteractBreak(src BlockSource) bool {
	hit, ok := p.Raycast(src)
	if !ok {
		return false
	}
	src.SetBlock(hit.X, hit.Y, hit.Z, voxel.Air)
	return true
}

// InteractPlace escreve o bloco selecionado no último voxel vazio antes do
// impacto, recusando posições que invadem a caixa do próprio jogador.
func (p *Player) InteractPlace(src BlockSource) bool {
	hit, ok := p.Raycast(src)
	if !ok {
		return false
	}
	if p.overlapsVoxel(hit.PrevX, hit.PrevY, hit.PrevZ) {
		return false
	}
	src.SetBlock(hit.PrevX, hit.PrevY, hit.PrevZ, p.Selected)
	return true
}

// overlapsVoxel testa sobreposição de intervalos nos 3 eixos entre a caixa
// do jogador e o cubo unitário do voxel dado.
func (p *Player) overlapsVoxel(wx, wy, wz int) bool {
	minX, maxX := p.Pos[0]-HalfWidth, p.Pos[0]+HalfWidth
	minY, maxY := p.Pos[1], p.Pos[1]+Height
	minZ, maxZ := p.Pos[2]-HalfWidth, p.Pos[2]+HalfWidth

	return maxX > float64(wx) && minX < float64(wx+1) &&
		maxY > float64(wy) && minY < float64(wy+1) &&
		maxZ > float64(wz) && minZ < float64(wz+1)
}
