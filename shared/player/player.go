// Package player simula o agente em primeira pessoa: integração de
// gravidade, colisão voxel separada por eixo e raycast exato para mira.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"TerraVoxel/shared/voxel"
)

// Dimensões e constantes de movimento do corpo do jogador.
const (
	HalfWidth = 0.3  // meia largura da caixa nos eixos x e z
	Height    = 1.8  // altura total da caixa
	EyeHeight = 1.62 // altura dos olhos acima dos pés

	WalkSpeed = 4.5
	JumpSpeed = 8.0
	Gravity   = 25.0

	Reach = 6.0

	swimGravity = 6.0
	swimAccel   = 18.0
	swimMaxRise = 3.0
	swimDamping = 2.5
)

// BlockSource é a visão que a física tem do mundo: leitura e escrita de
// voxels por coordenada global. Satisfeita por *world.World.
type BlockSource interface {
	GetBlock(wx, wy, wz int) voxel.Block
	SetBlock(wx, wy, wz int, b voxel.Block)
}

// Intent é o estado dos controles de movimento durante um tick.
type Intent struct {
	Forward, Backward bool
	Left, Right       bool
	Jump              bool
}

// Player guarda posição (pés, centro em x/z), velocidade e orientação.
// Mutado uma vez por tick pela física e pelas ações de quebrar/colocar.
type Player struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	Yaw   float64 // radianos no plano horizontal; 0 aponta para +X
	Pitch float64 // radianos; positivo olha para cima

	Grounded bool
	Selected voxel.Block

	swim bool
}

// New cria um jogador parado na posição dada. Com swim habilitado, voxels
// de água trocam a queda livre por empuxo amortecido.
func New(pos mgl64.Vec3, swim bool) *Player {
	return &Player{
		Pos:      pos,
		Selected: voxel.Grass,
		swim:     swim,
	}
}

// ForwardXZ retorna o vetor unitário de avanço no plano horizontal.
func (p *Player) ForwardXZ() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(p.Yaw), 0, math.Sin(p.Yaw)}
}

// RightXZ retorna o vetor unitário para a direita no plano horizontal.
func (p *Player) RightXZ() mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(p.Yaw), 0, math.Cos(p.Yaw)}
}

// ViewDir retorna a direção de visada completa, combinando yaw e pitch.
func (p *Player) ViewDir() mgl64.Vec3 {
	cp := math.Cos(p.Pitch)
	return mgl64.Vec3{math.Cos(p.Yaw) * cp, math.Sin(p.Pitch), math.Sin(p.Yaw) * cp}
}

// Eye retorna a posição dos olhos, origem da câmera e do raycast.
func (p *Player) Eye() mgl64.Vec3 {
	return mgl64.Vec3{p.Pos[0], p.Pos[1] + EyeHeight, p.Pos[2]}
}

// Look aplica deltas de orientação, com pitch travado pouco antes da
// vertical para não inverter a câmera.
func (p *Player) Look(dyaw, dpitch float64) {
	const pitchLimit = math.Pi/2 - 0.01
	p.Yaw += dyaw
	p.Pitch += dpitch
	if p.Pitch > pitchLimit {
		p.Pitch = pitchLimit
	}
	if p.Pitch < -pitchLimit {
		p.Pitch = -pitchLimit
	}
}

// CycleSelected avança a seleção pela paleta de blocos colocáveis.
func (p *Player) CycleSelected(dir int) {
	idx := 0
	for i, b := range voxel.Placeable {
		if b == p.Selected {
			idx = i
			break
		}
	}
	n := len(voxel.Placeable)
	p.Selected = voxel.Placeable[((idx+dir)%n+n)%n]
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}
