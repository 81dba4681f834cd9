package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"TerraVoxel/shared/voxel"
)

// horizontalSteps são as alturas de sonda, relativas aos pés, que cobrem o
// corpo inteiro nas colisões em x e z.
var horizontalSteps = [3]float64{0.1, 0.9, 1.7}

// boxCorners são os 4 cantos da caixa no plano horizontal.
var boxCorners = [4][2]float64{
	{-HalfWidth, -HalfWidth},
	{-HalfWidth, HalfWidth},
	{HalfWidth, -HalfWidth},
	{HalfWidth, HalfWidth},
}

// Tick avança um passo de física. dt chega limitado pelo chamador; aqui a
// ordem é fixa: intenção de movimento, gravidade, e então posição com
// colisão resolvida um eixo por vez em x, y, z. Mover um eixo de cada vez
// impede o atravessamento de quinas em deslocamentos diagonais.
func (p *Player) Tick(dt float64, in Intent, src BlockSource) {
	inWater := p.swim && p.submerged(src)

	// Velocidade horizontal direta, sem aceleração nem atrito.
	move := mgl64.Vec3{}
	fwd, right := p.ForwardXZ(), p.RightXZ()
	if in.Forward {
		move = move.Add(fwd)
	}
	if in.Backward {
		move = move.Sub(fwd)
	}
	if in.Right {
		move = move.Add(right)
	}
	if in.Left {
		move = move.Sub(right)
	}
	if move.Len() > 0 {
		move = move.Normalize().Mul(WalkSpeed)
	}
	p.Vel[0], p.Vel[2] = move[0], move[2]

	if inWater {
		if in.Jump {
			p.Vel[1] += swimAccel * dt
			if p.Vel[1] > swimMaxRise {
				p.Vel[1] = swimMaxRise
			}
		}
		p.Vel[1] -= swimGravity * dt

		damp := math.Exp(-swimDamping * dt)
		p.Vel[0] *= damp
		p.Vel[1] *= damp
		p.Vel[2] *= damp
	} else {
		if in.Jump && p.Grounded {
			p.Vel[1] = JumpSpeed
		}
		p.Vel[1] -= Gravity * dt
	}

	p.collideX(p.Vel[0]*dt, src)
	landed := p.collideY(p.Vel[1]*dt, src)
	p.collideZ(p.Vel[2]*dt, src)

	if landed {
		p.Grounded = true
	} else if p.Vel[1] != 0 {
		p.Grounded = false
	}
}

// submerged amostra o voxel na cintura do jogador.
func (p *Player) submerged(src BlockSource) bool {
	b := src.GetBlock(floorInt(p.Pos[0]), floorInt(p.Pos[1]+0.5), floorInt(p.Pos[2]))
	return b == voxel.Water
}

// collideX desloca o eixo x e sonda a face dianteira do movimento: os dois
// lados em z, em cada degrau de altura. A primeira sonda dentro de um voxel
// sólido encosta a caixa na fronteira do voxel e zera a velocidade do eixo.
func (p *Player) collideX(delta float64, src BlockSource) {
	if delta == 0 {
		return
	}
	p.Pos[0] += delta

	edge := p.Pos[0] + HalfWidth
	if delta < 0 {
		edge = p.Pos[0] - HalfWidth
	}
	bx := floorInt(edge)

	for _, side := range [2]float64{-HalfWidth, HalfWidth} {
		bz := floorInt(p.Pos[2] + side)
		for _, step := range horizontalSteps {
			if voxel.Solid(src.GetBlock(bx, floorInt(p.Pos[1]+step), bz)) {
				if delta > 0 {
					p.Pos[0] = float64(bx) - HalfWidth
				} else {
					p.Pos[0] = float64(bx+1) + HalfWidth
				}
				p.Vel[0] = 0
				return
			}
		}
	}
}

// collideZ é o espelho de collideX para o eixo z.
func (p *Player) collideZ(delta float64, src BlockSource) {
	if delta == 0 {
		return
	}
	p.Pos[2] += delta

	edge := p.Pos[2] + HalfWidth
	if delta < 0 {
		edge = p.Pos[2] - HalfWidth
	}
	bz := floorInt(edge)

	for _, side := range [2]float64{-HalfWidth, HalfWidth} {
		bx := floorInt(p.Pos[0] + side)
		for _, step := range horizontalSteps {
			if voxel.Solid(src.GetBlock(bx, floorInt(p.Pos[1]+step), bz)) {
				if delta > 0 {
					p.Pos[2] = float64(bz) - HalfWidth
				} else {
					p.Pos[2] = float64(bz+1) + HalfWidth
				}
				p.Vel[2] = 0
				return
			}
		}
	}
}

// collideY desloca o eixo y sondando os 4 cantos da face que lidera o
// movimento: pés descendo, cabeça subindo. Retorna true quando o movimento
// descendente encontrou apoio.
func (p *Player) collideY(delta float64, src BlockSource) bool {
	if delta == 0 {
		return false
	}
	p.Pos[1] += delta

	if delta < 0 {
		by := floorInt(p.Pos[1])
		for _, c := range boxCorners {
			if voxel.Solid(src.GetBlock(floorInt(p.Pos[0]+c[0]), by, floorInt(p.Pos[2]+c[1]))) {
				p.Pos[1] = float64(by + 1)
				p.Vel[1] = 0
				return true
			}
		}
		return false
	}

	by := floorInt(p.Pos[1] + Height)
	for _, c := range boxCorners {
		if voxel.Solid(src.GetBlock(floorInt(p.Pos[0]+c[0]), by, floorInt(p.Pos[2]+c[1]))) {
			p.Pos[1] = float64(by) - Height
			p.Vel[1] = 0
			return false
		}
	}
	return false
}
