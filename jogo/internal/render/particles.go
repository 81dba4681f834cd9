package render

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"TerraVoxel/shared/voxel"
)

// Particle é um caco de bloco quebrado: cubinho com velocidade, gravidade
// própria e vida útil.
type Particle struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Color    rl.Color
	Size     float32
	Life     float32
	Active   bool
}

// ParticleSystem mantém um pool fixo de partículas de detrito. Só efeito
// visual: os cacos não colidem com o mundo, apenas caem e somem.
type ParticleSystem struct {
	Particles []Particle
	next      int
}

const (
	debrisGravity  = 18.0
	debrisLifetime = 0.9
)

// NewParticleSystem cria o pool com a capacidade dada.
func NewParticleSystem(max int) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]Particle, max),
	}
}

// Burst dispara um punhado de cacos no centro do voxel quebrado, tingidos
// com a cor base do bloco. Partículas antigas são recicladas se o pool encher.
func (ps *ParticleSystem) Burst(wx, wy, wz int, b voxel.Block) {
	c := voxel.ColorOf(b)
	center := rl.Vector3{
		X: float32(wx) + 0.5,
		Y: float32(wy) + 0.5,
		Z: float32(wz) + 0.5,
	}

	for i := 0; i < 24; i++ {
		p := &ps.Particles[ps.next]
		ps.next = (ps.next + 1) % len(ps.Particles)

		p.Position = rl.Vector3{
			X: center.X + rand.Float32()*0.6 - 0.3,
			Y: center.Y + rand.Float32()*0.6 - 0.3,
			Z: center.Z + rand.Float32()*0.6 - 0.3,
		}
		p.Velocity = rl.Vector3{
			X: rand.Float32()*4 - 2,
			Y: rand.Float32()*4 + 1,
			Z: rand.Float32()*4 - 2,
		}
		p.Color = rl.NewColor(c.R, c.G, c.B, 255)
		p.Size = 0.06 + rand.Float32()*0.08
		p.Life = debrisLifetime
		p.Active = true
	}
}

// Update integra as partículas ativas.
func (ps *ParticleSystem) Update(dt float32) {
	for i := range ps.Particles {
		p := &ps.Particles[i]
		if !p.Active {
			continue
		}

		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
			continue
		}

		p.Velocity.Y -= debrisGravity * dt
		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
		p.Position.Z += p.Velocity.Z * dt
	}
}

// Draw desenha os cacos, esmaecendo no fim da vida. Chamar dentro de Mode3D.
func (ps *ParticleSystem) Draw() {
	for i := range ps.Particles {
		p := &ps.Particles[i]
		if !p.Active {
			continue
		}

		col := p.Color
		if p.Life < 0.3 {
			col.A = uint8(255 * p.Life / 0.3)
		}
		rl.DrawCube(p.Position, p.Size, p.Size, p.Size, col)
	}
}
