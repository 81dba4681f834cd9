// Package camera converte o estado do jogador em uma câmera raylib de
// primeira pessoa. O input de mira não mora aqui: o app aplica os deltas do
// mouse direto no jogador e a câmera apenas recompõe o rl.Camera3D por frame.
package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"TerraVoxel/shared/player"
)

// FirstPerson acompanha os olhos do jogador.
type FirstPerson struct {
	RLCamera rl.Camera3D
	FOV      float32
}

// New cria a câmera com o campo de visão dado, em graus.
func New(fov float32) *FirstPerson {
	return &FirstPerson{
		FOV: fov,
		RLCamera: rl.Camera3D{
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       fov,
			Projection: rl.CameraPerspective,
		},
	}
}

// Update posiciona a câmera nos olhos do jogador, olhando na direção da
// visada. A conversão para float32 só acontece aqui, na borda com a GPU;
// a física continua em float64.
func (c *FirstPerson) Update(p *player.Player) {
	eye := p.Eye()
	dir := p.ViewDir()

	pos := mgl32.Vec3{float32(eye[0]), float32(eye[1]), float32(eye[2])}
	target := pos.Add(mgl32.Vec3{float32(dir[0]), float32(dir[1]), float32(dir[2])})

	c.RLCamera.Position = rl.Vector3{X: pos.X(), Y: pos.Y(), Z: pos.Z()}
	c.RLCamera.Target = rl.Vector3{X: target.X(), Y: target.Y(), Z: target.Z()}
	c.RLCamera.Fovy = c.FOV
}
