package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"TerraVoxel/shared/player"
	"TerraVoxel/shared/telemetry"
	"TerraVoxel/shared/voxel"
)

// readIntent coleta o estado dos controles de movimento deste frame.
func (a *App) readIntent() player.Intent {
	return player.Intent{
		Forward:  rl.IsKeyDown(rl.KeyW),
		Backward: rl.IsKeyDown(rl.KeyS),
		Left:     rl.IsKeyDown(rl.KeyA),
		Right:    rl.IsKeyDown(rl.KeyD),
		Jump:     rl.IsKeyDown(rl.KeySpace),
	}
}

// updateInput processa mira, cliques de edição e teclas gerais.
func (a *App) updateInput() {
	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// ESC: Alternar Pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StatePlaying {
			a.State = StatePaused
			rl.EnableCursor()
			log.Println("[App] Jogo Pausado")
		} else if a.State == StatePaused {
			a.State = StatePlaying
			rl.DisableCursor()
			log.Println("[App] Retomando Jogo")
		}
		return
	}

	if a.State != StatePlaying {
		return
	}

	// Mira pelo mouse; o eixo Y do delta cresce para baixo, pitch para cima.
	delta := rl.GetMouseDelta()
	sens := a.Config.MouseSensitivity
	a.player.Look(float64(delta.X)*sens, -float64(delta.Y)*sens)

	// Hotbar: roda do mouse e teclas 1..7
	if wheel := rl.GetMouseWheelMove(); wheel > 0 {
		a.player.CycleSelected(-1)
	} else if wheel < 0 {
		a.player.CycleSelected(1)
	}
	for i, b := range voxel.Placeable {
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			a.player.Selected = b
		}
	}

	// Quebrar com o botão esquerdo
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if hit, ok := a.player.Raycast(a.world); ok {
			broken := a.world.GetBlock(hit.X, hit.Y, hit.Z)
			if a.player.InteractBreak(a.world) {
				a.blocksBroken++
				a.renderer.Debris.Burst(hit.X, hit.Y, hit.Z, broken)
				a.monitor.Emit(telemetry.Event{
					Tick: a.tick, Kind: telemetry.EventBreak,
					X: hit.X, Y: hit.Y, Z: hit.Z, Block: broken.Name(),
				})
			}
		}
	}

	// Colocar com o botão direito
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		if hit, ok := a.player.Raycast(a.world); ok {
			if a.player.InteractPlace(a.world) {
				a.blocksPlaced++
				a.monitor.Emit(telemetry.Event{
					Tick: a.tick, Kind: telemetry.EventPlace,
					X: hit.PrevX, Y: hit.PrevY, Z: hit.PrevZ, Block: a.player.Selected.Name(),
				})
			}
		}
	}
}
