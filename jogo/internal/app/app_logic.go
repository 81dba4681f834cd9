package app

import (
	"log"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"TerraVoxel/shared/telemetry"
	"TerraVoxel/shared/util"
	"TerraVoxel/shared/world"
)

// Orçamentos de integração de chunks por frame. Durante o jogo vale o
// fatiamento rígido: 1 frame a 60FPS tem 16.6ms, e a adoção de chunks
// (que reconstrói malhas) não pode roubar mais que uma fração disso.
const (
	loadingBudget = 500 * time.Millisecond
	playingBudget = 4 * time.Millisecond
)

// telemetryInterval espaça os quadros de telemetria (~2 por segundo a 60FPS).
const telemetryInterval = 30

// updateLoading toca a carga inicial: integra com orçamento folgado (não há
// cena para manter fluida) e já sobe as malhas prontas para a GPU, diluindo
// o custo de upload pelos frames do splash.
func (a *App) updateLoading() {
	a.chunksGenerated += a.streamer.Integrate(loadingBudget)
	a.streamer.StreamAround(a.player.Pos[0], a.player.Pos[2])
	a.renderer.Sync(a.world)

	// Pular a carga manualmente: o resto do terreno chega em jogo.
	if rl.IsKeyPressed(rl.KeySpace) {
		log.Println("[App] Carga inicial pulada manualmente pelo usuário.")
		a.enterPlaying()
		return
	}

	if a.streamer.Pending() == 0 && a.world.Count() >= a.LoadingTotal {
		log.Printf("[App] Carga inicial concluída: %d chunks em %.1fs",
			a.world.Count(), rl.GetTime()-a.startTime)
		a.enterPlaying()
	}
}

func (a *App) enterPlaying() {
	a.State = StatePlaying
	a.cam.Update(a.player)
	rl.DisableCursor() // Captura o mouse para a mira em primeira pessoa
}

// updatePlaying é o tick de jogo: input, física, streaming, mira e GPU.
func (a *App) updatePlaying() {
	// dt limitado: um frame longo (GC, stall de driver) não pode
	// teletransportar o jogador através de paredes.
	dt := util.ClampF(float64(rl.GetFrameTime()), 0, 0.05)

	a.updateInput()
	if a.State != StatePlaying {
		return // pausou neste frame
	}

	a.player.Tick(dt, a.readIntent(), a.world)
	a.cam.Update(a.player)

	// O streaming segue o jogador: pedir primeiro, integrar o que já chegou.
	a.streamer.StreamAround(a.player.Pos[0], a.player.Pos[2])
	a.chunksGenerated += a.streamer.Integrate(playingBudget)

	a.target, a.hasTarget = a.player.Raycast(a.world)

	a.renderer.Sync(a.world)

	a.tick++
	if a.frameCount%telemetryInterval == 0 {
		a.publishTelemetry()
	}
}

// publishTelemetry entrega o estado corrente ao feed websocket. Os eventos
// de edição não entram aqui: são emitidos na hora, pelo input.
func (a *App) publishTelemetry() {
	if a.monitor == nil {
		return
	}

	pos := a.player.Pos
	center := world.CoordAt(int(math.Floor(pos[0])), int(math.Floor(pos[2])))

	a.monitor.Publish(telemetry.Snapshot{
		Seed:         a.Config.Seed,
		Tick:         a.tick,
		FPS:          rl.GetFPS(),
		Pos:          [3]float64{pos[0], pos[1], pos[2]},
		Chunk:        [2]int{center.X, center.Z},
		ChunksLoaded: a.world.Count(),
		PendingGen:   a.streamer.Pending(),
		BlocksBroken: a.blocksBroken,
		BlocksPlaced: a.blocksPlaced,
	})
}
