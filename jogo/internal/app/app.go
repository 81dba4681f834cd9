package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"TerraVoxel/jogo/internal/camera"
	"TerraVoxel/jogo/internal/monitor"
	"TerraVoxel/jogo/internal/render"
	"TerraVoxel/jogo/internal/stats"
	"TerraVoxel/shared/config"
	"TerraVoxel/shared/noise"
	"TerraVoxel/shared/player"
	"TerraVoxel/shared/terrain"
	"TerraVoxel/shared/world"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Gerando o terreno inicial
	StatePlaying                 // Em jogo
	StatePaused                  // Menu de pausa
)

// App é a aplicação principal do TerraVoxel.
type App struct {
	Config  *config.Config
	Profile terrain.Profile
	State   AppState

	// Mundo procedural
	gen      *terrain.Generator
	world    *world.World
	streamer *world.Streamer

	// Agente em primeira pessoa
	player *player.Player
	cam    *camera.FirstPerson

	renderer *render.Renderer

	// Telemetria e registro de sessões
	monitor *monitor.Server
	statsDB *stats.Store

	// Voxel sob a mira neste frame
	target    player.RayHit
	hasTarget bool

	// Contadores da sessão
	tick            int64
	frameCount      int
	blocksBroken    int
	blocksPlaced    int
	chunksGenerated int

	// Splash de carga inicial
	LoadingTotal int     // chunks esperados dentro do raio de visão
	loadingShown float32 // progresso exibido, interpolado até o real

	startTime float64
	quit      bool
}

// New cria uma nova instância da aplicação. Os sistemas pesados só nascem
// em Run, depois da janela raylib existir.
func New(cfg *config.Config, prof terrain.Profile) *App {
	return &App{
		Config:  cfg,
		Profile: prof,
		State:   StateLoading,
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC pausa em vez de fechar a janela

	log.Println("[TerraVoxel] Janela inicializada com sucesso")
	log.Printf("[TerraVoxel] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	// Mundo inteiro derivado da seed: mesmo inteiro, mesmo terreno.
	field := noise.New(a.Config.Seed)
	a.gen = terrain.NewGenerator(field, a.Profile)
	a.world = world.NewWorld(a.gen, a.Config.RenderDist)
	a.streamer = world.NewStreamer(a.world, a.gen, a.Config.GenWorkers)

	// O jogador nasce sobre a superfície da coluna central do chunk origem.
	spawnY := float64(a.gen.SurfaceHeight(8, 8) + 1)
	a.player = player.New(mgl64.Vec3{8.5, spawnY, 8.5}, a.Config.EnableSwim)
	log.Printf("[App] Spawn em (8.5, %.0f, 8.5) com seed %d", spawnY, a.Config.Seed)

	a.cam = camera.New(a.Config.FOV)
	a.renderer = render.NewRenderer(a.Config.Seed)

	a.monitor = monitor.Start(a.Config.MonitorAddr)
	if db, err := stats.Open(a.Config.StatsPath); err != nil {
		log.Printf("[App] Registro de sessões indisponível: %v", err)
	} else {
		a.statsDB = db
		a.statsDB.LogRecent(3)
	}

	// Primeira leva de chunks ao redor do spawn
	side := 2*a.Config.RenderDist + 1
	a.LoadingTotal = side * side
	a.streamer.StreamAround(a.player.Pos[0], a.player.Pos[2])
	a.startTime = rl.GetTime()

	// Loop principal
	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	// Cleanup
	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica do jogo a cada frame.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StateLoading:
		a.updateLoading()
	case StatePlaying:
		a.updatePlaying()
	case StatePaused:
		a.updateInput() // Permite detectar ESC para despausar
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.streamer.Stop()
	a.monitor.Close()

	if a.statsDB != nil {
		sess := stats.Session{
			Seed:            a.Config.Seed,
			DurationSeconds: rl.GetTime() - a.startTime,
			BlocksBroken:    a.blocksBroken,
			BlocksPlaced:    a.blocksPlaced,
			ChunksGenerated: a.chunksGenerated,
		}
		if err := a.statsDB.Record(sess); err != nil {
			log.Printf("[App] Erro ao registrar sessão: %v", err)
		} else {
			log.Printf("[App] Sessão registrada: %.0fs, %d quebrados, %d colocados",
				sess.DurationSeconds, sess.BlocksBroken, sess.BlocksPlaced)
		}
		a.statsDB.Close()
	}

	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[TerraVoxel] Erro ao salvar configurações: %v", err)
	}
}
