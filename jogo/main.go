package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"TerraVoxel/jogo/internal/app"
	"TerraVoxel/shared/config"
	"TerraVoxel/shared/terrain"
)

func main() {
	// IMPORTANTE para estabilidade: Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	seed := flag.Int64("seed", 0, "Seed do mundo (0 mantém a do config)")
	dist := flag.Int("dist", 0, "Raio de chunks carregados ao redor do jogador")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	monitorAddr := flag.String("monitor", "", "Endereço do feed de telemetria (ex: 127.0.0.1:4600; 'off' desliga)")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	perfil := flag.String("perfil", "", "Caminho do worldgen.yaml (padrão: ao lado do executável)")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_tv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
		log.Println("--- INICIANDO TERRAVOXEL ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║          TerraVoxel v0.1.0           ║")
	log.Println("║    Mundo voxel procedural editável   ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *dist > 0 {
		cfg.RenderDist = *dist
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *monitorAddr != "" {
		if *monitorAddr == "off" {
			cfg.MonitorAddr = ""
		} else {
			cfg.MonitorAddr = *monitorAddr
		}
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	// Parâmetros de geração de terreno
	profilePath := *perfil
	if profilePath == "" {
		profilePath = terrain.ProfilePath()
	}
	prof := terrain.LoadProfile(profilePath)

	// Criar e rodar a aplicação
	application := app.New(cfg, prof)
	application.Run()
}
