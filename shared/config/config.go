// Package config carrega e persiste as preferências do jogador em um
// config.json ao lado do executável. Parâmetros de geração de mundo não
// moram aqui: esses ficam no worldgen.yaml (shared/terrain).
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do TerraVoxel.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Mundo
	Seed       int64 `json:"seed"`
	RenderDist int   `json:"render_dist"` // raio Chebyshev de chunks carregados
	GenWorkers int   `json:"gen_workers"` // workers do pool de geração

	// Jogador e câmera
	FOV              float32 `json:"fov"`
	MouseSensitivity float64 `json:"mouse_sensitivity"`
	EnableSwim       bool    `json:"enable_swim"` // física de nado em voxels de água

	// Telemetria e registro de sessões
	MonitorAddr string `json:"monitor_addr"` // vazio desliga o feed websocket
	StatsPath   string `json:"stats_path"`   // banco SQLite de sessões

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "TerraVoxel",
		Fullscreen:   false,
		TargetFPS:    60,

		Seed:       1337,
		RenderDist: 6,
		GenWorkers: 4,

		FOV:              70.0,
		MouseSensitivity: 0.0030,
		EnableSwim:       true,

		MonitorAddr: "127.0.0.1:4600",
		StatsPath:   "sessions.db",

		ShowDebugInfo: false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir ou estiver corrompido, valem os padrões.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
