package terrain

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile reúne os parâmetros ajustáveis da geração de terreno.
type Profile struct {
	// Relevo
	BaseHeight int `yaml:"base_height"`
	SeaLevel   int `yaml:"sea_level"`
	StoneDepth int `yaml:"stone_depth"`

	// Continente: frequência baixa, amplitude alta
	ContinentScale       float64 `yaml:"continent_scale"`
	ContinentAmplitude   float64 `yaml:"continent_amplitude"`
	ContinentOctaves     int     `yaml:"continent_octaves"`
	ContinentPersistence float64 `yaml:"continent_persistence"`

	// Detalhe de superfície: frequência alta, amplitude baixa
	DetailScale       float64 `yaml:"detail_scale"`
	DetailAmplitude   float64 `yaml:"detail_amplitude"`
	DetailOctaves     int     `yaml:"detail_octaves"`
	DetailPersistence float64 `yaml:"detail_persistence"`

	// Vegetação
	TreeDensity float64 `yaml:"tree_density"`
	TrunkHeight int     `yaml:"trunk_height"`
}

// DefaultProfile retorna os parâmetros do mundo padrão.
func DefaultProfile() Profile {
	return Profile{
		BaseHeight: 32,
		SeaLevel:   30,
		StoneDepth: 4,

		ContinentScale:       0.008,
		ContinentAmplitude:   20,
		ContinentOctaves:     4,
		ContinentPersistence: 0.5,

		DetailScale:       0.05,
		DetailAmplitude:   4,
		DetailOctaves:     2,
		DetailPersistence: 0.5,

		TreeDensity: 0.08,
		TrunkHeight: 4,
	}
}

// ProfilePath retorna o caminho do worldgen.yaml ao lado do executável.
func ProfilePath() string {
	execPath, err := os.Executable()
	if err != nil {
		return "worldgen.yaml"
	}
	return filepath.Join(filepath.Dir(execPath), "worldgen.yaml")
}

// LoadProfile carrega o perfil de um arquivo YAML.
// Arquivo ausente ou inválido não derruba o jogo: vale o perfil padrão.
// Campos omitidos no arquivo mantêm o valor padrão.
func LoadProfile(path string) Profile {
	p := DefaultProfile()

	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultProfile()
	}

	return p
}

// SaveProfile grava o perfil em YAML no caminho dado.
func SaveProfile(path string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
