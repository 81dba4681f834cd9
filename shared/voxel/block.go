package voxel

// Block é o código de um tipo de bloco dentro da paleta fixa do mundo.
type Block uint8

const (
	Air Block = iota
	Grass
	Dirt
	Stone
	Wood
	Leaves
	Sand
	Water

	blockCount
)

// Unknown é o sentinela devolvido por leituras fora dos limites de um chunk.
// Fica fora da paleta de propósito: "não sei o que há aqui" é diferente de Air,
// e o mesher trata vizinhos desconhecidos como face visível.
const Unknown Block = 0xFF

// Color são os atributos de exibição de um bloco (RGBA, alpha < 255 = translúcido).
type Color struct {
	R, G, B, A uint8
}

// colorTable mapeia cada código da paleta para sua cor base.
// Water é o único bloco com alpha parcial; vai para o buffer translúcido.
var colorTable = [blockCount]Color{
	Air:    {0, 0, 0, 0},
	Grass:  {106, 170, 64, 255},
	Dirt:   {134, 96, 67, 255},
	Stone:  {136, 136, 136, 255},
	Wood:   {103, 82, 49, 255},
	Leaves: {60, 143, 72, 255},
	Sand:   {218, 210, 158, 255},
	Water:  {63, 118, 228, 150},
}

var nameTable = [blockCount]string{
	Air:    "ar",
	Grass:  "grama",
	Dirt:   "terra",
	Stone:  "pedra",
	Wood:   "tronco",
	Leaves: "folhas",
	Sand:   "areia",
	Water:  "água",
}

// ColorOf retorna a cor base do bloco. Códigos fora da paleta (inclusive
// Unknown) rendem magenta opaco para denunciar dados corrompidos na tela.
func ColorOf(b Block) Color {
	if b >= blockCount {
		return Color{255, 0, 255, 255}
	}
	return colorTable[b]
}

// Name retorna o nome de exibição do bloco.
func (b Block) Name() string {
	if b >= blockCount {
		return "desconhecido"
	}
	return nameTable[b]
}

// Valid informa se o código pertence à paleta fixa.
func Valid(b Block) bool {
	return b < blockCount
}

// Transparent informa se o bloco deixa ver o que há atrás dele
// (classificação usada pelo culling de faces).
func Transparent(b Block) bool {
	return b == Air || b == Water
}

// Solid informa se o bloco bloqueia movimento (classificação de colisão).
// Water não é sólida; Unknown tampouco, já que chunk não carregado é espaço
// aberto para quem colide.
func Solid(b Block) bool {
	return b != Air && b != Water && b != Unknown
}

// Placeable é a paleta oferecida na hotbar: todo bloco exceto Air.
var Placeable = []Block{Grass, Dirt, Stone, Wood, Leaves, Sand, Water}

// Shade por orientação de face: topo mais claro, fundo mais escuro,
// laterais em dois níveis intermediários para dar leitura de volume.
const (
	ShadeUp     = 1.0
	ShadeDown   = 0.5
	ShadeNorthS = 0.8
	ShadeEastW  = 0.65
)

// Shaded aplica o fator de sombra à cor base preservando o alpha.
func Shaded(c Color, shade float32) Color {
	return Color{
		R: uint8(float32(c.R) * shade),
		G: uint8(float32(c.G) * shade),
		B: uint8(float32(c.B) * shade),
		A: c.A,
	}
}
