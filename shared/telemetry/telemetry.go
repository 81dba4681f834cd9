// Package telemetry define os quadros JSON trocados entre o jogo e o
// monitor: um instantâneo periódico do estado da sessão mais os eventos de
// edição ocorridos desde o quadro anterior. Os tipos ficam em shared para o
// servidor (jogo) e o CLI (monitor) falarem exatamente o mesmo formato.
package telemetry

// Kinds de evento emitidos pela thread do tick.
const (
	EventBreak = "quebra"
	EventPlace = "coloca"
	EventChunk = "chunk"
)

// Event registra uma mudança pontual no mundo.
type Event struct {
	Tick  int64  `json:"tick"`
	Kind  string `json:"kind"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	Block string `json:"block,omitempty"`
}

// Snapshot é o quadro periódico transmitido a cada observador conectado.
type Snapshot struct {
	Seed int64 `json:"seed"`
	Tick int64 `json:"tick"`
	FPS  int32 `json:"fps"`

	Pos   [3]float64 `json:"pos"`
	Chunk [2]int     `json:"chunk"`

	ChunksLoaded int `json:"chunks_loaded"`
	PendingGen   int `json:"pending_gen"`
	BlocksBroken int `json:"blocks_broken"`
	BlocksPlaced int `json:"blocks_placed"`

	Events []Event `json:"events,omitempty"`
}
