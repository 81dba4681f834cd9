package world

import (
	"sync"
	"testing"
	"time"
)

// gateGen segura FillChunk até o portão abrir, para observar o estado
// em voo de forma determinística.
type gateGen struct {
	gate  <-chan struct{}
	mu    sync.Mutex
	calls map[ChunkCoord]int
}

func newGateGen(gate <-chan struct{}) *gateGen {
	return &gateGen{gate: gate, calls: make(map[ChunkCoord]int)}
}

func (g *gateGen) FillChunk(c *Chunk) {
	<-g.gate
	g.mu.Lock()
	g.calls[c.Coord]++
	g.mu.Unlock()
}

func (g *gateGen) count(coord ChunkCoord) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[coord]
}

// drain integra resultados até esvaziar as gerações em voo ou estourar o prazo.
func drain(t *testing.T, s *Streamer) int {
	t.Helper()
	adopted := 0
	deadline := time.Now().Add(5 * time.Second)
	for s.Pending() > 0 && time.Now().Before(deadline) {
		adopted += s.Integrate(10 * time.Millisecond)
		time.Sleep(time.Millisecond)
	}
	if s.Pending() > 0 {
		t.Fatalf("geração não terminou no prazo: %d pendentes", s.Pending())
	}
	return adopted
}

func TestStreamerSingleFlightPerCoord(t *testing.T) {
	gate := make(chan struct{})
	g := newGateGen(gate)
	w := NewWorld(g, 2)
	s := NewStreamer(w, g, 2)
	defer s.Stop()

	coord := ChunkCoord{5, 5}
	for i := 0; i < 50; i++ {
		s.request(coord)
	}

	// Cinquenta pedidos, uma única geração em voo.
	if got := s.Pending(); got != 1 {
		t.Fatalf("Pending = %d, esperado 1", got)
	}

	close(gate)
	drain(t, s)

	if got := g.count(coord); got != 1 {
		t.Errorf("chunk gerado %d vezes, esperado 1", got)
	}
	if _, ok := w.Chunk(coord); !ok {
		t.Error("chunk gerado não foi adotado")
	}

	// Coordenada já carregada não volta para a fila.
	s.request(coord)
	if got := s.Pending(); got != 0 {
		t.Errorf("Pending após pedido de chunk carregado = %d, esperado 0", got)
	}
}

func TestStreamerIntegrateAdoptsRadius(t *testing.T) {
	g := newCountingGen()
	w := NewWorld(g, 2)
	s := NewStreamer(w, g, 4)
	defer s.Stop()

	s.StreamAround(8, 8)
	adopted := drain(t, s)

	if adopted != 25 {
		t.Errorf("Integrate adotou %d chunks, esperado 25", adopted)
	}
	if w.Count() != 25 {
		t.Errorf("Count = %d, esperado 25", w.Count())
	}
	for dz := -2; dz <= 2; dz++ {
		for dx := -2; dx <= 2; dx++ {
			coord := ChunkCoord{dx, dz}
			c, ok := w.Chunk(coord)
			if !ok {
				t.Errorf("chunk %v não foi adotado", coord)
				continue
			}
			if c.OpaqueGeometry() == nil {
				t.Errorf("chunk %v adotado sem malha construída", coord)
			}
			if got := g.count(coord); got != 1 {
				t.Errorf("chunk %v gerado %d vezes, esperado 1", coord, got)
			}
		}
	}
}

func TestStreamerDiscardsOutOfRangeResults(t *testing.T) {
	g := newCountingGen()
	w := NewWorld(g, 1)
	s := NewStreamer(w, g, 2)
	defer s.Stop()

	// Pede o anel antigo e salta para longe antes de integrar qualquer
	// resultado: tudo que foi gerado para o centro antigo deve ser descartado.
	s.StreamAround(8, 8)
	s.StreamAround(168, 8) // centro (10,0)

	drain(t, s)

	if w.Count() != 9 {
		t.Errorf("Count = %d, esperado 9 (somente o anel novo)", w.Count())
	}
	if _, ok := w.Chunk(ChunkCoord{0, 0}); ok {
		t.Error("resultado do centro antigo foi adotado fora do raio")
	}
	for dz := -1; dz <= 1; dz++ {
		for dx := 9; dx <= 11; dx++ {
			if _, ok := w.Chunk(ChunkCoord{dx, dz}); !ok {
				t.Errorf("chunk {%d,%d} do anel novo não foi adotado", dx, dz)
			}
		}
	}

	// O descarte não é cancelamento: os dois anéis foram gerados.
	if got := g.total(); got != 18 {
		t.Errorf("FillChunk executado %d vezes, esperado 18", got)
	}
}

func TestStreamerOverflowQueue(t *testing.T) {
	gate := make(chan struct{})
	g := newGateGen(gate)
	// Raio 8: 289 coordenadas, acima da capacidade da fila de trabalho.
	w := NewWorld(g, 8)
	s := NewStreamer(w, g, 2)
	defer s.Stop()

	s.StreamAround(8, 8)
	if got := s.Pending(); got != 289 {
		t.Fatalf("Pending = %d, esperado 289", got)
	}

	close(gate)
	drain(t, s)

	if w.Count() != 289 {
		t.Errorf("Count = %d, esperado 289", w.Count())
	}
	for dz := -8; dz <= 8; dz++ {
		for dx := -8; dx <= 8; dx++ {
			if got := g.count(ChunkCoord{dx, dz}); got != 1 {
				t.Errorf("chunk {%d,%d} gerado %d vezes, esperado 1", dx, dz, got)
			}
		}
	}
}
