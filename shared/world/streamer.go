package world

import (
	"log"
	"math"
	"sync"
	"time"

	"TerraVoxel/shared/util"
)

// Streamer descarrega a geração de chunks para um pool de workers, mantendo
// as garantias do modelo síncrono: no máximo uma geração em voo por
// coordenada, e publicação atômica. O chunk só entra no mundo (na thread do
// tick, via Integrate) depois de completamente preenchido, então nenhuma
// consulta ou rebuild enxerga voxels parciais.
type Streamer struct {
	world *World
	gen   Generator

	requests chan ChunkCoord
	results  chan *Chunk
	stop     chan struct{}

	pending   map[ChunkCoord]bool
	pendingMu sync.Mutex
	overflow  *util.UniqueQueue[ChunkCoord, struct{}]

	lastCenter ChunkCoord
	hasCenter  bool
}

// NewStreamer cria e inicia o pool com o número de workers dado.
func NewStreamer(w *World, gen Generator, workers int) *Streamer {
	if workers < 1 {
		workers = 1
	}
	s := &Streamer{
		world:    w,
		gen:      gen,
		requests: make(chan ChunkCoord, 256),
		results:  make(chan *Chunk, 256),
		stop:     make(chan struct{}),
		pending:  make(map[ChunkCoord]bool),
		overflow: util.NewUniqueQueue[ChunkCoord, struct{}](),
	}

	for i := 0; i < workers; i++ {
		go s.worker()
	}

	log.Printf("[Stream] pool de geração iniciado com %d workers", workers)
	return s
}

// StreamAround é a versão assíncrona de World.StreamAround: enfileira a
// geração dos chunks em falta (anéis de dentro para fora, o que o jogador vê
// primeiro chega primeiro) e descarrega sincronamente os que saíram do raio.
func (s *Streamer) StreamAround(wx, wz float64) {
	center := CoordAt(int(math.Floor(wx)), int(math.Floor(wz)))
	if s.hasCenter && center == s.lastCenter {
		s.pump()
		return
	}
	s.lastCenter = center
	s.hasCenter = true

	r := s.world.RenderDist()
	for ring := 0; ring <= r; ring++ {
		for dz := -ring; dz <= ring; dz++ {
			for dx := -ring; dx <= ring; dx++ {
				if max(util.Abs(dx), util.Abs(dz)) != ring {
					continue
				}
				s.request(ChunkCoord{X: center.X + dx, Z: center.Z + dz})
			}
		}
	}

	var stale []ChunkCoord
	s.world.ForEach(func(ch *Chunk) {
		if ch.Coord.Chebyshev(center) > r+1 {
			stale = append(stale, ch.Coord)
		}
	})
	for _, coord := range stale {
		s.world.Unload(coord.X, coord.Z)
	}

	s.pump()
}

// request marca a coordenada como em voo e a envia ao pool; se a fila de
// trabalho está cheia ela espera no transbordo até o próximo pump.
func (s *Streamer) request(coord ChunkCoord) {
	if _, ok := s.world.Chunk(coord); ok {
		return
	}

	s.pendingMu.Lock()
	if s.pending[coord] {
		s.pendingMu.Unlock()
		return
	}
	s.pending[coord] = true
	s.pendingMu.Unlock()

	select {
	case s.requests <- coord:
	default:
		s.overflow.Enqueue(coord, struct{}{})
	}
}

// pump drena o transbordo para a fila de trabalho sem bloquear.
func (s *Streamer) pump() {
	for {
		coord, _, ok := s.overflow.Dequeue()
		if !ok {
			return
		}
		select {
		case s.requests <- coord:
		default:
			// Fila ainda cheia; devolve e tenta no próximo tick.
			s.overflow.Enqueue(coord, struct{}{})
			return
		}
	}
}

// Integrate adota chunks prontos na thread do tick, respeitando o orçamento
// de tempo para não estourar o frame. Chunks que saíram do raio de retenção
// enquanto eram gerados são descartados sem adoção. Retorna quantos entraram.
func (s *Streamer) Integrate(budget time.Duration) int {
	start := time.Now()
	adopted := 0

	for {
		select {
		case ch := <-s.results:
			s.pendingMu.Lock()
			delete(s.pending, ch.Coord)
			s.pendingMu.Unlock()

			if s.hasCenter && ch.Coord.Chebyshev(s.lastCenter) > s.world.RenderDist()+1 {
				continue
			}
			s.world.Adopt(ch)
			adopted++

			if time.Since(start) > budget {
				s.pump()
				return adopted
			}
		default:
			s.pump()
			return adopted
		}
	}
}

// Pending retorna quantas gerações estão em voo (fila + workers + transbordo).
func (s *Streamer) Pending() int {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	return len(s.pending)
}

// Stop encerra os workers. Resultados ainda não integrados são abandonados.
func (s *Streamer) Stop() {
	close(s.stop)
}

func (s *Streamer) worker() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] erro no worker de geração: %v", r)
		}
	}()
	for {
		select {
		case coord := <-s.requests:
			ch := NewChunk(coord)
			s.gen.FillChunk(ch)
			select {
			case s.results <- ch:
			case <-s.stop:
				return
			}
		case <-s.stop:
			return
		}
	}
}
