package world

import (
	"log"
	"math"

	"TerraVoxel/shared/util"
	"TerraVoxel/shared/voxel"
)

// Generator preenche um chunk recém-criado com terreno. Implementado por
// terrain.Generator; os testes usam geradores de mentira.
type Generator interface {
	FillChunk(c *Chunk)
}

// World é o registro de chunks: dono único da coleção, chave nunca duplicada.
// Toda mutação acontece na thread do tick, então não há lock aqui; o offload
// de geração vive no Streamer e publica chunks prontos de volta nesta thread.
type World struct {
	gen        Generator
	renderDist int

	chunks     map[ChunkCoord]*Chunk
	lastCenter ChunkCoord
	hasCenter  bool
}

// NewWorld cria um mundo vazio que gera terreno via gen e mantém chunks
// carregados num raio Chebyshev renderDist ao redor do observador.
func NewWorld(gen Generator, renderDist int) *World {
	return &World{
		gen:        gen,
		renderDist: renderDist,
		chunks:     make(map[ChunkCoord]*Chunk),
	}
}

// RenderDist retorna o raio de streaming configurado.
func (w *World) RenderDist() int {
	return w.renderDist
}

// Chunk retorna o chunk carregado na coordenada, se houver.
func (w *World) Chunk(c ChunkCoord) (*Chunk, bool) {
	ch, ok := w.chunks[c]
	return ch, ok
}

// Count retorna quantos chunks estão carregados.
func (w *World) Count() int {
	return len(w.chunks)
}

// ForEach percorre os chunks carregados. Não mutar o mapa durante a visita.
func (w *World) ForEach(fn func(*Chunk)) {
	for _, ch := range w.chunks {
		fn(ch)
	}
}

// CoordAt devolve a coordenada do chunk que contém o bloco de mundo (wx, wz).
func CoordAt(wx, wz int) ChunkCoord {
	return ChunkCoord{X: util.FloorDiv(wx, SX), Z: util.FloorDiv(wz, SZ)}
}

// Load gera e adota o chunk (cx, cz) sincronamente. No-op se já carregado.
func (w *World) Load(cx, cz int) {
	coord := ChunkCoord{X: cx, Z: cz}
	if _, ok := w.chunks[coord]; ok {
		return
	}
	ch := NewChunk(coord)
	w.gen.FillChunk(ch)
	w.Adopt(ch)
}

// Adopt insere um chunk totalmente gerado, constrói sua malha e reconstrói
// os 4 vizinhos ortogonais carregados: faces recém-expostas ou recém-ocultas
// na borda compartilhada precisam resolver dos dois lados. Se a coordenada
// já está ocupada o chunk novo é descartado, preservando edições existentes.
func (w *World) Adopt(ch *Chunk) {
	if _, ok := w.chunks[ch.Coord]; ok {
		return
	}
	w.chunks[ch.Coord] = ch
	ch.BuildMesh(w.meshNeighbor)

	w.rebuildAt(ChunkCoord{X: ch.Coord.X - 1, Z: ch.Coord.Z})
	w.rebuildAt(ChunkCoord{X: ch.Coord.X + 1, Z: ch.Coord.Z})
	w.rebuildAt(ChunkCoord{X: ch.Coord.X, Z: ch.Coord.Z - 1})
	w.rebuildAt(ChunkCoord{X: ch.Coord.X, Z: ch.Coord.Z + 1})
}

// Unload libera os buffers do chunk e remove a entrada. Nenhuma geometria
// viva continua referenciando um chunk removido.
func (w *World) Unload(cx, cz int) {
	coord := ChunkCoord{X: cx, Z: cz}
	ch, ok := w.chunks[coord]
	if !ok {
		return
	}
	ch.DisposeMesh()
	delete(w.chunks, coord)
}

// StreamAround recarrega o anel de chunks ao redor da posição de mundo dada.
// Se o observador continua no mesmo chunk da última varredura, nada é feito.
// Carrega tudo a distância Chebyshev <= R e descarrega o que passa de R+1;
// a folga de uma unidade evita thrashing exatamente na fronteira.
func (w *World) StreamAround(wx, wz float64) {
	center := CoordAt(int(math.Floor(wx)), int(math.Floor(wz)))
	if w.hasCenter && center == w.lastCenter {
		return
	}
	w.lastCenter = center
	w.hasCenter = true

	loaded := 0
	for dz := -w.renderDist; dz <= w.renderDist; dz++ {
		for dx := -w.renderDist; dx <= w.renderDist; dx++ {
			coord := ChunkCoord{X: center.X + dx, Z: center.Z + dz}
			if _, ok := w.chunks[coord]; !ok {
				w.Load(coord.X, coord.Z)
				loaded++
			}
		}
	}

	var stale []ChunkCoord
	for coord := range w.chunks {
		if coord.Chebyshev(center) > w.renderDist+1 {
			stale = append(stale, coord)
		}
	}
	for _, coord := range stale {
		w.Unload(coord.X, coord.Z)
	}

	if loaded > 0 || len(stale) > 0 {
		log.Printf("[Mundo] stream centro=(%d,%d): +%d chunks, -%d chunks, total %d",
			center.X, center.Z, loaded, len(stale), len(w.chunks))
	}
}

// GetBlock lê um voxel por coordenada de mundo. Chunk não carregado responde
// Air: para quem colide ou mira, terreno descarregado é espaço aberto. Esse
// contrato é deliberadamente diferente do lookup de malha, que responde
// Unknown para não apagar faces na borda do streaming.
func (w *World) GetBlock(wx, wy, wz int) voxel.Block {
	ch, ok := w.chunks[CoordAt(wx, wz)]
	if !ok {
		return voxel.Air
	}
	return ch.Get(util.FloorMod(wx, SX), wy, util.FloorMod(wz, SZ))
}

// SetBlock grava um voxel por coordenada de mundo e reconstrói as malhas
// afetadas: a do chunk dono e a de cada vizinho ortogonal carregado cuja
// borda compartilhada foi tocada (x ou z local em 0 ou tamanho-1).
// Chunk não carregado ou y fora do mundo: no-op documentado, não erro.
func (w *World) SetBlock(wx, wy, wz int, b voxel.Block) {
	if wy < 0 || wy >= SY {
		return
	}
	coord := CoordAt(wx, wz)
	ch, ok := w.chunks[coord]
	if !ok {
		return
	}

	lx := util.FloorMod(wx, SX)
	lz := util.FloorMod(wz, SZ)
	ch.Set(lx, wy, lz, b)
	ch.BuildMesh(w.meshNeighbor)

	if lx == 0 {
		w.rebuildAt(ChunkCoord{X: coord.X - 1, Z: coord.Z})
	}
	if lx == SX-1 {
		w.rebuildAt(ChunkCoord{X: coord.X + 1, Z: coord.Z})
	}
	if lz == 0 {
		w.rebuildAt(ChunkCoord{X: coord.X, Z: coord.Z - 1})
	}
	if lz == SZ-1 {
		w.rebuildAt(ChunkCoord{X: coord.X, Z: coord.Z + 1})
	}
}

// meshNeighbor é a NeighborFunc que o mundo injeta nos rebuilds.
func (w *World) meshNeighbor(wx, wy, wz int) voxel.Block {
	ch, ok := w.chunks[CoordAt(wx, wz)]
	if !ok {
		return voxel.Unknown
	}
	return ch.Get(util.FloorMod(wx, SX), wy, util.FloorMod(wz, SZ))
}

func (w *World) rebuildAt(coord ChunkCoord) {
	if ch, ok := w.chunks[coord]; ok {
		ch.BuildMesh(w.meshNeighbor)
	}
}
