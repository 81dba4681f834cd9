// Package meshing define os buffers de geometria que o mundo produz e o
// renderizador consome: sequências paralelas de posições, normais, cores e
// índices de triângulos, sem nenhuma dependência de GPU.
package meshing

import "sync"

// GeometryData é o resultado bruto de uma extração de malha.
// Vertices/Normals em triplas float32, Colors em RGBA por vértice e Indices
// formando triângulos. Buffers opacos e translúcidos andam separados porque
// o renderizador aplica blend/depth diferentes em cada passe.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	Indices  []uint16
}

// VertexCount retorna o número de vértices acumulados.
func (g *GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna o número de triângulos indexados.
func (g *GeometryData) TriangleCount() int {
	return len(g.Indices) / 3
}

// Empty informa se não há nada para desenhar.
func (g *GeometryData) Empty() bool {
	return len(g.Indices) == 0
}

// maxVertices é o teto imposto pelos índices de 16 bits da malha.
// Terreno gerado fica ordens de grandeza abaixo; um chunk editado à mão até
// um padrão patológico perde faces em vez de corromper índices.
const maxVertices = 65532

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry GeometryData
}

// AddFace adiciona uma face retangular (quad): 4 vértices e 2 triângulos
// indexados (6 índices), com winding fixo v1→v2→v3, v1→v3→v4.
func (b *MeshBuffer) AddFace(v1, v2, v3, v4 [3]float32, n [3]float32, c [4]uint8) {
	base := len(b.Geometry.Vertices) / 3
	if base > maxVertices {
		return
	}

	b.addVertex(v1, n, c)
	b.addVertex(v2, n, c)
	b.addVertex(v3, n, c)
	b.addVertex(v4, n, c)

	i := uint16(base)
	b.Geometry.Indices = append(b.Geometry.Indices,
		i, i+1, i+2,
		i, i+2, i+3,
	)
}

func (b *MeshBuffer) addVertex(v [3]float32, n [3]float32, c [4]uint8) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.Colors = append(b.Geometry.Colors, c[0], c[1], c[2], c[3])
}

// Reset esvazia o buffer preservando a capacidade alocada.
func (b *MeshBuffer) Reset() {
	b.Geometry.Vertices = b.Geometry.Vertices[:0]
	b.Geometry.Normals = b.Geometry.Normals[:0]
	b.Geometry.Colors = b.Geometry.Colors[:0]
	b.Geometry.Indices = b.Geometry.Indices[:0]
}

// Pool de buffers para reaproveitar os slices entre rebuilds de malha.
var meshBufferPool = sync.Pool{
	New: func() any {
		return &MeshBuffer{}
	},
}

// AcquireBuffer pega um buffer vazio do pool.
func AcquireBuffer() *MeshBuffer {
	return meshBufferPool.Get().(*MeshBuffer)
}

// ReleaseBuffer limpa e devolve um buffer ao pool. Aceita nil.
func ReleaseBuffer(b *MeshBuffer) {
	if b == nil {
		return
	}
	b.Reset()
	meshBufferPool.Put(b)
}
