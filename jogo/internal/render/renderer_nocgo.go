//go:build !cgo

package render

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// copyToC sem cgo copia os buffers para o heap Go. Os campos do Mesh guardam
// ponteiros tipados para essas cópias, então o GC as mantém vivas até
// freeMeshRAM zerá-los depois do upload.
func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	buf := make([]byte, size)
	copy(buf, unsafe.Slice((*byte)(data), size))
	return unsafe.Pointer(&buf[0])
}

// freeMeshRAM libera as cópias depois do upload; os ponteiros zerados soltam
// a última referência (o GC recolhe) e fazem o UnloadModel posterior liberar
// apenas o lado GPU.
func (r *Renderer) freeMeshRAM(mesh *rl.Mesh) {
	mesh.Vertices = nil
	mesh.Normals = nil
	mesh.Colors = nil
	mesh.Indices = nil
}
