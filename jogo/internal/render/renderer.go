// Package render sobe as malhas dos chunks para a GPU e as desenha em dois
// passes (opaco, depois água com blend). Tudo aqui roda na thread principal:
// o pool de geração nunca toca o renderizador, então não há lock.
package render

import (
	"log"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"TerraVoxel/shared/meshing"
	"TerraVoxel/shared/player"
	"TerraVoxel/shared/world"
)

type Renderer struct {
	models map[world.ChunkCoord]*ChunkModel

	terrainShader rl.Shader
	waterShader   rl.Shader

	terrainCamLoc int32
	waterTimeLoc  int32
	waterCamLoc   int32

	// Efeitos cosméticos, atualizados e desenhados junto com a cena
	Debris *ParticleSystem
	Sky    *Sky
}

// NewRenderer compila os shaders e prepara os sistemas de efeito.
// Exige janela raylib inicializada.
func NewRenderer(seed int64) *Renderer {
	r := &Renderer{
		models: make(map[world.ChunkCoord]*ChunkModel),
	}

	if rl.IsWindowReady() {
		r.terrainShader = rl.LoadShaderFromMemory(terrainVertexShader, terrainFragmentShader)
		r.waterShader = rl.LoadShaderFromMemory(waterVertexShader, waterFragmentShader)

		r.terrainCamLoc = rl.GetShaderLocation(r.terrainShader, "camPos")
		r.waterTimeLoc = rl.GetShaderLocation(r.waterShader, "time")
		r.waterCamLoc = rl.GetShaderLocation(r.waterShader, "camPos")
	}

	r.Debris = NewParticleSystem(512)
	r.Sky = NewSky(seed)

	log.Printf("[Render] renderizador pronto (shaders terreno=%d água=%d)",
		r.terrainShader.ID, r.waterShader.ID)
	return r
}

// Sync reconcilia a GPU com o registro de chunks: descarta modelos de chunks
// descarregados e reenvia malhas cuja MeshVersion passou à frente do MTime do
// modelo. O reenvio é sempre integral, já que a malha é reconstruída inteira.
func (r *Renderer) Sync(w *world.World) {
	for coord, m := range r.models {
		if _, ok := w.Chunk(coord); !ok {
			m.unload()
			delete(r.models, coord)
		}
	}

	w.ForEach(func(ch *world.Chunk) {
		if m, ok := r.models[ch.Coord]; ok && m.MTime == ch.MeshVersion() {
			return
		}
		r.upload(ch)
	})
}

// upload substitui os modelos do chunk pelos buffers de malha atuais.
func (r *Renderer) upload(ch *world.Chunk) {
	if !rl.IsWindowReady() {
		return
	}

	if old, ok := r.models[ch.Coord]; ok {
		old.unload()
		delete(r.models, ch.Coord)
	}

	bm := &ChunkModel{Coord: ch.Coord, MTime: ch.MeshVersion()}

	if g := ch.OpaqueGeometry(); g != nil && !g.Empty() {
		mesh := r.geometryToMesh(g)
		rl.UploadMesh(&mesh, false)
		r.freeMeshRAM(&mesh)
		bm.Opaque = rl.LoadModelFromMesh(mesh)
		bm.HasOpaque = true
		r.assignShader(&bm.Opaque, r.terrainShader)
	}

	if g := ch.WaterGeometry(); g != nil && !g.Empty() {
		mesh := r.geometryToMesh(g)
		rl.UploadMesh(&mesh, false)
		r.freeMeshRAM(&mesh)
		bm.Water = rl.LoadModelFromMesh(mesh)
		bm.HasWater = true
		r.assignShader(&bm.Water, r.waterShader)
	}

	// Chunks sem geometria também entram no mapa: o MTime registrado evita
	// tentar reenviar um chunk vazio a cada frame.
	r.models[ch.Coord] = bm
}

// geometryToMesh copia os buffers Go para memória C, como o raylib espera
// possuir. Os índices de 16 bits vão junto: 4 vértices por face, 2 triângulos.
func (r *Renderer) geometryToMesh(data *meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(r.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(r.copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.Indices) > 0 {
		mesh.Indices = (*uint16)(r.copyToC(unsafe.Pointer(&data.Indices[0]), len(data.Indices)*2))
	}
	return mesh
}

func (r *Renderer) assignShader(model *rl.Model, shader rl.Shader) {
	if model.MaterialCount > 0 {
		materials := unsafe.Slice(model.Materials, model.MaterialCount)
		materials[0].Shader = shader
	}
}

// Draw desenha a cena de terreno. Chamar dentro de BeginMode3D.
// PASS 1: terreno opaco. PASS 2: céu e partículas. PASS 3: água com blend,
// por último para compor corretamente sobre tudo que há atrás dela.
func (r *Renderer) Draw(cam rl.Camera3D) {
	camPos := []float32{cam.Position.X, cam.Position.Y, cam.Position.Z}
	timeVal := []float32{float32(rl.GetTime())}

	if r.terrainShader.ID != 0 {
		rl.SetShaderValue(r.terrainShader, r.terrainCamLoc, camPos, rl.ShaderUniformVec3)
	}
	if r.waterShader.ID != 0 {
		rl.SetShaderValue(r.waterShader, r.waterTimeLoc, timeVal, rl.ShaderUniformFloat)
		rl.SetShaderValue(r.waterShader, r.waterCamLoc, camPos, rl.ShaderUniformVec3)
	}

	for _, bm := range r.models {
		if bm.HasOpaque {
			rl.DrawModel(bm.Opaque, rl.Vector3{}, 1.0, rl.White)
		}
	}

	r.Debris.Update(rl.GetFrameTime())
	r.Debris.Draw()
	r.Sky.Draw(cam.Position)

	rl.BeginBlendMode(rl.BlendAlpha)
	for _, bm := range r.models {
		if bm.HasWater {
			rl.DrawModel(bm.Water, rl.Vector3{}, 1.0, rl.White)
		}
	}
	rl.EndBlendMode()
}

// DrawSelection contorna o voxel mirado. Chamar dentro de BeginMode3D.
func (r *Renderer) DrawSelection(hit player.RayHit) {
	center := rl.Vector3{
		X: float32(hit.X) + 0.5,
		Y: float32(hit.Y) + 0.5,
		Z: float32(hit.Z) + 0.5,
	}
	rl.DrawCubeWires(center, 1.01, 1.01, 1.01, rl.Black)
}

// ModelCount retorna quantos chunks têm modelo na GPU (debug HUD).
func (r *Renderer) ModelCount() int {
	return len(r.models)
}

// Unload libera todos os modelos e shaders. Chamar antes de fechar a janela.
func (r *Renderer) Unload() {
	for coord, m := range r.models {
		m.unload()
		delete(r.models, coord)
	}
	if r.terrainShader.ID != 0 {
		rl.UnloadShader(r.terrainShader)
	}
	if r.waterShader.ID != 0 {
		rl.UnloadShader(r.waterShader)
	}
	log.Println("[Render] recursos de GPU liberados")
}
