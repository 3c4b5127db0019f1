package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"blockworld/internal/assets"
)

// Floats per interleaved vertex: position(3) normal(3) uv(2).
const vertexStride = 8

// Interleave packs a mesh into position/normal/uv vertices.
func Interleave(m *assets.Mesh) []float32 {
	out := make([]float32, 0, len(m.Positions)*vertexStride)
	for i, p := range m.Positions {
		n := mgl32.Vec3{0, 0, 1}
		if i < len(m.Normals) {
			n = m.Normals[i]
		}
		var uv mgl32.Vec2
		if i < len(m.UVs) {
			uv = m.UVs[i]
		}
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

// GPUMesh is a mesh uploaded to vertex and index buffers.
type GPUMesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool

	Texture   uint32
	BaseColor mgl32.Vec4
}

// UploadMesh creates GL buffers for m. The texture is not owned by the mesh
// and is not deleted by Dispose.
func UploadMesh(m *assets.Mesh, texture uint32) *GPUMesh {
	g := &GPUMesh{Texture: texture, BaseColor: m.BaseColor}
	verts := Interleave(m)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	if len(verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride*4, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride*4, 6*4)

	if len(m.Indices) > 0 {
		g.indexed = true
		g.count = int32(len(m.Indices))
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	} else {
		g.count = int32(len(m.Positions))
	}

	gl.BindVertexArray(0)
	return g
}

func (g *GPUMesh) Draw() {
	if g.count == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	if g.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	}
}

func (g *GPUMesh) Dispose() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	*g = GPUMesh{}
}
