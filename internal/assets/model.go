package assets

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is one drawable primitive with its node transform already applied.
// Positions and normals are in the Z-up world convention.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
	BaseColor mgl32.Vec4
	// Texture is the base colour texture, nil for untextured meshes.
	Texture *image.RGBA
}

// VertexCount is the number of vertices referenced by a draw.
func (m *Mesh) VertexCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices)
	}
	return len(m.Positions)
}

// Model is a loaded model file. Instances in the scene share one Model.
type Model struct {
	Name   string
	Path   string
	Meshes []*Mesh
}

// Bounds returns the axis-aligned box around every mesh.
func (m *Model) Bounds() (lo, hi mgl32.Vec3) {
	first := true
	for _, mesh := range m.Meshes {
		for _, p := range mesh.Positions {
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			for i := 0; i < 3; i++ {
				lo[i] = min(lo[i], p[i])
				hi[i] = max(hi[i], p[i])
			}
		}
	}
	return lo, hi
}

// zUpFromYUp converts glTF's Y-up axes into the world's Z-up axes.
var zUpFromYUp = mgl32.Mat4{
	1, 0, 0, 0,
	0, 0, 1, 0,
	0, -1, 0, 0,
	0, 0, 0, 1,
}
