package assets

import (
	"errors"
	"path/filepath"
	"testing"

	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// writeTriangle saves a one-triangle .glb lying in glTF's XY plane with a +Z normal.
func writeTriangle(t *testing.T, dir, name string) string {
	t.Helper()

	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, []uint16{0, 1, 2})),
			Attributes: map[string]int{
				"POSITION": modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}),
				"NORMAL":   modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "root", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	path := filepath.Join(dir, name)
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("Failed to save test model: %v", err)
	}
	return path
}

func TestLoadModelConvertsToZUp(t *testing.T) {
	dir := t.TempDir()
	writeTriangle(t, dir, "tri.glb")

	m, err := NewLoader(dir).LoadModel("tri.glb")
	if err != nil {
		t.Fatalf("Failed to load model: %v", err)
	}

	if m.Name != "tri" {
		t.Errorf("Expected name 'tri', got %q", m.Name)
	}
	if len(m.Meshes) != 1 {
		t.Fatalf("Expected 1 mesh, got %d", len(m.Meshes))
	}
	mesh := m.Meshes[0]
	if mesh.VertexCount() != 3 {
		t.Errorf("Expected 3 vertices, got %d", mesh.VertexCount())
	}

	// glTF +Y becomes world +Z, glTF +Z becomes world -Y.
	if !mesh.Positions[2].ApproxEqual(mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected glTF +Y vertex at world +Z, got %v", mesh.Positions[2])
	}
	if !mesh.Normals[0].ApproxEqual(mgl32.Vec3{0, -1, 0}) {
		t.Errorf("Expected normal (0,-1,0), got %v", mesh.Normals[0])
	}
	if mesh.Texture != nil {
		t.Errorf("Expected untextured mesh")
	}
	if mesh.BaseColor != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("Expected white base colour, got %v", mesh.BaseColor)
	}
}

func TestLoadModelCache(t *testing.T) {
	dir := t.TempDir()
	writeTriangle(t, dir, "tri.glb")

	l := NewLoader(dir)
	m1, err := l.LoadModel("tri.glb")
	if err != nil {
		t.Fatalf("Failed to load model: %v", err)
	}
	m2, err := l.LoadModel("tri.glb")
	if err != nil {
		t.Fatalf("Failed to load model: %v", err)
	}
	if m1 != m2 {
		t.Errorf("Expected cached model to be returned")
	}
	if l.Cached() != 1 {
		t.Errorf("Expected 1 cached model, got %d", l.Cached())
	}
}

func TestLoadModelMissing(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadModel("grass-block.glb")
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("Expected ErrAssetNotFound, got %v", err)
	}
}

func TestModelBounds(t *testing.T) {
	m := &Model{Meshes: []*Mesh{
		{Positions: []mgl32.Vec3{{-1, 2, 0}, {3, -4, 1}}},
		{Positions: []mgl32.Vec3{{0, 0, -5}}},
	}}
	lo, hi := m.Bounds()
	if lo != (mgl32.Vec3{-1, -4, -5}) || hi != (mgl32.Vec3{3, 2, 1}) {
		t.Errorf("Expected bounds (-1,-4,-5)-(3,2,1), got %v-%v", lo, hi)
	}
}

func TestLoadBlockSet(t *testing.T) {
	dir := t.TempDir()
	paths := map[world.BlockType]string{}
	for _, b := range world.BlockTypes {
		paths[b] = filepath.Base(writeTriangle(t, dir, b.String()+"-block.glb"))
	}

	bs, err := LoadBlockSet(NewLoader(dir), paths)
	if err != nil {
		t.Fatalf("Failed to load block set: %v", err)
	}
	if len(bs.Models()) != 4 {
		t.Errorf("Expected 4 models, got %d", len(bs.Models()))
	}
	if bs.Model(world.BlockTypeGrass) == bs.Model(world.BlockTypeDirt) {
		t.Errorf("Expected distinct models per block type")
	}
	if bs.Model(world.BlockTypeGrass).Name != "grass-block" {
		t.Errorf("Expected grass-block, got %q", bs.Model(world.BlockTypeGrass).Name)
	}
}

func TestLoadBlockSetMissingFile(t *testing.T) {
	dir := t.TempDir()
	paths := map[world.BlockType]string{}
	for _, b := range world.BlockTypes {
		paths[b] = filepath.Base(writeTriangle(t, dir, b.String()+".glb"))
	}
	paths[world.BlockTypeSand] = "sand-missing.glb"

	_, err := LoadBlockSet(NewLoader(dir), paths)
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("Expected ErrAssetNotFound, got %v", err)
	}
}

func TestLoadBlockSetMissingPath(t *testing.T) {
	_, err := LoadBlockSet(NewLoader(t.TempDir()), map[world.BlockType]string{})
	if err == nil {
		t.Fatalf("Expected error for missing block path")
	}
}
