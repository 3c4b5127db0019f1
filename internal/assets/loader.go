package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Loader reads model files relative to a base directory and caches them by path.
type Loader struct {
	baseDir    string
	modelCache map[string]*Model
}

func NewLoader(baseDir string) *Loader {
	return &Loader{
		baseDir:    baseDir,
		modelCache: make(map[string]*Model),
	}
}

// Resolve joins a relative asset name onto the base directory.
func (l *Loader) Resolve(name string) string {
	if filepath.IsAbs(name) || l.baseDir == "" {
		return name
	}
	return filepath.Join(l.baseDir, name)
}

// LoadModel loads a .glb or .gltf file. Loading the same path twice returns
// the cached model.
func (l *Loader) LoadModel(name string) (*Model, error) {
	path := l.Resolve(name)
	if m, ok := l.modelCache[path]; ok {
		return m, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return nil, fmt.Errorf("stat model %q: %w", path, err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	m, err := buildModel(doc, path)
	if err != nil {
		return nil, err
	}

	slog.Debug("model loaded", "path", path, "meshes", len(m.Meshes))
	l.modelCache[path] = m
	return m, nil
}

// Cached reports how many models the loader holds.
func (l *Loader) Cached() int {
	return len(l.modelCache)
}

func buildModel(doc *gltf.Document, path string) (*Model, error) {
	dir := filepath.Dir(path)
	m := &Model{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
	}

	textures := loadTextures(doc, dir)

	for _, root := range sceneRoots(doc) {
		if err := walkNode(doc, m, textures, root, zUpFromYUp); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func loadTextures(doc *gltf.Document, dir string) []*image.RGBA {
	out := make([]*image.RGBA, len(doc.Textures))
	for i, gt := range doc.Textures {
		if gt.Source == nil || *gt.Source >= len(doc.Images) {
			continue
		}
		img := doc.Images[*gt.Source]

		var (
			rgba *image.RGBA
			err  error
		)
		switch {
		case img.BufferView != nil:
			var raw []byte
			raw, err = modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
			if err == nil {
				rgba, err = decodeRGBA(bytes.NewReader(raw), 0)
			}
		case img.URI != "" && !img.IsEmbeddedResource():
			rgba, err = LoadImage(filepath.Join(dir, img.URI), 0)
		}
		if err != nil {
			slog.Warn("skipping model texture", "texture", i, "error", err)
			continue
		}
		out[i] = rgba
	}
	return out
}

func sceneRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}

	hasParent := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func nodeMatrix(n *gltf.Node) mgl32.Mat4 {
	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()

	rot := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(rot.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
}

func walkNode(doc *gltf.Document, m *Model, textures []*image.RGBA, idx int, parent mgl32.Mat4) error {
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil
	}
	n := doc.Nodes[idx]
	world := parent.Mul4(nodeMatrix(n))

	if n.Mesh != nil && *n.Mesh < len(doc.Meshes) {
		gm := doc.Meshes[*n.Mesh]
		for pi, prim := range gm.Primitives {
			mesh, err := readPrimitive(doc, gm.Name, pi, prim, world)
			if err != nil {
				return fmt.Errorf("mesh %q primitive %d: %w", gm.Name, pi, err)
			}
			applyMaterial(doc, mesh, prim, textures)
			m.Meshes = append(m.Meshes, mesh)
		}
	}

	for _, c := range n.Children {
		if err := walkNode(doc, m, textures, c, world); err != nil {
			return err
		}
	}
	return nil
}

func readPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive, world mgl32.Mat4) (*Mesh, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var (
		normals [][3]float32
		uvs     [][2]float32
	)
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
	}

	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	mesh := &Mesh{
		Name:      name,
		Positions: make([]mgl32.Vec3, len(positions)),
		Normals:   make([]mgl32.Vec3, len(positions)),
		UVs:       make([]mgl32.Vec2, len(positions)),
		BaseColor: mgl32.Vec4{1, 1, 1, 1},
	}

	normalMat := world.Mat3().Inv().Transpose()
	for i, p := range positions {
		mesh.Positions[i] = world.Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1}).Vec3()

		n := mgl32.Vec3{0, 1, 0}
		if i < len(normals) {
			n = mgl32.Vec3{normals[i][0], normals[i][1], normals[i][2]}
		}
		if tn := normalMat.Mul3x1(n); tn.Len() > 0 {
			mesh.Normals[i] = tn.Normalize()
		}

		if i < len(uvs) {
			mesh.UVs[i] = mgl32.Vec2{uvs[i][0], uvs[i][1]}
		}
	}

	if prim.Indices != nil {
		if mesh.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	return mesh, nil
}

func applyMaterial(doc *gltf.Document, mesh *Mesh, prim *gltf.Primitive, textures []*image.RGBA) {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil {
		return
	}

	cf := pbr.BaseColorFactorOrDefault()
	mesh.BaseColor = mgl32.Vec4{float32(cf[0]), float32(cf[1]), float32(cf[2]), float32(cf[3])}

	if pbr.BaseColorTexture != nil {
		if idx := pbr.BaseColorTexture.Index; idx < len(textures) {
			mesh.Texture = textures[idx]
		}
	}
}
