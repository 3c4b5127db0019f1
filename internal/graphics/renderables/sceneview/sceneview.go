// Package sceneview draws the scene graph: background bin first, then lit models.
package sceneview

import (
	"image"

	"blockworld/internal/assets"
	"blockworld/internal/graphics"
	renderer "blockworld/internal/graphics/renderer"
	"blockworld/internal/profiling"
	"blockworld/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// SceneView uploads model meshes on first use and keeps them for the
// lifetime of the renderer. Meshes are shared by every node instanced to
// the same model.
type SceneView struct {
	shader   *graphics.Shader
	white    uint32
	meshes   map[*assets.Mesh]*graphics.GPUMesh
	textures map[*image.RGBA]uint32
}

func NewSceneView() *SceneView {
	return &SceneView{
		meshes:   make(map[*assets.Mesh]*graphics.GPUMesh),
		textures: make(map[*image.RGBA]uint32),
	}
}

func (sv *SceneView) Init() error {
	var err error
	sv.shader, err = graphics.NewShader(vertSrc, fragSrc)
	if err != nil {
		return err
	}
	sv.white = graphics.WhiteTexture()
	return nil
}

// Preload uploads every mesh of models now instead of on first draw.
func (sv *SceneView) Preload(models ...*assets.Model) {
	for _, m := range models {
		for _, mesh := range m.Meshes {
			sv.gpuMesh(mesh)
		}
	}
}

func (sv *SceneView) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderScene")()
	if ctx.Scene == nil {
		return
	}

	lighting := ctx.Scene.Lighting()

	sv.shader.Use()
	sv.shader.SetMatrix4("view", ctx.View)
	sv.shader.SetMatrix4("projection", ctx.Proj)
	sv.shader.SetVec3("ambient", lighting.Ambient)
	sv.shader.SetBool("hasDirectional", lighting.HasDirectional)
	sv.shader.SetVec3("lightDir", lighting.Direction)
	sv.shader.SetVec3("lightColor", lighting.DirColor)
	sv.shader.SetInt("baseTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, d := range ctx.Scene.Drawables() {
		n := d.Node
		sv.applyState(n)
		sv.shader.SetMatrix4("model", d.World)
		sv.shader.SetBool("lightOff", n.LightOff)
		for _, mesh := range n.Model.Meshes {
			g := sv.gpuMesh(mesh)
			gl.BindTexture(gl.TEXTURE_2D, g.Texture)
			sv.shader.SetVec4("baseColor", g.BaseColor)
			g.Draw()
		}
	}

	gl.DepthMask(true)
	gl.Enable(gl.CULL_FACE)
	gl.BindVertexArray(0)
}

// applyState sets per-node depth writes. Background nodes are seen from
// inside, so culling is off for them.
func (sv *SceneView) applyState(n *scene.Node) {
	gl.DepthMask(n.DepthWrite)
	if n.Bin == scene.BinBackground {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}
}

func (sv *SceneView) gpuMesh(m *assets.Mesh) *graphics.GPUMesh {
	if g, ok := sv.meshes[m]; ok {
		return g
	}
	tex := sv.white
	if m.Texture != nil {
		t, ok := sv.textures[m.Texture]
		if !ok {
			t = graphics.UploadTexture(m.Texture, true)
			sv.textures[m.Texture] = t
		}
		tex = t
	}
	g := graphics.UploadMesh(m, tex)
	sv.meshes[m] = g
	return g
}

func (sv *SceneView) Dispose() {
	for _, g := range sv.meshes {
		g.Dispose()
	}
	clear(sv.meshes)
	for _, t := range sv.textures {
		gl.DeleteTextures(1, &t)
	}
	clear(sv.textures)
	if sv.white != 0 {
		gl.DeleteTextures(1, &sv.white)
		sv.white = 0
	}
	if sv.shader != nil {
		sv.shader.Dispose()
	}
}

func (sv *SceneView) SetViewport(width, height int) {}
