package crosshair

import (
	"image"

	"blockworld/internal/graphics"
	renderer "blockworld/internal/graphics/renderer"
	"blockworld/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultScale is the half-height of the crosshair as a fraction of the screen height.
const DefaultScale = 0.05

const vertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inUV;
uniform vec2 halfSize;
out vec2 uv;
void main() {
    uv = inUV;
    gl_Position = vec4(inPosition * halfSize, 0.0, 1.0);
}
`

const fragSrc = `
#version 410 core
in vec2 uv;
uniform sampler2D image;
out vec4 fragColor;
void main() {
    fragColor = texture(image, uv);
}
`

// Vertices is a unit quad as x, y, u, v. Image row 0 is the top edge.
var Vertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,
	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

// HalfSize returns the quad half extents in NDC. The height is scale and the
// width is corrected for aspect so the image keeps its proportions.
func HalfSize(scale, aspect float32) mgl32.Vec2 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Vec2{scale / aspect, scale}
}

// Crosshair draws an alpha blended image at the centre of the screen.
type Crosshair struct {
	image   *image.RGBA
	scale   float32
	shader  *graphics.Shader
	texture uint32
	vao     uint32
	vbo     uint32
}

func NewCrosshair(img *image.RGBA, scale float32) *Crosshair {
	return &Crosshair{image: img, scale: scale}
}

func (c *Crosshair) Init() error {
	var err error
	c.shader, err = graphics.NewShader(vertSrc, fragSrc)
	if err != nil {
		return err
	}
	c.texture = graphics.UploadTexture(c.image, true)
	c.setupVAO()
	return nil
}

func (c *Crosshair) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderCrosshair")()
	c.renderCrosshair(ctx.Camera.AspectRatio)
}

func (c *Crosshair) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.texture != 0 {
		gl.DeleteTextures(1, &c.texture)
	}
	if c.shader != nil {
		c.shader.Dispose()
	}
}

func (c *Crosshair) SetViewport(width, height int) {}

func (c *Crosshair) setupVAO() {
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)
}

func (c *Crosshair) renderCrosshair(aspectRatio float32) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	c.shader.Use()
	c.shader.SetVec2("halfSize", HalfSize(c.scale, aspectRatio))
	c.shader.SetInt("image", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.texture)

	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
