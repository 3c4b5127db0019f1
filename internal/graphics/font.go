package graphics

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph = rune(32)
	lastGlyph  = rune(126)
	atlasWidth = 512
)

// FontCharacter describes one glyph's place in the atlas and its metrics, in pixels.
type FontCharacter struct {
	AtlasX, AtlasY float32
	Width, Height  float32
	BearingX       float32
	BearingY       float32
	Advance        int
}

// FontAtlas is a baked single-channel glyph sheet. TextureID is 0 until Upload.
type FontAtlas struct {
	Image      *image.Alpha
	Characters map[rune]FontCharacter
	LineHeight int
	TextureID  uint32
}

// DefaultFont is the bundled Go Mono face.
func DefaultFont() []byte {
	return gomono.TTF
}

// BakeFontAtlas rasterises printable ASCII from a TrueType font into an alpha image.
func BakeFontAtlas(ttf []byte, fontPixels int) (*FontAtlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	const padding = 1
	type glyph struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}

	// Measure and pack rows first so the atlas is exactly tall enough.
	var glyphs []glyph
	offsetX, offsetY, rowH := 0, 0, 0
	slots := make(map[rune]image.Point)
	for r := firstGlyph; r <= lastGlyph; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, glyph{r, dr, mask, maskp, advance})
		w, h := dr.Dx(), dr.Dy()
		if w == 0 || h == 0 {
			continue
		}
		if offsetX+w > atlasWidth {
			offsetX = 0
			offsetY += rowH + padding
			rowH = 0
		}
		slots[r] = image.Pt(offsetX, offsetY)
		offsetX += w + padding
		rowH = max(rowH, h)
	}

	atlas := &FontAtlas{
		Image:      image.NewAlpha(image.Rect(0, 0, atlasWidth, max(offsetY+rowH, 1))),
		Characters: make(map[rune]FontCharacter, len(glyphs)),
		LineHeight: face.Metrics().Height.Ceil(),
	}
	for _, g := range glyphs {
		fc := FontCharacter{
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
		if slot, ok := slots[g.r]; ok {
			dst := image.Rectangle{Min: slot, Max: slot.Add(g.dr.Size())}
			draw.Draw(atlas.Image, dst, g.mask, g.maskp, draw.Src)
			fc.AtlasX, fc.AtlasY = float32(slot.X), float32(slot.Y)
			fc.Width, fc.Height = float32(g.dr.Dx()), float32(g.dr.Dy())
		}
		atlas.Characters[g.r] = fc
	}
	return atlas, nil
}

// Upload sends the atlas to the GPU as a GL_RED texture.
func (a *FontAtlas) Upload() {
	b := a.Image.Bounds()
	gl.GenTextures(1, &a.TextureID)
	gl.BindTexture(gl.TEXTURE_2D, a.TextureID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Image.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (a *FontAtlas) Dispose() {
	if a.TextureID != 0 {
		gl.DeleteTextures(1, &a.TextureID)
		a.TextureID = 0
	}
}

// Measure returns the pixel width of text at scale.
func (a *FontAtlas) Measure(text string, scale float32) float32 {
	var w float32
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			fc = a.Characters[' ']
		}
		w += float32(fc.Advance) * scale
	}
	return w
}

// TextVertices builds two triangles per visible glyph as x, y, u, v floats.
// (x, y) is the baseline start in a top-left origin pixel space.
func (a *FontAtlas) TextVertices(text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Bounds().Dx())
	ah := float32(a.Image.Bounds().Dy())
	out := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			x0 := x + fc.BearingX*scale
			y0 := y - fc.BearingY*scale
			x1 := x0 + fc.Width*scale
			y1 := y0 + fc.Height*scale
			u0, v0 := fc.AtlasX/aw, fc.AtlasY/ah
			u1, v1 := (fc.AtlasX+fc.Width)/aw, (fc.AtlasY+fc.Height)/ah
			out = append(out,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += float32(fc.Advance) * scale
	}
	return out
}

const fontVertSrc = `
#version 410 core
layout(location = 0) in vec4 vertex;
uniform mat4 projection;
out vec2 uv;
void main() {
    gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
    uv = vertex.zw;
}
`

const fontFragSrc = `
#version 410 core
in vec2 uv;
uniform sampler2D text;
uniform vec3 textColor;
out vec4 color;
void main() {
    color = vec4(textColor, texture(text, uv).r);
}
`

// FontRenderer draws text from an uploaded atlas in window pixel coordinates.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao, vbo   uint32
}

func NewFontRenderer(atlas *FontAtlas, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(fontVertSrc, fontFragSrc)
	if err != nil {
		return nil, fmt.Errorf("font shader: %w", err)
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.SetViewport(width, height)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindVertexArray(0)
	return fr, nil
}

func (fr *FontRenderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

func (fr *FontRenderer) LineHeight(scale float32) float32 {
	return float32(fr.atlas.LineHeight) * scale
}

// RenderLines draws lines top to bottom starting at baseline (x, y).
func (fr *FontRenderer) RenderLines(lines []string, x, y, scale float32, color mgl32.Vec3) {
	step := fr.LineHeight(scale)
	var verts []float32
	for i, line := range lines {
		verts = append(verts, fr.atlas.TextVertices(line, x, y+float32(i)*step, scale)...)
	}
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (fr *FontRenderer) Dispose() {
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	fr.shader.Dispose()
}
