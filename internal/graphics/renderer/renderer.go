package renderer

import (
	"fmt"

	"blockworld/internal/camera"
	"blockworld/internal/graphics"
	"blockworld/internal/profiling"
	"blockworld/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor shows wherever the skybox does not cover.
var ClearColor = mgl32.Vec4{0.53, 0.81, 0.92, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures GL state and initialises each renderable in order.
func NewRenderer(cam *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{renderables: rs, camera: cam}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			// Release whatever was already set up.
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, rr, err)
		}
	}
	return r, nil
}

// Render draws one frame of sc from pose.
func (r *Renderer) Render(sc *scene.Scene, pose camera.Pose, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Scene:  sc,
		Pose:   pose,
		DT:     dt,
		View:   pose.ViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport forwards a framebuffer resize to the camera and every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
