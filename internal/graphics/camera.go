package graphics

import "github.com/go-gl/mathgl/mgl32"

// Camera holds the projection parameters. The view comes from camera.Pose.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int, fov, near, far float32) *Camera {
	c := &Camera{AspectRatio: 1, FOV: fov, NearPlane: near, FarPlane: far}
	c.SetViewport(width, height)
	return c
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// SetViewport updates the aspect ratio. A zero-sized framebuffer (minimised
// window) keeps the previous ratio.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}
