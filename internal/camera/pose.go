package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in degrees. Heading is never limited.
const (
	MinPitch = -90.0
	MaxPitch = 90.0
)

// Pose is the camera transform in a Z-up world. Angles are in degrees:
// heading turns about +Z (positive is to the left), pitch tilts about the
// camera's X axis (positive is up). Heading 0 looks along +Y.
type Pose struct {
	Position mgl32.Vec3
	Heading  float32
	Pitch    float32
	Roll     float32
}

// glFromZUp maps camera space (+Y forward, +Z up) to GL eye space (-Z forward, +Y up).
var glFromZUp = mgl32.Mat4{
	1, 0, 0, 0,
	0, 0, -1, 0,
	0, 1, 0, 0,
	0, 0, 0, 1,
}

// Forward is the unit look direction.
func (p Pose) Forward() mgl32.Vec3 {
	sh, ch := sincos(p.Heading)
	sp, cp := sincos(p.Pitch)
	return mgl32.Vec3{-sh * cp, ch * cp, sp}
}

// ViewMatrix is the GL view matrix for the pose. Built from rotations rather
// than a look-at so it stays well defined when looking straight up or down.
func (p Pose) ViewMatrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DY(-mgl32.DegToRad(p.Roll)).
		Mul4(mgl32.HomogRotate3DX(-mgl32.DegToRad(p.Pitch))).
		Mul4(mgl32.HomogRotate3DZ(-mgl32.DegToRad(p.Heading)))
	pos := p.Position
	return glFromZUp.Mul4(rot).Mul4(mgl32.Translate3D(-pos.X(), -pos.Y(), -pos.Z()))
}

// RotationOnly is ViewMatrix without translation, used for the sky.
func (p Pose) RotationOnly() mgl32.Mat4 {
	q := p
	q.Position = mgl32.Vec3{}
	return q.ViewMatrix()
}

func sincos(deg float32) (float32, float32) {
	s, c := math.Sincos(float64(mgl32.DegToRad(deg)))
	return float32(s), float32(c)
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, MinPitch, MaxPitch)
}
