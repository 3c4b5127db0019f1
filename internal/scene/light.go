package scene

import "github.com/go-gl/mathgl/mgl32"

type LightType int

const (
	LightDirectional LightType = iota
	LightAmbient
)

// Light is attached to a node. A directional light shines along its node's forward axis.
type Light struct {
	Type  LightType
	Color mgl32.Vec4
}

func NewDirectionalLight(color mgl32.Vec4) *Light {
	return &Light{Type: LightDirectional, Color: color}
}

func NewAmbientLight(color mgl32.Vec4) *Light {
	return &Light{Type: LightAmbient, Color: color}
}
