package scene

import (
	"errors"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNotALight = errors.New("node carries no light")

// Scene is the root of the graph plus the set of lights that affect it.
type Scene struct {
	Root   *Node
	lights []*Node
}

func New() *Scene {
	return &Scene{Root: NewNode("render")}
}

// SetLight turns on the light carried by n for the whole scene. Setting the
// same node twice has no effect.
func (s *Scene) SetLight(n *Node) error {
	if n == nil || n.Light == nil {
		return ErrNotALight
	}
	for _, l := range s.lights {
		if l == n {
			return nil
		}
	}
	s.lights = append(s.lights, n)
	return nil
}

func (s *Scene) Lights() []*Node {
	return s.lights
}

// Lighting is the summed light state the shaders consume.
type Lighting struct {
	Ambient        mgl32.Vec3
	Direction      mgl32.Vec3
	DirColor       mgl32.Vec3
	HasDirectional bool
}

// Lighting sums ambient colours and takes the first directional light.
func (s *Scene) Lighting() Lighting {
	var out Lighting
	for _, n := range s.lights {
		switch n.Light.Type {
		case LightAmbient:
			out.Ambient = out.Ambient.Add(n.Light.Color.Vec3())
		case LightDirectional:
			if !out.HasDirectional {
				out.Direction = n.Forward()
				out.DirColor = n.Light.Color.Vec3()
				out.HasDirectional = true
			}
		}
	}
	return out
}

// Drawable is a node with a model and its world matrix.
type Drawable struct {
	Node  *Node
	World mgl32.Mat4
}

// Drawables returns every node with a model, background bin first. Order
// within a bin follows graph order.
func (s *Scene) Drawables() []Drawable {
	var out []Drawable
	s.Root.Traverse(func(n *Node) {
		if n.Model != nil {
			out = append(out, Drawable{Node: n, World: n.WorldMatrix()})
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Node.Bin < out[j].Node.Bin
	})
	return out
}

// Count returns the number of nodes named name under the root.
func (s *Scene) Count(name string) int {
	c := 0
	s.Root.Traverse(func(n *Node) {
		if n.Name == name {
			c++
		}
	})
	return c
}
