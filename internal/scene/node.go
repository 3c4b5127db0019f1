package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"blockworld/internal/assets"
)

// Bin orders drawing. Lower bins draw first.
type Bin int

const (
	BinBackground Bin = iota
	BinDefault
)

func (b Bin) String() string {
	switch b {
	case BinBackground:
		return "background"
	case BinDefault:
		return "default"
	}
	return "unknown"
}

// Node is one element of the scene graph. Rotation is heading/pitch/roll in
// degrees about +Z, +X and +Y; a node with zero HPR faces +Y.
type Node struct {
	Name     string
	Parent   *Node
	Children []*Node

	// Model is shared between every node instanced to it.
	Model *assets.Model
	Light *Light

	DepthWrite bool
	LightOff   bool
	Bin        Bin

	pos   mgl32.Vec3
	hpr   mgl32.Vec3
	scale mgl32.Vec3

	worldDirty  bool
	worldMatrix mgl32.Mat4
}

func NewNode(name string) *Node {
	return &Node{
		Name:       name,
		DepthWrite: true,
		Bin:        BinDefault,
		scale:      mgl32.Vec3{1, 1, 1},
		worldDirty: true,
	}
}

// AttachNewNode creates a child node with default state.
func (n *Node) AttachNewNode(name string) *Node {
	child := NewNode(name)
	n.AddChild(child)
	return child
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	child.markDirty()
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.markDirty()
			return
		}
	}
}

// InstanceTo makes n draw m. The model is shared, not copied.
func (n *Node) InstanceTo(m *assets.Model) {
	n.Model = m
}

func (n *Node) Pos() mgl32.Vec3   { return n.pos }
func (n *Node) Hpr() mgl32.Vec3   { return n.hpr }
func (n *Node) Scale() mgl32.Vec3 { return n.scale }

func (n *Node) SetPos(p mgl32.Vec3) {
	n.pos = p
	n.markDirty()
}

func (n *Node) SetHpr(h, p, r float32) {
	n.hpr = mgl32.Vec3{h, p, r}
	n.markDirty()
}

// SetScale sets a uniform scale.
func (n *Node) SetScale(s float32) {
	n.scale = mgl32.Vec3{s, s, s}
	n.markDirty()
}

// LocalMatrix is T * Rz(h) * Rx(p) * Ry(r) * S.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(n.pos.X(), n.pos.Y(), n.pos.Z()).
		Mul4(hprMatrix(n.hpr)).
		Mul4(mgl32.Scale3D(n.scale.X(), n.scale.Y(), n.scale.Z()))
}

func (n *Node) WorldMatrix() mgl32.Mat4 {
	if n.worldDirty {
		local := n.LocalMatrix()
		if n.Parent != nil {
			n.worldMatrix = n.Parent.WorldMatrix().Mul4(local)
		} else {
			n.worldMatrix = local
		}
		n.worldDirty = false
	}
	return n.worldMatrix
}

// Forward is the node's +Y axis in world space.
func (n *Node) Forward() mgl32.Vec3 {
	return n.WorldMatrix().Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3().Normalize()
}

func (n *Node) markDirty() {
	n.worldDirty = true
	for _, c := range n.Children {
		c.markDirty()
	}
}

// Traverse visits n and then its children depth first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Traverse(fn)
	}
}

// Find returns the first node named name, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

func hprMatrix(hpr mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(hpr.X())).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(hpr.Y()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(hpr.Z())))
}
