package camera

import (
	"blockworld/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Params are the tuning constants of the first-person controller.
type Params struct {
	// MoveSpeed is in world units per second.
	MoveSpeed float32
	// SwingFactor scales pointer delta * dt into degrees.
	SwingFactor float32
	// Movement enables WASD/space/shift flight.
	Movement bool
	// NormalizeDiagonal caps the combined displacement at MoveSpeed*dt.
	// Off by default: two held directions move faster than one.
	NormalizeDiagonal bool
}

func DefaultParams() Params {
	return Params{
		MoveSpeed:   10,
		SwingFactor: 10,
		Movement:    true,
	}
}

// State is everything the per-frame update reads and writes.
type State struct {
	Pose        Pose
	Captured    bool
	LastPointer input.Pointer
}

// Step advances the camera by one frame. It is pure: the result depends
// only on its arguments.
func Step(s State, keys input.KeyState, pointer input.Pointer, dt float32, p Params) State {
	if p.Movement {
		s.Pose.Position = s.Pose.Position.Add(Displacement(s.Pose.Heading, keys, dt, p))
	}
	if s.Captured {
		s = look(s, pointer, dt, p.SwingFactor)
	}
	s.Pose.Roll = 0
	return s
}

// Displacement sums one speed*dt step per held control, relative to heading.
func Displacement(heading float32, keys input.KeyState, dt float32, p Params) mgl32.Vec3 {
	step := p.MoveSpeed * dt
	sh, ch := sincos(heading)

	forward := mgl32.Vec3{-sh, ch, 0}
	right := mgl32.Vec3{ch, sh, 0}
	up := mgl32.Vec3{0, 0, 1}

	var d mgl32.Vec3
	if keys.Active(input.ControlForward) {
		d = d.Add(forward.Mul(step))
	}
	if keys.Active(input.ControlBackward) {
		d = d.Sub(forward.Mul(step))
	}
	if keys.Active(input.ControlRight) {
		d = d.Add(right.Mul(step))
	}
	if keys.Active(input.ControlLeft) {
		d = d.Sub(right.Mul(step))
	}
	if keys.Active(input.ControlUp) {
		d = d.Add(up.Mul(step))
	}
	if keys.Active(input.ControlDown) {
		d = d.Sub(up.Mul(step))
	}

	if p.NormalizeDiagonal {
		if l := d.Len(); l > step && l > 0 {
			d = d.Mul(step / l)
		}
	}
	return d
}

func look(s State, pointer input.Pointer, dt, swing float32) State {
	delta := pointer.Sub(s.LastPointer)
	s.Pose.Heading -= float32(delta.X) * dt * swing
	s.Pose.Pitch = clampPitch(s.Pose.Pitch - float32(delta.Y)*dt*swing)
	s.LastPointer = pointer
	return s
}

// Controller owns the camera state between frames.
type Controller struct {
	state  State
	params Params
}

func NewController(start Pose, p Params) *Controller {
	start.Pitch = clampPitch(start.Pitch)
	start.Roll = 0
	return &Controller{
		state:  State{Pose: start},
		params: p,
	}
}

// Update runs one frame with a snapshot of the held controls and the current pointer.
func (c *Controller) Update(dt float32, keys input.KeyState, pointer input.Pointer) Pose {
	c.state = Step(c.state, keys, pointer, dt, c.params)
	return c.state.Pose
}

func (c *Controller) Pose() Pose {
	return c.state.Pose
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Params() Params {
	return c.params
}

// Rebaseline makes p the reference for the next pointer delta.
func (c *Controller) Rebaseline(p input.Pointer) {
	c.state.LastPointer = p
}

// SetCaptured enables or disables mouse-look.
func (c *Controller) SetCaptured(captured bool) {
	c.state.Captured = captured
}
