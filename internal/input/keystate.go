package input

// Control is a logical movement control, not a physical key.
type Control string

const (
	ControlForward  Control = "forward"
	ControlBackward Control = "backward"
	ControlLeft     Control = "left"
	ControlRight    Control = "right"
	ControlUp       Control = "up"
	ControlDown     Control = "down"
)

// Controls lists every movement control.
var Controls = []Control{
	ControlForward,
	ControlBackward,
	ControlLeft,
	ControlRight,
	ControlUp,
	ControlDown,
}

// KeyState records which controls are held. It is written by input handlers
// and read once per frame.
type KeyState map[Control]bool

// NewKeyState returns a state with every control released.
func NewKeyState() KeyState {
	ks := make(KeyState, len(Controls))
	for _, c := range Controls {
		ks[c] = false
	}
	return ks
}

func (ks KeyState) Set(c Control, held bool) {
	ks[c] = held
}

// Active reports whether c is held. Unknown controls are never active.
func (ks KeyState) Active(c Control) bool {
	return ks[c]
}

// Clear releases every control. Release events are not delivered while the
// window is unfocused, so focus loss calls this.
func (ks KeyState) Clear() {
	for c := range ks {
		ks[c] = false
	}
}

// Clone copies the state so a frame can read a stable snapshot.
func (ks KeyState) Clone() KeyState {
	out := make(KeyState, len(ks))
	for c, v := range ks {
		out[c] = v
	}
	return out
}

// DefaultBindings maps each control to the key event that drives it.
func DefaultBindings() map[Control]string {
	return map[Control]string{
		ControlForward:  "w",
		ControlBackward: "s",
		ControlLeft:     "a",
		ControlRight:    "d",
		ControlUp:       "space",
		ControlDown:     "lshift",
	}
}

// BindControls wires press/release events of each binding to ks.
func BindControls(d *Dispatcher, ks KeyState, bindings map[Control]string) {
	for control, event := range bindings {
		c := control
		d.Accept(event, func() { ks.Set(c, true) })
		d.Accept(UpEvent(event), func() { ks.Set(c, false) })
	}
}
