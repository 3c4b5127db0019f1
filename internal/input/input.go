package input

import "sort"

// Handler reacts to one symbolic input event.
type Handler func()

// Event names follow the "key" / "key-up" convention: a bare name fires on
// press and the "-up" suffix fires on release.
const (
	EventEscape      = "escape"
	EventMouse1      = "mouse1"
	EventToggleDebug = "f3"
)

// UpEvent returns the release event name for a press event.
func UpEvent(event string) string {
	return event + "-up"
}

// Dispatcher maps symbolic input events to handlers. It knows nothing about
// the windowing library; the window layer translates raw keys into names.
type Dispatcher struct {
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// Accept registers h for event. Several handlers may share an event and run
// in registration order.
func (d *Dispatcher) Accept(event string, h Handler) {
	if h == nil {
		return
	}
	d.handlers[event] = append(d.handlers[event], h)
}

// Ignore removes every handler bound to event.
func (d *Dispatcher) Ignore(event string) {
	delete(d.handlers, event)
}

// Dispatch runs the handlers for event and reports whether any were bound.
func (d *Dispatcher) Dispatch(event string) bool {
	hs, ok := d.handlers[event]
	if !ok {
		return false
	}
	for _, h := range hs {
		h()
	}
	return true
}

// Events lists bound event names in sorted order.
func (d *Dispatcher) Events() []string {
	out := make([]string, 0, len(d.handlers))
	for e := range d.handlers {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
