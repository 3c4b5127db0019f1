package input

import "errors"

// ErrCursorModeRejected is returned when the window did not apply a requested cursor mode.
var ErrCursorModeRejected = errors.New("cursor mode request rejected")

// Pointer is a raw cursor position in window coordinates.
type Pointer struct {
	X, Y float64
}

// Sub returns the delta from prev to p.
func (p Pointer) Sub(prev Pointer) Pointer {
	return Pointer{X: p.X - prev.X, Y: p.Y - prev.Y}
}

// Cursor is the window surface the capture toggle drives.
type Cursor interface {
	// CursorPos returns the current raw pointer position.
	CursorPos() Pointer
	// SetCursorCaptured switches between hidden/relative (true) and
	// visible/absolute (false). It returns ErrCursorModeRejected if the
	// window did not honour the request.
	SetCursorCaptured(captured bool) error
}

// Baseline receives the pointer position recorded when capture starts.
type Baseline interface {
	Rebaseline(p Pointer)
	SetCaptured(captured bool)
}

// MouseCapture toggles between the released and captured cursor states.
type MouseCapture struct {
	cursor   Cursor
	baseline Baseline
	captured bool
}

func NewMouseCapture(c Cursor, b Baseline) *MouseCapture {
	return &MouseCapture{cursor: c, baseline: b}
}

func (m *MouseCapture) Captured() bool {
	return m.captured
}

// Capture hides the cursor, switches to relative motion and records the
// current pointer as the delta baseline. Calling it while already captured
// only re-baselines. A rejected mode request still leaves the controller in
// the captured state and the error is returned for logging.
func (m *MouseCapture) Capture() error {
	m.captured = true
	m.baseline.SetCaptured(true)
	m.baseline.Rebaseline(m.cursor.CursorPos())
	return m.cursor.SetCursorCaptured(true)
}

// Release restores the visible, absolute cursor.
func (m *MouseCapture) Release() error {
	m.captured = false
	m.baseline.SetCaptured(false)
	return m.cursor.SetCursorCaptured(false)
}

// Start applies the initial cursor state: captured when capture is set,
// released otherwise.
func (m *MouseCapture) Start(capture bool) error {
	if capture {
		return m.Capture()
	}
	return m.Release()
}
