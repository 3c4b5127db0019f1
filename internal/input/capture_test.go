package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCursor struct {
	pos      Pointer
	captured bool
	reject   bool
	requests []bool
}

func (f *fakeCursor) CursorPos() Pointer { return f.pos }

func (f *fakeCursor) SetCursorCaptured(captured bool) error {
	f.requests = append(f.requests, captured)
	if f.reject {
		return ErrCursorModeRejected
	}
	f.captured = captured
	return nil
}

type fakeBaseline struct {
	last     Pointer
	captured bool
	rebases  int
}

func (f *fakeBaseline) Rebaseline(p Pointer)      { f.last = p; f.rebases++ }
func (f *fakeBaseline) SetCaptured(captured bool) { f.captured = captured }

func TestCaptureRecordsBaseline(t *testing.T) {
	cur := &fakeCursor{pos: Pointer{X: 120, Y: 80}}
	base := &fakeBaseline{}
	m := NewMouseCapture(cur, base)

	require.NoError(t, m.Capture())

	assert.True(t, m.Captured())
	assert.True(t, cur.captured)
	assert.True(t, base.captured)
	assert.Equal(t, Pointer{X: 120, Y: 80}, base.last)
}

func TestCaptureTwiceRebaselinesToLatestPointer(t *testing.T) {
	cur := &fakeCursor{pos: Pointer{X: 10, Y: 10}}
	base := &fakeBaseline{}
	m := NewMouseCapture(cur, base)

	require.NoError(t, m.Capture())
	cur.pos = Pointer{X: 300, Y: -40}
	require.NoError(t, m.Capture())

	assert.True(t, m.Captured())
	assert.Equal(t, Pointer{X: 300, Y: -40}, base.last)
	assert.Equal(t, 2, base.rebases)
}

func TestReleaseRestoresCursor(t *testing.T) {
	cur := &fakeCursor{}
	base := &fakeBaseline{}
	m := NewMouseCapture(cur, base)

	require.NoError(t, m.Capture())
	require.NoError(t, m.Release())
	require.NoError(t, m.Release())

	assert.False(t, m.Captured())
	assert.False(t, cur.captured)
	assert.False(t, base.captured)
	assert.Equal(t, []bool{true, false, false}, cur.requests)
}

func TestRejectedModeIsReported(t *testing.T) {
	cur := &fakeCursor{reject: true}
	base := &fakeBaseline{}
	m := NewMouseCapture(cur, base)

	err := m.Capture()

	assert.ErrorIs(t, err, ErrCursorModeRejected)
	assert.True(t, m.Captured(), "look stays enabled even if the window refused the mode")
}

func TestPointerSub(t *testing.T) {
	d := Pointer{X: 5, Y: 3}.Sub(Pointer{X: 2, Y: 7})
	assert.Equal(t, Pointer{X: 3, Y: -4}, d)
}
