package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoBindings struct {
	d       *Dispatcher
	ks      KeyState
	m       *MouseCapture
	cur     *fakeCursor
	base    *fakeBaseline
	toggles int
	errs    []error
}

func newDemoBindings() *demoBindings {
	b := &demoBindings{
		d:    NewDispatcher(),
		ks:   NewKeyState(),
		cur:  &fakeCursor{pos: Pointer{X: 10, Y: 20}},
		base: &fakeBaseline{},
	}
	b.m = NewMouseCapture(b.cur, b.base)
	BindDefaults(b.d, b.ks, b.m, func() { b.toggles++ }, func(err error) {
		if err != nil {
			b.errs = append(b.errs, err)
		}
	})
	return b
}

func TestEscapeReleasesMouse1Captures(t *testing.T) {
	b := newDemoBindings()
	require.False(t, b.m.Captured())

	assert.True(t, b.d.Dispatch(EventMouse1))
	assert.True(t, b.m.Captured())
	assert.True(t, b.cur.captured)
	assert.True(t, b.base.captured)
	assert.Equal(t, Pointer{X: 10, Y: 20}, b.base.last)

	assert.True(t, b.d.Dispatch(EventEscape))
	assert.False(t, b.m.Captured())
	assert.False(t, b.cur.captured)
	assert.False(t, b.base.captured)

	// Escape while released stays released; mouse1 while captured re-baselines.
	b.d.Dispatch(EventEscape)
	assert.False(t, b.m.Captured())
	b.d.Dispatch(EventMouse1)
	b.cur.pos = Pointer{X: 50, Y: 60}
	b.d.Dispatch(EventMouse1)
	assert.True(t, b.m.Captured())
	assert.Equal(t, Pointer{X: 50, Y: 60}, b.base.last)
	assert.Equal(t, 2, b.base.rebases)
	assert.Empty(t, b.errs)
}

func TestReleaseEventsDoNotToggleCapture(t *testing.T) {
	b := newDemoBindings()
	b.d.Dispatch(EventMouse1)

	assert.False(t, b.d.Dispatch(UpEvent(EventMouse1)))
	assert.False(t, b.d.Dispatch(UpEvent(EventEscape)))
	assert.True(t, b.m.Captured())
}

func TestRejectedCursorModeIsReported(t *testing.T) {
	b := newDemoBindings()
	b.cur.reject = true

	b.d.Dispatch(EventMouse1)
	assert.True(t, b.m.Captured())
	b.d.Dispatch(EventEscape)
	assert.False(t, b.m.Captured())

	require.Len(t, b.errs, 2)
	for _, err := range b.errs {
		assert.ErrorIs(t, err, ErrCursorModeRejected)
	}
}

func TestToggleDebugBinding(t *testing.T) {
	b := newDemoBindings()
	b.d.Dispatch(EventToggleDebug)
	b.d.Dispatch(EventToggleDebug)
	assert.Equal(t, 2, b.toggles)
	assert.False(t, b.m.Captured())
}

func TestBindDefaultsDrivesMovement(t *testing.T) {
	b := newDemoBindings()
	b.d.Dispatch("w")
	b.d.Dispatch("space")
	assert.True(t, b.ks.Active(ControlForward))
	assert.True(t, b.ks.Active(ControlUp))
	b.d.Dispatch("w-up")
	assert.False(t, b.ks.Active(ControlForward))
}

func TestStartFollowsCaptureOnStart(t *testing.T) {
	cases := []struct {
		name    string
		capture bool
	}{
		{"captured at startup", true},
		{"released at startup", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cur := &fakeCursor{pos: Pointer{X: 7, Y: 9}}
			base := &fakeBaseline{}
			m := NewMouseCapture(cur, base)

			require.NoError(t, m.Start(tc.capture))

			assert.Equal(t, tc.capture, m.Captured())
			assert.Equal(t, tc.capture, cur.captured)
			assert.Equal(t, tc.capture, base.captured)
			assert.Equal(t, []bool{tc.capture}, cur.requests)
			if tc.capture {
				assert.Equal(t, Pointer{X: 7, Y: 9}, base.last)
			} else {
				assert.Zero(t, base.rebases)
			}
		})
	}
}

func TestClearReleasesHeldControls(t *testing.T) {
	b := newDemoBindings()
	b.d.Dispatch("w")
	b.d.Dispatch("d")
	b.d.Dispatch("lshift")

	// Focus loss: the matching "-up" events never arrive.
	b.ks.Clear()
	for _, c := range Controls {
		assert.False(t, b.ks.Active(c), string(c))
	}
	assert.Len(t, b.ks, len(Controls))

	b.d.Dispatch("a")
	assert.True(t, b.ks.Active(ControlLeft))
}
