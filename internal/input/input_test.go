package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchRunsHandlersInOrder(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.Accept("mouse1", func() { calls = append(calls, "first") })
	d.Accept("mouse1", func() { calls = append(calls, "second") })

	assert.True(t, d.Dispatch("mouse1"))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatchUnboundEvent(t *testing.T) {
	d := NewDispatcher()
	assert.False(t, d.Dispatch("f12"))
}

func TestIgnoreRemovesHandlers(t *testing.T) {
	d := NewDispatcher()
	fired := false
	d.Accept(EventEscape, func() { fired = true })
	d.Ignore(EventEscape)

	assert.False(t, d.Dispatch(EventEscape))
	assert.False(t, fired)
}

func TestAcceptNilHandler(t *testing.T) {
	d := NewDispatcher()
	d.Accept("w", nil)
	assert.Empty(t, d.Events())
}

func TestNewKeyStateAllReleased(t *testing.T) {
	ks := NewKeyState()
	assert.Len(t, ks, len(Controls))
	for _, c := range Controls {
		assert.False(t, ks.Active(c), string(c))
	}
}

func TestBindControlsPressAndRelease(t *testing.T) {
	d := NewDispatcher()
	ks := NewKeyState()
	BindControls(d, ks, DefaultBindings())

	d.Dispatch("w")
	d.Dispatch("lshift")
	assert.True(t, ks.Active(ControlForward))
	assert.True(t, ks.Active(ControlDown))
	assert.False(t, ks.Active(ControlBackward))

	d.Dispatch("w-up")
	assert.False(t, ks.Active(ControlForward))
	assert.True(t, ks.Active(ControlDown))
}

func TestDefaultBindingsEvents(t *testing.T) {
	d := NewDispatcher()
	BindControls(d, NewKeyState(), DefaultBindings())

	assert.Equal(t, []string{
		"a", "a-up", "d", "d-up", "lshift", "lshift-up",
		"s", "s-up", "space", "space-up", "w", "w-up",
	}, d.Events())
}

func TestKeyStateClone(t *testing.T) {
	ks := NewKeyState()
	ks.Set(ControlLeft, true)
	snap := ks.Clone()
	ks.Set(ControlLeft, false)

	assert.True(t, snap.Active(ControlLeft))
}
