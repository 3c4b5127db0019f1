package game

import (
	"fmt"

	"blockworld/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyNames = map[glfw.Key]string{
	glfw.KeySpace:        "space",
	glfw.KeyLeftShift:    "lshift",
	glfw.KeyRightShift:   "rshift",
	glfw.KeyLeftControl:  "lcontrol",
	glfw.KeyRightControl: "rcontrol",
	glfw.KeyLeftAlt:      "lalt",
	glfw.KeyRightAlt:     "ralt",
	glfw.KeyEscape:       "escape",
	glfw.KeyEnter:        "enter",
	glfw.KeyTab:          "tab",
	glfw.KeyBackspace:    "backspace",
	glfw.KeyUp:           "arrow_up",
	glfw.KeyDown:         "arrow_down",
	glfw.KeyLeft:         "arrow_left",
	glfw.KeyRight:        "arrow_right",
}

// KeyName returns the symbolic event name for key, or "" if it has none.
func KeyName(key glfw.Key) string {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return string(rune('a' + (key - glfw.KeyA)))
	case key >= glfw.Key0 && key <= glfw.Key9:
		return string(rune('0' + (key - glfw.Key0)))
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return fmt.Sprintf("f%d", key-glfw.KeyF1+1)
	}
	return keyNames[key]
}

// MouseButtonName numbers buttons left=1, middle=2, right=3.
func MouseButtonName(button glfw.MouseButton) string {
	switch button {
	case glfw.MouseButtonLeft:
		return "mouse1"
	case glfw.MouseButtonMiddle:
		return "mouse2"
	case glfw.MouseButtonRight:
		return "mouse3"
	}
	return ""
}

// EventName applies the press/release/repeat suffix to a symbolic name.
func EventName(name string, action glfw.Action) string {
	if name == "" {
		return ""
	}
	switch action {
	case glfw.Press:
		return name
	case glfw.Release:
		return input.UpEvent(name)
	case glfw.Repeat:
		return name + "-repeat"
	}
	return ""
}

// SetupInputHandlers translates GLFW callbacks into dispatcher events.
func SetupInputHandlers(app *App) {
	window := app.window
	d := app.dispatcher

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if ev := EventName(KeyName(key), action); ev != "" {
			d.Dispatch(ev)
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if ev := EventName(MouseButtonName(button), action); ev != "" {
			d.Dispatch(ev)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		app.renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Release events are lost while unfocused, so drop held controls.
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			app.keys.Clear()
		}
	})
}
