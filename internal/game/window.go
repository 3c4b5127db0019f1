package game

import (
	"fmt"
	"log/slog"

	"blockworld/internal/config"
	"blockworld/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// windowSize returns the monitor's mode size when fullscreen is requested and
// a mode is known, otherwise the configured windowed size.
func windowSize(cfg config.WindowSettings, mode *glfw.VidMode) (width, height int, fullscreen bool) {
	if !cfg.Fullscreen || mode == nil {
		return cfg.Width, cfg.Height, false
	}
	return mode.Width, mode.Height, true
}

// SetupWindow creates the window with a GL 4.1 core context and loads GL.
func SetupWindow(cfg config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	var monitor *glfw.Monitor
	var mode *glfw.VidMode
	if cfg.Fullscreen {
		if monitor = glfw.GetPrimaryMonitor(); monitor != nil {
			mode = monitor.GetVideoMode()
		}
	}
	width, height, fullscreen := windowSize(cfg, mode)
	if !fullscreen {
		if cfg.Fullscreen {
			slog.Warn("no monitor video mode for fullscreen, opening a window instead")
		}
		monitor = nil
	}

	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}

// windowCursor drives the GLFW cursor for input.MouseCapture.
type windowCursor struct {
	window *glfw.Window
}

func (c windowCursor) CursorPos() input.Pointer {
	x, y := c.window.GetCursorPos()
	return input.Pointer{X: x, Y: y}
}

func (c windowCursor) SetCursorCaptured(captured bool) error {
	mode := glfw.CursorNormal
	raw := glfw.False
	if captured {
		mode = glfw.CursorDisabled
		raw = glfw.True
	}

	c.window.SetInputMode(glfw.CursorMode, mode)
	if glfw.RawMouseMotionSupported() {
		c.window.SetInputMode(glfw.RawMouseMotion, raw)
	}

	if got := c.window.GetInputMode(glfw.CursorMode); got != mode {
		return fmt.Errorf("%w: requested %#x, window has %#x", input.ErrCursorModeRejected, mode, got)
	}
	return nil
}
