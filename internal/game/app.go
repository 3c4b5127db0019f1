package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blockworld/internal/assets"
	"blockworld/internal/camera"
	"blockworld/internal/config"
	"blockworld/internal/graphics"
	"blockworld/internal/graphics/renderables/crosshair"
	"blockworld/internal/graphics/renderables/overlay"
	"blockworld/internal/graphics/renderables/sceneview"
	renderer "blockworld/internal/graphics/renderer"
	"blockworld/internal/input"
	"blockworld/internal/logging"
	"blockworld/internal/profiling"
	"blockworld/internal/stage"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	slowFrame    = 50 * time.Millisecond
	warnInterval = 5 * time.Second
)

// App owns the window-side state of the running demo.
type App struct {
	window   *glfw.Window
	settings *config.Settings

	stage      *stage.Stage
	controller *camera.Controller
	capture    *input.MouseCapture
	dispatcher *input.Dispatcher
	keys       input.KeyState
	cursor     windowCursor

	renderer *renderer.Renderer
	overlay  *overlay.Overlay

	fpsLimiter *FPSLimiter
	warn       *logging.Limiter
	lastTime   time.Time
}

// NewApp performs startup in order: models, terrain, lights, camera and
// crosshair, skybox, input bindings. Any error is fatal.
func NewApp(window *glfw.Window, cfg *config.Settings) (*App, error) {
	a := &App{
		window:     window,
		settings:   cfg,
		dispatcher: input.NewDispatcher(),
		keys:       input.NewKeyState(),
		cursor:     windowCursor{window: window},
		fpsLimiter: NewFPSLimiter(cfg.Window.FPSLimit),
		warn:       logging.NewLimiter(warnInterval),
	}

	st, err := stage.Build(assets.NewLoader(cfg.Assets.Dir), cfg)
	if err != nil {
		return nil, err
	}
	a.stage = st

	a.controller = camera.NewController(camera.Pose{Position: mgl32.Vec3(cfg.Camera.StartPosition)}, camera.Params{
		MoveSpeed:         cfg.Camera.MoveSpeed,
		SwingFactor:       cfg.Camera.SwingFactor,
		Movement:          cfg.Camera.EnableMovement,
		NormalizeDiagonal: cfg.Camera.NormalizeDiagonal,
	})
	a.capture = input.NewMouseCapture(a.cursor, a.controller)

	if err := a.setupRenderer(); err != nil {
		return nil, err
	}

	a.bindInput()
	SetupInputHandlers(a)

	a.logCursorError(a.capture.Start(cfg.Camera.CaptureOnStart))

	slog.Info("startup complete",
		"blocks", st.Stamped,
		"captured", a.capture.Captured(),
		"movement", cfg.Camera.EnableMovement)
	return a, nil
}

func (a *App) setupRenderer() error {
	fbWidth, fbHeight := a.window.GetFramebufferSize()
	cam := graphics.NewCamera(fbWidth, fbHeight, a.settings.Camera.FOV, a.settings.Camera.Near, a.settings.Camera.Far)

	sv := sceneview.NewSceneView()
	a.overlay = overlay.NewOverlay(a.settings.Debug.Overlay, fbWidth, fbHeight, func() bool {
		return a.capture.Captured()
	})

	r, err := renderer.NewRenderer(cam,
		sv,
		crosshair.NewCrosshair(a.stage.Crosshair, crosshair.DefaultScale),
		a.overlay,
	)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	sv.Preload(a.stage.Models()...)
	a.renderer = r
	return nil
}

func (a *App) bindInput() {
	input.BindDefaults(a.dispatcher, a.keys, a.capture, a.overlay.Toggle, a.logCursorError)
}

func (a *App) logCursorError(err error) {
	if errors.Is(err, input.ErrCursorModeRejected) {
		a.warn.Warn("cursor-mode", "cursor mode not applied", "error", err)
	} else if err != nil {
		slog.Error("cursor mode", "error", err)
	}
}

// Run ticks until the window is asked to close.
func (a *App) Run() {
	a.lastTime = time.Now()
	for !a.window.ShouldClose() {
		a.tick()
	}
	slog.Info("window closed")
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() {
		defer profiling.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()

	pose := a.update(dt)
	a.renderer.Render(a.stage.Scene, pose, dt)

	func() {
		defer profiling.Track("glfw.SwapBuffers")()
		a.window.SwapBuffers()
	}()

	if d := time.Since(start); d > slowFrame {
		a.warn.Warn("slow-frame", "slow frame", "duration", d, "top", profiling.LogValue(profiling.Top(5)))
	}

	a.fpsLimiter.Wait()
}

// update runs the camera controller on a snapshot of the held controls.
func (a *App) update(dt float64) camera.Pose {
	defer profiling.Track("game.update")()
	return a.controller.Update(float32(dt), a.keys.Clone(), a.cursor.CursorPos())
}

// Dispose frees GL resources. The context must still be current.
func (a *App) Dispose() {
	if a.renderer != nil {
		a.renderer.Dispose()
	}
}
