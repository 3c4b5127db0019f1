package main

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"blockworld/internal/config"
	"blockworld/internal/game"
	"blockworld/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/uuid"
	"github.com/xlab/closer"
)

const shutdownTimeout = 3 * time.Second

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	settings, err := config.Load(config.DefaultPath)
	missing := errors.Is(err, config.ErrNoSettingsFile)
	if err != nil && !missing {
		slog.Error("startup failed", "error", err)
		closer.Exit(1)
	}

	logger, err := logging.Setup(settings.Log.Level)
	if err != nil {
		slog.Error("startup failed", "error", err)
		closer.Exit(1)
	}
	// Tag every record so logs from separate runs can be told apart.
	slog.SetDefault(logger.With("run", uuid.NewString()))
	if missing {
		slog.Warn("settings file not found, using defaults", "path", config.DefaultPath)
	}

	if err := run(settings); err != nil {
		slog.Error("startup failed", "error", err)
		closer.Exit(1)
	}
	closer.Close()
}

func run(settings *config.Settings) error {
	// SIGINT/SIGTERM close the window and wait here until GL is torn down.
	shutdown := game.NewShutdown(glfw.PostEmptyEvent, shutdownTimeout)
	closer.Bind(shutdown.Request)
	defer shutdown.Finished()

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(settings.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	shutdown.Attach(window)
	defer shutdown.Detach()

	app, err := game.NewApp(window, settings)
	if err != nil {
		return err
	}
	defer app.Dispose()

	app.Run()
	return nil
}
