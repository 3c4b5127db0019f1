package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	goerrors "github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file read at startup, relative to the working directory.
const DefaultPath = "settings.yaml"

// ErrNoSettingsFile is returned alongside the defaults when the settings file is absent.
var ErrNoSettingsFile = errors.New("settings file not found")

// Settings is the root of the settings file.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Camera  CameraSettings  `yaml:"camera"`
	Assets  AssetSettings   `yaml:"assets"`
	Terrain TerrainSettings `yaml:"terrain"`
	Log     LogSettings     `yaml:"log"`
	Debug   DebugSettings   `yaml:"debug"`
}

type WindowSettings struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	// FPSLimit caps the frame rate when vsync is off; 0 disables the cap.
	FPSLimit int `yaml:"fps_limit"`
}

type CameraSettings struct {
	FOV           float32    `yaml:"fov"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	StartPosition [3]float32 `yaml:"start_position"`
	MoveSpeed     float32    `yaml:"move_speed"`
	SwingFactor   float32    `yaml:"swing_factor"`
	// CaptureOnStart grabs the cursor before the first frame.
	CaptureOnStart    bool `yaml:"capture_on_start"`
	EnableMovement    bool `yaml:"enable_movement"`
	NormalizeDiagonal bool `yaml:"normalize_diagonal"`
}

type AssetSettings struct {
	// Dir is prepended to every relative asset path. Empty means the working directory.
	Dir       string `yaml:"dir"`
	Grass     string `yaml:"grass"`
	Dirt      string `yaml:"dirt"`
	Stone     string `yaml:"stone"`
	Sand      string `yaml:"sand"`
	Skybox    string `yaml:"skybox"`
	Crosshair string `yaml:"crosshair"`
}

// Terrain generators accepted by TerrainSettings.Generator.
const (
	GeneratorPlatform = "platform"
	GeneratorHills    = "hills"
)

type TerrainSettings struct {
	// Generator is "platform" (solid slab) or "hills" (noise heightmap).
	Generator string  `yaml:"generator"`
	Seed      int64   `yaml:"seed"`
	Width     int     `yaml:"width"`
	Depth     int     `yaml:"depth"`
	Height    int     `yaml:"height"`
	CellSize  float32 `yaml:"cell_size"`
}

type LogSettings struct {
	Level string `yaml:"level"`
}

type DebugSettings struct {
	// Overlay shows the frame/pose readout from startup. F3 toggles it.
	Overlay bool `yaml:"overlay"`
}

// Default returns the settings the demo ships with.
func Default() *Settings {
	return &Settings{
		Window: WindowSettings{
			Title:    "blockworld",
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 0,
		},
		Camera: CameraSettings{
			FOV:            60,
			Near:           0.1,
			Far:            2000,
			StartPosition:  [3]float32{0, 0, 3},
			MoveSpeed:      10,
			SwingFactor:    10,
			CaptureOnStart: true,
			EnableMovement: true,
		},
		Assets: AssetSettings{
			Grass:     "grass-block.glb",
			Dirt:      "dirt-block.glb",
			Stone:     "stone-block.glb",
			Sand:      "sand-block.glb",
			Skybox:    "skybox/skybox.glb",
			Crosshair: "crosshairs.png",
		},
		Terrain: TerrainSettings{
			Generator: GeneratorPlatform,
			Width:     20,
			Depth:     20,
			Height:    10,
			CellSize:  2,
		},
		Log: LogSettings{Level: "info"},
	}
}

// Load reads the YAML settings file at path on top of Default.
// A missing file yields the defaults together with an error wrapping ErrNoSettingsFile.
func Load(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("%w: %s", ErrNoSettingsFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings %q: %w", path, err)
	}

	if err := s.decode(data); err != nil {
		return nil, fmt.Errorf("parsing settings %q: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating settings %q: %w", path, err)
	}

	return s, nil
}

func (s *Settings) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports every invalid value at once.
func (s *Settings) Validate() error {
	el := goerrors.NewErrorList()

	el.Add(s.Window.Validate())
	el.Add(s.Camera.Validate())
	el.Add(s.Assets.Validate())
	el.Add(s.Terrain.Validate())
	el.Add(s.Log.Validate())

	return el.Err()
}

func (w *WindowSettings) Validate() error {
	el := goerrors.NewErrorList()

	if w.Width <= 0 || w.Height <= 0 {
		el.Add(fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height))
	}
	if w.FPSLimit < 0 {
		el.Add(fmt.Errorf("fps_limit must not be negative"))
	}

	return el.Err()
}

func (c *CameraSettings) Validate() error {
	el := goerrors.NewErrorList()

	if c.FOV <= 0 || c.FOV >= 180 {
		el.Add(fmt.Errorf("fov must be in (0, 180), got %g", c.FOV))
	}
	if c.Near <= 0 {
		el.Add(fmt.Errorf("near must be positive"))
	}
	if c.Far <= c.Near {
		el.Add(fmt.Errorf("far (%g) must be greater than near (%g)", c.Far, c.Near))
	}
	if c.MoveSpeed < 0 {
		el.Add(fmt.Errorf("move_speed must not be negative"))
	}
	if c.SwingFactor < 0 {
		el.Add(fmt.Errorf("swing_factor must not be negative"))
	}

	return el.Err()
}

func (a *AssetSettings) Validate() error {
	el := goerrors.NewErrorList()

	for name, path := range map[string]string{
		"grass":     a.Grass,
		"dirt":      a.Dirt,
		"stone":     a.Stone,
		"sand":      a.Sand,
		"skybox":    a.Skybox,
		"crosshair": a.Crosshair,
	} {
		if path == "" {
			el.Add(fmt.Errorf("assets.%s is required", name))
		}
	}

	return el.Err()
}

func (t *TerrainSettings) Validate() error {
	el := goerrors.NewErrorList()

	if t.Width < 0 || t.Depth < 0 || t.Height < 0 {
		el.Add(fmt.Errorf("terrain extents must not be negative"))
	}
	if t.CellSize <= 0 {
		el.Add(fmt.Errorf("cell_size must be positive"))
	}
	switch t.Generator {
	case GeneratorPlatform, GeneratorHills:
	default:
		el.Add(fmt.Errorf("terrain generator %q is not one of %s, %s", t.Generator, GeneratorPlatform, GeneratorHills))
	}

	return el.Err()
}

func (l *LogSettings) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("log level %q is not one of debug, info, warn, error", l.Level)
}
