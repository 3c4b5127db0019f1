// Package stage builds the demo scene: block models, the terrain stamp,
// lights, the skybox and the crosshair image.
package stage

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"blockworld/internal/assets"
	"blockworld/internal/config"
	"blockworld/internal/scene"
	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// BlockNodeName is the name given to every stamped block node.
	BlockNodeName = "new-block-placeholder"
	SkyboxScale   = 500
	// CrosshairMaxSize bounds the crosshair texture edge in pixels.
	CrosshairMaxSize = 256
)

var (
	SunHpr       = mgl32.Vec3{30, -60, 0}
	SunColor     = mgl32.Vec4{1, 1, 1, 1}
	AmbientColor = mgl32.Vec4{0.3, 0.3, 0.3, 1}
)

var ErrMissingBlockModel = errors.New("no model for block type")

// Stage is the fully built scene plus the assets the renderer needs.
type Stage struct {
	Scene     *scene.Scene
	Blocks    *assets.BlockSet
	SkyModel  *assets.Model
	Sky       *scene.Node
	Sun       *scene.Node
	Ambient   *scene.Node
	Crosshair *image.RGBA
	Stamped   int
}

// Models returns every model the scene draws, for GPU preloading.
func (s *Stage) Models() []*assets.Model {
	return append(s.Blocks.Models(), s.SkyModel)
}

// BlockPaths maps block types to their configured model paths.
func BlockPaths(a config.AssetSettings) map[world.BlockType]string {
	return map[world.BlockType]string{
		world.BlockTypeGrass: a.Grass,
		world.BlockTypeDirt:  a.Dirt,
		world.BlockTypeStone: a.Stone,
		world.BlockTypeSand:  a.Sand,
	}
}

// Extents converts terrain settings to generator extents.
func Extents(t config.TerrainSettings) world.Extents {
	return world.Extents{Width: t.Width, Depth: t.Depth, Height: t.Height, CellSize: t.CellSize}
}

// Generator picks the terrain generator named in the settings.
func Generator(t config.TerrainSettings) world.TerrainGenerator {
	if t.Generator == config.GeneratorHills {
		return world.NewHillsGenerator(Extents(t), t.Seed)
	}
	return world.NewPlatformGenerator(Extents(t))
}

// Build runs startup in order: models, terrain, lights, crosshair, skybox.
// Any missing asset aborts the build.
func Build(l *assets.Loader, cfg *config.Settings) (*Stage, error) {
	blocks, err := assets.LoadBlockSet(l, BlockPaths(cfg.Assets))
	if err != nil {
		return nil, err
	}
	sky, err := l.LoadModel(cfg.Assets.Skybox)
	if err != nil {
		return nil, fmt.Errorf("loading skybox: %w", err)
	}

	st := &Stage{Scene: scene.New(), Blocks: blocks, SkyModel: sky}

	if st.Stamped, err = StampTerrain(st.Scene, blocks, Generator(cfg.Terrain)); err != nil {
		return nil, err
	}
	slog.Info("terrain stamped", "generator", cfg.Terrain.Generator, "blocks", st.Stamped)

	if st.Sun, st.Ambient, err = SetupLights(st.Scene); err != nil {
		return nil, err
	}

	if st.Crosshair, err = assets.LoadImage(l.Resolve(cfg.Assets.Crosshair), CrosshairMaxSize); err != nil {
		return nil, fmt.Errorf("loading crosshair: %w", err)
	}

	st.Sky = SetupSkybox(st.Scene, sky)
	return st, nil
}

// StampTerrain attaches one node per placement under the root, each
// instanced to the shared model for its block type.
func StampTerrain(sc *scene.Scene, blocks *assets.BlockSet, gen world.TerrainGenerator) (int, error) {
	n := 0
	for _, p := range gen.Generate() {
		m := blocks.Model(p.Block)
		if m == nil {
			return n, fmt.Errorf("%w: %s", ErrMissingBlockModel, p.Block)
		}
		node := sc.Root.AttachNewNode(BlockNodeName)
		node.SetPos(p.Position)
		node.InstanceTo(m)
		n++
	}
	return n, nil
}

// SetupLights adds the directional "main light" and the "ambient light" and
// turns both on for the whole scene.
func SetupLights(sc *scene.Scene) (sun, ambient *scene.Node, err error) {
	sun = sc.Root.AttachNewNode("main light")
	sun.Light = scene.NewDirectionalLight(SunColor)
	sun.SetHpr(SunHpr.X(), SunHpr.Y(), SunHpr.Z())

	ambient = sc.Root.AttachNewNode("ambient light")
	ambient.Light = scene.NewAmbientLight(AmbientColor)

	if err := sc.SetLight(sun); err != nil {
		return nil, nil, err
	}
	if err := sc.SetLight(ambient); err != nil {
		return nil, nil, err
	}
	return sun, ambient, nil
}

// SetupSkybox attaches the sky model scaled up, drawn first, unlit and
// without depth writes so everything else draws over it.
func SetupSkybox(sc *scene.Scene, m *assets.Model) *scene.Node {
	sky := sc.Root.AttachNewNode("skybox")
	sky.InstanceTo(m)
	sky.SetScale(SkyboxScale)
	sky.Bin = scene.BinBackground
	sky.DepthWrite = false
	sky.LightOff = true
	return sky
}
