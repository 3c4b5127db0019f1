package world

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	hillsAlpha   = 2.0
	hillsBeta    = 2.0
	hillsOctaves = int32(3)
	// hillsScale converts cell coordinates to noise space.
	hillsScale = 0.08
	// dirtDepth is how many layers of dirt sit under the surface block.
	dirtDepth = 3
)

// HillsGenerator varies column height with Perlin noise. Surface blocks are
// grass, or sand in the lowest columns; dirt sits below and stone at the bottom.
type HillsGenerator struct {
	extents Extents
	noise   *perlin.Perlin
}

func NewHillsGenerator(e Extents, seed int64) *HillsGenerator {
	return &HillsGenerator{
		extents: e,
		noise:   perlin.NewPerlin(hillsAlpha, hillsBeta, hillsOctaves, seed),
	}
}

func (g *HillsGenerator) Extents() Extents {
	return g.extents
}

// ColumnHeight is the number of layers in column (x, y), between 1 and Height.
func (g *HillsGenerator) ColumnHeight(x, y int) int {
	h := g.extents.Height
	if h <= 1 {
		return h
	}
	n := g.noise.Noise2D(float64(x)*hillsScale, float64(y)*hillsScale)
	t := mgl64.Clamp((n+1)/2, 0, 1)
	return 1 + int(t*float64(h-1)+0.5)
}

// sandLevel is the column height at or below which the surface is sand.
func (g *HillsGenerator) sandLevel() int {
	return max(1, g.extents.Height/4)
}

// Generate walks z, then y, then x like PlatformGenerator and skips cells
// above each column's surface.
func (g *HillsGenerator) Generate() []Placement {
	e := g.extents
	if e.Cells() == 0 {
		return nil
	}

	heights := make([]int, e.Width*e.Depth)
	for y := range e.Depth {
		for x := range e.Width {
			heights[y*e.Width+x] = g.ColumnHeight(x, y)
		}
	}

	var out []Placement
	for z := range e.Height {
		for y := range e.Depth {
			for x := range e.Width {
				h := heights[y*e.Width+x]
				top := e.Height - h
				if z < top {
					continue
				}
				out = append(out, Placement{
					Cell:     [3]int{x, y, z},
					Position: CellPosition(e, x, y, z),
					Block:    g.blockAt(z-top, h),
				})
			}
		}
	}
	return out
}

func (g *HillsGenerator) blockAt(depth, columnHeight int) BlockType {
	switch {
	case depth == 0 && columnHeight <= g.sandLevel():
		return BlockTypeSand
	case depth == 0:
		return BlockTypeGrass
	case depth <= dirtDepth:
		return BlockTypeDirt
	}
	return BlockTypeStone
}
