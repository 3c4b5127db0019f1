package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Extents is the size of the block platform in cells plus the world size of one cell.
type Extents struct {
	Width    int
	Depth    int
	Height   int
	CellSize float32
}

// DefaultExtents is the 20x20x10 platform with 2-unit blocks.
func DefaultExtents() Extents {
	return Extents{Width: 20, Depth: 20, Height: 10, CellSize: 2}
}

// Cells returns the number of placements Generate produces.
func (e Extents) Cells() int {
	if e.Width <= 0 || e.Depth <= 0 || e.Height <= 0 {
		return 0
	}
	return e.Width * e.Depth * e.Height
}

// Placement is one block instance: grid cell, world position (Z up) and block.
type Placement struct {
	Cell     [3]int
	Position mgl32.Vec3
	Block    BlockType
}

// TerrainGenerator produces the static block layout stamped into the scene at startup.
type TerrainGenerator interface {
	Generate() []Placement
}

// PlatformGenerator lays out a solid box of blocks: grass on the top layer,
// dirt below. Layer z=0 is the surface and deeper layers go down.
type PlatformGenerator struct {
	extents Extents
}

func NewPlatformGenerator(e Extents) *PlatformGenerator {
	return &PlatformGenerator{extents: e}
}

func (g *PlatformGenerator) Extents() Extents {
	return g.extents
}

// Generate walks z, then y, then x and returns one placement per cell.
func (g *PlatformGenerator) Generate() []Placement {
	out := make([]Placement, 0, g.extents.Cells())
	g.ForEach(func(p Placement) {
		out = append(out, p)
	})
	return out
}

// ForEach calls fn for every cell in Generate order without allocating the full list.
func (g *PlatformGenerator) ForEach(fn func(Placement)) {
	e := g.extents
	if e.Cells() == 0 {
		return
	}
	for z := range e.Height {
		for y := range e.Depth {
			for x := range e.Width {
				fn(Placement{
					Cell:     [3]int{x, y, z},
					Position: CellPosition(e, x, y, z),
					Block:    BlockAt(z),
				})
			}
		}
	}
}

// CellPosition centres the platform on the origin in X/Y and stacks layers downwards.
// With the default extents this is (x*2-20, y*2-20, -z*2).
func CellPosition(e Extents, x, y, z int) mgl32.Vec3 {
	s := e.CellSize
	return mgl32.Vec3{
		float32(x)*s - float32(e.Width)*s/2,
		float32(y)*s - float32(e.Depth)*s/2,
		-float32(z) * s,
	}
}

// BlockAt picks the block for a layer: grass on the surface, dirt below.
func BlockAt(z int) BlockType {
	if z == 0 {
		return BlockTypeGrass
	}
	return BlockTypeDirt
}
