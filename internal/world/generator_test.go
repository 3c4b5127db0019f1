package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlatformGeneratorImplementsInterface(t *testing.T) {
	var _ TerrainGenerator = NewPlatformGenerator(DefaultExtents())
}

func TestDefaultPlatformCount(t *testing.T) {
	placements := NewPlatformGenerator(DefaultExtents()).Generate()
	if len(placements) != 4000 {
		t.Fatalf("Expected 4000 placements, got %d", len(placements))
	}
}

func TestDefaultPlatformPositions(t *testing.T) {
	seen := make(map[[3]int]bool)
	for _, p := range NewPlatformGenerator(DefaultExtents()).Generate() {
		x, y, z := p.Cell[0], p.Cell[1], p.Cell[2]
		want := mgl32.Vec3{float32(x*2 - 20), float32(y*2 - 20), float32(-z * 2)}
		if p.Position != want {
			t.Errorf("Cell %v: expected position %v, got %v", p.Cell, want, p.Position)
		}
		if seen[p.Cell] {
			t.Errorf("Cell %v placed twice", p.Cell)
		}
		seen[p.Cell] = true
	}
	if len(seen) != 4000 {
		t.Errorf("Expected 4000 distinct cells, got %d", len(seen))
	}
}

func TestDefaultPlatformBlocks(t *testing.T) {
	grass := 0
	for _, p := range NewPlatformGenerator(DefaultExtents()).Generate() {
		switch {
		case p.Cell[2] == 0 && p.Block != BlockTypeGrass:
			t.Errorf("Expected grass at %v, got %v", p.Cell, p.Block)
		case p.Cell[2] > 0 && p.Block != BlockTypeDirt:
			t.Errorf("Expected dirt at %v, got %v", p.Cell, p.Block)
		}
		if p.Block == BlockTypeGrass {
			grass++
		}
	}
	if grass != 400 {
		t.Errorf("Expected 400 grass blocks, got %d", grass)
	}
}

func TestGenerateOrder(t *testing.T) {
	placements := NewPlatformGenerator(DefaultExtents()).Generate()

	if placements[0].Cell != [3]int{0, 0, 0} {
		t.Errorf("Expected first cell {0,0,0}, got %v", placements[0].Cell)
	}
	if placements[1].Cell != [3]int{1, 0, 0} {
		t.Errorf("Expected x to vary fastest, got %v", placements[1].Cell)
	}
	if placements[400].Cell != [3]int{0, 0, 1} {
		t.Errorf("Expected layer 1 to start at index 400, got %v", placements[400].Cell)
	}
	if last := placements[len(placements)-1].Cell; last != [3]int{19, 19, 9} {
		t.Errorf("Expected last cell {19,19,9}, got %v", last)
	}
}

func TestEmptyExtents(t *testing.T) {
	for _, e := range []Extents{
		{Width: 0, Depth: 20, Height: 10, CellSize: 2},
		{Width: 20, Depth: 20, Height: 0, CellSize: 2},
		{Width: -1, Depth: 20, Height: 10, CellSize: 2},
	} {
		if n := len(NewPlatformGenerator(e).Generate()); n != 0 {
			t.Errorf("Expected no placements for %+v, got %d", e, n)
		}
	}
}

func TestCustomCellSize(t *testing.T) {
	e := Extents{Width: 4, Depth: 2, Height: 3, CellSize: 1}
	got := CellPosition(e, 3, 1, 2)
	want := mgl32.Vec3{1, 0, -2}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBlockTypeString(t *testing.T) {
	names := map[BlockType]string{
		BlockTypeGrass: "grass",
		BlockTypeDirt:  "dirt",
		BlockTypeStone: "stone",
		BlockTypeSand:  "sand",
		BlockType(99):  "unknown",
	}
	for b, want := range names {
		if b.String() != want {
			t.Errorf("Expected %q, got %q", want, b.String())
		}
	}
}
