package world

// BlockType identifies which shared block model a cell is instanced from.
type BlockType uint8

const (
	BlockTypeGrass BlockType = iota
	BlockTypeDirt
	BlockTypeStone
	BlockTypeSand
)

// BlockTypes lists every block the demo loads, in load order.
var BlockTypes = []BlockType{BlockTypeGrass, BlockTypeDirt, BlockTypeStone, BlockTypeSand}

func (b BlockType) String() string {
	switch b {
	case BlockTypeGrass:
		return "grass"
	case BlockTypeDirt:
		return "dirt"
	case BlockTypeStone:
		return "stone"
	case BlockTypeSand:
		return "sand"
	}
	return "unknown"
}
