package assets

import (
	"fmt"

	"blockworld/internal/world"
)

// BlockSet holds one shared model per block type for the lifetime of the process.
type BlockSet struct {
	models map[world.BlockType]*Model
}

// LoadBlockSet loads every block in world.BlockTypes from paths. A missing
// path or file is an error: the demo cannot start without its blocks.
func LoadBlockSet(l *Loader, paths map[world.BlockType]string) (*BlockSet, error) {
	bs := &BlockSet{models: make(map[world.BlockType]*Model, len(paths))}
	for _, b := range world.BlockTypes {
		path, ok := paths[b]
		if !ok || path == "" {
			return nil, fmt.Errorf("no model path for %s block", b)
		}
		m, err := l.LoadModel(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s block: %w", b, err)
		}
		bs.models[b] = m
	}
	return bs, nil
}

// Model returns the shared model for b, or nil if it was not loaded.
func (bs *BlockSet) Model(b world.BlockType) *Model {
	return bs.models[b]
}

// Models returns the loaded models in block order.
func (bs *BlockSet) Models() []*Model {
	out := make([]*Model, 0, len(bs.models))
	for _, b := range world.BlockTypes {
		if m, ok := bs.models[b]; ok {
			out = append(out, m)
		}
	}
	return out
}
