package game

import (
	"fmt"

	"github.com/Faultbox/midgard-locomotion/internal/config"
	"github.com/Faultbox/midgard-locomotion/internal/engine/spatial"
)

// BuildLevel creates the static level described by cfg.
func BuildLevel(cfg config.LevelConfig) (*spatial.Level, error) {
	level := spatial.NewLevel()

	if t := cfg.Terrain; t.Width > 0 && t.Depth > 0 {
		if t.Width < 2 || t.Depth < 2 || t.CellSize <= 0 {
			return nil, fmt.Errorf("terrain %dx%d with cell size %v is degenerate", t.Width, t.Depth, t.CellSize)
		}
		hf := spatial.NewNoiseHeightfield(t.OriginX, t.OriginZ, t.CellSize, t.Width, t.Depth, t.BaseHeight, t.Noise)
		level.SetTerrain(hf, spatial.LayerGround|spatial.LayerLevel)
	}

	for _, b := range cfg.Boxes {
		cat, err := category(b)
		if err != nil {
			return nil, err
		}
		level.AddBox(spatial.Box{
			Name:     b.Name,
			Bounds:   spatial.BoxAt(b.Center, b.Size.Scale(0.5)),
			Category: cat,
		})
	}

	for _, b := range cfg.Triggers {
		cat, err := category(b)
		if err != nil {
			return nil, err
		}
		level.AddTrigger(spatial.Trigger{
			Name:     b.Name,
			Bounds:   spatial.BoxAt(b.Center, b.Size.Scale(0.5)),
			Category: cat,
		})
	}

	return level, nil
}

func category(b config.BoxConfig) (spatial.Category, error) {
	cat := spatial.ParseCategory(b.Category)
	if cat == spatial.CategoryOther && b.Category != "other" && b.Category != "" {
		return cat, fmt.Errorf("box %q: unknown category %q", b.Name, b.Category)
	}
	return cat, nil
}
