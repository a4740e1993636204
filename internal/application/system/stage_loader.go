package system

import (
	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity.
// Characters without a mapping, and rows shorter than the map width, become floor.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		x := 0
		for _, char := range row {
			if x >= tileWidth {
				break
			}
			if mapping, ok := cfg.TileMapping[string(char)]; ok {
				tiles[y][x] = entity.Tile{
					Type:  tileType(mapping.Type),
					Solid: mapping.Solid,
				}
			}
			x++
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}

func tileType(name string) entity.TileType {
	switch name {
	case "wall":
		return entity.TileWall
	case "water":
		return entity.TileWater
	default:
		return entity.TileFloor
	}
}
