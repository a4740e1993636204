package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

func createStageConfig(rows ...string) *config.StageConfig {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0]) * 16
	}
	return &config.StageConfig{
		Size: config.StageSizeConfig{
			Width:    width,
			Height:   len(rows) * 16,
			TileSize: 16,
		},
		PlayerSpawn: config.PositionConfig{X: 32, Y: 32},
		Layers:      config.LayersConfig{Collision: rows},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true},
			"~": {Type: "water", Solid: true},
			".": {Type: "floor", Solid: false},
			"X": {Type: "lava", Solid: false},
		},
	}
}

func TestLoadStage(t *testing.T) {
	t.Run("loads basic stage", func(t *testing.T) {
		stage := LoadStage(createStageConfig(
			"###",
			"#.#",
			"###",
		))

		require.NotNil(t, stage)
		assert.Equal(t, 3, stage.Width)
		assert.Equal(t, 3, stage.Height)
		assert.Equal(t, 16, stage.TileSize)
		assert.Equal(t, 32, stage.SpawnX)
		assert.Equal(t, 32, stage.SpawnY)
	})

	t.Run("maps tile types", func(t *testing.T) {
		stage := LoadStage(createStageConfig("#~.X?"))

		tests := []struct {
			x         int
			wantType  entity.TileType
			wantSolid bool
		}{
			{0, entity.TileWall, true},
			{1, entity.TileWater, true},
			{2, entity.TileFloor, false},
			{3, entity.TileFloor, false}, // unknown type
			{4, entity.TileFloor, false}, // unmapped character
		}

		for _, tt := range tests {
			tile := stage.GetTile(tt.x, 0)
			assert.Equal(t, tt.wantType, tile.Type, "tile %d", tt.x)
			assert.Equal(t, tt.wantSolid, tile.Solid, "tile %d", tt.x)
		}
	})

	t.Run("handles row longer than width", func(t *testing.T) {
		cfg := createStageConfig("####")
		cfg.Size.Width = 32

		stage := LoadStage(cfg)

		assert.Equal(t, 2, stage.Width)
		assert.Equal(t, 1, stage.Height)
		assert.Len(t, stage.Tiles[0], 2)
	})

	t.Run("short row is padded with floor", func(t *testing.T) {
		cfg := createStageConfig("###", "#")

		stage := LoadStage(cfg)

		assert.True(t, stage.GetTile(0, 1).Solid)
		assert.False(t, stage.GetTile(2, 1).Solid)
	})

	t.Run("loads the shipped meadow", func(t *testing.T) {
		cfg, err := config.NewLoader("../../../cmd/game/configs").LoadStage("meadow")
		require.NoError(t, err)

		stage := LoadStage(cfg)

		assert.Equal(t, 30, stage.Width)
		assert.Equal(t, 20, stage.Height)
		assert.Equal(t, entity.TileWater, stage.GetTile(14, 1).Type)
		assert.False(t, stage.IsSolidAt(stage.SpawnX, stage.SpawnY))
	})
}
