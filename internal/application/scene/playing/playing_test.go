package playing

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/knight/internal/application/scene"
	"github.com/younwookim/knight/internal/application/scene/scenetest"
	"github.com/younwookim/knight/internal/application/state"
	"github.com/younwookim/knight/internal/application/system"
	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

// createTestSettings creates a minimal config for testing
func createTestSettings() *config.Settings {
	return &config.Settings{
		Display: config.DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		Dialog: config.DialogBoxConfig{
			X:             8,
			Y:             176,
			Width:         304,
			Height:        56,
			Padding:       4,
			GlyphWidth:    6,
			GlyphHeight:   16,
			BlinkInterval: 0.4,
		},
		Knight: config.KnightConfig{
			Sprite: config.SpriteConfig{Width: 16, Height: 16},
			Hitbox: config.Rect{OffsetX: 3, OffsetY: 4, Width: 10, Height: 12},
			Stats: config.KnightStatsConfig{
				MaxHealth:      100,
				MoveSpeed:      80,
				AttackDamage:   20,
				AttackReach:    10,
				AttackDuration: 0.2,
				AttackCooldown: 0.4,
				Iframes:        1.0,
			},
		},
		Wolf: config.WolfConfig{
			Sprite: config.SpriteConfig{Width: 16, Height: 16},
			Hitbox: config.Rect{OffsetX: 2, OffsetY: 2, Width: 12, Height: 10},
			Stats: config.WolfStatsConfig{
				WalkSpeed:      60,
				RunSpeed:       120,
				FollowDistance: 24,
				RunDistance:    80,
				BiteDamage:     8,
				BiteCooldown:   0.8,
			},
			SpawnOffset: config.PositionConfig{X: -20},
		},
		Skeletons: map[string]config.SkeletonConfig{
			"skeleton": {
				Sprite: config.SpriteConfig{Width: 16, Height: 16},
				Hitbox: config.Rect{OffsetX: 3, OffsetY: 2, Width: 10, Height: 14},
				Stats: config.SkeletonStatsConfig{
					MaxHealth:      40,
					ContactDamage:  10,
					MoveSpeed:      40,
					DetectRange:    96,
					AttackCooldown: 1.0,
				},
			},
		},
	}
}

// createTestStageConfig creates a stage config with one far away skeleton
func createTestStageConfig() *config.StageConfig {
	return &config.StageConfig{
		ID:          "test",
		Name:        "Test Field",
		Size:        config.StageSizeConfig{Width: 320, Height: 240, TileSize: 16},
		PlayerSpawn: config.PositionConfig{X: 48, Y: 48},
		Enemies: []config.EnemySpawnConfig{
			{Type: "skeleton", X: 260, Y: 180},
		},
	}
}

// createTestStage creates a 20x15 open field with walls on the edges
func createTestStage() *entity.Stage {
	stage := &entity.Stage{
		Width:    20,
		Height:   15,
		TileSize: 16,
		SpawnX:   48,
		SpawnY:   48,
		Tiles:    make([][]entity.Tile, 15),
	}
	for y := 0; y < 15; y++ {
		stage.Tiles[y] = make([]entity.Tile, 20)
		for x := 0; x < 20; x++ {
			if x == 0 || x == 19 || y == 0 || y == 14 {
				stage.Tiles[y][x] = entity.Tile{Type: entity.TileWall, Solid: true}
			}
		}
	}
	return stage
}

func createTestPlaying(t *testing.T, stageCfg *config.StageConfig, intro string) (*Playing, *scenetest.Input, *scenetest.Builder) {
	t.Helper()

	input := &scenetest.Input{}
	builder := &scenetest.Builder{}
	p, err := New(createTestSettings(), stageCfg, createTestStage(), intro, input, builder, zerolog.Nop())
	require.NoError(t, err)
	p.OnEnter()
	return p, input, builder
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, _, _ := createTestPlaying(t, createTestStageConfig(), "")

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 48, p.Knight().PixelX())
	assert.Equal(t, 100, p.Knight().Health)
	assert.Equal(t, 28, p.Wolf().PixelX())
	require.Len(t, p.Skeletons(), 1)
	assert.Equal(t, 260, p.Skeletons()[0].PixelX())
}

func TestNewPlaying_UnknownEnemy(t *testing.T) {
	stageCfg := createTestStageConfig()
	stageCfg.Enemies = append(stageCfg.Enemies, config.EnemySpawnConfig{Type: "dragon"})

	_, err := New(createTestSettings(), stageCfg, createTestStage(), "", &scenetest.Input{}, &scenetest.Builder{}, zerolog.Nop())
	assert.ErrorContains(t, err, `unknown skeleton type "dragon"`)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p, _, _ := createTestPlaying(t, createTestStageConfig(), "")

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
}

func TestPlaying_MovesKnight(t *testing.T) {
	p, input, _ := createTestPlaying(t, createTestStageConfig(), "")

	input.Push(system.InputState{Right: true})
	_, err := p.Update(0.25)
	require.NoError(t, err)

	assert.Equal(t, 68, p.Knight().PixelX())
	assert.Equal(t, entity.DirRight, p.Knight().Facing)
}

func TestPlaying_IntroFreezesWorld(t *testing.T) {
	p, input, _ := createTestPlaying(t, createTestStageConfig(), "Clear the meadow of skeletons.")

	require.True(t, p.Dialog().Visible())

	t.Run("movement ignored while the dialog is open", func(t *testing.T) {
		input.Push(system.InputState{Right: true})
		_, err := p.Update(0.25)
		require.NoError(t, err)
		assert.Equal(t, 48, p.Knight().PixelX())
	})

	t.Run("confirm dismisses the last page", func(t *testing.T) {
		input.Push(system.InputState{Confirm: true})
		_, err := p.Update(1.0 / 60)
		require.NoError(t, err)
		assert.False(t, p.Dialog().Visible())
	})

	t.Run("world resumes", func(t *testing.T) {
		input.Push(system.InputState{Right: true})
		_, err := p.Update(0.25)
		require.NoError(t, err)
		assert.Equal(t, 68, p.Knight().PixelX())
	})
}

func TestPlaying_Pause(t *testing.T) {
	p, input, _ := createTestPlaying(t, createTestStageConfig(), "")

	input.Push(system.InputState{Pause: true})
	_, err := p.Update(1.0 / 60)
	require.NoError(t, err)
	require.True(t, p.Paused())

	input.Push(system.InputState{Right: true})
	_, err = p.Update(0.25)
	require.NoError(t, err)
	assert.Equal(t, 48, p.Knight().PixelX())

	input.Push(system.InputState{Pause: true})
	_, err = p.Update(1.0 / 60)
	require.NoError(t, err)
	assert.False(t, p.Paused())
}

// runUntilTransition updates the scene with idle input until it hands over
func runUntilTransition(t *testing.T, p *Playing, dt float64, maxFrames int) scene.Scene {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		next, err := p.Update(dt)
		require.NoError(t, err)
		if next != nil {
			return next
		}
	}
	t.Fatalf("no transition within %d frames", maxFrames)
	return nil
}

func TestPlaying_Victory(t *testing.T) {
	stageCfg := createTestStageConfig()
	stageCfg.Enemies = nil
	p, _, builder := createTestPlaying(t, stageCfg, "")

	next := runUntilTransition(t, p, 0.5, 10)

	assert.Equal(t, state.StateEnd, next.State())
	require.Len(t, builder.Outcomes, 1)
	assert.True(t, builder.Outcomes[0].Victory)
	assert.Equal(t, 0.5, builder.Outcomes[0].Elapsed)
}

func TestPlaying_Defeat(t *testing.T) {
	p, _, builder := createTestPlaying(t, createTestStageConfig(), "")
	p.Knight().Health = 0

	next := runUntilTransition(t, p, 0.5, 10)

	assert.Equal(t, state.StateEnd, next.State())
	require.Len(t, builder.Outcomes, 1)
	assert.False(t, builder.Outcomes[0].Victory)
}

func TestPlaying_KeepsRunningDuringEndDelay(t *testing.T) {
	stageCfg := createTestStageConfig()
	stageCfg.Enemies = nil
	p, _, builder := createTestPlaying(t, stageCfg, "")

	next, err := p.Update(0.5)
	require.NoError(t, err)
	assert.Nil(t, next)

	next, err = p.Update(0.5)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Empty(t, builder.Outcomes)
}

func TestPlaying_OnExit(t *testing.T) {
	p, _, _ := createTestPlaying(t, createTestStageConfig(), "Hello.")

	assert.NotPanics(t, func() {
		p.OnExit()
	})
	assert.False(t, p.Dialog().Visible())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-5, 0, 10))
	assert.Equal(t, 10, clamp(15, 0, 10))
	assert.Equal(t, 7, clamp(7, 0, 10))
	assert.Equal(t, 0, clamp(5, 0, -1), "stage smaller than the screen")
}
