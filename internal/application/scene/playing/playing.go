// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/younwookim/knight/internal/application/scene"
	"github.com/younwookim/knight/internal/application/state"
	"github.com/younwookim/knight/internal/application/system"
	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

// endDelay is how long the stage keeps running after it is won or lost,
// so the last blow and the death animation are visible.
const endDelay = 1.5

// Colors for rendering
var (
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorWater     = color.RGBA{40, 90, 170, 255}
	colorFloor     = color.RGBA{46, 64, 46, 255}
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorKnight    = color.RGBA{100, 200, 100, 255}
	colorSword     = color.RGBA{230, 230, 255, 200}
	colorWolf      = color.RGBA{150, 150, 160, 255}
	colorSkeleton  = color.RGBA{220, 210, 180, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorHitFlash  = color.RGBA{255, 255, 255, 255}
	colorPauseMask = color.RGBA{0, 0, 0, 128}
)

// Playing is the main gameplay scene
type Playing struct {
	settings *config.Settings
	stageCfg *config.StageConfig
	stage    *entity.Stage
	input    system.InputReader
	builder  scene.Builder
	log      zerolog.Logger

	knight *entity.Knight
	wolf   *entity.Wolf
	dialog *entity.Dialog

	inputSystem     *system.InputSystem
	collisionSystem *system.CollisionSystem
	companionSystem *system.CompanionSystem
	combatSystem    *system.CombatSystem

	introText string
	screenW   int
	screenH   int

	paused   bool
	elapsed  float64
	outcome  *scene.Outcome
	endTimer float64
}

// New creates a new Playing scene.
// introText is shown in the dialog box when the scene is entered; the
// world is frozen while it is visible. An empty intro starts immediately.
func New(settings *config.Settings, stageCfg *config.StageConfig, stage *entity.Stage, introText string,
	input system.InputReader, builder scene.Builder, log zerolog.Logger) (*Playing, error) {
	dialog, err := entity.NewDialog(scene.DialogConfig(settings.Dialog))
	if err != nil {
		return nil, fmt.Errorf("failed to create stage dialog: %w", err)
	}

	collisionSystem := system.NewCollisionSystem(stage)
	companionSystem := system.NewCompanionSystem(&settings.Wolf, collisionSystem)
	combatSystem := system.NewCombatSystem(settings, collisionSystem)

	knightCfg := settings.Knight
	knight := entity.NewKnight(stage.SpawnX, stage.SpawnY, entity.Hitbox{
		OffsetX: knightCfg.Hitbox.OffsetX,
		OffsetY: knightCfg.Hitbox.OffsetY,
		Width:   knightCfg.Hitbox.Width,
		Height:  knightCfg.Hitbox.Height,
	}, entity.KnightStats{
		MaxHealth:      knightCfg.Stats.MaxHealth,
		MoveSpeed:      knightCfg.Stats.MoveSpeed,
		AttackDamage:   knightCfg.Stats.AttackDamage,
		AttackReach:    knightCfg.Stats.AttackReach,
		AttackDuration: knightCfg.Stats.AttackDuration,
		AttackCooldown: knightCfg.Stats.AttackCooldown,
		Iframes:        knightCfg.Stats.Iframes,
	})

	// Spawn enemies from stage config
	for i, spawn := range stageCfg.Enemies {
		if _, err := combatSystem.SpawnSkeleton(entity.EntityID(i+1), spawn.Type, spawn.X, spawn.Y); err != nil {
			return nil, fmt.Errorf("failed to spawn enemy %d in stage %s: %w", i, stageCfg.ID, err)
		}
	}

	p := &Playing{
		settings:        settings,
		stageCfg:        stageCfg,
		stage:           stage,
		input:           input,
		builder:         builder,
		log:             log,
		knight:          knight,
		wolf:            companionSystem.SpawnWolf(stage.SpawnX, stage.SpawnY),
		dialog:          dialog,
		inputSystem:     system.NewInputSystem(&settings.Knight),
		collisionSystem: collisionSystem,
		companionSystem: companionSystem,
		combatSystem:    combatSystem,
		introText:       introText,
		screenW:         settings.Display.ScreenWidth,
		screenH:         settings.Display.ScreenHeight,
	}

	// Set up combat callbacks
	combatSystem.OnKnightHit = func(damage int, died bool) {
		p.log.Debug().Int("damage", damage).Int("health", p.knight.Health).Msg("knight hit")
		if died {
			p.log.Info().Msg("knight fell")
		}
	}
	combatSystem.OnSkeletonKilled = func(s *entity.Skeleton) {
		p.log.Debug().Uint32("id", uint32(s.ID)).Int("remaining", p.combatSystem.AliveCount()).Msg("skeleton slain by sword")
	}
	companionSystem.OnBite = func(s *entity.Skeleton, killed bool) {
		p.log.Debug().Uint32("id", uint32(s.ID)).Bool("killed", killed).Msg("wolf bite")
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.input.GetInput()

	// Dialog freezes the world
	if p.dialog.Visible() {
		p.dialog.Update(dt)
		if in.Confirm {
			p.dialog.Advance()
		}
		return nil, nil
	}

	if in.Pause {
		p.paused = !p.paused
		p.log.Debug().Bool("paused", p.paused).Msg("pause toggled")
		return nil, nil
	}
	if p.paused {
		return nil, nil
	}

	p.updateWorld(in, dt)

	if p.outcome == nil {
		p.checkOutcome()
		return nil, nil
	}

	p.endTimer -= dt
	if p.endTimer <= 0 {
		return p.builder.End(*p.outcome)
	}
	return nil, nil
}

func (p *Playing) updateWorld(in system.InputState, dt float64) {
	p.elapsed += dt

	p.inputSystem.UpdateKnight(p.knight, in, dt)
	p.collisionSystem.Step(&p.knight.Body, dt)

	p.companionSystem.Update(p.wolf, p.knight, p.combatSystem.Skeletons(), dt)
	p.combatSystem.Update(p.knight, dt)
}

func (p *Playing) checkOutcome() {
	switch {
	case !p.knight.IsAlive():
		p.outcome = &scene.Outcome{Victory: false, Kills: p.knight.Kills, Elapsed: p.elapsed}
	case p.combatSystem.AliveCount() == 0:
		p.outcome = &scene.Outcome{Victory: true, Kills: p.knight.Kills, Elapsed: p.elapsed}
	default:
		return
	}

	p.endTimer = endDelay
	p.log.Info().
		Str("stage", p.stageCfg.ID).
		Bool("victory", p.outcome.Victory).
		Int("kills", p.outcome.Kills).
		Msg("stage decided")
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()

	p.drawTiles(screen, camX, camY)
	p.drawSkeletons(screen, camX, camY)
	p.drawWolf(screen, camX, camY)
	p.drawKnight(screen, camX, camY)
	p.drawUI(screen)

	if p.paused {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPauseMask)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
	}

	scene.DrawDialog(screen, p.dialog)
}

// camera returns the top-left world pixel of the view, centred on the
// knight and clamped to the stage bounds
func (p *Playing) camera() (int, int) {
	cx, cy := p.knight.Center()
	camX := int(cx) - p.screenW/2
	camY := int(cy) - p.screenH/2

	maxCamX := p.stage.PixelWidth() - p.screenW
	maxCamY := p.stage.PixelHeight() - p.screenH
	camX = clamp(camX, 0, maxCamX)
	camY = clamp(camY, 0, maxCamY)
	return camX, camY
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	ts := p.stage.TileSize
	startTileX := camX / ts
	startTileY := camY / ts
	endTileX := (camX+p.screenW)/ts + 1
	endTileY := (camY+p.screenH)/ts + 1

	for ty := startTileY; ty <= endTileY && ty < p.stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.stage.Width; tx++ {
			var c color.Color
			switch p.stage.GetTile(tx, ty).Type {
			case entity.TileWall:
				c = colorWall
			case entity.TileWater:
				c = colorWater
			default:
				c = colorFloor
			}

			x := float64(tx*ts - camX)
			y := float64(ty*ts - camY)
			ebitenutil.DrawRect(screen, x, y, float64(ts), float64(ts), c)
		}
	}
}

func (p *Playing) drawKnight(screen *ebiten.Image, camX, camY int) {
	sprite := p.settings.Knight.Sprite
	x := float64(p.knight.PixelX() - camX)
	y := float64(p.knight.PixelY() - camY)

	// Flash when invincible
	c := color.Color(colorKnight)
	if p.knight.IsInvincible() && int(p.knight.HurtTimer*10)%2 == 0 {
		c = colorHitFlash
	}
	ebitenutil.DrawRect(screen, x, y, float64(sprite.Width), float64(sprite.Height), c)

	if p.knight.IsAttacking() {
		ax, ay, aw, ah := p.knight.AttackBox()
		ebitenutil.DrawRect(screen, float64(ax-camX), float64(ay-camY), float64(aw), float64(ah), colorSword)
	}
}

func (p *Playing) drawWolf(screen *ebiten.Image, camX, camY int) {
	sprite := p.settings.Wolf.Sprite
	x := float64(p.wolf.PixelX() - camX)
	y := float64(p.wolf.PixelY() - camY)
	ebitenutil.DrawRect(screen, x, y, float64(sprite.Width), float64(sprite.Height), colorWolf)
}

func (p *Playing) drawSkeletons(screen *ebiten.Image, camX, camY int) {
	for _, s := range p.combatSystem.Skeletons() {
		if !s.Active {
			continue
		}

		sprite := p.settings.Skeletons[s.Kind].Sprite
		x := float64(s.PixelX() - camX)
		y := float64(s.PixelY() - camY)

		// Flash on hit
		c := color.Color(colorSkeleton)
		if s.HitTimer > 0 {
			c = colorHitFlash
		}
		ebitenutil.DrawRect(screen, x, y, float64(sprite.Width), float64(sprite.Height), c)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX := 10.0
	barY := 10.0
	barW := 100.0
	barH := 8.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	healthRatio := float64(p.knight.Health) / float64(p.knight.Stats.MaxHealth)
	if healthRatio < 0 {
		healthRatio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	status := fmt.Sprintf("Kills: %d  Skeletons: %d", p.knight.Kills, p.combatSystem.AliveCount())
	ebitenutil.DebugPrintAt(screen, status, 120, 6)
	ebitenutil.DebugPrintAt(screen, "WASD/Arrows: Move | Space: Attack | ESC: Pause", 10, p.screenH-18)
}

// OnEnter shows the intro dialog, if any
func (p *Playing) OnEnter() {
	p.log.Info().Str("stage", p.stageCfg.ID).Int("skeletons", p.combatSystem.AliveCount()).Msg("stage started")
	if p.introText == "" {
		return
	}
	// The layout was validated in New, so this cannot fail
	_ = p.dialog.Initialize(p.introText)
	p.dialog.Show()
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.dialog.Hide()
}

// State implements scene.Scene
func (p *Playing) State() state.GameState {
	return state.StatePlaying
}

// Knight returns the player character
func (p *Playing) Knight() *entity.Knight {
	return p.knight
}

// Wolf returns the companion
func (p *Playing) Wolf() *entity.Wolf {
	return p.wolf
}

// Skeletons returns every spawned skeleton
func (p *Playing) Skeletons() []*entity.Skeleton {
	return p.combatSystem.Skeletons()
}

// Dialog returns the stage dialog
func (p *Playing) Dialog() *entity.Dialog {
	return p.dialog
}

// Paused reports whether the world is paused
func (p *Playing) Paused() bool {
	return p.paused
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
