package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

// InputState holds the current input state
type InputState struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Attack  bool // pressed this frame
	Confirm bool // pressed this frame
	Pause   bool // pressed this frame
}

// InputReader supplies one InputState per frame
type InputReader interface {
	GetInput() InputState
}

// InputSystem handles player input
type InputSystem struct {
	config *config.KnightConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.KnightConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Attack:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyZ),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// UpdateKnight updates the knight's velocity, attack and animation from input.
// Movement itself is left to the collision system.
func (s *InputSystem) UpdateKnight(k *entity.Knight, input InputState, dt float64) {
	k.UpdateTimers(dt)

	switch {
	case !k.IsAlive() || k.IsAttacking():
		// Dead knights and swinging knights stand still
		k.VX, k.VY = 0, 0
	default:
		s.handleMovement(k, input)
		if input.Attack && k.StartAttack() {
			k.VX, k.VY = 0, 0
		}
	}

	animate(&k.Anim, k.SelectAnimation(), s.config.Sprite, dt)
}

// handleMovement sets velocity from the direction keys.
// Diagonals are normalised so they are not faster than straight lines.
func (s *InputSystem) handleMovement(k *entity.Knight, input InputState) {
	dx, dy := 0.0, 0.0
	if input.Left {
		dx--
	}
	if input.Right {
		dx++
	}
	if input.Up {
		dy--
	}
	if input.Down {
		dy++
	}

	if dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}

	speed := k.Stats.MoveSpeed * entity.PositionScale
	k.VX = dx * speed
	k.VY = dy * speed
	k.FaceToward(k.VX, k.VY)
}
