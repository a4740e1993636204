package entity

// KnightStats are the tunables of the player character
type KnightStats struct {
	MaxHealth      int
	MoveSpeed      float64 // pixels per second
	AttackDamage   int
	AttackReach    int     // pixels in front of the hitbox
	AttackDuration float64 // seconds the sword hurts
	AttackCooldown float64 // seconds between swings
	Iframes        float64 // seconds of invincibility after a hit
}

// Knight is the player-controlled actor
type Knight struct {
	Body
	Anim  Animation
	Stats KnightStats

	Health int
	Kills  int

	// Timers
	AttackTimer   float64
	CooldownTimer float64
	HurtTimer     float64

	hitThisSwing map[EntityID]bool
}

// NewKnight creates a knight at pixel coordinates x, y
func NewKnight(x, y int, hitbox Hitbox, stats KnightStats) *Knight {
	k := &Knight{
		Body: Body{
			Facing: DirDown,
			Hitbox: hitbox,
		},
		Stats:        stats,
		Health:       stats.MaxHealth,
		hitThisSwing: make(map[EntityID]bool),
	}
	k.SetPixelPos(x, y)
	return k
}

// IsAlive returns true while the knight has health left
func (k *Knight) IsAlive() bool {
	return k.Health > 0
}

// IsAttacking returns true while the sword swing is active
func (k *Knight) IsAttacking() bool {
	return k.AttackTimer > 0
}

// IsInvincible returns true during the iframes after taking a hit
func (k *Knight) IsInvincible() bool {
	return k.HurtTimer > 0
}

// StartAttack begins a swing if the cooldown allows it
func (k *Knight) StartAttack() bool {
	if !k.IsAlive() || k.IsAttacking() || k.CooldownTimer > 0 {
		return false
	}
	k.AttackTimer = k.Stats.AttackDuration
	k.CooldownTimer = k.Stats.AttackCooldown
	clear(k.hitThisSwing)
	return true
}

// MarkHit records that id was hit by the current swing.
// Returns false if it was already hit.
func (k *Knight) MarkHit(id EntityID) bool {
	if k.hitThisSwing[id] {
		return false
	}
	k.hitThisSwing[id] = true
	return true
}

// TakeDamage applies damage unless invincible. Returns true if the knight died.
func (k *Knight) TakeDamage(damage int) bool {
	if k.IsInvincible() || !k.IsAlive() {
		return false
	}
	k.Health -= damage
	if k.Health < 0 {
		k.Health = 0
	}
	k.HurtTimer = k.Stats.Iframes
	return k.Health == 0
}

// UpdateTimers counts down the attack, cooldown and hurt timers
func (k *Knight) UpdateTimers(dt float64) {
	if k.AttackTimer > 0 {
		k.AttackTimer -= dt
	}
	if k.CooldownTimer > 0 {
		k.CooldownTimer -= dt
	}
	if k.HurtTimer > 0 {
		k.HurtTimer -= dt
	}
}

// SelectAnimation picks the animation for the current state.
// Priority: dead, hurt, attack, walk, idle.
func (k *Knight) SelectAnimation() AnimState {
	switch {
	case !k.IsAlive():
		return AnimDead
	case k.HurtTimer > k.Stats.Iframes/2:
		// only the first half of the iframes plays the flinch
		return AnimHurt
	case k.IsAttacking():
		return AnimAttack
	case k.IsMoving():
		return AnimWalk
	default:
		return AnimIdle
	}
}

// AttackBox returns the sword rect in world pixels, placed against the
// hitbox edge the knight is facing.
func (k *Knight) AttackBox() (x, y, w, h int) {
	bx, by, bw, bh := k.Rect()
	reach := k.Stats.AttackReach

	switch k.Facing {
	case DirUp:
		return bx, by - reach, bw, reach
	case DirLeft:
		return bx - reach, by, reach, bh
	case DirRight:
		return bx + bw, by, reach, bh
	default:
		return bx, by + bh, bw, reach
	}
}
