package entity

// SkeletonStats are the tunables of a skeleton type
type SkeletonStats struct {
	MaxHealth      int
	ContactDamage  int
	MoveSpeed      float64 // pixels per second
	DetectRange    float64 // pixels
	AttackCooldown float64
}

// hitStun is how long a skeleton freezes after taking damage
const hitStun = 0.2

// Skeleton is an enemy that chases the knight once it is close enough
type Skeleton struct {
	Body
	ID     EntityID
	Kind   string
	Anim   Animation
	Stats  SkeletonStats
	Active bool

	Health      int
	AttackTimer float64
	HitTimer    float64
}

// NewSkeleton creates a skeleton at pixel coordinates x, y
func NewSkeleton(id EntityID, kind string, x, y int, hitbox Hitbox, stats SkeletonStats) *Skeleton {
	s := &Skeleton{
		Body: Body{
			Facing: DirDown,
			Hitbox: hitbox,
		},
		ID:     id,
		Kind:   kind,
		Stats:  stats,
		Active: true,
		Health: stats.MaxHealth,
	}
	s.SetPixelPos(x, y)
	return s
}

// TakeDamage applies damage and hit stun. Returns true if the skeleton died.
func (s *Skeleton) TakeDamage(damage int) bool {
	if !s.IsAlive() {
		return false
	}
	s.Health -= damage
	s.HitTimer = hitStun
	if s.Health <= 0 {
		s.Health = 0
		s.VX, s.VY = 0, 0
		return true
	}
	return false
}

// IsAlive returns true if the skeleton is still fighting
func (s *Skeleton) IsAlive() bool {
	return s.Health > 0 && s.Active
}

// CanAttack returns true when the attack cooldown has elapsed
func (s *Skeleton) CanAttack() bool {
	return s.AttackTimer <= 0
}

// UpdateTimers counts down the attack and hit timers
func (s *Skeleton) UpdateTimers(dt float64) {
	if s.AttackTimer > 0 {
		s.AttackTimer -= dt
	}
	if s.HitTimer > 0 {
		s.HitTimer -= dt
	}
}

// SelectAnimation picks the animation from the distance to the knight and
// whether the skeleton currently touches it.
func (s *Skeleton) SelectAnimation(distToKnight float64, overlapsKnight bool) AnimState {
	switch {
	case s.Health <= 0:
		return AnimDead
	case s.HitTimer > 0:
		return AnimHurt
	case overlapsKnight && s.CanAttack():
		return AnimAttack
	case distToKnight <= s.Stats.DetectRange:
		return AnimWalk
	default:
		return AnimIdle
	}
}
