package entity

// WolfStats are the tunables of the companion
type WolfStats struct {
	WalkSpeed      float64 // pixels per second
	RunSpeed       float64 // pixels per second
	FollowDistance float64 // stays put while closer than this
	RunDistance    float64 // sprints when farther than this
	BiteDamage     int
	BiteCooldown   float64
}

// Wolf follows the knight and bites skeletons it touches
type Wolf struct {
	Body
	Anim  Animation
	Stats WolfStats

	BiteTimer float64
}

// NewWolf creates a wolf at pixel coordinates x, y
func NewWolf(x, y int, hitbox Hitbox, stats WolfStats) *Wolf {
	w := &Wolf{
		Body: Body{
			Facing: DirDown,
			Hitbox: hitbox,
		},
		Stats: stats,
	}
	w.SetPixelPos(x, y)
	return w
}

// CanBite returns true when the bite cooldown has elapsed
func (w *Wolf) CanBite() bool {
	return w.BiteTimer <= 0
}

// Bite starts the bite cooldown
func (w *Wolf) Bite() {
	w.BiteTimer = w.Stats.BiteCooldown
}

// UpdateTimers counts down the bite cooldown
func (w *Wolf) UpdateTimers(dt float64) {
	if w.BiteTimer > 0 {
		w.BiteTimer -= dt
	}
}

// SelectAnimation picks the animation from the distance to the knight and
// whether the wolf overlaps a live skeleton.
func (w *Wolf) SelectAnimation(distToKnight float64, overlapsEnemy bool) AnimState {
	switch {
	case overlapsEnemy && w.CanBite():
		return AnimAttack
	case distToKnight > w.Stats.RunDistance:
		return AnimRun
	case distToKnight > w.Stats.FollowDistance:
		return AnimWalk
	default:
		return AnimIdle
	}
}

// SpeedFor returns the movement speed for the selected animation
func (w *Wolf) SpeedFor(state AnimState) float64 {
	switch state {
	case AnimRun:
		return w.Stats.RunSpeed
	case AnimWalk:
		return w.Stats.WalkSpeed
	default:
		return 0
	}
}
