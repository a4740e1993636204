package system

import (
	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

// CompanionSystem drives the wolf that follows the knight
type CompanionSystem struct {
	config    *config.WolfConfig
	collision *CollisionSystem

	// Event callbacks
	OnBite func(target *entity.Skeleton, killed bool)
}

// NewCompanionSystem creates a new companion system
func NewCompanionSystem(cfg *config.WolfConfig, collision *CollisionSystem) *CompanionSystem {
	return &CompanionSystem{
		config:    cfg,
		collision: collision,
	}
}

// SpawnWolf creates the wolf next to the knight's spawn point
func (s *CompanionSystem) SpawnWolf(knightX, knightY int) *entity.Wolf {
	stats := s.config.Stats
	return entity.NewWolf(
		knightX+s.config.SpawnOffset.X,
		knightY+s.config.SpawnOffset.Y,
		hitboxFromConfig(s.config.Hitbox),
		entity.WolfStats{
			WalkSpeed:      stats.WalkSpeed,
			RunSpeed:       stats.RunSpeed,
			FollowDistance: stats.FollowDistance,
			RunDistance:    stats.RunDistance,
			BiteDamage:     stats.BiteDamage,
			BiteCooldown:   stats.BiteCooldown,
		},
	)
}

// Update moves the wolf toward the knight and bites skeletons it touches
func (s *CompanionSystem) Update(w *entity.Wolf, k *entity.Knight, skeletons []*entity.Skeleton, dt float64) {
	w.UpdateTimers(dt)

	var target *entity.Skeleton
	for _, sk := range skeletons {
		if sk.IsAlive() && w.Overlaps(&sk.Body) {
			target = sk
			break
		}
	}

	dist := w.DistanceTo(&k.Body)
	state := w.SelectAnimation(dist, target != nil)

	switch state {
	case entity.AnimAttack:
		w.VX, w.VY = 0, 0
		w.Bite()
		killed := target.TakeDamage(w.Stats.BiteDamage)
		if killed {
			k.Kills++
		}
		if s.OnBite != nil {
			s.OnBite(target, killed)
		}
	default:
		kx, ky := k.Center()
		steerToward(&w.Body, kx, ky, w.SpeedFor(state))
		s.collision.Step(&w.Body, dt)
	}

	animate(&w.Anim, state, s.config.Sprite, dt)
}

func hitboxFromConfig(r config.Rect) entity.Hitbox {
	return entity.Hitbox{
		OffsetX: r.OffsetX,
		OffsetY: r.OffsetY,
		Width:   r.Width,
		Height:  r.Height,
	}
}
