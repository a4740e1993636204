package system

import (
	"fmt"
	"math"

	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

// CombatSystem handles skeleton AI and the fighting between skeletons and the knight
type CombatSystem struct {
	settings  *config.Settings
	collision *CollisionSystem
	skeletons []*entity.Skeleton

	// Event callbacks
	OnKnightHit      func(damage int, died bool)
	OnSkeletonKilled func(s *entity.Skeleton)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(settings *config.Settings, collision *CollisionSystem) *CombatSystem {
	return &CombatSystem{
		settings:  settings,
		collision: collision,
		skeletons: make([]*entity.Skeleton, 0, 16),
	}
}

// SpawnSkeleton spawns a skeleton of the configured kind at pixel coordinates x, y
func (s *CombatSystem) SpawnSkeleton(id entity.EntityID, kind string, x, y int) (*entity.Skeleton, error) {
	cfg, ok := s.settings.Skeletons[kind]
	if !ok {
		return nil, fmt.Errorf("unknown skeleton type %q", kind)
	}

	sk := entity.NewSkeleton(id, kind, x, y, hitboxFromConfig(cfg.Hitbox), entity.SkeletonStats{
		MaxHealth:      cfg.Stats.MaxHealth,
		ContactDamage:  cfg.Stats.ContactDamage,
		MoveSpeed:      cfg.Stats.MoveSpeed,
		DetectRange:    cfg.Stats.DetectRange,
		AttackCooldown: cfg.Stats.AttackCooldown,
	})

	s.skeletons = append(s.skeletons, sk)
	return sk, nil
}

// Skeletons returns all spawned skeletons, including inactive ones
func (s *CombatSystem) Skeletons() []*entity.Skeleton {
	return s.skeletons
}

// AliveCount returns the number of skeletons still fighting
func (s *CombatSystem) AliveCount() int {
	n := 0
	for _, sk := range s.skeletons {
		if sk.IsAlive() {
			n++
		}
	}
	return n
}

// Update updates all skeletons and resolves hits against the knight
func (s *CombatSystem) Update(k *entity.Knight, dt float64) {
	s.updateSkeletons(k, dt)
	s.checkSwordHits(k)
}

func (s *CombatSystem) updateSkeletons(k *entity.Knight, dt float64) {
	for _, sk := range s.skeletons {
		if !sk.Active {
			continue
		}

		sk.UpdateTimers(dt)
		sprite := s.settings.Skeletons[sk.Kind].Sprite

		// Dead skeletons play out their animation, then leave the stage
		if sk.Health <= 0 {
			animate(&sk.Anim, entity.AnimDead, sprite, dt)
			frames, _ := sprite.Animation(entity.AnimDead.String())
			if sk.Anim.Finished(frames) {
				sk.Active = false
			}
			continue
		}

		// A dead knight is no longer chased
		dist := math.Inf(1)
		touching := false
		if k.IsAlive() {
			dist = sk.DistanceTo(&k.Body)
			touching = sk.Overlaps(&k.Body)
		}

		state := sk.SelectAnimation(dist, touching)
		switch state {
		case entity.AnimAttack:
			sk.VX, sk.VY = 0, 0
			sk.AttackTimer = sk.Stats.AttackCooldown
			s.damageKnight(k, sk.Stats.ContactDamage)
		case entity.AnimWalk:
			s.updateChaseAI(sk, k, dt)
		default:
			sk.VX, sk.VY = 0, 0
		}

		animate(&sk.Anim, state, sprite, dt)
	}
}

// updateChaseAI walks the skeleton toward the knight. A skeleton already
// touching the knight waits for its cooldown instead of pushing into it.
func (s *CombatSystem) updateChaseAI(sk *entity.Skeleton, k *entity.Knight, dt float64) {
	if sk.Overlaps(&k.Body) {
		sk.VX, sk.VY = 0, 0
		return
	}

	kx, ky := k.Center()
	steerToward(&sk.Body, kx, ky, sk.Stats.MoveSpeed)
	s.collision.Step(&sk.Body, dt)
}

func (s *CombatSystem) damageKnight(k *entity.Knight, damage int) {
	if k.IsInvincible() {
		return
	}
	died := k.TakeDamage(damage)
	if s.OnKnightHit != nil {
		s.OnKnightHit(damage, died)
	}
}

// checkSwordHits damages every skeleton inside the sword box once per swing
func (s *CombatSystem) checkSwordHits(k *entity.Knight) {
	if !k.IsAttacking() {
		return
	}

	ax, ay, aw, ah := k.AttackBox()
	for _, sk := range s.skeletons {
		if !sk.IsAlive() {
			continue
		}

		sx, sy, sw, sh := sk.Rect()
		if !entity.RectsOverlap(ax, ay, aw, ah, sx, sy, sw, sh) {
			continue
		}
		if !k.MarkHit(sk.ID) {
			continue
		}

		if sk.TakeDamage(k.Stats.AttackDamage) {
			k.Kills++
			if s.OnSkeletonKilled != nil {
				s.OnSkeletonKilled(sk)
			}
		}
	}
}
