package system

import (
	"math"

	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

// animate applies the selected state to anim and advances it.
// A started attack plays to its last frame before another state takes over.
func animate(anim *entity.Animation, selected entity.AnimState, sprite config.SpriteConfig, dt float64) {
	if anim.State == entity.AnimAttack && selected != entity.AnimAttack && selected != entity.AnimDead {
		frames, _ := sprite.Animation(entity.AnimAttack.String())
		if !anim.Finished(frames) {
			selected = entity.AnimAttack
		}
	}

	anim.Set(selected)
	frames, fps := sprite.Animation(selected.String())
	anim.Update(dt, frames, fps)
}

// steerToward sets the body's velocity toward a target pixel at speed (pixels/s)
func steerToward(b *entity.Body, tx, ty, speed float64) {
	cx, cy := b.Center()
	dx, dy := tx-cx, ty-cy
	dist := math.Hypot(dx, dy)
	if dist < 1 || speed <= 0 {
		b.VX, b.VY = 0, 0
		return
	}

	scale := speed * entity.PositionScale / dist
	b.VX = dx * scale
	b.VY = dy * scale
	b.FaceToward(b.VX, b.VY)
}
