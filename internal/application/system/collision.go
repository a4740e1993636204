package system

import (
	"github.com/younwookim/knight/internal/domain/entity"
)

// maxPushOut is the largest distance (pixels) an overlapping body is pushed per axis
const maxPushOut = 8

// Contacts reports which sides of a body touched solid tiles during a move
type Contacts struct {
	Left, Right, Up, Down bool
}

// Any returns true if any side made contact
func (c Contacts) Any() bool {
	return c.Left || c.Right || c.Up || c.Down
}

// CollisionSystem resolves actor movement against the tile map
type CollisionSystem struct {
	stage *entity.Stage
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(stage *entity.Stage) *CollisionSystem {
	return &CollisionSystem{stage: stage}
}

// Step moves the body by its velocity over dt
func (s *CollisionSystem) Step(b *entity.Body, dt float64) Contacts {
	dx, dy := b.ApplyVelocity(dt)
	return s.Move(b, dx, dy)
}

// Move moves the body by dx, dy scaled units, X axis first, stopping each
// axis at the first solid tile. The velocity component of a blocked axis is zeroed.
func (s *CollisionSystem) Move(b *entity.Body, dx, dy int) Contacts {
	var c Contacts

	// First, resolve any existing overlaps (push-out)
	s.resolveOverlap(b, &c)

	s.moveX(b, dx, &c)
	s.moveY(b, dy, &c)

	// Final overlap resolution after movement
	s.resolveOverlap(b, &c)

	return c
}

// moveX moves the body horizontally one scaled unit at a time; tiles are
// only checked when the pixel column changes.
func (s *CollisionSystem) moveX(b *entity.Body, dx int, c *Contacts) {
	step := sign(dx)
	for i := 0; i < abs(dx); i++ {
		nx := b.X + step
		px := entity.ToPixel(nx)
		if px != b.PixelX() && s.solidAt(b, px, b.PixelY()) {
			b.VX = 0
			if step > 0 {
				c.Right = true
			} else {
				c.Left = true
			}
			return
		}
		b.X = nx
	}
}

// moveY moves the body vertically, see moveX
func (s *CollisionSystem) moveY(b *entity.Body, dy int, c *Contacts) {
	step := sign(dy)
	for i := 0; i < abs(dy); i++ {
		ny := b.Y + step
		py := entity.ToPixel(ny)
		if py != b.PixelY() && s.solidAt(b, b.PixelX(), py) {
			b.VY = 0
			if step > 0 {
				c.Down = true
			} else {
				c.Up = true
			}
			return
		}
		b.Y = ny
	}
}

// solidAt checks the body's hitbox as if its top-left pixel were at px, py
func (s *CollisionSystem) solidAt(b *entity.Body, px, py int) bool {
	x, y, w, h := b.Hitbox.WorldRect(px, py)
	return s.IsSolidRect(x, y, w, h)
}

// Blocked returns true if the body currently overlaps a solid tile
func (s *CollisionSystem) Blocked(b *entity.Body) bool {
	return s.solidAt(b, b.PixelX(), b.PixelY())
}

// resolveOverlap pushes the body out of any solid tiles it overlaps,
// choosing the shortest of the four directions. A body that cannot be
// freed within maxPushOut is returned to the stage spawn.
// Returns true if the body ends up free.
func (s *CollisionSystem) resolveOverlap(b *entity.Body, c *Contacts) bool {
	px, py := b.PixelX(), b.PixelY()
	if !s.solidAt(b, px, py) {
		return true
	}

	type pushOption struct {
		dx, dy   int
		distance int
	}
	dirs := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	var best *pushOption
	for _, d := range dirs {
		for i := 1; i <= maxPushOut; i++ {
			if best != nil && i >= best.distance {
				break
			}
			if !s.solidAt(b, px+d[0]*i, py+d[1]*i) {
				best = &pushOption{d[0] * i, d[1] * i, i}
				break
			}
		}
	}

	if best == nil {
		b.SetPixelPos(s.stage.SpawnX, s.stage.SpawnY)
		b.VX, b.VY = 0, 0
		return false
	}

	b.X += best.dx * entity.PositionScale
	b.Y += best.dy * entity.PositionScale

	// Pushed right means the wall is on the left, and so on
	if best.dx > 0 {
		c.Left = true
		b.VX = 0
	} else if best.dx < 0 {
		c.Right = true
		b.VX = 0
	}
	if best.dy > 0 {
		c.Up = true
		b.VY = 0
	} else if best.dy < 0 {
		c.Down = true
		b.VY = 0
	}
	return true
}

// IsSolidRect checks if any tile in the rect (pixels) is solid.
// Iterates all tiles the rectangle overlaps to handle any hitbox size.
func (s *CollisionSystem) IsSolidRect(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}

	tileSize := s.stage.TileSize
	if tileSize <= 0 {
		tileSize = 16 // fallback
	}

	// Calculate tile range that the rect overlaps
	startTX := floorDiv(x, tileSize)
	endTX := floorDiv(x+w-1, tileSize)
	startTY := floorDiv(y, tileSize)
	endTY := floorDiv(y+h-1, tileSize)

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if s.stage.GetTile(tx, ty).Solid {
				return true
			}
		}
	}

	return false
}

// Helper functions
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
