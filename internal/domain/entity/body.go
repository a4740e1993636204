package entity

import "math"

// PositionScale is the internal position scale factor.
// 1 pixel = 100 internal units. This provides 0.01 pixel precision.
const PositionScale = 100

// Direction is the way an actor is facing
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vector returns the unit step for the direction
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 1
	}
}

// Body represents the physical body of an actor.
// Position is stored at 100x scale for sub-pixel precision without floats.
// Velocity is stored as float in 100x scale units per second.
type Body struct {
	X, Y   int     // 100x scaled position (divide by PositionScale for pixels)
	VX, VY float64 // 100x scaled velocity (units per second)
	Facing Direction
	Hitbox Hitbox
}

// ToPixel converts a scaled coordinate to pixels, rounding down
func ToPixel(units int) int {
	return floorDiv(units, PositionScale)
}

// PixelX returns the pixel X position
func (b *Body) PixelX() int {
	return ToPixel(b.X)
}

// PixelY returns the pixel Y position
func (b *Body) PixelY() int {
	return ToPixel(b.Y)
}

// SetPixelPos sets the position from pixel coordinates (converts to 100x scale)
func (b *Body) SetPixelPos(x, y int) {
	b.X = x * PositionScale
	b.Y = y * PositionScale
}

// ApplyVelocity returns the scaled units to move this frame
func (b *Body) ApplyVelocity(dt float64) (dx, dy int) {
	return int(b.VX * dt), int(b.VY * dt)
}

// IsMoving reports whether the body has any velocity
func (b *Body) IsMoving() bool {
	return b.VX != 0 || b.VY != 0
}

// Rect returns the hitbox in world pixel coordinates
func (b *Body) Rect() (x, y, w, h int) {
	return b.Hitbox.WorldRect(b.PixelX(), b.PixelY())
}

// Center returns the hitbox center in pixels
func (b *Body) Center() (float64, float64) {
	x, y, w, h := b.Rect()
	return float64(x) + float64(w)/2, float64(y) + float64(h)/2
}

// DistanceTo returns the distance in pixels between hitbox centers
func (b *Body) DistanceTo(other *Body) float64 {
	ax, ay := b.Center()
	bx, by := other.Center()
	return math.Hypot(bx-ax, by-ay)
}

// Overlaps reports whether the two hitboxes intersect
func (b *Body) Overlaps(other *Body) bool {
	x1, y1, w1, h1 := b.Rect()
	x2, y2, w2, h2 := other.Rect()
	return RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2)
}

// FaceToward turns the body toward a velocity, preferring the dominant axis
func (b *Body) FaceToward(vx, vy float64) {
	if vx == 0 && vy == 0 {
		return
	}
	if math.Abs(vx) >= math.Abs(vy) {
		if vx > 0 {
			b.Facing = DirRight
		} else {
			b.Facing = DirLeft
		}
		return
	}
	if vy > 0 {
		b.Facing = DirDown
	} else {
		b.Facing = DirUp
	}
}

// Hitbox is a rectangle relative to the body's top-left pixel
type Hitbox struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// WorldRect returns the hitbox rect in world coordinates
func (h Hitbox) WorldRect(bodyX, bodyY int) (x, y, w, ht int) {
	return bodyX + h.OffsetX, bodyY + h.OffsetY, h.Width, h.Height
}

// RectsOverlap reports whether two rectangles intersect
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 int) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}
