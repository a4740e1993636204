package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitbox_WorldRect(t *testing.T) {
	hb := Hitbox{OffsetX: 2, OffsetY: 4, Width: 12, Height: 8}

	x, y, w, h := hb.WorldRect(100, 200)

	assert.Equal(t, 102, x)
	assert.Equal(t, 204, y)
	assert.Equal(t, 12, w)
	assert.Equal(t, 8, h)
}

func TestBody_ApplyVelocity(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy float64
		dt     float64
		wantDX int
		wantDY int
	}{
		{"positive velocity", 100, 50, 0.016, 1, 0},
		{"negative velocity", -100, -50, 0.016, -1, 0},
		{"zero velocity", 0, 0, 0.016, 0, 0},
		{"80 pixels per second at 60fps", 8000, -8000, 1.0 / 60.0, 133, -133},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{VX: tt.vx, VY: tt.vy}

			dx, dy := b.ApplyVelocity(tt.dt)

			assert.Equal(t, tt.wantDX, dx, "dx mismatch")
			assert.Equal(t, tt.wantDY, dy, "dy mismatch")
		})
	}
}

func TestBody_PixelPosition(t *testing.T) {
	tests := []struct {
		name       string
		x, y       int
		wantPixelX int
		wantPixelY int
	}{
		{"zero position", 0, 0, 0, 0},
		{"exact pixels", 1600, 3200, 16, 32},
		{"sub-pixel truncates", 1650, 3299, 16, 32},
		{"negative rounds down", -50, -150, -1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{X: tt.x, Y: tt.y}
			assert.Equal(t, tt.wantPixelX, b.PixelX())
			assert.Equal(t, tt.wantPixelY, b.PixelY())
		})
	}
}

func TestBody_SetPixelPos(t *testing.T) {
	b := &Body{}
	b.SetPixelPos(12, 34)

	assert.Equal(t, 1200, b.X)
	assert.Equal(t, 3400, b.Y)
}

func TestBody_DistanceAndOverlap(t *testing.T) {
	hb := Hitbox{Width: 10, Height: 10}
	a := &Body{Hitbox: hb}
	b := &Body{Hitbox: hb}
	a.SetPixelPos(0, 0)
	b.SetPixelPos(30, 40)

	assert.InDelta(t, 50.0, a.DistanceTo(b), 0.001)
	assert.False(t, a.Overlaps(b))

	b.SetPixelPos(9, 9)
	assert.True(t, a.Overlaps(b))

	// Touching edges do not overlap
	b.SetPixelPos(10, 0)
	assert.False(t, a.Overlaps(b))
}

func TestBody_FaceToward(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy float64
		start  Direction
		want   Direction
	}{
		{"right", 10, 0, DirDown, DirRight},
		{"left", -10, 3, DirDown, DirLeft},
		{"down", 1, 10, DirUp, DirDown},
		{"up", 0, -10, DirDown, DirUp},
		{"diagonal prefers horizontal", 5, 5, DirUp, DirRight},
		{"no velocity keeps facing", 0, 0, DirLeft, DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{Facing: tt.start}
			b.FaceToward(tt.vx, tt.vy)
			assert.Equal(t, tt.want, b.Facing)
		})
	}
}

func TestDirection(t *testing.T) {
	dx, dy := DirLeft.Vector()
	assert.Equal(t, -1, dx)
	assert.Equal(t, 0, dy)

	dx, dy = DirDown.Vector()
	assert.Equal(t, 0, dx)
	assert.Equal(t, 1, dy)

	assert.Equal(t, "up", DirUp.String())
	assert.Equal(t, "unknown", Direction(9).String())
}

func TestRectsOverlap(t *testing.T) {
	assert.True(t, RectsOverlap(0, 0, 10, 10, 5, 5, 10, 10))
	assert.False(t, RectsOverlap(0, 0, 10, 10, 10, 0, 10, 10))
	assert.False(t, RectsOverlap(0, 0, 10, 10, 0, 20, 10, 10))
}
