package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/knight/internal/domain/entity"
	"github.com/younwookim/knight/internal/infrastructure/config"
)

// Colors for the dialog box
var (
	colorDialogBG     = color.RGBA{16, 16, 32, 230}
	colorDialogBorder = color.RGBA{220, 220, 240, 255}
	colorIndicator    = color.RGBA{255, 215, 0, 255}
)

// DialogConfig converts the dialog section of settings.json to the entity config
func DialogConfig(c config.DialogBoxConfig) entity.DialogConfig {
	return entity.DialogConfig{
		X:             c.X,
		Y:             c.Y,
		Width:         c.Width,
		Height:        c.Height,
		Padding:       c.Padding,
		GlyphWidth:    c.GlyphWidth,
		GlyphHeight:   c.GlyphHeight,
		BlinkInterval: c.BlinkInterval,
	}
}

// DrawDialog renders a visible dialog: box, current page and the
// continue indicator in the bottom right corner.
func DrawDialog(screen *ebiten.Image, d *entity.Dialog) {
	if !d.Visible() {
		return
	}

	x, y, w, h := d.Bounds()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorDialogBG, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorDialogBorder, false)

	tx, ty := d.TextOrigin()
	for i, line := range d.CurrentLines() {
		ebitenutil.DebugPrintAt(screen, line, tx, ty+i*d.LineHeight())
	}

	if d.IndicatorOn() {
		// Small triangle-ish marker built from two rects
		ix := float32(x + w - 10)
		iy := float32(y + h - 8)
		vector.DrawFilledRect(screen, ix, iy, 6, 2, colorIndicator, false)
		vector.DrawFilledRect(screen, ix+2, iy+2, 2, 2, colorIndicator, false)
	}
}
