package entity

import (
	"fmt"

	"github.com/younwookim/knight/internal/domain/pagination"
)

// DialogConfig holds the geometry of the dialog box
type DialogConfig struct {
	X, Y          int     // Box top-left (pixels)
	Width, Height int     // Box size (pixels)
	Padding       int     // Inner margin around the text (pixels)
	GlyphWidth    int     // Fixed-width glyph size (pixels)
	GlyphHeight   int     // Line height (pixels)
	BlinkInterval float64 // Seconds between "more" indicator toggles
}

// DefaultDialogConfig returns a box along the bottom of a 320x240 screen
// sized for ebitenutil's debug font.
func DefaultDialogConfig() DialogConfig {
	return DialogConfig{
		X:             8,
		Y:             176,
		Width:         304,
		Height:        56,
		Padding:       4,
		GlyphWidth:    6,
		GlyphHeight:   16,
		BlinkInterval: 0.4,
	}
}

// Dialog is a paged text box. It owns the page index and the blink clock;
// pagination itself is recomputed on every text or layout change.
type Dialog struct {
	config DialogConfig
	layout pagination.Layout

	text  string
	pages []string
	page  int

	visible     bool
	elapsed     float64
	indicatorOn bool
}

// NewDialog creates a hidden, empty dialog
func NewDialog(cfg DialogConfig) (*Dialog, error) {
	if cfg.BlinkInterval <= 0 {
		cfg.BlinkInterval = 0.4
	}

	layout, err := pagination.LayoutForArea(
		cfg.Width-2*cfg.Padding, cfg.Height-2*cfg.Padding,
		cfg.GlyphWidth, cfg.GlyphHeight,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out dialog box: %w", err)
	}

	d := &Dialog{config: cfg, layout: layout}
	if err := d.Initialize(""); err != nil {
		return nil, err
	}
	return d, nil
}

// Initialize replaces the text and rewinds to the first page
func (d *Dialog) Initialize(text string) error {
	pages, err := d.layout.Paginate(text)
	if err != nil {
		return err
	}
	d.text = text
	d.pages = pages
	d.page = 0
	return nil
}

// SetLayout repaginates the current text with new constraints.
// The page index is kept when it still exists.
func (d *Dialog) SetLayout(layout pagination.Layout) error {
	pages, err := layout.Paginate(d.text)
	if err != nil {
		return err
	}
	d.layout = layout
	d.pages = pages
	if d.page >= len(pages) {
		d.page = len(pages) - 1
	}
	return nil
}

// Show makes the dialog visible and restarts the blink clock
func (d *Dialog) Show() {
	d.visible = true
	d.elapsed = 0
	d.indicatorOn = true
}

// Hide makes the dialog invisible and stops the blink clock
func (d *Dialog) Hide() {
	d.visible = false
	d.elapsed = 0
	d.indicatorOn = false
}

// Advance moves to the next page, or hides the dialog on the last page.
// Returns whether the dialog is still visible.
func (d *Dialog) Advance() bool {
	if !d.visible {
		return false
	}
	if d.IsLastPage() {
		d.Hide()
		return false
	}
	d.page++
	d.elapsed = 0
	d.indicatorOn = true
	return true
}

// Update advances the blink clock by dt seconds
func (d *Dialog) Update(dt float64) {
	if !d.visible {
		return
	}
	d.elapsed += dt
	for d.elapsed >= d.config.BlinkInterval {
		d.elapsed -= d.config.BlinkInterval
		d.indicatorOn = !d.indicatorOn
	}
}

// Visible returns whether the dialog is shown
func (d *Dialog) Visible() bool {
	return d.visible
}

// PageIndex returns the zero-based index of the shown page
func (d *Dialog) PageIndex() int {
	return d.page
}

// PageCount returns the number of pages of the current text
func (d *Dialog) PageCount() int {
	return len(d.pages)
}

// IsLastPage returns true on the final page
func (d *Dialog) IsLastPage() bool {
	return d.page >= len(d.pages)-1
}

// CurrentPage returns the text of the shown page
func (d *Dialog) CurrentPage() string {
	return d.pages[d.page]
}

// CurrentLines returns the lines of the shown page
func (d *Dialog) CurrentLines() []string {
	return pagination.Lines(d.CurrentPage())
}

// IndicatorOn returns whether the blinking "more" marker is lit
func (d *Dialog) IndicatorOn() bool {
	return d.visible && d.indicatorOn
}

// Layout returns the current pagination constraints
func (d *Dialog) Layout() pagination.Layout {
	return d.layout
}

// Bounds returns the box rectangle in screen pixels
func (d *Dialog) Bounds() (x, y, w, h int) {
	return d.config.X, d.config.Y, d.config.Width, d.config.Height
}

// TextOrigin returns the top-left pixel of the first line
func (d *Dialog) TextOrigin() (x, y int) {
	return d.config.X + d.config.Padding, d.config.Y + d.config.Padding
}

// LineHeight returns the pixel height of one line
func (d *Dialog) LineHeight() int {
	return d.config.GlyphHeight
}
