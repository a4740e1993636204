// Package menu provides the title scene.
package menu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/younwookim/knight/internal/application/scene"
	"github.com/younwookim/knight/internal/application/state"
	"github.com/younwookim/knight/internal/application/system"
	"github.com/younwookim/knight/internal/domain/entity"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// Menu shows the title text in a dialog box. Confirm pages through it and
// starts the game after the last page; Escape quits.
type Menu struct {
	title   string
	text    string
	dialog  *entity.Dialog
	input   system.InputReader
	builder scene.Builder
	log     zerolog.Logger
}

// New creates a menu scene
func New(title, text string, dialogCfg entity.DialogConfig, input system.InputReader, builder scene.Builder, log zerolog.Logger) (*Menu, error) {
	dialog, err := entity.NewDialog(dialogCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu dialog: %w", err)
	}
	if err := dialog.Initialize(text); err != nil {
		return nil, fmt.Errorf("failed to paginate menu text: %w", err)
	}

	return &Menu{
		title:   title,
		text:    text,
		dialog:  dialog,
		input:   input,
		builder: builder,
		log:     log,
	}, nil
}

// Update handles the title dialog (implements scene.Scene)
func (m *Menu) Update(dt float64) (scene.Scene, error) {
	in := m.input.GetInput()
	if in.Pause {
		m.log.Info().Msg("quit from menu")
		return nil, ebiten.Termination
	}

	m.dialog.Update(dt)

	if !in.Confirm {
		return nil, nil
	}
	if m.dialog.Advance() {
		m.log.Debug().Int("page", m.dialog.PageIndex()).Msg("menu page")
		return nil, nil
	}

	return m.builder.Playing()
}

// Draw renders the title and the dialog
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, m.title, 16, 16)
	ebitenutil.DebugPrintAt(screen, "Enter/Z: Continue | ESC: Quit", 16, 40)
	scene.DrawDialog(screen, m.dialog)
}

// OnEnter rewinds and shows the title dialog
func (m *Menu) OnEnter() {
	// The layout was validated in New, so this cannot fail
	_ = m.dialog.Initialize(m.text)
	m.dialog.Show()
}

// OnExit hides the dialog
func (m *Menu) OnExit() {
	m.dialog.Hide()
}

// State implements scene.Scene
func (m *Menu) State() state.GameState {
	return state.StateMenu
}

// Dialog returns the title dialog
func (m *Menu) Dialog() *entity.Dialog {
	return m.dialog
}
