// Package end provides the scene shown after a stage is won or lost.
package end

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

var (
	colorVictoryBG = color.RGBA{20, 46, 30, 255}
	colorDefeatBG  = color.RGBA{60, 16, 20, 255}
)

// End shows the result dialog and returns to the menu once it is dismissed
type End struct {
	outcome scene.Outcome
	dialog  *entity.Dialog
	input   system.InputReader
	builder scene.Builder
	log     zerolog.Logger
}

// New creates an end scene. text is the victory or defeat script; the
// kill count and play time are appended to it.
func New(outcome scene.Outcome, text string, dialogCfg entity.DialogConfig, input system.InputReader, builder scene.Builder, log zerolog.Logger) (*End, error) {
	dialog, err := entity.NewDialog(dialogCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create end dialog: %w", err)
	}

	summary := fmt.Sprintf("%s\nSkeletons slain: %d. Time: %.1fs.", text, outcome.Kills, outcome.Elapsed)
	if err := dialog.Initialize(summary); err != nil {
		return nil, fmt.Errorf("failed to paginate end text: %w", err)
	}

	return &End{
		outcome: outcome,
		dialog:  dialog,
		input:   input,
		builder: builder,
		log:     log,
	}, nil
}

// Update pages through the result (implements scene.Scene)
func (e *End) Update(dt float64) (scene.Scene, error) {
	in := e.input.GetInput()
	if in.Pause {
		return nil, ebiten.Termination
	}

	e.dialog.Update(dt)

	if in.Confirm && !e.dialog.Advance() {
		return e.builder.Menu()
	}
	return nil, nil
}

// Draw renders the result screen
func (e *End) Draw(screen *ebiten.Image) {
	heading := "DEFEAT"
	bg := colorDefeatBG
	if e.outcome.Victory {
		heading = "VICTORY"
		bg = colorVictoryBG
	}

	screen.Fill(bg)
	ebitenutil.DebugPrintAt(screen, heading, 16, 16)
	scene.DrawDialog(screen, e.dialog)
}

// OnEnter shows the result dialog
func (e *End) OnEnter() {
	e.log.Info().
		Bool("victory", e.outcome.Victory).
		Int("kills", e.outcome.Kills).
		Float64("elapsed", e.outcome.Elapsed).
		Msg("stage finished")
	e.dialog.Show()
}

// OnExit hides the dialog
func (e *End) OnExit() {
	e.dialog.Hide()
}

// State implements scene.Scene
func (e *End) State() state.GameState {
	return state.StateEnd
}

// Outcome returns the result being shown
func (e *End) Outcome() scene.Outcome {
	return e.outcome
}

// Dialog returns the result dialog
func (e *End) Dialog() *entity.Dialog {
	return e.dialog
}
