// Package director builds the game's scenes from the loaded configuration
// and wires them to each other.
package director

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/younwookim/knight/internal/application/scene"
	"github.com/younwookim/knight/internal/application/scene/end"
	"github.com/younwookim/knight/internal/application/scene/menu"
	"github.com/younwookim/knight/internal/application/scene/playing"
	"github.com/younwookim/knight/internal/application/system"
	"github.com/younwookim/knight/internal/infrastructure/config"
	"github.com/younwookim/knight/internal/infrastructure/logging"
)

// TitleDialog is the dialog script shown on the menu
const TitleDialog = "title"

// Director implements scene.Builder for one stage
type Director struct {
	cfg      *config.GameConfig
	stageCfg *config.StageConfig
	input    system.InputReader
	log      zerolog.Logger
}

// New creates a director for the given stage
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, input system.InputReader, log zerolog.Logger) *Director {
	return &Director{
		cfg:      cfg,
		stageCfg: stageCfg,
		input:    input,
		log:      log,
	}
}

// Menu builds the title scene
func (d *Director) Menu() (scene.Scene, error) {
	text, err := d.cfg.Dialogs.Get(TitleDialog)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu: %w", err)
	}

	m, err := menu.New(d.cfg.Settings.Display.Title, text, scene.DialogConfig(d.cfg.Settings.Dialog),
		d.input, d, logging.Component(d.log, "menu"))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Playing builds a fresh run of the stage
func (d *Director) Playing() (scene.Scene, error) {
	var intro string
	if id := d.stageCfg.Dialogs.Intro; id != "" {
		text, err := d.cfg.Dialogs.Get(id)
		if err != nil {
			return nil, fmt.Errorf("failed to build stage %s: %w", d.stageCfg.ID, err)
		}
		intro = text
	}

	stage := system.LoadStage(d.stageCfg)
	p, err := playing.New(d.cfg.Settings, d.stageCfg, stage, intro, d.input, d, logging.Component(d.log, "playing"))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// End builds the result scene for outcome
func (d *Director) End(outcome scene.Outcome) (scene.Scene, error) {
	id := d.stageCfg.Dialogs.Defeat
	if outcome.Victory {
		id = d.stageCfg.Dialogs.Victory
	}

	text, err := d.cfg.Dialogs.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build end scene: %w", err)
	}

	e, err := end.New(outcome, text, scene.DialogConfig(d.cfg.Settings.Dialog), d.input, d, logging.Component(d.log, "end"))
	if err != nil {
		return nil, err
	}
	return e, nil
}
