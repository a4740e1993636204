// Package scene defines the Scene interface for game screens.
//
// Each game screen (menu, playing, end) implements the Scene interface to
// handle its own update logic and rendering. Screens never import each
// other; they ask a Builder for the next scene instead.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/knight/internal/application/state"
)

// Scene represents a game screen (menu, playing, end)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Use this for initialization that should happen each time the scene is entered.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()

	// State reports which game state the scene represents.
	State() state.GameState
}

// Outcome is the result of a finished stage
type Outcome struct {
	Victory bool
	Kills   int
	Elapsed float64 // seconds of play, dialogs excluded
}

// Builder creates the scenes a scene can hand over to
type Builder interface {
	Menu() (Scene, error)
	Playing() (Scene, error)
	End(outcome Outcome) (Scene, error)
}
