package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateEnd
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether the game may move from s to next.
// The cycle is menu, playing, end, and back to the menu.
func (s GameState) CanTransition(next GameState) bool {
	switch s {
	case StateMenu:
		return next == StatePlaying
	case StatePlaying:
		return next == StateEnd
	case StateEnd:
		return next == StateMenu
	default:
		return false
	}
}
