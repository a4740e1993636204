package entity

// AnimState is the animation an actor is currently playing
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimRun
	AnimAttack
	AnimHurt
	AnimDead
)

// String returns the animation name as used in sprite configs
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimRun:
		return "run"
	case AnimAttack:
		return "attack"
	case AnimHurt:
		return "hurt"
	case AnimDead:
		return "dead"
	default:
		return "unknown"
	}
}

// loops reports whether the animation wraps around after its last frame
func (a AnimState) loops() bool {
	return a != AnimAttack && a != AnimDead
}

// Animation tracks the current state and frame of an actor's animation
type Animation struct {
	State AnimState
	Frame int
	timer float64
}

// Set switches to state, restarting from frame 0 when the state changes
func (a *Animation) Set(state AnimState) {
	if a.State == state {
		return
	}
	a.State = state
	a.Frame = 0
	a.timer = 0
}

// Update advances the frame counter. frames and fps come from the sprite
// config; one-shot animations hold their last frame.
func (a *Animation) Update(dt float64, frames, fps int) {
	if frames <= 1 || fps <= 0 {
		a.Frame = 0
		return
	}

	a.timer += dt
	frameTime := 1.0 / float64(fps)
	for a.timer >= frameTime {
		a.timer -= frameTime
		a.Frame++
		if a.Frame >= frames {
			if a.State.loops() {
				a.Frame = 0
			} else {
				a.Frame = frames - 1
			}
		}
	}
}

// Finished reports whether a one-shot animation reached its last frame
func (a *Animation) Finished(frames int) bool {
	return !a.State.loops() && a.Frame >= frames-1
}
