// Package scenetest provides scripted input and a recording scene builder
// for driving scenes in tests without a window.
package scenetest

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/knight/internal/application/scene"
	"github.com/younwookim/knight/internal/application/state"
	"github.com/younwookim/knight/internal/application/system"
	"github.com/younwookim/knight/internal/domain/entity"
)

// Input replays queued input states, one per GetInput call.
// Once the queue is empty it reports no keys held.
type Input struct {
	queue []system.InputState
}

// Push queues states for the following frames
func (in *Input) Push(states ...system.InputState) {
	in.queue = append(in.queue, states...)
}

// GetInput implements system.InputReader
func (in *Input) GetInput() system.InputState {
	if len(in.queue) == 0 {
		return system.InputState{}
	}
	s := in.queue[0]
	in.queue = in.queue[1:]
	return s
}

// Stub is a scene that does nothing but report its state
type Stub struct {
	GameState state.GameState
}

func (s *Stub) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *Stub) Draw(*ebiten.Image)                   {}
func (s *Stub) OnEnter()                             {}
func (s *Stub) OnExit()                              {}
func (s *Stub) State() state.GameState               { return s.GameState }

// Builder records which scenes were requested and hands out stubs
type Builder struct {
	MenuCalls    int
	PlayingCalls int
	Outcomes     []scene.Outcome
}

func (b *Builder) Menu() (scene.Scene, error) {
	b.MenuCalls++
	return &Stub{GameState: state.StateMenu}, nil
}

func (b *Builder) Playing() (scene.Scene, error) {
	b.PlayingCalls++
	return &Stub{GameState: state.StatePlaying}, nil
}

func (b *Builder) End(outcome scene.Outcome) (scene.Scene, error) {
	b.Outcomes = append(b.Outcomes, outcome)
	return &Stub{GameState: state.StateEnd}, nil
}

// DialogConfig returns a dialog box holding 10 characters by 2 lines
func DialogConfig() entity.DialogConfig {
	return entity.DialogConfig{
		Width:         64,
		Height:        36,
		Padding:       2,
		GlyphWidth:    6,
		GlyphHeight:   16,
		BlinkInterval: 0.5,
	}
}
