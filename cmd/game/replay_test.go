package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/knight/internal/application/game"
	"github.com/younwookim/knight/internal/application/replay"
	"github.com/younwookim/knight/internal/application/scene/director"
	"github.com/younwookim/knight/internal/application/scene/playing"
	"github.com/younwookim/knight/internal/application/scene/scenetest"
	"github.com/younwookim/knight/internal/application/system"
)

type snapshot struct {
	KnightX, KnightY int
	WolfX, WolfY     int
	Health, Kills    int
}

// simulate plays the meadow stage for frames updates and returns where everyone ended up
func simulate(t *testing.T, input system.InputReader, frames int) snapshot {
	t.Helper()

	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("meadow")
	require.NoError(t, err)

	first, err := director.New(cfg, stageCfg, input, zerolog.Nop()).Playing()
	require.NoError(t, err)
	p := first.(*playing.Playing)

	g := game.New(first, 320, 240, zerolog.Nop())
	for i := 0; i < frames; i++ {
		require.NoError(t, g.Update())
	}

	k, w := p.Knight(), p.Wolf()
	return snapshot{
		KnightX: k.PixelX(), KnightY: k.PixelY(),
		WolfX: w.PixelX(), WolfY: w.PixelY(),
		Health: k.Health, Kills: k.Kills,
	}
}

func TestReplay_IsDeterministic(t *testing.T) {
	const frames = 300

	script := &scenetest.Input{}
	for i := 0; i < 10; i++ {
		script.Push(system.InputState{Confirm: true})
	}
	for i := 0; i < 90; i++ {
		script.Push(system.InputState{Right: true, Down: i%3 == 0})
	}
	for i := 0; i < 60; i++ {
		script.Push(system.InputState{Down: true, Attack: i%20 == 0})
	}

	rec := replay.NewRecorder(script, "meadow")
	recorded := simulate(t, rec, frames)
	require.Equal(t, frames, rec.FrameCount())

	replayed := simulate(t, replay.NewReplayer(rec.Data()), frames)

	assert.Equal(t, recorded, replayed)
	assert.NotEqual(t, 48, recorded.KnightX, "the knight moved")
}
