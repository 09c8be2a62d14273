package headless

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func quiet() Option {
	return WithLogger(log.New(io.Discard, "", 0))
}

func newBotWorld(t *testing.T) donburi.World {
	t.Helper()
	t.Cleanup(cfg.Reset)
	w := donburi.NewWorld()
	factory.CreateArena(w,
		factory.Bot(cfg.BotDifficultyHard, 1),
		factory.Bot(cfg.BotDifficultyHard, 2),
	)
	return w
}

func TestGameLoop_MaxTicks(t *testing.T) {
	w := newBotWorld(t)
	var seen []int
	loop := NewGameLoop(w, WithMaxTicks(30), quiet(),
		WithObserver(ObserverFunc(func(_ donburi.World, tick int) { seen = append(seen, tick) })))

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 30, loop.Ticks())
	require.Len(t, seen, 30)
	assert.Equal(t, 1, seen[0])
	assert.Equal(t, 30, seen[29])
}

func TestGameLoop_StopOnFinish(t *testing.T) {
	w := newBotWorld(t)
	m := components.Match.Get(mustMatch(t, w))
	m.Stocks = [2]int{1, 1}
	components.Fighter.Each(w, func(e *donburi.Entry) {
		if f := components.Fighter.Get(e); f.Index == 1 {
			f.Health = 0
		}
	})

	loop := NewGameLoop(w, StopOnFinish(), WithMaxTicks(1000), quiet())
	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 1, loop.Ticks())
	assert.Equal(t, components.MatchFinished, m.Phase)
	assert.Equal(t, 0, m.Winner)
}

func TestGameLoop_Commands(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		w := newBotWorld(t)
		cmds := make(chan Command, 1)
		cmds <- CommandQuit
		loop := NewGameLoop(w, WithCommands(cmds), WithTickRate(1), quiet())

		done := make(chan error, 1)
		go func() { done <- loop.Run(context.Background()) }()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("loop did not stop on quit")
		}
	})

	t.Run("pause freezes the world", func(t *testing.T) {
		w := newBotWorld(t)
		cmds := make(chan Command)
		loop := NewGameLoop(w, WithCommands(cmds), quiet())

		done := make(chan error, 1)
		go func() { done <- loop.Run(context.Background()) }()

		cmds <- CommandTogglePause
		cmds <- CommandTogglePause
		cmds <- CommandTogglePause
		cmds <- CommandQuit

		require.NoError(t, <-done)
		assert.True(t, loop.Paused())
	})
}

func TestGameLoop_ContextCancel(t *testing.T) {
	w := newBotWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := NewGameLoop(w, quiet())
	assert.ErrorIs(t, loop.Run(ctx), context.Canceled)
}

func TestGameLoop_StopIsIdempotent(t *testing.T) {
	w := newBotWorld(t)
	loop := NewGameLoop(w, quiet())
	loop.Stop()
	loop.Stop()
	assert.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 0, loop.Ticks())
}

func TestRunMatch_BotsFinish(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Match.Stocks = 1
	cfg.Match.RoundFrames = 30 * 60

	stats, err := RunMatch(context.Background(),
		factory.Bot(cfg.BotDifficultyHard, 3), factory.Bot(cfg.BotDifficultyEasy, 4),
		WithMaxTicks(10*cfg.Match.RoundFrames), quiet())
	require.NoError(t, err)

	assert.Greater(t, stats.Ticks, 0)
	assert.Greater(t, stats.Hits[0]+stats.Hits[1]+stats.Supers[0]+stats.Supers[1]+stats.Blocks[0]+stats.Blocks[1], 0)
	if stats.Done {
		assert.Contains(t, []int{0, 1, components.Draw}, stats.Winner)
	}
}

func TestRunMatch_Deterministic(t *testing.T) {
	t.Cleanup(cfg.Reset)
	run := func() MatchStats {
		stats, err := RunMatch(context.Background(),
			factory.Bot(cfg.BotDifficultyNormal, 10), factory.Bot(cfg.BotDifficultyNormal, 11),
			WithMaxTicks(5000), quiet())
		require.NoError(t, err)
		return stats
	}
	assert.Equal(t, run(), run())
}

func mustMatch(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := components.Match.First(w)
	require.True(t, ok)
	return e
}
