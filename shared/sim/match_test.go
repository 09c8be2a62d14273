package sim

import (
	"testing"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepMatch_ClockRunsDown(t *testing.T) {
	fw := newFightWorld(t)
	m := fw.match()
	start := m.RoundTimer

	StepMatch(fw.w)
	assert.Equal(t, start-1, m.RoundTimer)
	assert.Equal(t, cfg.Match.SplashFrames-1, m.SplashTimer)
	assert.Equal(t, components.MatchFighting, m.Phase)
}

func TestStepMatch_KO(t *testing.T) {
	fw := newFightWorld(t)
	m := fw.match()
	fw.b.Health = 0
	fw.a.SuperMeter = 40
	fw.place(100, 600)

	StepMatch(fw.w)
	assert.Equal(t, components.MatchRoundOver, m.Phase)
	assert.Equal(t, [2]int{cfg.Match.Stocks, cfg.Match.Stocks - 1}, m.Stocks)
	assert.Contains(t, m.Message, "Player 1")
	assert.Equal(t, cfg.Match.PauseFrames, m.PauseTimer)

	for i := 0; i < cfg.Match.PauseFrames; i++ {
		require.Equal(t, components.MatchRoundOver, m.Phase)
		StepMatch(fw.w)
	}

	assert.Equal(t, components.MatchFighting, m.Phase)
	assert.Equal(t, 2, m.Round)
	assert.Equal(t, cfg.Match.RoundFrames, m.RoundTimer)
	assert.Empty(t, m.Message)
	assert.Equal(t, [2]int{cfg.Match.Stocks, cfg.Match.Stocks - 1}, m.Stocks, "stocks persist")

	assert.Equal(t, cfg.Fighter.MaxHealth, fw.a.Health)
	assert.Equal(t, cfg.Fighter.MaxHealth, fw.b.Health)
	assert.Equal(t, cfg.Arena.P1StartX, fw.a.X)
	assert.Equal(t, cfg.Arena.P2StartX, fw.b.X)
	assert.Equal(t, 40, fw.a.SuperMeter, "meter carries over")
}

func TestStepMatch_DoubleKO(t *testing.T) {
	fw := newFightWorld(t)
	m := fw.match()
	fw.a.Health, fw.b.Health = 0, 0

	StepMatch(fw.w)
	assert.Equal(t, [2]int{cfg.Match.Stocks - 1, cfg.Match.Stocks - 1}, m.Stocks)
	assert.Equal(t, "Double KO!", m.Message)
	assert.Equal(t, components.MatchRoundOver, m.Phase)
}

func TestStepMatch_TimeOut(t *testing.T) {
	tests := []struct {
		name       string
		healthA    int
		healthB    int
		wantStocks [2]int
	}{
		{"player one ahead", 80, 60, [2]int{3, 2}},
		{"player two ahead", 30, 60, [2]int{2, 3}},
		{"level is a draw round", 50, 50, [2]int{3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw := newFightWorld(t)
			m := fw.match()
			m.RoundTimer = 1
			fw.a.Health, fw.b.Health = tt.healthA, tt.healthB

			StepMatch(fw.w)
			assert.Equal(t, tt.wantStocks, m.Stocks)
			assert.Equal(t, components.MatchRoundOver, m.Phase)
			assert.Contains(t, m.Message, "Time!")
		})
	}
}

func TestStepMatch_KOBeatsTimeOut(t *testing.T) {
	fw := newFightWorld(t)
	m := fw.match()
	m.RoundTimer = 1
	fw.a.Health, fw.b.Health = 0, 10

	StepMatch(fw.w)
	assert.Equal(t, [2]int{2, 3}, m.Stocks)
	assert.Contains(t, m.Message, "KO!")
}

func TestStepMatch_MatchEnds(t *testing.T) {
	t.Run("last stock lost", func(t *testing.T) {
		fw := newFightWorld(t)
		m := fw.match()
		m.Stocks = [2]int{1, 1}
		fw.b.Health = 0

		StepMatch(fw.w)
		assert.Equal(t, components.MatchFinished, m.Phase)
		assert.Equal(t, 0, m.Winner)
		assert.Equal(t, "Player 1 wins the match!", m.Message)

		// Terminal: nothing moves on
		for i := 0; i < cfg.Match.PauseFrames*2; i++ {
			StepMatch(fw.w)
		}
		assert.Equal(t, components.MatchFinished, m.Phase)
		assert.Equal(t, [2]int{1, 0}, m.Stocks)
	})

	t.Run("double KO on last stocks is a draw", func(t *testing.T) {
		fw := newFightWorld(t)
		m := fw.match()
		m.Stocks = [2]int{1, 1}
		fw.a.Health, fw.b.Health = 0, 0

		StepMatch(fw.w)
		assert.Equal(t, components.MatchFinished, m.Phase)
		assert.Equal(t, components.Draw, m.Winner)
		assert.Equal(t, "Draw!", m.Message)
	})
}

func TestTick_FrozenBetweenRounds(t *testing.T) {
	fw := newFightWorld(t)
	m := fw.match()
	fw.b.Health = 0
	Tick(fw.w)
	require.Equal(t, components.MatchRoundOver, m.Phase)

	x := fw.a.X
	fw.intents(components.IntentData{MoveRight: true, Attack: true}, components.IntentData{})
	Tick(fw.w)
	assert.Equal(t, x, fw.a.X)
	assert.Equal(t, 0, fw.a.AttackCooldown)
	assert.Equal(t, cfg.Match.PauseFrames-1, m.PauseTimer)
}

func TestResetMatch(t *testing.T) {
	fw := newFightWorld(t)
	m := fw.match()
	m.Stocks = [2]int{1, 1}
	fw.b.Health = 0
	fw.a.SuperMeter = 70
	StepMatch(fw.w)
	require.Equal(t, components.MatchFinished, m.Phase)

	ResetMatch(fw.w)
	m = fw.match()
	assert.Equal(t, components.MatchFighting, m.Phase)
	assert.Equal(t, [2]int{cfg.Match.Stocks, cfg.Match.Stocks}, m.Stocks)
	assert.Equal(t, components.NoWinner, m.Winner)
	assert.Equal(t, 1, m.Round)
	assert.Equal(t, cfg.Fighter.MaxHealth, fw.b.Health)
	assert.Equal(t, 0, fw.a.SuperMeter)
}
