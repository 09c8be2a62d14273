package sim

import (
	"testing"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestTick_BotsFightWithinTheRules(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Match.RoundFrames = 20 * 60

	w := donburi.NewWorld()
	e1, e2 := factory.CreateArena(w,
		factory.Bot(cfg.BotDifficultyHard, 1),
		factory.Bot(cfg.BotDifficultyNormal, 2),
	)
	a, b := components.Fighter.Get(e1), components.Fighter.Get(e2)
	m := MatchOf(w)

	hits := 0
	rounds := 1
	for i := 0; i < 60*60*10 && m.Phase != components.MatchFinished; i++ {
		Tick(w)
		hits += len(Events(w).Pending)
		rounds = m.Round

		requireInvariants(t, a)
		requireInvariants(t, b)
		require.GreaterOrEqual(t, m.Stocks[0], 0)
		require.GreaterOrEqual(t, m.Stocks[1], 0)
		if m.Phase == components.MatchFighting {
			require.GreaterOrEqual(t, m.RoundTimer, 0)
		}
	}

	assert.Greater(t, hits, 0, "bots never landed anything")
	assert.GreaterOrEqual(t, rounds, 1)
}

func TestTick_SameSeedSameFight(t *testing.T) {
	run := func() (components.FighterData, components.FighterData, components.MatchData) {
		w := donburi.NewWorld()
		e1, e2 := factory.CreateArena(w,
			factory.Bot(cfg.BotDifficultyNormal, 7),
			factory.Bot(cfg.BotDifficultyNormal, 8),
		)
		for i := 0; i < 3000; i++ {
			Tick(w)
		}
		return *components.Fighter.Get(e1), *components.Fighter.Get(e2), *MatchOf(w)
	}

	a1, b1, m1 := run()
	a2, b2, m2 := run()
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, m1, m2)
}

func TestTick_EventsLastOneTick(t *testing.T) {
	fw := newFightWorld(t)
	fw.place(300, 360)

	fw.intents(components.IntentData{Attack: true}, components.IntentData{})
	Tick(fw.w)
	require.Len(t, fw.events(), 1)

	fw.idle()
	Tick(fw.w)
	assert.Empty(t, fw.events())
}

func TestAnimationFor(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *components.FighterData)
		want  cfg.StateID
	}{
		{"idle", func(f *components.FighterData) {}, cfg.Idle},
		{"running", func(f *components.FighterData) { f.Moving = true }, cfg.Running},
		{"airborne", func(f *components.FighterData) { f.OnGround = false }, cfg.Jump},
		{"crouch", func(f *components.FighterData) { f.IsCrouching = true }, cfg.Crouch},
		{"guard", func(f *components.FighterData) { f.IsCrouching, f.IsBlocking = true, true }, cfg.Guard},
		{"attack", func(f *components.FighterData) { f.AttackCooldown = 5 }, cfg.Attack},
		{"super", func(f *components.FighterData) { f.AttackCooldown, f.IsSuperActive = 5, true }, cfg.SuperAttack},
		{"hurt", func(f *components.FighterData) {
			f.Status = components.StatusData{Kind: components.StatusStunned, Timer: 3}
		}, cfg.Hit},
		{"down", func(f *components.FighterData) {
			f.Status = components.StatusData{Kind: components.StatusKnockedDown, Timer: 3}
		}, cfg.Knockdown},
		{"dash", func(f *components.FighterData) {
			f.Status = components.StatusData{Kind: components.StatusDashing, Timer: 3}
		}, cfg.Dash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFighter(t, 100, components.FacingRight)
			tt.setup(f)
			assert.Equal(t, tt.want, AnimationFor(f))
		})
	}
}
