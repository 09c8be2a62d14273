package sim

import (
	"testing"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type fightWorld struct {
	w      donburi.World
	e1, e2 *donburi.Entry
	a, b   *components.FighterData
}

// newFightWorld builds an arena with two keyboard fighters that only do
// what the test tells them to.
func newFightWorld(t *testing.T) *fightWorld {
	t.Helper()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	e1, e2 := factory.CreateArena(w, factory.Human(cfg.ControlSchemeLeft), factory.Human(cfg.ControlSchemeRight))
	require.NotNil(t, e1)
	require.NotNil(t, e2)

	return &fightWorld{
		w:  w,
		e1: e1,
		e2: e2,
		a:  components.Fighter.Get(e1),
		b:  components.Fighter.Get(e2),
	}
}

func (fw *fightWorld) place(ax, bx int) {
	fw.a.X, fw.b.X = ax, bx
	SyncBodies(fw.e1)
	SyncBodies(fw.e2)
}

func (fw *fightWorld) intents(a, b components.IntentData) {
	components.Intent.SetValue(fw.e1, a)
	components.Intent.SetValue(fw.e2, b)
}

func (fw *fightWorld) idle() {
	fw.intents(components.IntentData{}, components.IntentData{})
}

func (fw *fightWorld) match() *components.MatchData {
	return MatchOf(fw.w)
}

func (fw *fightWorld) events() []components.CombatEvent {
	return Events(fw.w).Pending
}

// newTestFighter returns a standalone grounded fighter.
func newTestFighter(t *testing.T, x, dir int) *components.FighterData {
	t.Helper()
	t.Cleanup(cfg.Reset)
	f := components.NewFighter(0, x)
	f.Direction = dir
	return &f
}

// requireInvariants checks the state rules that must hold after every tick.
func requireInvariants(t *testing.T, f *components.FighterData) {
	t.Helper()
	require.GreaterOrEqual(t, f.Health, 0)
	require.LessOrEqual(t, f.Health, cfg.Fighter.MaxHealth)
	require.GreaterOrEqual(t, f.SuperMeter, 0)
	require.LessOrEqual(t, f.SuperMeter, cfg.Fighter.MaxMeter)
	require.GreaterOrEqual(t, f.X, 0)
	require.LessOrEqual(t, f.X, cfg.Arena.Width-f.Width)
	require.False(t, f.StunTimer() > 0 && f.KnockdownTimer() > 0)
	if f.HasHit {
		require.Greater(t, f.AttackCooldown, 0, "hit latch outlived its attack")
	}
	require.GreaterOrEqual(t, f.AttackCooldown, 0)
	require.GreaterOrEqual(t, f.BlockCooldown, 0)
	require.GreaterOrEqual(t, f.InvulnTimer, 0)
	require.LessOrEqual(t, f.Y+f.Height, cfg.Arena.GroundY)
}
