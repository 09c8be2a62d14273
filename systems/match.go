package systems

import (
	"github.com/automoto/dinofight/components"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch runs the round clock, decides rounds and resets the fighters
// between them.
func UpdateMatch(e *ecs.ECS) {
	sim.StepMatch(e.World)
}

// IsMatchFinished returns true once a winner (or a draw) has been decided.
func IsMatchFinished(e *ecs.ECS) bool {
	m := sim.MatchOf(e.World)
	return m != nil && m.Phase == components.MatchFinished
}

// RestartMatch starts a fresh match with full stocks.
func RestartMatch(e *ecs.ECS) {
	sim.ResetMatch(e.World)
	if hud, ok := components.HUD.First(e.World); ok {
		h := components.HUD.Get(hud)
		h.Banner = ""
		h.BannerTween = nil
		h.LastPhase = components.MatchFighting
	}
}
