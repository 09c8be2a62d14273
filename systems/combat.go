package systems

import (
	"github.com/automoto/dinofight/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// ClearCombatEvents empties last tick's events. Runs first every tick so
// audio and effects see each event exactly once.
func ClearCombatEvents(e *ecs.ECS) {
	sim.ClearEvents(e.World)
}

// UpdateCombat resolves facing, body overlap and hits between the fighters.
func UpdateCombat(e *ecs.ECS) {
	sim.ResolveCombat(e.World)
}
