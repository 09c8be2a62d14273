package systems

import (
	"github.com/automoto/dinofight/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots writes each computer fighter's intent for this tick.
// Must run AFTER UpdateInput and BEFORE UpdateFighters.
func UpdateBots(e *ecs.ECS) {
	sim.StepBots(e.World)
}
