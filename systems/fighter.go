package systems

import (
	"github.com/automoto/dinofight/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters advances both fighters one tick from their intents.
func UpdateFighters(e *ecs.ECS) {
	sim.StepFighters(e.World)
}
