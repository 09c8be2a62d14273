package sim

import (
	"github.com/automoto/dinofight/components"
	"github.com/yohamta/donburi"
)

// StepBots writes this tick's intent for every bot-controlled fighter.
func StepBots(w donburi.World) {
	components.Bot.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Fighter) || !e.HasComponent(components.Intent) {
			return
		}
		opp, ok := Opponent(w, e)
		if !ok {
			return
		}
		intent := DecideIntent(
			components.Bot.Get(e),
			components.Fighter.Get(e),
			components.Fighter.Get(opp),
		)
		components.Intent.SetValue(e, intent)
	})
}
