package sim

import (
	"github.com/automoto/dinofight/components"
	"github.com/yohamta/donburi"
)

// Tick runs one full simulation step: bots decide, both fighters update,
// combat resolves, then the match clock and round logic run. While a round
// is over or the match has finished only the match logic advances.
func Tick(w donburi.World) {
	ClearEvents(w)
	if RoundLive(w) {
		StepBots(w)
		StepFighters(w)
		ResolveCombat(w)
	}
	StepMatch(w)
}

// RoundLive reports whether fighters and combat should advance. A world
// without a match is always live.
func RoundLive(w donburi.World) bool {
	m := MatchOf(w)
	return m == nil || m.IsLive()
}

// StepFighters updates both fighters in player order from their intents.
func StepFighters(w donburi.World) {
	e1, e2, ok := Fighters(w)
	if !ok {
		return
	}
	for _, e := range []*donburi.Entry{e1, e2} {
		var in components.IntentData
		if e.HasComponent(components.Intent) {
			in = *components.Intent.Get(e)
		}
		StepFighter(components.Fighter.Get(e), in)
		SyncBodies(e)
	}
}
