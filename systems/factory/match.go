package factory

import (
	"github.com/automoto/dinofight/archetypes"
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/yohamta/donburi"
)

// CreateMatch spawns the match singleton along with its event queue.
func CreateMatch(w donburi.World) *donburi.Entry {
	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.NewMatch())
	components.CombatEvents.SetValue(match, components.CombatEventsData{
		Pending: make([]components.CombatEvent, 0, 4),
	})
	return match
}

// CreateArena builds everything a fight needs: the collision space, the
// match and both fighters at their spawn points.
func CreateArena(w donburi.World, p1, p2 Controller) (*donburi.Entry, *donburi.Entry) {
	space := CreateArenaSpace(w)
	CreateMatch(w)
	f1 := CreateFighter(w, space, 0, cfg.Arena.P1StartX, p1)
	f2 := CreateFighter(w, space, 1, cfg.Arena.P2StartX, p2)
	return f1, f2
}
