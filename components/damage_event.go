package components

import "github.com/yohamta/donburi"

// CombatEventKind is the outcome of an attack landing on a fighter.
type CombatEventKind int

const (
	EventBlocked CombatEventKind = iota
	EventRegularHit
	EventSuperHit
)

func (k CombatEventKind) String() string {
	switch k {
	case EventBlocked:
		return "blocked"
	case EventSuperHit:
		return "super"
	default:
		return "hit"
	}
}

// CombatEvent is emitted once per landed attack for audio, effects and HUD.
type CombatEvent struct {
	Kind      CombatEventKind
	X, Y      int // where the attack box met the defender
	Attacker  int
	Defender  int
	Damage    int // 0 when blocked
	Knockdown bool
}

// CombatEventsData is the per-tick queue of combat events (singleton).
// It is cleared at the start of every tick.
type CombatEventsData struct {
	Pending []CombatEvent
}

var CombatEvents = donburi.NewComponentType[CombatEventsData]()
