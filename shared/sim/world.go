package sim

import (
	"github.com/automoto/dinofight/components"
	"github.com/yohamta/donburi"
)

// Fighters returns the two fighter entries ordered by player index.
func Fighters(w donburi.World) (p1, p2 *donburi.Entry, ok bool) {
	components.Fighter.Each(w, func(e *donburi.Entry) {
		switch components.Fighter.Get(e).Index {
		case 0:
			p1 = e
		case 1:
			p2 = e
		}
	})
	return p1, p2, p1 != nil && p2 != nil
}

// Opponent returns the other fighter entry.
func Opponent(w donburi.World, e *donburi.Entry) (*donburi.Entry, bool) {
	p1, p2, ok := Fighters(w)
	if !ok {
		return nil, false
	}
	if e == p1 {
		return p2, true
	}
	return p1, true
}

// MatchOf returns the match singleton, or nil if none exists.
func MatchOf(w donburi.World) *components.MatchData {
	e, ok := components.Match.First(w)
	if !ok {
		return nil
	}
	return components.Match.Get(e)
}

// Events returns the combat event queue, creating it if needed.
func Events(w donburi.World) *components.CombatEventsData {
	e, ok := components.CombatEvents.First(w)
	if !ok {
		e = w.Entry(w.Create(components.CombatEvents))
	}
	return components.CombatEvents.Get(e)
}

// ClearEvents empties the combat event queue for a new tick.
func ClearEvents(w donburi.World) {
	ev := Events(w)
	ev.Pending = ev.Pending[:0]
}

// SyncBodies mirrors a fighter's rectangles into its resolv objects.
func SyncBodies(e *donburi.Entry) {
	f := components.Fighter.Get(e)
	if e.HasComponent(components.Object) {
		if body := components.Object.Get(e).Object; body != nil {
			r := f.Rect()
			body.X, body.Y = float64(r.X), float64(r.Y)
			body.W, body.H = float64(r.W), float64(r.H)
			body.Update()
		}
	}
	if e.HasComponent(components.AttackBox) {
		if box := components.AttackBox.Get(e).Object; box != nil {
			r := f.AttackRect()
			box.X, box.Y = float64(r.X), float64(r.Y)
			box.W, box.H = float64(r.W), float64(r.H)
			box.Update()
		}
	}
}
