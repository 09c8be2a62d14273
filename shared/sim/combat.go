package sim

import (
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/gamemath"
	"github.com/automoto/dinofight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type pendingHit struct {
	attacker, defender *components.FighterData
	damage             int
	super              bool
	facing             int
	at                 gamemath.Rect
}

// ResolveCombat runs the cross-fighter part of a tick: both fighters face
// each other, overlapping bodies are pushed apart, then every attack that
// connects is applied. Hits are gathered before any is applied so that two
// attacks landing on the same tick both count.
func ResolveCombat(w donburi.World) {
	e1, e2, ok := Fighters(w)
	if !ok {
		return
	}
	a, b := components.Fighter.Get(e1), components.Fighter.Get(e2)

	UpdateFacing(a, b)
	SyncBodies(e1)
	SyncBodies(e2)

	if bodiesTouch(e1, e2) {
		Separate(a, b)
		SyncBodies(e1)
		SyncBodies(e2)
	}

	var hits []pendingHit
	if hit, ok := detectHit(e1, e2); ok {
		hits = append(hits, hit)
	}
	if hit, ok := detectHit(e2, e1); ok {
		hits = append(hits, hit)
	}

	events := Events(w)
	for _, hit := range hits {
		if ev, ok := applyHit(hit); ok {
			events.Pending = append(events.Pending, ev)
		}
	}

	SyncBodies(e1)
	SyncBodies(e2)
}

// UpdateFacing turns the fighter on the left to face right and the other
// to face left. Level fighters keep their facing.
func UpdateFacing(a, b *components.FighterData) {
	switch {
	case a.X < b.X:
		a.Direction, b.Direction = components.FacingRight, components.FacingLeft
	case a.X > b.X:
		a.Direction, b.Direction = components.FacingLeft, components.FacingRight
	}
}

// Separate pushes two overlapping fighters apart by a fixed step each,
// keeping both inside the arena.
func Separate(a, b *components.FighterData) {
	if !a.Rect().Intersects(b.Rect()) {
		return
	}
	push := cfg.Combat.PushApart
	if a.X <= b.X {
		a.X -= push
		b.X += push
	} else {
		a.X += push
		b.X -= push
	}
	clampToArena(a)
	clampToArena(b)
}

// bodiesTouch asks the space for candidates and confirms with an exact
// rectangle test, since resolv only reports shared cells.
func bodiesTouch(e1, e2 *donburi.Entry) bool {
	a, b := components.Fighter.Get(e1), components.Fighter.Get(e2)
	body := bodyOf(e1)
	if body != nil && body.Space != nil {
		c := body.Check(0, 0, tags.ResolvFighter)
		if c == nil || !containsObject(c, bodyOf(e2)) {
			return false
		}
	}
	return a.Rect().Intersects(b.Rect())
}

func detectHit(attackerEntry, defenderEntry *donburi.Entry) (pendingHit, bool) {
	att := components.Fighter.Get(attackerEntry)
	def := components.Fighter.Get(defenderEntry)
	if !att.CanHit() || def.IsKnockedDown() {
		return pendingHit{}, false
	}

	if box := attackBoxOf(attackerEntry); box != nil && box.Space != nil {
		c := box.Check(0, 0, tags.ResolvFighter)
		if c == nil || !containsObject(c, bodyOf(defenderEntry)) {
			return pendingHit{}, false
		}
	}

	overlap := att.AttackRect().Intersection(def.Rect())
	if overlap.Empty() {
		return pendingHit{}, false
	}

	damage := cfg.Combat.RegularDamage
	if att.IsSuperActive {
		damage = cfg.Combat.SuperDamage
	}
	return pendingHit{
		attacker: att,
		defender: def,
		damage:   damage,
		super:    att.IsSuperActive,
		facing:   att.Direction,
		at:       overlap,
	}, true
}

// applyHit lands a detected hit. The swing is spent and earns meter even
// when the defender is invulnerable; only real outcomes produce an event.
func applyHit(hit pendingHit) (components.CombatEvent, bool) {
	result := TakeDamage(hit.defender, hit.damage, hit.facing)

	hit.attacker.RegisterHit()
	gain := cfg.Combat.MeterGainHit
	if hit.super {
		gain *= 2
	}
	hit.attacker.SuperMeter += gain
	clampResources(hit.attacker)

	if result == DamageIgnored {
		return components.CombatEvent{}, false
	}

	x, y := hit.at.Center()
	ev := components.CombatEvent{
		Kind:      components.EventRegularHit,
		X:         x,
		Y:         y,
		Attacker:  hit.attacker.Index,
		Defender:  hit.defender.Index,
		Damage:    hit.damage,
		Knockdown: hit.defender.IsKnockedDown(),
	}
	switch {
	case result == DamageBlocked:
		ev.Kind = components.EventBlocked
		ev.Damage = 0
	case hit.super:
		ev.Kind = components.EventSuperHit
	}
	return ev, true
}

func bodyOf(e *donburi.Entry) *resolv.Object {
	if !e.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(e).Object
}

func attackBoxOf(e *donburi.Entry) *resolv.Object {
	if !e.HasComponent(components.AttackBox) {
		return nil
	}
	return components.AttackBox.Get(e).Object
}

func containsObject(c *resolv.Collision, obj *resolv.Object) bool {
	if obj == nil {
		return false
	}
	for _, o := range c.Objects {
		if o == obj {
			return true
		}
	}
	return false
}
