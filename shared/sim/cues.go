package sim

import (
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/yohamta/donburi"
)

// SoundFor maps a combat event to its sound effect.
func SoundFor(ev components.CombatEvent) cfg.SoundID {
	switch {
	case ev.Kind == components.EventBlocked:
		return cfg.SoundBlock
	case ev.Kind == components.EventSuperHit:
		return cfg.SoundSuperHit
	case ev.Knockdown:
		return cfg.SoundKnockdown
	}
	return cfg.SoundHit
}

// SoundCues returns the sounds this tick should play and updates last to
// the current state. Movement and match cues fire on the tick their state
// changes; every combat event this tick gets its own cue.
func SoundCues(w donburi.World, last *components.CueState) []cfg.SoundID {
	var cues []cfg.SoundID

	for _, ev := range Events(w).Pending {
		cues = append(cues, SoundFor(ev))
	}

	var now components.CueState
	now.Seen = true
	components.Fighter.Each(w, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		if f.Index < 0 || f.Index > 1 {
			return
		}
		now.Status[f.Index] = f.Status.Kind
		now.Airborne[f.Index] = !f.OnGround
	})
	if m := MatchOf(w); m != nil {
		now.Phase = m.Phase
		now.Round = m.Round
	}

	if last.Seen {
		for i := range now.Status {
			if now.Status[i] == components.StatusDashing && last.Status[i] != components.StatusDashing {
				cues = append(cues, cfg.SoundDash)
			}
			// Knockback can lift a fighter too; only count jumps out of normal control
			if now.Airborne[i] && !last.Airborne[i] && now.Status[i] == components.StatusNormal {
				cues = append(cues, cfg.SoundJump)
			}
		}
		if now.Phase != last.Phase && now.Phase != components.MatchFighting {
			cues = append(cues, cfg.SoundRoundOver)
		}
	}
	if now.Phase == components.MatchFighting && (!last.Seen || now.Round != last.Round) {
		cues = append(cues, cfg.SoundFight)
	}

	*last = now
	return cues
}
