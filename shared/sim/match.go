package sim

import (
	"fmt"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/yohamta/donburi"
)

// StepMatch advances the round clock and decides rounds and the match.
func StepMatch(w donburi.World) {
	m := MatchOf(w)
	if m == nil {
		return
	}
	e1, e2, ok := Fighters(w)
	if !ok {
		return
	}
	a, b := components.Fighter.Get(e1), components.Fighter.Get(e2)

	switch m.Phase {
	case components.MatchFighting:
		if m.SplashTimer > 0 {
			m.SplashTimer--
		}
		if m.RoundTimer > 0 {
			m.RoundTimer--
		}
		decideRound(m, a, b)

	case components.MatchRoundOver:
		if m.PauseTimer > 0 {
			m.PauseTimer--
		}
		if m.PauseTimer == 0 {
			StartRound(w)
		}

	case components.MatchFinished:
	}
}

// decideRound ends the round on a KO or when time runs out. A KO on the
// same tick the clock expires counts as a KO.
func decideRound(m *components.MatchData, a, b *components.FighterData) {
	koA, koB := a.IsKO(), b.IsKO()
	switch {
	case koA && koB:
		m.Stocks[0]--
		m.Stocks[1]--
		m.Message = "Double KO!"
	case koB:
		m.Stocks[1]--
		m.Message = fmt.Sprintf("KO! Player %d wins the round", a.Index+1)
	case koA:
		m.Stocks[0]--
		m.Message = fmt.Sprintf("KO! Player %d wins the round", b.Index+1)
	case m.RoundTimer == 0:
		switch {
		case a.Health > b.Health:
			m.Stocks[1]--
			m.Message = fmt.Sprintf("Time! Player %d wins the round", a.Index+1)
		case b.Health > a.Health:
			m.Stocks[0]--
			m.Message = fmt.Sprintf("Time! Player %d wins the round", b.Index+1)
		default:
			m.Message = "Time! Draw round"
		}
	default:
		return
	}

	m.Stocks[0] = max(m.Stocks[0], 0)
	m.Stocks[1] = max(m.Stocks[1], 0)

	switch {
	case m.Stocks[0] == 0 && m.Stocks[1] == 0:
		m.Winner = components.Draw
	case m.Stocks[1] == 0:
		m.Winner = 0
	case m.Stocks[0] == 0:
		m.Winner = 1
	}
	if m.Winner != components.NoWinner {
		m.Phase = components.MatchFinished
		m.Message = m.ResultMessage()
		return
	}

	m.Phase = components.MatchRoundOver
	m.PauseTimer = cfg.Match.PauseFrames
}

// StartRound resets both fighters to their spawns and starts a fresh
// round clock. Stocks and super meters carry over.
func StartRound(w donburi.World) {
	m := MatchOf(w)
	if m == nil {
		return
	}
	m.Phase = components.MatchFighting
	m.Round++
	m.RoundTimer = cfg.Match.RoundFrames
	m.PauseTimer = 0
	m.SplashTimer = cfg.Match.SplashFrames
	m.Message = ""

	resetFighters(w)
}

// ResetMatch starts a new match from scratch, meters included.
func ResetMatch(w donburi.World) {
	if e, ok := components.Match.First(w); ok {
		components.Match.SetValue(e, components.NewMatch())
	}
	resetFighters(w)
	components.Fighter.Each(w, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		f.SuperMeter = 0
	})
}

func resetFighters(w donburi.World) {
	components.Fighter.Each(w, func(e *donburi.Entry) {
		components.Fighter.Get(e).Reset()
		if e.HasComponent(components.Intent) {
			components.Intent.SetValue(e, components.IntentData{})
		}
		if e.HasComponent(components.Bot) {
			components.Bot.Get(e).Reset()
		}
		SyncBodies(e)
	})
}
