package components

import (
	"fmt"

	cfg "github.com/automoto/dinofight/config"
	"github.com/yohamta/donburi"
)

// MatchPhase is where the match is in its round cycle.
type MatchPhase int

const (
	MatchFighting MatchPhase = iota
	MatchRoundOver
	MatchFinished
)

func (p MatchPhase) String() string {
	switch p {
	case MatchRoundOver:
		return "round-over"
	case MatchFinished:
		return "finished"
	default:
		return "fighting"
	}
}

// Winner values besides a player index.
const (
	NoWinner = -1
	Draw     = -2
)

// MatchData stores the round and stock state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Phase  MatchPhase
	Stocks [2]int
	Round  int

	RoundTimer  int // frames left in the round
	PauseTimer  int // frames left in the between-rounds pause
	SplashTimer int // frames left on the round start splash

	Message string
	Winner  int // player index, NoWinner or Draw
}

var Match = donburi.NewComponentType[MatchData]()

// NewMatch returns a match at the start of its first round.
func NewMatch() MatchData {
	return MatchData{
		Phase:       MatchFighting,
		Stocks:      [2]int{cfg.Match.Stocks, cfg.Match.Stocks},
		Round:       1,
		RoundTimer:  cfg.Match.RoundFrames,
		SplashTimer: cfg.Match.SplashFrames,
		Winner:      NoWinner,
	}
}

// IsLive reports whether fighters and combat should advance this tick.
func (m *MatchData) IsLive() bool {
	return m.Phase == MatchFighting
}

// IsPaused reports whether the between-rounds pause is running.
func (m *MatchData) IsPaused() bool {
	return m.Phase == MatchRoundOver && m.PauseTimer > 0
}

// SecondsRemaining rounds the round timer up to whole seconds.
func (m *MatchData) SecondsRemaining() int {
	tps := cfg.C.TPS
	return (m.RoundTimer + tps - 1) / tps
}

// ResultMessage describes the winner of a finished match.
func (m *MatchData) ResultMessage() string {
	if m.Winner == Draw {
		return "Draw!"
	}
	return fmt.Sprintf("Player %d wins the match!", m.Winner+1)
}
