package headless

import (
	"fmt"
	"strings"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/yohamta/donburi"
)

// MatchStats counts what each fighter landed over a match.
type MatchStats struct {
	Ticks  int
	Hits   [2]int // regular hits that did damage
	Supers [2]int
	Blocks [2]int // attacks this fighter blocked
	Damage [2]int // damage dealt

	Rounds int
	Stocks [2]int
	Winner int
	Done   bool
}

// Observe folds one tick's combat events and the match state into the stats.
func (s *MatchStats) Observe(w donburi.World, tick int) {
	s.Ticks = tick
	for _, ev := range sim.Events(w).Pending {
		if ev.Attacker < 0 || ev.Attacker > 1 || ev.Defender < 0 || ev.Defender > 1 {
			continue
		}
		switch ev.Kind {
		case components.EventBlocked:
			s.Blocks[ev.Defender]++
		case components.EventSuperHit:
			s.Supers[ev.Attacker]++
		default:
			s.Hits[ev.Attacker]++
		}
		s.Damage[ev.Attacker] += ev.Damage
	}

	if m := sim.MatchOf(w); m != nil {
		s.Rounds = m.Round
		s.Stocks = m.Stocks
		s.Winner = m.Winner
		s.Done = m.Phase == components.MatchFinished
	}
}

// Summary aggregates the stats of many matches.
type Summary struct {
	Matches    int
	Wins       [2]int
	Draws      int
	Unfinished int
	Ticks      int
	Rounds     int
	Hits       [2]int
	Supers     [2]int
	Blocks     [2]int
	Damage     [2]int
}

// Add folds one match into the summary.
func (s *Summary) Add(m MatchStats) {
	s.Matches++
	s.Ticks += m.Ticks
	s.Rounds += m.Rounds
	for i := 0; i < 2; i++ {
		s.Hits[i] += m.Hits[i]
		s.Supers[i] += m.Supers[i]
		s.Blocks[i] += m.Blocks[i]
		s.Damage[i] += m.Damage[i]
	}
	switch {
	case !m.Done:
		s.Unfinished++
	case m.Winner == components.Draw:
		s.Draws++
	case m.Winner == 0 || m.Winner == 1:
		s.Wins[m.Winner]++
	}
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "matches: %d  draws: %d  unfinished: %d\n", s.Matches, s.Draws, s.Unfinished)
	if s.Matches > 0 {
		fmt.Fprintf(&b, "avg rounds: %.2f  avg length: %.1fs\n",
			float64(s.Rounds)/float64(s.Matches), float64(s.Ticks)/float64(s.Matches)/float64(cfg.C.TPS))
	}
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&b, "P%d  wins: %-4d hits: %-5d supers: %-4d blocks: %-4d damage: %d\n",
			i+1, s.Wins[i], s.Hits[i], s.Supers[i], s.Blocks[i], s.Damage[i])
	}
	return b.String()
}
