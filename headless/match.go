package headless

import (
	"context"

	"github.com/automoto/dinofight/systems/factory"
	"github.com/yohamta/donburi"
)

// RunMatch plays one match between the two controllers to its end and
// returns what happened. Extra options are applied after the defaults, so
// callers can throttle it or attach a view.
func RunMatch(ctx context.Context, p1, p2 factory.Controller, opts ...Option) (MatchStats, error) {
	w := donburi.NewWorld()
	factory.CreateArena(w, p1, p2)

	var stats MatchStats
	all := append([]Option{StopOnFinish(), WithObserver(&stats)}, opts...)
	err := NewGameLoop(w, all...).Run(ctx)
	return stats, err
}
