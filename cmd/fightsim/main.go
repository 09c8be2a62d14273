// Command fightsim runs bot-versus-bot matches without a window, either as
// a fast batch that prints a summary or as a live terminal view.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/headless"
	"github.com/automoto/dinofight/systems/factory"
)

func main() {
	n := flag.Int("n", 100, "number of matches to run in batch mode")
	tui := flag.Bool("tui", false, "watch a single match in the terminal instead of running a batch")
	seed := flag.Int64("seed", 0, "base random seed (0 keeps the configured value)")
	d1 := flag.String("p1", "", "player one difficulty (default: configured difficulty)")
	d2 := flag.String("p2", "", "player two difficulty (default: configured difficulty)")
	stocks := flag.Int("stocks", 0, "stocks per fighter (0 keeps the configured value)")
	roundSeconds := flag.Int("round", 0, "round length in seconds (0 keeps the configured value)")
	maxMinutes := flag.Int("max-minutes", 30, "give up on a match after this many simulated minutes")
	tuning := flag.String("config", "", "optional YAML tuning file")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadOverrides(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *stocks > 0 {
		config.Match.Stocks = *stocks
	}
	if *roundSeconds > 0 {
		config.Match.RoundFrames = *roundSeconds * config.C.TPS
	}
	if *seed != 0 {
		config.Bot.Seed = *seed
	}

	diff1, err := difficulty(*d1)
	if err != nil {
		log.Fatalf("Invalid -p1: %v", err)
	}
	diff2, err := difficulty(*d2)
	if err != nil {
		log.Fatalf("Invalid -p2: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	limit := headless.WithMaxTicks(*maxMinutes * 60 * config.C.TPS)

	if *tui {
		if err := watch(ctx, diff1, diff2, limit); err != nil {
			log.Fatalf("Terminal view: %v", err)
		}
		return
	}

	var summary headless.Summary
	for i := 0; i < *n; i++ {
		s := config.Bot.Seed + int64(i)*2
		stats, err := headless.RunMatch(ctx,
			factory.Bot(diff1, s), factory.Bot(diff2, s+1),
			limit, headless.WithLogger(log.New(io.Discard, "", 0)))
		if errors.Is(err, context.Canceled) {
			log.Printf("Interrupted after %d matches", i)
			break
		}
		summary.Add(stats)
	}

	fmt.Printf("P1 %s vs P2 %s, seed %d\n", diff1, diff2, config.Bot.Seed)
	fmt.Print(summary)
}

func watch(ctx context.Context, d1, d2 config.BotDifficulty, limit headless.Option) error {
	view, err := headless.NewTerminalView()
	if err != nil {
		return err
	}
	view.Start()

	stats, err := headless.RunMatch(ctx,
		factory.Bot(d1, config.Bot.Seed), factory.Bot(d2, config.Bot.Seed+1),
		limit,
		headless.WithTickRate(config.C.TPS),
		headless.WithCommands(view.Commands()),
		headless.WithObserver(view),
		headless.WithLogger(log.New(io.Discard, "", 0)),
	)
	view.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	var summary headless.Summary
	summary.Add(stats)
	fmt.Print(summary)
	return nil
}

func difficulty(name string) (config.BotDifficulty, error) {
	if name == "" {
		return config.Bot.DefaultDifficulty, nil
	}
	return config.ParseBotDifficulty(name)
}
