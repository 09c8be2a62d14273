package headless

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/dinofight/components"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/yohamta/donburi"
)

// Command is an out-of-band request delivered to the tick goroutine.
type Command int

const (
	CommandQuit Command = iota
	CommandTogglePause
)

// Observer is notified on the tick goroutine after every simulated tick.
type Observer interface {
	Observe(w donburi.World, tick int)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(w donburi.World, tick int)

func (f ObserverFunc) Observe(w donburi.World, tick int) { f(w, tick) }

// GameLoop drives sim.Tick on a fixed-rate ticker, or back to back when the
// tick rate is 0.
type GameLoop struct {
	world        donburi.World
	tickRate     int
	maxTicks     int
	stopOnFinish bool
	commands     <-chan Command
	observers    []Observer
	logger       *log.Logger

	ticks    int
	paused   bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// Option configures a GameLoop.
type Option func(*GameLoop)

// WithTickRate runs at tps ticks per second; 0 runs unthrottled.
func WithTickRate(tps int) Option {
	return func(g *GameLoop) { g.tickRate = tps }
}

// WithMaxTicks stops the loop after n ticks.
func WithMaxTicks(n int) Option {
	return func(g *GameLoop) { g.maxTicks = n }
}

// StopOnFinish stops the loop once the match has a result.
func StopOnFinish() Option {
	return func(g *GameLoop) { g.stopOnFinish = true }
}

// WithCommands reads quit and pause requests from ch.
func WithCommands(ch <-chan Command) Option {
	return func(g *GameLoop) { g.commands = ch }
}

// WithObserver adds an observer called after each tick.
func WithObserver(o Observer) Option {
	return func(g *GameLoop) { g.observers = append(g.observers, o) }
}

// WithLogger replaces the standard logger for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *GameLoop) { g.logger = l }
}

func NewGameLoop(w donburi.World, opts ...Option) *GameLoop {
	g := &GameLoop{
		world:    w,
		logger:   log.Default(),
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run ticks until the context is cancelled, Stop is called, a quit command
// arrives, or a configured limit is reached. It returns ctx.Err() only when
// the context ended the loop.
func (g *GameLoop) Run(ctx context.Context) error {
	var tickC <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
		g.logger.Printf("Game loop started at %d ticks/second", g.tickRate)
		defer g.logger.Println("Game loop stopped")
	}

	for !g.done() {
		// Unthrottled and running: tick whenever nothing else is pending
		if tickC == nil && !g.paused {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-g.stopChan:
				return nil
			case cmd := <-g.commands:
				g.apply(cmd)
			default:
				g.tick()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.stopChan:
			return nil
		case cmd := <-g.commands:
			g.apply(cmd)
		case <-tickC:
			g.tick()
		}
	}
	return nil
}

// Stop ends Run. Safe to call more than once and from any goroutine.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Ticks returns how many ticks have been simulated.
func (g *GameLoop) Ticks() int {
	return g.ticks
}

// Paused reports whether a pause command is in effect.
func (g *GameLoop) Paused() bool {
	return g.paused
}

func (g *GameLoop) apply(cmd Command) {
	switch cmd {
	case CommandQuit:
		g.Stop()
	case CommandTogglePause:
		g.paused = !g.paused
	}
}

func (g *GameLoop) tick() {
	if g.paused {
		return
	}
	sim.Tick(g.world)
	g.ticks++
	for _, o := range g.observers {
		o.Observe(g.world, g.ticks)
	}
}

func (g *GameLoop) done() bool {
	if g.maxTicks > 0 && g.ticks >= g.maxTicks {
		return true
	}
	if g.stopOnFinish {
		if m := sim.MatchOf(g.world); m != nil && m.Phase == components.MatchFinished {
			return true
		}
	}
	return false
}
