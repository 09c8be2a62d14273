package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/systems"
	"github.com/automoto/dinofight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerArena ecs.LayerID = iota
	layerOverlay
)

// Setup says who controls each fighter.
type Setup struct {
	P1, P2 factory.Controller
}

// FightScene runs one match between two fighters until the players quit.
type FightScene struct {
	ecs   *ecs.ECS
	setup Setup
	once  sync.Once
	quit  bool
}

// NewFightScene creates a fight scene for the given controllers
func NewFightScene(setup Setup) *FightScene {
	return &FightScene{setup: setup}
}

// Update advances the fight one tick. It returns ebiten.Termination once
// the players asked to quit.
func (fs *FightScene) Update() error {
	fs.once.Do(fs.configure)
	fs.handleHotkeys()
	if fs.quit {
		return ebiten.Termination
	}
	fs.ecs.Update()
	return nil
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FightScene) configure() {
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdatePause)

	// Fight systems, in tick order
	e.AddSystem(systems.WithPauseCheck(systems.ClearCombatEvents))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateInput))
	e.AddSystem(systems.WithRoundChecks(systems.UpdateBots))
	e.AddSystem(systems.WithRoundChecks(systems.UpdateFighters))
	e.AddSystem(systems.WithRoundChecks(systems.UpdateCombat))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMatch))

	// Presentation of what just happened
	e.AddSystem(systems.WithPauseCheck(systems.UpdateAudio))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateHUD))

	e.AddRenderer(layerArena, systems.DrawArena)
	e.AddRenderer(layerArena, systems.DrawFighters)
	e.AddRenderer(layerArena, systems.DrawSparks)
	e.AddRenderer(layerOverlay, systems.DrawHUD)
	e.AddRenderer(layerOverlay, systems.DrawMatchHUD)
	e.AddRenderer(layerOverlay, systems.DrawPause)

	factory.CreateArena(e.World, fs.setup.P1, fs.setup.P2)
	factory.CreateHUD(e.World, cfg.Fighter.MaxHealth)
	systems.GetOrCreateAudio(e)

	fs.ecs = e
}

// handleHotkeys covers the keys that act on the whole scene rather than
// on a fighter.
func (fs *FightScene) handleHotkeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		fs.quit = true

	case inpututil.IsKeyJustPressed(ebiten.KeyR) && systems.IsMatchFinished(fs.ecs):
		systems.RestartMatch(fs.ecs)

	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		systems.SetMuted(!systems.IsMuted())
		fs.saveSettings()

	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		systems.StepSFXVolume(-1)
		systems.PlaySFX(fs.ecs, cfg.SoundHit)
		fs.saveSettings()

	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		systems.StepSFXVolume(1)
		systems.PlaySFX(fs.ecs, cfg.SoundHit)
		fs.saveSettings()

	case inpututil.IsKeyJustPressed(ebiten.KeyF11):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		fs.saveSettings()

	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		d := fs.cycleDifficulty()
		log.Printf("Bot difficulty: %s", d)
		fs.saveSettings()
	}
}

// cycleDifficulty moves every bot to the next difficulty preset.
func (fs *FightScene) cycleDifficulty() cfg.BotDifficulty {
	next := (fs.difficulty() + 1) % (cfg.BotDifficultyHard + 1)
	components.Bot.Each(fs.ecs.World, func(entry *donburi.Entry) {
		bot := components.Bot.Get(entry)
		bot.Difficulty = next
		bot.Tuning = cfg.BotTuning(next)
	})
	for _, ctl := range []*factory.Controller{&fs.setup.P1, &fs.setup.P2} {
		if ctl.Bot {
			ctl.Difficulty = next
		}
	}
	return next
}

// difficulty is the preset of the first bot, or the configured default.
func (fs *FightScene) difficulty() cfg.BotDifficulty {
	for _, ctl := range []factory.Controller{fs.setup.P1, fs.setup.P2} {
		if ctl.Bot {
			return ctl.Difficulty
		}
	}
	return cfg.Bot.DefaultDifficulty
}

func (fs *FightScene) saveSettings() {
	systems.SaveCurrentSettings(fs.difficulty())
}
