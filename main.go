package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/fonts"
	"github.com/automoto/dinofight/scenes"
	"github.com/automoto/dinofight/systems"
	"github.com/automoto/dinofight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(setup scenes.Setup) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewFightScene(setup),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	mode := flag.String("mode", "pve", "who fights: pvp (two keyboards), pve (keyboard vs bot) or cpu (bot vs bot)")
	difficulty := flag.String("difficulty", "", "bot difficulty: easy, normal or hard (default: saved preference)")
	stocks := flag.Int("stocks", 0, "stocks per fighter (0 keeps the configured value)")
	roundSeconds := flag.Int("round", 0, "round length in seconds (0 keeps the configured value)")
	seed := flag.Int64("seed", 0, "bot random seed (0 keeps the configured value)")
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

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	systems.ApplySavedSettings(saved)

	d := config.Bot.DefaultDifficulty
	if pref, ok := systems.SavedDifficulty(saved); ok {
		d = pref
	}
	if *difficulty != "" {
		if d, err = config.ParseBotDifficulty(*difficulty); err != nil {
			log.Fatalf("Invalid -difficulty: %v", err)
		}
	}

	setup, err := setupFor(*mode, d, config.Bot.Seed)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}

	if err := ebiten.RunGame(NewGame(setup)); err != nil {
		log.Fatal(err)
	}
}

func setupFor(mode string, d config.BotDifficulty, seed int64) (scenes.Setup, error) {
	left := factory.Human(config.ControlSchemeLeft)
	right := factory.Human(config.ControlSchemeRight)
	switch mode {
	case "pvp":
		return scenes.Setup{P1: left, P2: right}, nil
	case "pve", "":
		return scenes.Setup{P1: left, P2: factory.Bot(d, seed)}, nil
	case "cpu":
		return scenes.Setup{P1: factory.Bot(d, seed), P2: factory.Bot(d, seed+1)}, nil
	}
	return scenes.Setup{}, fmt.Errorf("unknown mode %q", mode)
}
