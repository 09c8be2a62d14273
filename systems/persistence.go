package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/dinofight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the preferences stored on disk. Match state is
// never saved.
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Difficulty string  `json:"difficulty"`
	Fullscreen bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when nothing was saved yet or the store is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StoreKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(cfg.Settings.StoreKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings collects the live preferences for saving.
func CurrentSettings(difficulty cfg.BotDifficulty) *SavedSettings {
	return &SavedSettings{
		SFXVolume:  GetSFXVolume(),
		Muted:      IsMuted(),
		Difficulty: difficulty.String(),
		Fullscreen: ebiten.IsFullscreen(),
	}
}

// SaveCurrentSettings saves the live preferences, logging failures.
func SaveCurrentSettings(difficulty cfg.BotDifficulty) {
	if err := SaveSettings(CurrentSettings(difficulty)); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// ApplySavedSettings applies loaded preferences to audio and the window.
// Used during startup before the fight scene exists.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(saved.SFXVolume)
	SetMuted(saved.Muted)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// SavedDifficulty returns the stored bot difficulty, if any was saved.
func SavedDifficulty(saved *SavedSettings) (cfg.BotDifficulty, bool) {
	if saved == nil || saved.Difficulty == "" {
		return cfg.BotDifficultyNormal, false
	}
	d, err := cfg.ParseBotDifficulty(saved.Difficulty)
	if err != nil {
		log.Printf("Warning: ignoring saved difficulty: %v", err)
		return cfg.BotDifficultyNormal, false
	}
	return d, true
}
