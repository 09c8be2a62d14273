package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile is the on-disk layout of a tuning override file. Keys are the
// lowercased field names, e.g.
//
//	combat:
//	  superdamage: 40
//	match:
//	  stocks: 5
//	bot:
//	  difficulty: hard
type tuningFile struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Fighter FighterConfig `yaml:"fighter"`
	Combat  CombatConfig  `yaml:"combat"`
	Match   MatchConfig   `yaml:"match"`
	Bot     struct {
		Difficulty string `yaml:"difficulty"`
		Seed       int64  `yaml:"seed"`
	} `yaml:"bot"`
}

// LoadOverrides overlays the values present in a YAML tuning file onto the
// current configuration. Keys that are absent keep their current value.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides is LoadOverrides for an in-memory document.
func ApplyOverrides(data []byte) error {
	f := tuningFile{
		Arena:   Arena,
		Fighter: Fighter,
		Combat:  Combat,
		Match:   Match,
	}
	f.Bot.Seed = Bot.Seed

	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse tuning file: %w", err)
	}

	difficulty := Bot.DefaultDifficulty
	if f.Bot.Difficulty != "" {
		d, err := ParseBotDifficulty(f.Bot.Difficulty)
		if err != nil {
			return fmt.Errorf("parse tuning file: %w", err)
		}
		difficulty = d
	}

	if err := validate(f.Arena, f.Fighter, f.Combat, f.Match); err != nil {
		return err
	}

	Arena = f.Arena
	Fighter = f.Fighter
	Combat = f.Combat
	Match = f.Match
	Bot.DefaultDifficulty = difficulty
	Bot.Seed = f.Bot.Seed
	return nil
}

// ErrInvalidTuning is returned when overrides describe an unplayable setup.
var ErrInvalidTuning = errors.New("invalid tuning")

func validate(a ArenaConfig, f FighterConfig, c CombatConfig, m MatchConfig) error {
	switch {
	case a.Width <= f.Width:
		return fmt.Errorf("%w: arena width %d must exceed fighter width %d", ErrInvalidTuning, a.Width, f.Width)
	case f.CrouchHeight <= 0 || f.CrouchHeight > f.StandHeight:
		return fmt.Errorf("%w: crouch height %d must be in (0, %d]", ErrInvalidTuning, f.CrouchHeight, f.StandHeight)
	case f.DashFrames <= 0:
		return fmt.Errorf("%w: dash frames must be positive", ErrInvalidTuning)
	case c.ActiveHitFrame <= 0 || c.ActiveHitFrame > c.AttackDuration:
		return fmt.Errorf("%w: active hit frame %d must be in (0, %d]", ErrInvalidTuning, c.ActiveHitFrame, c.AttackDuration)
	case c.SuperActiveHitFrame <= 0 || c.SuperActiveHitFrame > c.SuperAttackDuration:
		return fmt.Errorf("%w: super active hit frame %d must be in (0, %d]", ErrInvalidTuning, c.SuperActiveHitFrame, c.SuperAttackDuration)
	case m.Stocks <= 0:
		return fmt.Errorf("%w: stocks must be positive", ErrInvalidTuning)
	case m.RoundFrames <= 0:
		return fmt.Errorf("%w: round length must be positive", ErrInvalidTuning)
	}
	return nil
}
