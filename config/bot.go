package config

import (
	"fmt"
	"strings"
)

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseBotDifficulty maps a name like "hard" to its difficulty
func ParseBotDifficulty(s string) (BotDifficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return BotDifficultyEasy, nil
	case "normal", "":
		return BotDifficultyNormal, nil
	case "hard":
		return BotDifficultyHard, nil
	}
	return BotDifficultyNormal, fmt.Errorf("unknown bot difficulty %q", s)
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	MinDecisionFrames int // Shortest time a movement decision is held
	MaxDecisionFrames int // Longest time a movement decision is held

	AttackRange int // Horizontal distance to start attacking
	BlockRange  int // Horizontal distance at which an active attack is blocked

	BlockChance float64 // Chance per tick to block an active attack while facing
	HopChance   float64 // Chance to hop in rather than walk at medium range
	SuperChance float64 // Chance to spend meter when a super is ready
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	DefaultDifficulty BotDifficulty
	Seed              int64
	Difficulties      map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	setBotDefaults()
}

func setBotDefaults() {
	Bot = BotConfigData{
		DefaultDifficulty: BotDifficultyNormal,
		Seed:              42,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				MinDecisionFrames: 12,
				MaxDecisionFrames: 30,
				AttackRange:       50,
				BlockRange:        80,
				BlockChance:       0.35,
				HopChance:         0.1,
				SuperChance:       0.3,
			},
			BotDifficultyNormal: {
				MinDecisionFrames: 6,
				MaxDecisionFrames: 18,
				AttackRange:       50,
				BlockRange:        80,
				BlockChance:       0.7,
				HopChance:         0.2,
				SuperChance:       0.6,
			},
			BotDifficultyHard: {
				MinDecisionFrames: 1,
				MaxDecisionFrames: 3,
				AttackRange:       50,
				BlockRange:        80,
				BlockChance:       0.9,
				HopChance:         0.2,
				SuperChance:       1.0,
			},
		},
	}
}

// BotTuning returns the tuning for a difficulty, falling back to normal
func BotTuning(d BotDifficulty) BotDifficultyConfig {
	if t, ok := Bot.Difficulties[d]; ok {
		return t
	}
	return Bot.Difficulties[BotDifficultyNormal]
}
