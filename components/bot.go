package components

import (
	"math/rand"

	cfg "github.com/automoto/dinofight/config"
	"github.com/yohamta/donburi"
)

// BotMove is the movement decision a bot holds between decision ticks.
type BotMove int

const (
	BotMoveNone BotMove = iota
	BotMoveApproach
	BotMoveHop
	BotMoveRetreat
)

// BotData is the per-fighter decision context of a computer opponent.
type BotData struct {
	Difficulty cfg.BotDifficulty
	Tuning     cfg.BotDifficultyConfig

	Move          BotMove
	DecisionTimer int // Frames until a new movement decision is drawn

	Rand *rand.Rand
}

var Bot = donburi.NewComponentType[BotData]()

// NewBot returns a bot context for the difficulty using its own seeded source.
func NewBot(d cfg.BotDifficulty, seed int64) BotData {
	return BotData{
		Difficulty: d,
		Tuning:     cfg.BotTuning(d),
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

// Reset drops any held decision.
func (b *BotData) Reset() {
	b.Move = BotMoveNone
	b.DecisionTimer = 0
}
