package sim

import (
	"testing"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBot returns a bot whose choices are fully pinned by its tuning.
func testBot(t *testing.T) *components.BotData {
	t.Helper()
	bot := components.NewBot(cfg.BotDifficultyHard, 12345)
	bot.Tuning.MinDecisionFrames = 5
	bot.Tuning.MaxDecisionFrames = 5
	bot.Tuning.SuperChance = 1
	bot.Tuning.BlockChance = 1
	bot.Tuning.HopChance = 0
	return &bot
}

func facingPair(t *testing.T, selfX, oppX int) (*components.FighterData, *components.FighterData) {
	t.Helper()
	self := newTestFighter(t, selfX, components.FacingRight)
	opp := newTestFighter(t, oppX, components.FacingLeft)
	UpdateFacing(self, opp)
	return self, opp
}

func TestDecideIntent_CannotAct(t *testing.T) {
	bot := testBot(t)
	self, opp := facingPair(t, 300, 330)
	bot.Move = components.BotMoveApproach
	bot.DecisionTimer = 3

	self.Status = components.StatusData{Kind: components.StatusStunned, Timer: 5}
	assert.Equal(t, components.IntentData{}, DecideIntent(bot, self, opp))
	assert.Equal(t, components.BotMoveNone, bot.Move)
	assert.Equal(t, 0, bot.DecisionTimer)

	self.Status = components.StatusData{Kind: components.StatusKnockedDown, Timer: 5}
	assert.Equal(t, components.IntentData{}, DecideIntent(bot, self, opp))
}

func TestDecideIntent_AttacksInRange(t *testing.T) {
	t.Run("super when ready", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 300, 340)
		self.SuperMeter = cfg.Combat.SuperAttackCost

		assert.Equal(t, components.IntentData{SuperAttack: true}, DecideIntent(bot, self, opp))
	})

	t.Run("regular without meter", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 300, 340)

		assert.Equal(t, components.IntentData{Attack: true}, DecideIntent(bot, self, opp))
	})

	t.Run("regular when choosing not to spend", func(t *testing.T) {
		bot := testBot(t)
		bot.Tuning.SuperChance = 0
		self, opp := facingPair(t, 300, 340)
		self.SuperMeter = cfg.Fighter.MaxMeter

		assert.Equal(t, components.IntentData{Attack: true}, DecideIntent(bot, self, opp))
	})

	t.Run("not while cooling down", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 300, 340)
		self.AttackCooldown = 4

		in := DecideIntent(bot, self, opp)
		assert.False(t, in.Attack)
		assert.False(t, in.SuperAttack)
	})
}

func TestDecideIntent_Blocks(t *testing.T) {
	t.Run("active attack from the front", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 300, 370)
		opp.AttackCooldown = cfg.Combat.AttackDuration

		assert.Equal(t, components.IntentData{Crouch: true}, DecideIntent(bot, self, opp))
	})

	t.Run("chance can fail", func(t *testing.T) {
		bot := testBot(t)
		bot.Tuning.BlockChance = 0
		self, opp := facingPair(t, 300, 370)
		opp.AttackCooldown = cfg.Combat.AttackDuration

		assert.False(t, DecideIntent(bot, self, opp).Crouch)
	})

	t.Run("not when facing the same way", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 300, 370)
		opp.Direction = self.Direction
		opp.AttackCooldown = cfg.Combat.AttackDuration

		assert.False(t, DecideIntent(bot, self, opp).Crouch)
	})

	t.Run("not once the active window is over", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 300, 370)
		opp.AttackCooldown = 1

		assert.False(t, DecideIntent(bot, self, opp).Crouch)
	})
}

func TestDecideIntent_Movement(t *testing.T) {
	t.Run("approaches from far away", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 100, 600)
		in := DecideIntent(bot, self, opp)
		assert.True(t, in.MoveRight)
		assert.False(t, in.MoveLeft)
		assert.Equal(t, components.BotMoveApproach, bot.Move)
	})

	t.Run("approaches toward the left too", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 600, 100)
		in := DecideIntent(bot, self, opp)
		assert.True(t, in.MoveLeft)
	})

	t.Run("hops in at medium range", func(t *testing.T) {
		bot := testBot(t)
		bot.Tuning.HopChance = 1
		self, opp := facingPair(t, 300, 380)
		in := DecideIntent(bot, self, opp)
		assert.True(t, in.Jump)
		assert.True(t, in.MoveRight)
	})

	t.Run("retreats when too close to swing", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 300, 330)
		self.AttackCooldown = 10
		in := DecideIntent(bot, self, opp)
		assert.True(t, in.MoveLeft)
		assert.Equal(t, components.BotMoveRetreat, bot.Move)
	})

	t.Run("holds a decision until it expires", func(t *testing.T) {
		bot := testBot(t)
		self, opp := facingPair(t, 100, 600)
		require.True(t, DecideIntent(bot, self, opp).MoveRight)

		// Opponent is now close but the bot cannot attack; it keeps
		// approaching until the held decision runs out.
		opp.X = self.X + 30
		self.AttackCooldown = 100
		for i := 0; i < 4; i++ {
			assert.True(t, DecideIntent(bot, self, opp).MoveRight, "tick %d", i)
		}
		assert.Equal(t, components.BotMoveApproach, bot.Move)

		in := DecideIntent(bot, self, opp)
		assert.True(t, in.MoveLeft)
		assert.Equal(t, components.BotMoveRetreat, bot.Move)
	})
}

func TestDecideIntent_SeededBotsAgree(t *testing.T) {
	a := components.NewBot(cfg.BotDifficultyNormal, 99)
	b := components.NewBot(cfg.BotDifficultyNormal, 99)
	selfA, oppA := facingPair(t, 200, 290)
	selfB, oppB := facingPair(t, 200, 290)
	oppA.AttackCooldown, oppB.AttackCooldown = cfg.Combat.AttackDuration, cfg.Combat.AttackDuration
	selfA.AttackCooldown, selfB.AttackCooldown = 200, 200

	for i := 0; i < 200; i++ {
		require.Equal(t, DecideIntent(&a, selfA, oppA), DecideIntent(&b, selfB, oppB))
	}
}

func TestDecideIntent_BotsDrawFromTheirOwnSource(t *testing.T) {
	a := components.NewBot(cfg.BotDifficultyNormal, 7)
	b := components.NewBot(cfg.BotDifficultyNormal, 7)
	other := components.NewBot(cfg.BotDifficultyEasy, 8)

	selfA, oppA := facingPair(t, 100, 500)
	selfB, oppB := facingPair(t, 100, 500)
	selfO, oppO := facingPair(t, 100, 500)

	for i := 0; i < 200; i++ {
		want := DecideIntent(&a, selfA, oppA)
		// A third bot deciding in between must not shift b's draws
		DecideIntent(&other, selfO, oppO)
		require.Equal(t, want, DecideIntent(&b, selfB, oppB), "tick %d", i)
		require.Equal(t, a.DecisionTimer, b.DecisionTimer, "tick %d", i)
	}
}
