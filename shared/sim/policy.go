package sim

import (
	"github.com/automoto/dinofight/components"
	"github.com/automoto/dinofight/shared/gamemath"
)

// DecideIntent picks a computer opponent's intent for this tick.
//
// In order: a fighter that cannot act does nothing; an opponent inside
// attack range is attacked (with a super when one is ready and the bot
// feels like spending it); an active attack coming from a facing
// opponent inside block range is blocked by chance; otherwise the bot
// keeps walking the way it last decided, drawing a new movement decision
// only when the old one expires. Every draw comes from bot.Rand, which
// NewBot seeds per fighter.
func DecideIntent(bot *components.BotData, self, opp *components.FighterData) components.IntentData {
	if self.IsStunned() || self.IsKnockedDown() {
		bot.Reset()
		return components.IntentData{}
	}

	t := bot.Tuning
	dist := gamemath.AbsInt(opp.X - self.X)

	if dist < t.AttackRange && self.CanAttack() {
		if self.IsSuperReady() && bot.Rand.Float64() < t.SuperChance {
			return components.IntentData{SuperAttack: true}
		}
		return components.IntentData{Attack: true}
	}

	facing := self.Direction != opp.Direction
	if opp.IsAttackActive() && dist < t.BlockRange && facing && bot.Rand.Float64() < t.BlockChance {
		return components.IntentData{Crouch: true}
	}

	if bot.DecisionTimer <= 0 {
		bot.Move = chooseMove(bot, self, dist)
		bot.DecisionTimer = decisionFrames(bot)
	}
	bot.DecisionTimer--

	return moveIntent(bot.Move, self, opp)
}

func chooseMove(bot *components.BotData, self *components.FighterData, dist int) components.BotMove {
	reach := bot.Tuning.AttackRange
	switch {
	case dist > 2*reach:
		return components.BotMoveApproach
	case dist > reach:
		if self.OnGround && bot.Rand.Float64() < bot.Tuning.HopChance {
			return components.BotMoveHop
		}
		return components.BotMoveApproach
	default:
		return components.BotMoveRetreat
	}
}

func moveIntent(move components.BotMove, self, opp *components.FighterData) components.IntentData {
	toward := 0
	switch {
	case opp.X > self.X:
		toward = 1
	case opp.X < self.X:
		toward = -1
	}

	var in components.IntentData
	switch move {
	case components.BotMoveApproach:
		in.MoveRight, in.MoveLeft = toward > 0, toward < 0
	case components.BotMoveHop:
		in.MoveRight, in.MoveLeft = toward > 0, toward < 0
		in.Jump = true
	case components.BotMoveRetreat:
		in.MoveRight, in.MoveLeft = toward < 0, toward > 0
	}
	return in
}

func decisionFrames(bot *components.BotData) int {
	lo, hi := bot.Tuning.MinDecisionFrames, bot.Tuning.MaxDecisionFrames
	if lo < 1 {
		lo = 1
	}
	if hi <= lo {
		return lo
	}
	return lo + bot.Rand.Intn(hi-lo+1)
}
