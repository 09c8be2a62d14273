package sim

import (
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
)

// DamageResult is what an incoming attack did to its target.
type DamageResult int

const (
	DamageIgnored DamageResult = iota // invulnerable or already down
	DamageBlocked
	DamageTaken
)

func (r DamageResult) String() string {
	switch r {
	case DamageBlocked:
		return "blocked"
	case DamageTaken:
		return "taken"
	default:
		return "ignored"
	}
}

// TakeDamage applies an attack of the given strength coming from a
// fighter facing attackerFacing. A fighter that blocks toward the attacker
// takes nothing but its guard goes on cooldown. Otherwise the hit is
// heavy (knockdown) or light (stun) and pushes the target away from the
// attacker.
func TakeDamage(f *components.FighterData, amount, attackerFacing int) DamageResult {
	if f.InvulnTimer > 0 || f.IsKnockedDown() {
		return DamageIgnored
	}

	if f.IsBlocking && attackerFacing != f.Direction {
		f.IsBlocking = false
		f.IsBlockOnCooldown = true
		f.BlockCooldown = cfg.Combat.BlockCooldown
		return DamageBlocked
	}

	f.Health -= amount
	f.SuperMeter += cfg.Combat.MeterGainHurt
	clampResources(f)

	// An attack in flight is cancelled by getting hit
	f.RegisterHit()
	f.IsBlocking = false
	if f.IsDashing() {
		f.DashCooldown = cfg.Fighter.DashCooldown
	}
	f.DashRemaining = 0

	// Both fighters always face each other, so the attacker's facing points away from it
	away := float64(attackerFacing)
	if amount >= cfg.Combat.HeavyHitThreshold {
		knockDown(f, away)
	} else {
		stagger(f, away)
	}
	return DamageTaken
}

func knockDown(f *components.FighterData, away float64) {
	f.Status = components.StatusData{
		Kind:  components.StatusKnockedDown,
		Timer: cfg.Combat.KnockdownFrames,
	}
	if f.IsCrouching {
		f.IsCrouching = false
		f.SetHeight(cfg.Fighter.StandHeight)
	}
	f.VelX = away * cfg.Combat.HeavyKnockback
	if !f.OnGround {
		f.VelY = cfg.Combat.KnockdownFallSpeed
	}
}

func stagger(f *components.FighterData, away float64) {
	timer, knockback := cfg.Combat.RegularStunFrames, cfg.Combat.LightKnockback
	if !f.OnGround {
		timer, knockback = cfg.Combat.AirStunFrames, knockback/2
	}
	f.Status = components.StatusData{
		Kind:  components.StatusStunned,
		Timer: timer,
	}
	f.VelX = away * knockback
}
