// Package sim is the frame-stepped fight simulation. It only depends on
// the donburi world, so it runs the same inside the ebiten client and the
// headless runner.
package sim

import (
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/gamemath"
)

// StepFighter advances one fighter by one tick. Knockdown, stun and dash
// each take over the whole tick; only a fighter in normal status reads its
// intent.
func StepFighter(f *components.FighterData, in components.IntentData) {
	tickCooldowns(f)
	f.Moving = false

	switch f.Status.Kind {
	case components.StatusKnockedDown:
		stepReeling(f, cfg.Combat.WakeupInvulnFrames)
	case components.StatusStunned:
		stepReeling(f, 0)
	case components.StatusDashing:
		stepDash(f)
	default:
		stepControl(f, in)
	}

	clampToArena(f)
	clampResources(f)
}

func tickCooldowns(f *components.FighterData) {
	if f.AttackCooldown > 0 {
		f.AttackCooldown--
		if f.AttackCooldown == 0 {
			f.HasHit = false
		}
	}
	if f.SuperAttackCooldown > 0 {
		f.SuperAttackCooldown--
	}
	if f.BlockCooldown > 0 {
		f.BlockCooldown--
		if f.BlockCooldown == 0 {
			f.IsBlockOnCooldown = false
		}
	}
	if f.InvulnTimer > 0 {
		f.InvulnTimer--
	}
	if f.DashCooldown > 0 {
		f.DashCooldown--
	}
}

// stepReeling runs a stun or knockdown tick: knockback slides out, gravity
// applies, and when the timer runs out control returns.
func stepReeling(f *components.FighterData, invulnOnRecovery int) {
	f.X += gamemath.StepPixels(f.VelX)
	f.VelX = gamemath.DecayVelocity(f.VelX, cfg.Fighter.VelocityDecay, cfg.Fighter.VelocitySnap)
	applyGravity(f)

	f.Status.Timer--
	if f.Status.Timer > 0 {
		return
	}
	f.Status = components.StatusData{}
	f.VelX = 0
	if invulnOnRecovery > 0 {
		f.InvulnTimer = invulnOnRecovery
	}
}

func stepControl(f *components.FighterData, in components.IntentData) {
	updateGuard(f, in.Crouch)

	if (in.DashForward || in.DashBack) && canDash(f) {
		dir := f.Direction
		if in.DashBack && !in.DashForward {
			dir = -dir
		}
		startDash(f, dir)
		stepDash(f)
		return
	}

	if !f.IsCrouching {
		switch {
		case in.MoveLeft && !in.MoveRight:
			f.X -= cfg.Fighter.MoveSpeed
			f.Moving = true
		case in.MoveRight && !in.MoveLeft:
			f.X += cfg.Fighter.MoveSpeed
			f.Moving = true
		}
	}

	if in.Jump && f.OnGround && !f.IsCrouching {
		f.VelY = cfg.Fighter.JumpVelocity
		f.OnGround = false
	}

	applyGravity(f)
	if !f.OnGround {
		f.IsBlocking = false
	}

	startAttack(f, in)
}

// updateGuard applies crouch and derives blocking from it.
func updateGuard(f *components.FighterData, crouch bool) {
	if crouch != f.IsCrouching {
		f.IsCrouching = crouch
		if crouch {
			f.SetHeight(cfg.Fighter.CrouchHeight)
		} else {
			f.SetHeight(cfg.Fighter.StandHeight)
		}
	}
	f.IsBlocking = f.IsCrouching && f.OnGround && !f.IsBlockOnCooldown
}

func applyGravity(f *components.FighterData) {
	f.Y += f.VelY
	if f.Y >= f.GroundTop() {
		f.Y = f.GroundTop()
		f.VelY = 0
		f.OnGround = true
		return
	}
	f.VelY += cfg.Fighter.Gravity
	f.OnGround = false
}

func startAttack(f *components.FighterData, in components.IntentData) {
	if in.SuperAttack && f.IsSuperReady() {
		f.SuperMeter -= cfg.Combat.SuperAttackCost
		f.SuperAttackCooldown = cfg.Combat.SuperAttackCooldown
		f.AttackCooldown = cfg.Combat.SuperAttackDuration
		f.HasHit = false
		f.IsSuperActive = true
		return
	}
	if in.Attack && f.CanAttack() {
		f.AttackCooldown = cfg.Combat.AttackDuration
		f.HasHit = false
		f.IsSuperActive = false
	}
}

func canDash(f *components.FighterData) bool {
	return f.OnGround && !f.IsCrouching && f.DashCooldown == 0
}

func startDash(f *components.FighterData, dir int) {
	frames := max(cfg.Fighter.DashFrames, 1)
	v := float64(dir*cfg.Fighter.DashDistance) / float64(frames)
	f.Status = components.StatusData{
		Kind:         components.StatusDashing,
		Timer:        frames,
		DashVelocity: v,
	}
	f.DashRemaining = cfg.Fighter.DashDistance
	f.VelX = v
	f.IsBlocking = false
}

// stepDash moves the fixed dash velocity. The last frame covers whatever
// rounding left over so the total is exactly DashDistance.
func stepDash(f *components.FighterData) {
	sign := 1
	if f.Status.DashVelocity < 0 {
		sign = -1
	}
	step := gamemath.AbsInt(gamemath.StepPixels(f.Status.DashVelocity))
	if f.Status.Timer <= 1 || step > f.DashRemaining {
		step = f.DashRemaining
	}
	f.DashRemaining -= step
	f.X += sign * step
	applyGravity(f)

	f.Status.Timer--
	if f.Status.Timer > 0 {
		return
	}
	f.Status = components.StatusData{}
	f.VelX = 0
	f.DashRemaining = 0
	f.DashCooldown = cfg.Fighter.DashCooldown
}

func clampToArena(f *components.FighterData) {
	f.X = gamemath.ClampInt(f.X, 0, cfg.Arena.Width-f.Width)
}

func clampResources(f *components.FighterData) {
	f.Health = gamemath.ClampInt(f.Health, 0, cfg.Fighter.MaxHealth)
	f.SuperMeter = gamemath.ClampInt(f.SuperMeter, 0, cfg.Fighter.MaxMeter)
}
