package sim

import (
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
)

// AnimationFor maps fighter state to the animation category a view draws.
func AnimationFor(f *components.FighterData) cfg.StateID {
	switch {
	case f.IsKnockedDown():
		return cfg.Knockdown
	case f.IsStunned():
		return cfg.Hit
	case f.IsDashing():
		return cfg.Dash
	case f.AttackCooldown > 0 && f.IsSuperActive:
		return cfg.SuperAttack
	case f.AttackCooldown > 0:
		return cfg.Attack
	case f.IsBlocking:
		return cfg.Guard
	case f.IsCrouching:
		return cfg.Crouch
	case !f.OnGround:
		return cfg.Jump
	case f.Moving:
		return cfg.Running
	default:
		return cfg.Idle
	}
}
