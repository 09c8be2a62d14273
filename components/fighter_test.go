package components

import (
	"testing"

	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestNewFighterFacesTheMiddle(t *testing.T) {
	t.Cleanup(cfg.Reset)

	left := NewFighter(0, cfg.Arena.P1StartX)
	right := NewFighter(1, cfg.Arena.P2StartX)

	assert.Equal(t, FacingRight, left.Direction)
	assert.Equal(t, FacingLeft, right.Direction)
	assert.True(t, left.OnGround)
	assert.Equal(t, cfg.Arena.GroundY, left.Rect().Bottom())
	assert.Equal(t, cfg.Fighter.MaxHealth, right.Health)
}

func TestAttackRect(t *testing.T) {
	t.Cleanup(cfg.Reset)

	f := NewFighter(0, 200)
	assert.True(t, f.AttackRect().Empty(), "no attack, no box")

	f.AttackCooldown = cfg.Combat.AttackDuration
	assert.Equal(t, gamemath.Rect{X: 250, Y: 365, W: 30, H: 20}, f.AttackRect())

	f.Direction = FacingLeft
	f.IsSuperActive = true
	f.AttackCooldown = cfg.Combat.SuperAttackDuration
	assert.Equal(t, gamemath.Rect{X: 160, Y: 365, W: 40, H: 20}, f.AttackRect())

	f.IsSuperActive = false
	f.AttackCooldown = cfg.Combat.AttackDuration
	f.IsCrouching = true
	f.SetHeight(cfg.Fighter.CrouchHeight)
	assert.Equal(t, cfg.Arena.GroundY, f.Rect().Bottom(), "crouching keeps the feet on the ground")
	assert.Equal(t, f.Y+cfg.Combat.CrouchAttackOffsetY, f.AttackRect().Y)
}

func TestAttackWindow(t *testing.T) {
	t.Cleanup(cfg.Reset)

	f := NewFighter(0, 200)
	assert.False(t, f.IsAttackActive())

	f.AttackCooldown = cfg.Combat.AttackDuration
	assert.True(t, f.CanHit())

	f.AttackCooldown = cfg.Combat.AttackDuration - cfg.Combat.ActiveHitFrame + 1
	assert.True(t, f.IsAttackActive())
	f.AttackCooldown--
	assert.False(t, f.IsAttackActive(), "recovery frames cannot hit")
	assert.True(t, f.AttackRect().Empty())

	f.AttackCooldown = cfg.Combat.AttackDuration
	f.RegisterHit()
	assert.True(t, f.IsAttackActive())
	assert.False(t, f.CanHit(), "an attack lands at most once")
}

func TestStatusIsExclusive(t *testing.T) {
	f := NewFighter(0, 200)
	f.Status = StatusData{Kind: StatusStunned, Timer: 15}

	assert.Equal(t, 15, f.StunTimer())
	assert.Zero(t, f.KnockdownTimer())
	assert.Zero(t, f.DashTimer())
	assert.False(t, f.CanAct())
	assert.False(t, f.CanAttack())

	f.Status = StatusData{Kind: StatusDashing, Timer: 4}
	assert.True(t, f.CanAct())
	assert.False(t, f.CanAttack(), "no attacks mid-dash")
}

func TestSuperReady(t *testing.T) {
	t.Cleanup(cfg.Reset)

	f := NewFighter(0, 200)
	f.SuperMeter = cfg.Combat.SuperAttackCost - 1
	assert.False(t, f.IsSuperReady())

	f.SuperMeter = cfg.Combat.SuperAttackCost
	assert.True(t, f.IsSuperReady())

	f.SuperAttackCooldown = 1
	assert.False(t, f.IsSuperReady())
}

func TestResetKeepsMeter(t *testing.T) {
	t.Cleanup(cfg.Reset)

	f := NewFighter(1, cfg.Arena.P2StartX)
	f.X, f.Health, f.SuperMeter = 10, 20, 70
	f.Status = StatusData{Kind: StatusKnockedDown, Timer: 30}

	f.Reset()

	assert.Equal(t, cfg.Arena.P2StartX, f.X)
	assert.Equal(t, cfg.Fighter.MaxHealth, f.Health)
	assert.Equal(t, 70, f.SuperMeter)
	assert.Equal(t, StatusNormal, f.Status.Kind)
	assert.Equal(t, 1, f.Index)
}
