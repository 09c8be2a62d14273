package components

import (
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Facing directions
const (
	FacingLeft  = -1
	FacingRight = 1
)

// FighterData is the full per-fighter simulation state.
type FighterData struct {
	Index  int // 0 for player one, 1 for player two
	SpawnX int

	// Body. X, Y is the top-left corner; a grounded fighter has Y+Height == GroundY.
	X, Y      int
	Width     int
	Height    int
	Direction int // FacingLeft or FacingRight

	// Physics
	VelX     float64
	VelY     int
	OnGround bool
	Moving   bool // walked this tick, drives the run animation

	Health     int
	SuperMeter int

	// Attack
	AttackCooldown      int // frames left in the current attack, 0 when idle
	SuperAttackCooldown int
	HasHit              bool // current attack already connected
	IsSuperActive       bool // current attack was started as a super

	// Guard
	IsCrouching       bool
	IsBlocking        bool
	BlockCooldown     int
	IsBlockOnCooldown bool

	Status        StatusData
	InvulnTimer   int
	DashCooldown  int
	DashRemaining int // pixels the current dash still has to cover
}

var Fighter = donburi.NewComponentType[FighterData]()

// Rect is the collision box.
func (f *FighterData) Rect() gamemath.Rect {
	return gamemath.Rect{X: f.X, Y: f.Y, W: f.Width, H: f.Height}
}

// AttackRect is the box in front of the fighter that the current attack
// covers. It is empty outside the active window.
func (f *FighterData) AttackRect() gamemath.Rect {
	if !f.IsAttackActive() {
		return gamemath.Rect{}
	}
	w := cfg.Combat.HitboxWidth
	if f.IsSuperActive {
		w = cfg.Combat.SuperHitboxWidth
	}
	offsetY := cfg.Combat.StandAttackOffsetY
	if f.IsCrouching {
		offsetY = cfg.Combat.CrouchAttackOffsetY
	}
	x := f.X + f.Width
	if f.Direction == FacingLeft {
		x = f.X - w
	}
	return gamemath.Rect{X: x, Y: f.Y + offsetY, W: w, H: cfg.Combat.HitboxHeight}
}

// IsAttackActive reports whether the attack is inside its hit window.
func (f *FighterData) IsAttackActive() bool {
	if f.AttackCooldown <= 0 {
		return false
	}
	duration, active := cfg.Combat.AttackDuration, cfg.Combat.ActiveHitFrame
	if f.IsSuperActive {
		duration, active = cfg.Combat.SuperAttackDuration, cfg.Combat.SuperActiveHitFrame
	}
	return f.AttackCooldown > duration-active
}

// CanHit reports whether the current attack may still land.
func (f *FighterData) CanHit() bool {
	return f.IsAttackActive() && !f.HasHit
}

// RegisterHit latches the current attack so it cannot hit twice.
func (f *FighterData) RegisterHit() {
	if f.AttackCooldown > 0 {
		f.HasHit = true
	}
}

// CanAct reports whether the fighter is under its own control this tick.
func (f *FighterData) CanAct() bool {
	return f.Status.Kind == StatusNormal || f.Status.Kind == StatusDashing
}

// CanAttack reports whether a regular attack could start this tick.
func (f *FighterData) CanAttack() bool {
	return f.Status.Kind == StatusNormal && f.AttackCooldown == 0
}

// IsSuperReady reports whether a super attack could start this tick.
func (f *FighterData) IsSuperReady() bool {
	return f.CanAttack() &&
		f.SuperMeter >= cfg.Combat.SuperAttackCost &&
		f.SuperAttackCooldown == 0
}

func (f *FighterData) StunTimer() int      { return f.Status.timerFor(StatusStunned) }
func (f *FighterData) KnockdownTimer() int { return f.Status.timerFor(StatusKnockedDown) }
func (f *FighterData) DashTimer() int      { return f.Status.timerFor(StatusDashing) }
func (f *FighterData) IsStunned() bool     { return f.Status.Kind == StatusStunned }
func (f *FighterData) IsKnockedDown() bool { return f.Status.Kind == StatusKnockedDown }
func (f *FighterData) IsDashing() bool     { return f.Status.Kind == StatusDashing }
func (f *FighterData) IsKO() bool          { return f.Health <= 0 }

// GroundTop is the Y a fighter of the current height has when standing on the ground.
func (f *FighterData) GroundTop() int {
	return cfg.Arena.GroundY - f.Height
}

// SetHeight changes the body height while keeping the feet where they are.
func (f *FighterData) SetHeight(h int) {
	feet := f.Y + f.Height
	f.Height = h
	f.Y = feet - h
}

// Reset puts the fighter back at its spawn for a new round. The super
// meter carries over.
func (f *FighterData) Reset() {
	meter := f.SuperMeter
	*f = NewFighter(f.Index, f.SpawnX)
	f.SuperMeter = meter
}

// NewFighter returns a grounded, full-health fighter at spawnX facing the
// middle of the arena.
func NewFighter(index, spawnX int) FighterData {
	dir := FacingRight
	if spawnX+cfg.Fighter.Width/2 > cfg.Arena.Width/2 {
		dir = FacingLeft
	}
	return FighterData{
		Index:     index,
		SpawnX:    spawnX,
		X:         spawnX,
		Y:         cfg.Arena.GroundY - cfg.Fighter.StandHeight,
		Width:     cfg.Fighter.Width,
		Height:    cfg.Fighter.StandHeight,
		Direction: dir,
		OnGround:  true,
		Health:    cfg.Fighter.MaxHealth,
	}
}
