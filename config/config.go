package config

import "image/color"

// Config holds window-level settings
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// ArenaConfig describes the flat stage both fighters stand on
type ArenaConfig struct {
	Width    int
	GroundY  int // y of the ground line; a grounded fighter has Y+Height == GroundY
	P1StartX int
	P2StartX int

	// Broadphase grid for the resolv space
	CellSize int
}

// FighterConfig contains movement and body values shared by both fighters
type FighterConfig struct {
	Width        int
	StandHeight  int
	CrouchHeight int

	MoveSpeed    int
	JumpVelocity int // negative is up
	Gravity      int

	MaxHealth int
	MaxMeter  int

	// Knockback velocity decay per tick while stunned or knocked down
	VelocityDecay float64
	// |VelX| below this snaps to zero
	VelocitySnap float64

	// Dash
	DashDistance int
	DashFrames   int
	DashCooldown int
}

// CombatConfig contains attack, damage and hit reaction values
type CombatConfig struct {
	// Regular attack timing (frames)
	AttackDuration int
	ActiveHitFrame int

	// Super attack timing (frames)
	SuperAttackDuration int
	SuperActiveHitFrame int
	SuperAttackCost     int
	SuperAttackCooldown int

	// Attack box
	HitboxWidth         int
	HitboxHeight        int
	SuperHitboxWidth    int
	StandAttackOffsetY  int
	CrouchAttackOffsetY int

	// Damage
	RegularDamage     int
	SuperDamage       int
	HeavyHitThreshold int // damage at or above this knocks down

	// Meter
	MeterGainHit  int // attacker, doubled for a super
	MeterGainHurt int // defender

	// Blocking
	BlockCooldown int

	// Hit reactions
	RegularStunFrames  int
	AirStunFrames      int
	KnockdownFrames    int
	WakeupInvulnFrames int
	LightKnockback     float64
	HeavyKnockback     float64
	KnockdownFallSpeed int // downward velocity given to an airborne fighter on knockdown

	// Overlapping fighters are pushed this far apart per tick
	PushApart int
}

// MatchConfig contains round and stock values
type MatchConfig struct {
	Stocks       int
	RoundFrames  int
	PauseFrames  int
	SplashFrames int
}

// HUDConfig contains layout and colors for the match overlay
type HUDConfig struct {
	BarWidth      float32
	BarHeight     float32
	MeterHeight   float32
	Margin        float32
	TrailSeconds  float32
	BannerSeconds float32

	HealthColor   color.RGBA
	TrailColor    color.RGBA
	MeterColor    color.RGBA
	SuperColor    color.RGBA
	BarBackground color.RGBA
	TextColor     color.RGBA
	StockColor    color.RGBA
	OverlayColor  color.RGBA

	// Arena and fighter overlays
	SkyColor        color.RGBA
	GroundColor     color.RGBA
	AttackColor     color.RGBA
	SuperBoxColor   color.RGBA
	ShieldColor     color.RGBA
	CooldownColor   color.RGBA
	InvulnColor     color.RGBA
	SparkColor      color.RGBA
	SuperSparkColor color.RGBA
}

var C *Config
var Arena ArenaConfig
var Fighter FighterConfig
var Combat CombatConfig
var Match MatchConfig
var HUD HUDConfig

func init() {
	setDefaults()
}

// Reset restores every tuning value to its default.
func Reset() {
	setDefaults()
	setBotDefaults()
	setAudioDefaults()
	setSettingsDefaults()
	setEffectsDefaults()
}

func setDefaults() {
	C = &Config{
		Width:  800,
		Height: 500,
		TPS:    60,
		Title:  "Dinofight",
	}

	Arena = ArenaConfig{
		Width:    800,
		GroundY:  400,
		P1StartX: 200,
		P2StartX: 550,
		CellSize: 16,
	}

	Fighter = FighterConfig{
		Width:        50,
		StandHeight:  50,
		CrouchHeight: 30,

		MoveSpeed:    5,
		JumpVelocity: -15,
		Gravity:      1,

		MaxHealth: 100,
		MaxMeter:  100,

		VelocityDecay: 0.85,
		VelocitySnap:  0.5,

		DashDistance: 120,
		DashFrames:   10,
		DashCooldown: 45,
	}

	Combat = CombatConfig{
		AttackDuration: 20,
		ActiveHitFrame: 10,

		SuperAttackDuration: 30,
		SuperActiveHitFrame: 12,
		SuperAttackCost:     50,
		SuperAttackCooldown: 25 * 60,

		HitboxWidth:         30,
		HitboxHeight:        20,
		SuperHitboxWidth:    40,
		StandAttackOffsetY:  15,
		CrouchAttackOffsetY: 5,

		RegularDamage:     10,
		SuperDamage:       50,
		HeavyHitThreshold: 50,

		MeterGainHit:  10,
		MeterGainHurt: 5,

		BlockCooldown: 120,

		RegularStunFrames:  15,
		AirStunFrames:      25,
		KnockdownFrames:    60,
		WakeupInvulnFrames: 30,
		LightKnockback:     6,
		HeavyKnockback:     12,
		KnockdownFallSpeed: 6,

		PushApart: 2,
	}

	Match = MatchConfig{
		Stocks:       3,
		RoundFrames:  99 * 60,
		PauseFrames:  120,
		SplashFrames: 60,
	}

	HUD = HUDConfig{
		BarWidth:      300,
		BarHeight:     18,
		MeterHeight:   6,
		Margin:        20,
		TrailSeconds:  0.5,
		BannerSeconds: 0.4,

		HealthColor:   color.RGBA{R: 60, G: 200, B: 80, A: 255},
		TrailColor:    color.RGBA{R: 220, G: 60, B: 60, A: 255},
		MeterColor:    color.RGBA{R: 70, G: 140, B: 255, A: 255},
		SuperColor:    color.RGBA{R: 255, G: 200, B: 40, A: 255},
		BarBackground: color.RGBA{R: 30, G: 30, B: 30, A: 200},
		TextColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		StockColor:    color.RGBA{R: 255, G: 120, B: 40, A: 255},
		OverlayColor:  color.RGBA{R: 0, G: 0, B: 0, A: 180},

		SkyColor:        color.RGBA{R: 24, G: 28, B: 48, A: 255},
		GroundColor:     color.RGBA{R: 90, G: 70, B: 50, A: 255},
		AttackColor:     color.RGBA{R: 255, G: 80, B: 80, A: 140},
		SuperBoxColor:   color.RGBA{R: 255, G: 200, B: 40, A: 160},
		ShieldColor:     color.RGBA{R: 120, G: 200, B: 255, A: 120},
		CooldownColor:   color.RGBA{R: 120, G: 120, B: 120, A: 120},
		InvulnColor:     color.RGBA{R: 255, G: 255, B: 255, A: 90},
		SparkColor:      color.RGBA{R: 255, G: 240, B: 160, A: 255},
		SuperSparkColor: color.RGBA{R: 255, G: 150, B: 40, A: 255},
	}
}
