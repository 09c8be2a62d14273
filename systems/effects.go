package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/automoto/dinofight/systems/factory"
	"github.com/automoto/dinofight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cosmetic only; never shares a source with the bots.
var effectsRNG = rand.New(rand.NewSource(42))

// UpdateEffects spawns sparks and flashes for this tick's combat events and
// ages the ones already running. Runs between rounds too.
func UpdateEffects(e *ecs.ECS) {
	spawnCombatEffects(e)
	updateFlashEffects(e)
	updateSparks(e)
}

func spawnCombatEffects(e *ecs.ECS) {
	p1, p2, ok := sim.Fighters(e.World)
	if !ok {
		return
	}
	byIndex := [2]*donburi.Entry{p1, p2}

	for _, ev := range sim.Events(e.World).Pending {
		count := cfg.Effects.SparkCount
		switch ev.Kind {
		case components.EventSuperHit:
			count = cfg.Effects.SuperSparkCount
		case components.EventBlocked:
			count = cfg.Effects.BlockSparkCount
		}
		spawnSparks(e.World, float64(ev.X), float64(ev.Y), count, ev.Kind == components.EventSuperHit)

		if ev.Attacker >= 0 && ev.Attacker < 2 {
			TriggerHitFlash(byIndex[ev.Attacker])
		}
		if ev.Kind != components.EventBlocked && ev.Defender >= 0 && ev.Defender < 2 {
			TriggerDamageFlash(byIndex[ev.Defender])
		}
	}
}

// spawnSparks bursts count particles outward from (x, y).
func spawnSparks(w donburi.World, x, y float64, count int, super bool) {
	size := cfg.Effects.SparkSize
	if super {
		size *= 1.5
	}
	for i := 0; i < count; i++ {
		angle := effectsRNG.Float64() * 2 * math.Pi
		speed := cfg.Effects.SparkSpeedMin + effectsRNG.Float64()*(cfg.Effects.SparkSpeedMax-cfg.Effects.SparkSpeedMin)
		factory.CreateSpark(w, x, y,
			math.Cos(angle)*speed, math.Sin(angle)*speed,
			cfg.Effects.SparkLife, size, super)
	}
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(e *ecs.ECS) {
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateSparks moves particles under gravity and removes expired ones
func updateSparks(e *ecs.ECS) {
	var toDestroy []*donburi.Entry

	tags.Spark.Each(e.World, func(entry *donburi.Entry) {
		s := components.Spark.Get(entry)
		s.X += s.VelX
		s.Y += s.VelY
		s.VelY += cfg.Effects.SparkGravity
		s.Life--
		if s.Life <= 0 {
			toDestroy = append(toDestroy, entry)
		}
	})

	for _, entry := range toDestroy {
		entry.Remove()
	}
}

// DrawSparks renders hit particles fading out over their life.
func DrawSparks(e *ecs.ECS, screen *ebiten.Image) {
	tags.Spark.Each(e.World, func(entry *donburi.Entry) {
		s := components.Spark.Get(entry)
		c := cfg.HUD.SparkColor
		if s.Super {
			c = cfg.HUD.SuperSparkColor
		}
		c.A = uint8(float64(c.A) * s.Alpha())
		half := float32(s.Size / 2)
		vector.FillRect(screen, float32(s.X)-half, float32(s.Y)-half, float32(s.Size), float32(s.Size), c, false)
	})
}

// TriggerHitFlash starts a white flash on the fighter that landed a hit
func TriggerHitFlash(entry *donburi.Entry) {
	if entry == nil || !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = cfg.Effects.HitFlashFrames
	flash.R, flash.G, flash.B = 3, 3, 3
}

// TriggerDamageFlash starts a red flash on the fighter that took damage
func TriggerDamageFlash(entry *donburi.Entry) {
	if entry == nil || !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = cfg.Effects.DamageFlashFrames
	flash.R, flash.G, flash.B = 3, 1, 1
}
