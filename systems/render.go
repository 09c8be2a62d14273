package systems

import (
	"image/color"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/gamemath"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/automoto/dinofight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena fills the sky and the floor below the ground line.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.SkyColor)
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	ground := float32(cfg.Arena.GroundY)
	vector.FillRect(screen, 0, ground, w, h-ground, cfg.HUD.GroundColor, false)
}

// DrawFighters renders each fighter as a box colored by what it is doing,
// plus its attack box and guard indicators.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)

		body := bodyColor(f)
		if entry.HasComponent(components.Flash) {
			body = applyFlash(body, components.Flash.Get(entry))
		}
		// Blink while invulnerable after getting up
		if f.InvulnTimer > 0 && (f.InvulnTimer/4)%2 == 0 {
			body.A /= 2
		}
		fillRect(screen, f.Rect(), body)

		// Eye on the facing side so direction reads at a glance
		r := f.Rect()
		eyeX := r.X + r.W - 12
		if f.Direction == components.FacingLeft {
			eyeX = r.X + 4
		}
		vector.FillRect(screen, float32(eyeX), float32(r.Y+6), 8, 6, color.RGBA{A: 255}, false)

		if f.IsAttackActive() {
			c := cfg.HUD.AttackColor
			if f.IsSuperActive {
				c = cfg.HUD.SuperBoxColor
			}
			if f.HasHit {
				c.A /= 3
			}
			fillRect(screen, f.AttackRect(), c)
		}

		switch {
		case f.IsBlocking:
			strokeRect(screen, r, 3, cfg.HUD.ShieldColor)
		case f.IsBlockOnCooldown:
			strokeRect(screen, r, 1, cfg.HUD.CooldownColor)
		}
		if f.InvulnTimer > 0 {
			strokeRect(screen, r, 1, cfg.HUD.InvulnColor)
		}
	})
}

// bodyColor picks the state color and tints it per player.
func bodyColor(f *components.FighterData) color.RGBA {
	c, ok := cfg.StateColors[sim.AnimationFor(f)]
	if !ok {
		c = cfg.StateColors[cfg.Idle]
	}
	tint := cfg.PlayerTints[f.Index%len(cfg.PlayerTints)]
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(tint.R) / 255),
		G: uint8(uint16(c.G) * uint16(tint.G) / 255),
		B: uint8(uint16(c.B) * uint16(tint.B) / 255),
		A: c.A,
	}
}

func applyFlash(c color.RGBA, flash *components.FlashData) color.RGBA {
	if flash.Duration <= 0 {
		return c
	}
	scale := func(v uint8, m float32) uint8 {
		return uint8(min(float32(v)*m, 255))
	}
	return color.RGBA{R: scale(c.R, flash.R), G: scale(c.G, flash.G), B: scale(c.B, flash.B), A: c.A}
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.RGBA) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, width float32, c color.RGBA) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}
