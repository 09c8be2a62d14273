package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/fonts"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/automoto/dinofight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateHUD animates the health trails and the round banner.
func UpdateHUD(e *ecs.ECS) {
	hud := GetOrCreateHUD(e)
	dt := 1 / float32(cfg.C.TPS)

	p1, p2, ok := sim.Fighters(e.World)
	if !ok {
		return
	}
	for i, entry := range [2]*donburi.Entry{p1, p2} {
		health := components.Fighter.Get(entry).Health
		switch {
		case health < hud.LastHealth[i]:
			hud.TrailTween[i] = gween.New(hud.Trail[i], float32(health), cfg.HUD.TrailSeconds, ease.OutQuad)
		case health > hud.LastHealth[i]:
			// Refilled for a new round
			hud.Trail[i] = float32(health)
			hud.TrailTween[i] = nil
		}
		hud.LastHealth[i] = health

		if tw := hud.TrailTween[i]; tw != nil {
			v, done := tw.Update(dt)
			hud.Trail[i] = v
			if done {
				hud.TrailTween[i] = nil
			}
		}
	}

	m := sim.MatchOf(e.World)
	if m == nil {
		return
	}
	if m.Phase != hud.LastPhase {
		hud.LastPhase = m.Phase
		hud.Banner = m.Message
		hud.BannerTween = nil
		if m.Phase != components.MatchFighting {
			hud.BannerX = -float32(cfg.C.Width)
			hud.BannerTween = gween.New(hud.BannerX, 0, cfg.HUD.BannerSeconds, ease.OutBack)
		}
	}
	if hud.BannerTween != nil {
		v, done := hud.BannerTween.Update(dt)
		hud.BannerX = v
		if done {
			hud.BannerTween = nil
		}
	}
}

// DrawHUD renders both fighters' health, meter, super cooldown and stocks.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := GetOrCreateHUD(e)
	p1, p2, ok := sim.Fighters(e.World)
	if !ok {
		return
	}
	m := sim.MatchOf(e.World)

	for i, entry := range [2]*donburi.Entry{p1, p2} {
		f := components.Fighter.Get(entry)

		// Player one's bars grow from the left edge, player two's from the right
		x := cfg.HUD.Margin
		if i == 1 {
			x = float32(screen.Bounds().Dx()) - cfg.HUD.Margin - cfg.HUD.BarWidth
		}
		y := cfg.HUD.Margin

		drawBar(screen, x, y, cfg.HUD.BarWidth, cfg.HUD.BarHeight, 1, cfg.HUD.BarBackground, i == 1)
		drawBar(screen, x, y, cfg.HUD.BarWidth, cfg.HUD.BarHeight,
			hud.Trail[i]/float32(cfg.Fighter.MaxHealth), cfg.HUD.TrailColor, i == 1)
		drawBar(screen, x, y, cfg.HUD.BarWidth, cfg.HUD.BarHeight,
			float32(f.Health)/float32(cfg.Fighter.MaxHealth), cfg.HUD.HealthColor, i == 1)

		my := y + cfg.HUD.BarHeight + 4
		meterColor := cfg.HUD.MeterColor
		if f.IsSuperReady() {
			meterColor = cfg.HUD.SuperColor
		}
		drawBar(screen, x, my, cfg.HUD.BarWidth, cfg.HUD.MeterHeight, 1, cfg.HUD.BarBackground, i == 1)
		drawBar(screen, x, my, cfg.HUD.BarWidth, cfg.HUD.MeterHeight,
			float32(f.SuperMeter)/float32(cfg.Fighter.MaxMeter), meterColor, i == 1)

		// Thin bar drains while the super recharges
		if f.SuperAttackCooldown > 0 && cfg.Combat.SuperAttackCooldown > 0 {
			cy := my + cfg.HUD.MeterHeight + 2
			drawBar(screen, x, cy, cfg.HUD.BarWidth, 2,
				float32(f.SuperAttackCooldown)/float32(cfg.Combat.SuperAttackCooldown), cfg.HUD.CooldownColor, i == 1)
		}

		label := fmt.Sprintf("P%d", i+1)
		if entry.HasComponent(components.Bot) {
			label = fmt.Sprintf("P%d CPU (%s)", i+1, components.Bot.Get(entry).Difficulty)
		}
		small := fonts.Small.Get()
		ly := int(my+cfg.HUD.MeterHeight) + 16
		lx := int(x)
		if i == 1 {
			lx = int(x+cfg.HUD.BarWidth) - textWidth(label, small)
		}
		text.Draw(screen, label, small, lx, ly, cfg.HUD.TextColor)

		if m != nil {
			drawStocks(screen, x, float32(ly+4), m.Stocks[i], i == 1)
		}
	}
}

// drawBar fills ratio of a bar; mirrored bars fill from the right.
func drawBar(screen *ebiten.Image, x, y, w, h, ratio float32, c color.RGBA, mirrored bool) {
	ratio = max(0, min(ratio, 1))
	fw := w * ratio
	if mirrored {
		x += w - fw
	}
	vector.FillRect(screen, x, y, fw, h, c, false)
}

func drawStocks(screen *ebiten.Image, x, y float32, stocks int, mirrored bool) {
	const size, gap = 8, 4
	for s := 0; s < stocks; s++ {
		sx := x + float32(s)*(size+gap)
		if mirrored {
			sx = x + cfg.HUD.BarWidth - size - float32(s)*(size+gap)
		}
		vector.FillRect(screen, sx, y, size, size, cfg.HUD.StockColor, false)
	}
}

func textWidth(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}

func centeredX(s string, face font.Face, width int) int {
	return (width - textWidth(s, face)) / 2
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		entry = factory.CreateHUD(e.World, cfg.Fighter.MaxHealth)
	}
	return components.HUD.Get(entry)
}
