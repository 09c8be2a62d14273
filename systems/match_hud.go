package systems

import (
	"fmt"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/fonts"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawMatchHUD renders match-specific UI elements (timer, round splash,
// round banner, results)
func DrawMatchHUD(e *ecs.ECS, screen *ebiten.Image) {
	match := sim.MatchOf(e.World)
	if match == nil {
		return
	}

	drawMatchTimer(screen, match)

	switch match.Phase {
	case components.MatchFighting:
		if match.SplashTimer > 0 {
			drawSplash(screen, match)
		}
	case components.MatchRoundOver:
		drawBanner(screen, GetOrCreateHUD(e))
	case components.MatchFinished:
		drawMatchResults(screen, match)
	}
}

func drawMatchTimer(screen *ebiten.Image, match *components.MatchData) {
	width := screen.Bounds().Dx()
	fontFace := fonts.Bold.Get()

	timeStr := fmt.Sprintf("%02d", match.SecondsRemaining())

	timerWidth := float32(56)
	timerHeight := float32(30)
	timerX := float32(width)/2 - timerWidth/2
	timerY := cfg.HUD.Margin - 4
	vector.FillRect(screen, timerX, timerY, timerWidth, timerHeight, cfg.HUD.OverlayColor, false)

	text.Draw(screen, timeStr, fontFace, centeredX(timeStr, fontFace, width), int(timerY)+22, cfg.HUD.TextColor)

	small := fonts.Small.Get()
	round := fmt.Sprintf("Round %d", match.Round)
	text.Draw(screen, round, small, centeredX(round, small, width), int(timerY+timerHeight)+14, cfg.HUD.TextColor)
}

func drawSplash(screen *ebiten.Image, match *components.MatchData) {
	width := screen.Bounds().Dx()
	titleFont := fonts.Title.Get()

	splash := "FIGHT!"
	c := cfg.HUD.SuperColor
	// Fade over the last third of the splash
	if fade := cfg.Match.SplashFrames / 3; fade > 0 && match.SplashTimer < fade {
		c.A = uint8(int(c.A) * match.SplashTimer / fade)
	}
	text.Draw(screen, splash, titleFont, centeredX(splash, titleFont, width), cfg.C.Height/2, c)
}

func drawBanner(screen *ebiten.Image, hud *components.HUDData) {
	if hud.Banner == "" {
		return
	}
	width := screen.Bounds().Dx()
	y := float32(cfg.C.Height)/2 - 30
	vector.FillRect(screen, hud.BannerX, y, float32(width), 48, cfg.HUD.OverlayColor, false)

	fontFace := fonts.Bold.Get()
	x := int(hud.BannerX) + centeredX(hud.Banner, fontFace, width)
	text.Draw(screen, hud.Banner, fontFace, x, int(y)+31, cfg.HUD.TextColor)
}

func drawMatchResults(screen *ebiten.Image, match *components.MatchData) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "MATCH OVER"
	text.Draw(screen, title, titleFont, centeredX(title, titleFont, width), height/2-40, cfg.HUD.StockColor)

	fontFace := fonts.Bold.Get()
	result := match.ResultMessage()
	c := cfg.HUD.TextColor
	if match.Winner >= 0 {
		c = cfg.PlayerTints[match.Winner%len(cfg.PlayerTints)]
	}
	text.Draw(screen, result, fontFace, centeredX(result, fontFace, width), height/2+4, c)

	hint := "R: Rematch   Esc: Quit"
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, centeredX(hint, small, width), height/2+40, cfg.HUD.TextColor)
}
