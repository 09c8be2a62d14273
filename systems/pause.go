package systems

import (
	"fmt"

	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/fonts"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause on P.
// This system should run BEFORE the fight systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		pause.IsPaused = !pause.IsPaused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(e).IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.HUD.OverlayColor, false)

	label := "PAUSED"
	fontFace := fonts.Title.Get()
	text.Draw(screen, label, fontFace, centeredX(label, fontFace, int(width)), int(height)/2, cfg.HUD.TextColor)

	small := fonts.Small.Get()
	hint := "P: Resume   M: Mute   -/=: Volume   Esc: Quit"
	text.Draw(screen, hint, small, centeredX(hint, small, int(width)), int(height)/2+30, cfg.HUD.TextColor)
	volume := fmt.Sprintf("Volume %d%%", int(GetSFXVolume()*100+0.5))
	text.Draw(screen, volume, small, centeredX(volume, small, int(width)), int(height)/2+50, cfg.HUD.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithRoundChecks wraps a fight system so it only runs while a round is
// being fought and the players have not paused.
func WithRoundChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if !sim.RoundLive(e.World) {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	ent, ok := components.Pause.First(e.World)
	if !ok {
		ent = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(ent)
}
