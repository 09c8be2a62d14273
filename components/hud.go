package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds the animated parts of the match overlay (singleton).
type HUDData struct {
	// Health shown behind the real bar that drains after a hit
	Trail      [2]float32
	TrailTween [2]*gween.Tween
	LastHealth [2]int

	// Round message banner slide
	Banner      string
	BannerX     float32
	BannerTween *gween.Tween
	LastPhase   MatchPhase
}

var HUD = donburi.NewComponentType[HUDData]()
