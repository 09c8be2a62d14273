package components

import (
	cfg "github.com/automoto/dinofight/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID

	// Last is what the cue detector saw on the previous tick
	Last CueState
}

// CueState is the per-tick snapshot sound cues are edge-detected against.
type CueState struct {
	Seen     bool
	Status   [2]StatusKind
	Airborne [2]bool
	Phase    MatchPhase
	Round    int
}

var Audio = donburi.NewComponentType[AudioData]()
