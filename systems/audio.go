package systems

import (
	"log"
	"os"
	"sync"

	"github.com/automoto/dinofight/assets"
	"github.com/automoto/dinofight/components"
	cfg "github.com/automoto/dinofight/config"
	"github.com/automoto/dinofight/shared/sim"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, os.DirFS(cfg.Sound.Dir))
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
// Missing files are reported once and then stay silent.
func PreloadAllSFX() {
	initGlobalAudio()

	missing := 0
	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			missing++
		}
	}
	if missing > 0 {
		log.Printf("Warning: %d sound effects unavailable in %s, playing without them", missing, cfg.Sound.Dir)
	}
}

// UpdateAudio turns this tick's combat and match changes into sound effects
// and plays everything queued.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sim.SoundCues(e.World, &audioData.Last)...)

	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
	audioData.SFXVolume = globalSFXVolume
	audioData.Muted = globalMuted
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(min(volume, 1))
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = max(0, min(volume, 1))
}

// StepSFXVolume moves the volume one preset step up or down and returns it.
func StepSFXVolume(direction int) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return globalSFXVolume
	}
	i := closestStep(globalSFXVolume, steps) + direction
	i = max(0, min(i, len(steps)-1))
	SetSFXVolume(steps[i])
	return globalSFXVolume
}

func closestStep(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// SetMuted silences or restores sound effects without touching the volume.
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted reports whether sound effects are silenced.
func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
