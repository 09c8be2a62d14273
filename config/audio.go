package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundHit
	SoundSuperHit
	SoundBlock
	SoundKnockdown
	// Movement sounds
	SoundJump
	SoundDash
	// Match sounds
	SoundFight
	SoundRoundOver
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths relative to Dir
type SoundConfig struct {
	Dir               string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	setAudioDefaults()
}

func setAudioDefaults() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Dir: "assets/audio",
		SFXPaths: map[SoundID]string{
			SoundHit:       "sfx/hit.wav",
			SoundSuperHit:  "sfx/super_hit.wav",
			SoundBlock:     "sfx/block.wav",
			SoundKnockdown: "sfx/knockdown.wav",
			SoundJump:      "sfx/jump.wav",
			SoundDash:      "sfx/dash.wav",
			SoundFight:     "sfx/fight.ogg",
			SoundRoundOver: "sfx/round_over.ogg",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSuperHit: 1.5,
			SoundBlock:    0.8,
		},
	}
}
