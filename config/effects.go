package config

// EffectsConfig tunes hit sparks and fighter flashes
type EffectsConfig struct {
	SparkLife       int
	SparkSpeedMin   float64
	SparkSpeedMax   float64
	SparkGravity    float64
	SparkSize       float64
	SparkCount      int
	SuperSparkCount int
	BlockSparkCount int

	HitFlashFrames    int
	DamageFlashFrames int
}

var Effects EffectsConfig

func init() {
	setEffectsDefaults()
}

func setEffectsDefaults() {
	Effects = EffectsConfig{
		SparkLife:       10,
		SparkSpeedMin:   3,
		SparkSpeedMax:   7,
		SparkGravity:    0.3,
		SparkSize:       3,
		SparkCount:      8,
		SuperSparkCount: 20,
		BlockSparkCount: 4,

		HitFlashFrames:    6,
		DamageFlashFrames: 10,
	}
}
