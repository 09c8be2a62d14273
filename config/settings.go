package config

// SettingsConfig contains preference storage configuration
type SettingsConfig struct {
	AppName     string
	StoreKey    string
	VolumeSteps []float64
}

// Settings is the global preference storage configuration
var Settings SettingsConfig

func init() {
	setSettingsDefaults()
}

func setSettingsDefaults() {
	Settings = SettingsConfig{
		AppName:     "dinofight",
		StoreKey:    "settings",
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
