package config

import "github.com/san-kum/glucosim/internal/glucose"

// Presets are ready-made day scenarios. Each builds from DefaultConfig so a
// preset only states what differs from the reference day.
var Presets = map[string]func() *Config{
	"standard": DefaultConfig,
	"fasting": func() *Config {
		cfg := DefaultConfig()
		cfg.Meals = nil
		cfg.Insulin = []DoseConfig{
			{Time: 0, Amount: 20, Kind: glucose.Basal},
		}
		return cfg
	},
	"active": func() *Config {
		cfg := DefaultConfig()
		cfg.Exercises = []ExerciseConfig{
			{Start: 7 * 60, Duration: 45, Intensity: 3},
			{Start: 18 * 60, Duration: 60, Intensity: 2},
		}
		return cfg
	},
	"no-insulin": func() *Config {
		cfg := DefaultConfig()
		cfg.Insulin = nil
		return cfg
	},
	"no-drug": func() *Config {
		cfg := DefaultConfig()
		cfg.Drug.Dose = 0
		return cfg
	},
}

func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
