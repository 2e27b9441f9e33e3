// Package config loads and saves day scenarios as YAML and provides the
// named presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/glucosim/internal/effects"
	"github.com/san-kum/glucosim/internal/glucose"
	"github.com/san-kum/glucosim/internal/schedule"
	"github.com/san-kum/glucosim/internal/sim"
)

const (
	DefaultDawnStrength = 25.0
	DefaultDawnPeak     = 6 * 60
	DefaultDawnWidth    = 90.0
	DefaultVariability  = 0.1
	DefaultDrugDose     = 1.0
	DefaultDrugTime     = 7 * 60
)

type Config struct {
	Baseline   float64          `yaml:"baseline"`
	DayMinutes int              `yaml:"day_minutes"`
	Seed       int64            `yaml:"seed"`
	Dawn       DawnConfig       `yaml:"dawn"`
	Drug       DrugConfig       `yaml:"weekly_drug"`
	Meals      []MealConfig     `yaml:"meals"`
	Exercises  []ExerciseConfig `yaml:"exercises"`
	Sleep      SleepConfig      `yaml:"sleep"`
	Insulin    []DoseConfig     `yaml:"insulin"`
}

type DawnConfig struct {
	Strength    float64 `yaml:"strength"`
	PeakTime    int     `yaml:"peak_time"`
	Width       float64 `yaml:"width"`
	Variability float64 `yaml:"variability"`
}

type DrugConfig struct {
	InjectionTime int     `yaml:"time"`
	Dose          float64 `yaml:"dose"`
}

type MealConfig struct {
	Time          int     `yaml:"time"`
	Carbs         float64 `yaml:"carbs"`
	GlycemicIndex float64 `yaml:"glycemic_index"`
}

type ExerciseConfig struct {
	Start     int     `yaml:"start"`
	Duration  int     `yaml:"duration"`
	Intensity float64 `yaml:"intensity"`
}

type SleepConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

type DoseConfig struct {
	Time   int              `yaml:"time"`
	Amount float64          `yaml:"amount"`
	Kind   glucose.DoseKind `yaml:"kind"`
}

// DefaultConfig is the reference day: four meals, an evening walk, sleep
// from 23:00 to 07:00, rapid insulin with breakfast and dinner, and a flat
// basal dose.
func DefaultConfig() *Config {
	return &Config{
		Baseline:   sim.DefaultBaseline,
		DayMinutes: glucose.MinutesPerDay,
		Dawn: DawnConfig{
			Strength:    DefaultDawnStrength,
			PeakTime:    DefaultDawnPeak,
			Width:       DefaultDawnWidth,
			Variability: DefaultVariability,
		},
		Drug: DrugConfig{InjectionTime: DefaultDrugTime, Dose: DefaultDrugDose},
		Meals: []MealConfig{
			{Time: 8 * 60, Carbs: 50, GlycemicIndex: 0.7},
			{Time: 12 * 60, Carbs: 70, GlycemicIndex: 0.8},
			{Time: 15 * 60, Carbs: 20, GlycemicIndex: 0.6},
			{Time: 19 * 60, Carbs: 80, GlycemicIndex: 0.75},
		},
		Exercises: []ExerciseConfig{
			{Start: 18 * 60, Duration: 30, Intensity: 2},
		},
		Sleep: SleepConfig{Start: 23 * 60, End: 7 * 60},
		Insulin: []DoseConfig{
			{Time: 7 * 60, Amount: 6, Kind: glucose.Rapid},
			{Time: 19 * 60, Amount: 6, Kind: glucose.Rapid},
			{Time: 0, Amount: 20, Kind: glucose.Basal},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SimConfig converts the YAML shape into the engine's scenario.
func (c *Config) SimConfig() sim.Config {
	meals := make([]effects.Meal, len(c.Meals))
	for i, m := range c.Meals {
		meals[i] = effects.Meal{Time: m.Time, Carbs: m.Carbs, GlycemicIndex: m.GlycemicIndex}
	}
	exercises := make([]effects.Exercise, len(c.Exercises))
	for i, ex := range c.Exercises {
		exercises[i] = effects.Exercise{Start: ex.Start, Duration: ex.Duration, Intensity: ex.Intensity}
	}
	return sim.Config{
		DayMinutes: c.DayMinutes,
		Baseline:   c.Baseline,
		Seed:       c.Seed,
		Dawn: effects.Dawn{
			Strength:    c.Dawn.Strength,
			PeakTime:    c.Dawn.PeakTime,
			Width:       c.Dawn.Width,
			Variability: c.Dawn.Variability,
		},
		Drug:      effects.WeeklyDrug{InjectionTime: c.Drug.InjectionTime, Dose: c.Drug.Dose},
		Meals:     meals,
		Exercises: exercises,
		Sleep:     effects.Sleep{Start: c.Sleep.Start, End: c.Sleep.End},
	}
}

// Schedule builds the caller-owned dose schedule from the config's insulin
// list, rejecting invalid doses.
func (c *Config) Schedule() (*schedule.Schedule, error) {
	s := schedule.New()
	for _, d := range c.Insulin {
		if err := s.Add(d.Time, d.Amount, d.Kind); err != nil {
			return nil, err
		}
	}
	return s, nil
}
