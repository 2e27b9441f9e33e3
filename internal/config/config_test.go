package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/glucosim/internal/glucose"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Baseline != 100 {
		t.Errorf("expected baseline 100, got %v", cfg.Baseline)
	}
	if cfg.DayMinutes != glucose.MinutesPerDay {
		t.Errorf("expected %d day minutes, got %d", glucose.MinutesPerDay, cfg.DayMinutes)
	}
	if len(cfg.Meals) != 4 {
		t.Errorf("expected 4 meals, got %d", len(cfg.Meals))
	}
	if len(cfg.Insulin) != 3 {
		t.Errorf("expected 3 insulin doses, got %d", len(cfg.Insulin))
	}
	if cfg.Sleep.Start != 23*60 || cfg.Sleep.End != 7*60 {
		t.Errorf("unexpected sleep window %d-%d", cfg.Sleep.Start, cfg.Sleep.End)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("fasting")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Meals) != 0 {
		t.Errorf("fasting preset should have no meals, got %d", len(cfg.Meals))
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
	found := false
	for _, name := range names {
		if name == "standard" {
			found = true
		}
	}
	if !found {
		t.Error("expected standard preset in list")
	}
}

func TestPresetsAreIndependent(t *testing.T) {
	a := GetPreset("standard")
	a.Dawn.Strength = 50

	b := GetPreset("standard")
	if b.Dawn.Strength == 50 {
		t.Error("mutating one preset instance leaked into the next")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dawn.Strength = 42
	cfg.Seed = 7

	path := filepath.Join(t.TempDir(), "day.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Dawn.Strength != 42 {
		t.Errorf("expected dawn strength 42, got %v", loaded.Dawn.Strength)
	}
	if loaded.Seed != 7 {
		t.Errorf("expected seed 7, got %d", loaded.Seed)
	}
	if len(loaded.Meals) != len(cfg.Meals) {
		t.Errorf("meal count changed: %d vs %d", len(loaded.Meals), len(cfg.Meals))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSimConfigConversion(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.SimConfig()

	if len(sc.Meals) != len(cfg.Meals) {
		t.Errorf("meal count mismatch: %d vs %d", len(sc.Meals), len(cfg.Meals))
	}
	if len(sc.Exercises) != len(cfg.Exercises) {
		t.Errorf("exercise count mismatch: %d vs %d", len(sc.Exercises), len(cfg.Exercises))
	}
	if sc.Dawn.Strength != cfg.Dawn.Strength {
		t.Errorf("dawn strength not carried over")
	}
	if sc.Sleep.Start != cfg.Sleep.Start {
		t.Errorf("sleep window not carried over")
	}
}

func TestScheduleConversion(t *testing.T) {
	cfg := DefaultConfig()
	sched, err := cfg.Schedule()
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if sched.Len() != 3 {
		t.Errorf("expected 3 doses, got %d", sched.Len())
	}

	cfg.Insulin = append(cfg.Insulin, DoseConfig{Time: 420, Amount: -1, Kind: glucose.Rapid})
	if _, err := cfg.Schedule(); err == nil {
		t.Error("expected error for invalid configured dose")
	}
}
