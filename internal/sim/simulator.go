// Package sim composes the effect curves into a one-day glucose series.
package sim

import (
	"math/rand"

	"github.com/san-kum/glucosim/internal/effects"
	"github.com/san-kum/glucosim/internal/glucose"
	"github.com/san-kum/glucosim/internal/schedule"
)

// DefaultBaseline is the steady-state glucose level in mg/dL.
const DefaultBaseline = 100.0

// Config is one day's scenario: the baseline, the fixed event lists, and the
// tunable dawn/drug parameters. Seed drives the dawn-phenomenon jitter; two
// runs with the same seed (or zero variability) produce identical series.
type Config struct {
	DayMinutes int
	Baseline   float64
	Seed       int64
	Dawn       effects.Dawn
	Drug       effects.WeeklyDrug
	Meals      []effects.Meal
	Exercises  []effects.Exercise
	Sleep      effects.Sleep
}

// Simulator evaluates the full minute grid for one day. It holds no state
// between runs beyond the immutable config.
type Simulator struct {
	cfg Config
}

func New(cfg Config) *Simulator {
	return &Simulator{cfg: cfg}
}

// Run produces the day's glucose series for the given dose schedule. The
// schedule is read-only during the run; a nil schedule means no insulin.
//
// Per minute t: the weekly-drug level feeds the meal bumps, all effect
// contributions are summed onto the baseline in arbitrary order, and the
// sleep-sensitivity factor scales the net deviation from baseline, never
// the baseline itself. Validation happens before any minute is computed, so
// a failed run yields nothing partial.
func (s *Simulator) Run(sched *schedule.Schedule) (glucose.Series, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	var doses []glucose.InsulinDose
	if sched != nil {
		doses = sched.Doses()
	}

	rng := rand.New(rand.NewSource(s.cfg.Seed))
	series := make(glucose.Series, 0, s.cfg.DayMinutes)

	for t := 0; t < s.cfg.DayMinutes; t++ {
		drugLevel := s.cfg.Drug.Level(t)

		raw := s.cfg.Baseline
		for _, m := range s.cfg.Meals {
			raw += m.Contribution(t, drugLevel)
		}
		for _, ex := range s.cfg.Exercises {
			raw += ex.Contribution(t)
		}
		for _, d := range doses {
			raw += effects.Action(t, d)
		}
		raw += s.cfg.Dawn.Contribution(t, rng)

		sens := s.cfg.Sleep.Factor(t)
		series = append(series, s.cfg.Baseline+(raw-s.cfg.Baseline)*sens)
	}

	return series, nil
}

func (s *Simulator) validate() error {
	if s.cfg.DayMinutes <= 0 {
		return &glucose.ParameterError{Field: "day_minutes", Value: float64(s.cfg.DayMinutes),
			Reason: "must be positive"}
	}
	if err := s.cfg.Dawn.Validate(); err != nil {
		return err
	}
	if err := s.cfg.Drug.Validate(); err != nil {
		return err
	}
	for _, m := range s.cfg.Meals {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, ex := range s.cfg.Exercises {
		if err := ex.Validate(); err != nil {
			return err
		}
	}
	return s.cfg.Sleep.Validate()
}
