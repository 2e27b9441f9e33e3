package effects

import (
	"math"

	"github.com/san-kum/glucosim/internal/glucose"
)

// MaxDrugDose bounds the once-weekly agent dose.
const MaxDrugDose = 2.0

// drugTau is the exponential decay constant: 3 days in minutes.
const drugTau = 3 * 24 * 60

// WeeklyDrug is a once-per-cycle slow-decay agent (GLP-1 class). Its level
// blunts and delays meal absorption; see Meal.
type WeeklyDrug struct {
	InjectionTime int
	Dose          float64
}

// Level returns the circulating drug level at minute t: zero before the
// injection, Dose at the injection minute, then exponential decay. Never
// negative, monotonically non-increasing after injection.
func (w WeeklyDrug) Level(t int) float64 {
	if t < w.InjectionTime {
		return 0
	}
	return w.Dose * math.Exp(-float64(t-w.InjectionTime)/drugTau)
}

func (w WeeklyDrug) Validate() error {
	if w.Dose < 0 || w.Dose > MaxDrugDose {
		return &glucose.ParameterError{Field: "weekly_drug.dose", Value: w.Dose,
			Reason: "must be within [0, 2]"}
	}
	if w.InjectionTime < 0 || w.InjectionTime >= glucose.MinutesPerDay {
		return &glucose.ParameterError{Field: "weekly_drug.time", Value: float64(w.InjectionTime),
			Reason: "must be a minute of day"}
	}
	return nil
}
