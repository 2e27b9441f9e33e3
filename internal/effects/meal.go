package effects

import "github.com/san-kum/glucosim/internal/glucose"

const (
	mealWidth      = 30.0 // minutes
	mealRiseFactor = 1.2  // mg/dL per effective carb gram
	mealPeakDelay  = 45.0 // minutes from meal to absorption peak
)

// Meal is one carbohydrate intake event.
type Meal struct {
	Time          int
	Carbs         float64
	GlycemicIndex float64
}

// Contribution returns the absorption bump at minute t. drugLevel is the
// weekly-drug level at t: it lowers the effective glycemic index by 30% per
// unit and stretches the time-to-peak by 20% per unit.
func (m Meal) Contribution(t int, drugLevel float64) float64 {
	gi := m.GlycemicIndex * (1 - 0.3*drugLevel)
	peakRise := m.Carbs * gi * mealRiseFactor
	peakTime := float64(m.Time) + mealPeakDelay*(1+0.2*drugLevel)
	return peakRise * gaussian(float64(t), peakTime, mealWidth)
}

func (m Meal) Validate() error {
	if m.Carbs <= 0 {
		return &glucose.ParameterError{Field: "meal.carbs", Value: m.Carbs, Reason: "must be positive"}
	}
	if m.GlycemicIndex < 0 || m.GlycemicIndex > 1 {
		return &glucose.ParameterError{Field: "meal.glycemic_index", Value: m.GlycemicIndex,
			Reason: "must be within [0, 1]"}
	}
	if m.Time < 0 || m.Time >= glucose.MinutesPerDay {
		return &glucose.ParameterError{Field: "meal.time", Value: float64(m.Time),
			Reason: "must be a minute of day"}
	}
	return nil
}
