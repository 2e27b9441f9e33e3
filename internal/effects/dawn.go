package effects

import (
	"math"
	"math/rand"

	"github.com/san-kum/glucosim/internal/glucose"
)

// Valid dawn-phenomenon strength range in mg/dL.
const (
	MinDawnStrength = 10.0
	MaxDawnStrength = 50.0
)

// Dawn models the pre-dawn blood-glucose rise as a Gaussian bump centered
// at PeakTime with spread Width. Variability is the day-to-day amplitude
// jitter fraction in [0, 1).
type Dawn struct {
	Strength    float64
	PeakTime    int
	Width       float64
	Variability float64
}

// Contribution returns the dawn rise at minute t. A fresh symmetric jitter
// in [-0.5, 0.5] is drawn from rng at every call; at Variability zero the
// result is fully deterministic. The random source is injected so a fixed
// seed reproduces a whole run.
func (d Dawn) Contribution(t int, rng *rand.Rand) float64 {
	daily := 1 + d.Variability*(rng.Float64()-0.5)
	return d.Strength * daily * gaussian(float64(t), float64(d.PeakTime), d.Width)
}

func (d Dawn) Validate() error {
	if d.Width <= 0 {
		return &glucose.ParameterError{Field: "dawn.width", Value: d.Width, Reason: "must be positive"}
	}
	if d.Strength < MinDawnStrength || d.Strength > MaxDawnStrength {
		return &glucose.ParameterError{Field: "dawn.strength", Value: d.Strength,
			Reason: "must be within [10, 50]"}
	}
	if d.Variability < 0 || d.Variability >= 1 {
		return &glucose.ParameterError{Field: "dawn.variability", Value: d.Variability,
			Reason: "must be within [0, 1)"}
	}
	if d.PeakTime < 0 || d.PeakTime >= glucose.MinutesPerDay {
		return &glucose.ParameterError{Field: "dawn.peak_time", Value: float64(d.PeakTime),
			Reason: "must be a minute of day"}
	}
	return nil
}

// gaussian is the unnormalized bell curve exp(-(t-c)^2 / 2w^2) shared by the
// dawn, meal, and rapid-insulin effects. Callers guard against w == 0.
func gaussian(t, center, width float64) float64 {
	d := t - center
	return math.Exp(-(d * d) / (2 * width * width))
}
