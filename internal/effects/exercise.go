package effects

import "github.com/san-kum/glucosim/internal/glucose"

// exerciseDrop is the glucose drop in mg/dL per intensity unit per minute.
const exerciseDrop = 0.5

// Exercise is one activity window with a flat glucose-lowering effect.
type Exercise struct {
	Start     int
	Duration  int
	Intensity float64
}

// Contribution is a step function: -0.5*Intensity for every minute in the
// closed interval [Start, Start+Duration], zero outside. No smoothing.
func (e Exercise) Contribution(t int) float64 {
	if t >= e.Start && t <= e.Start+e.Duration {
		return -exerciseDrop * e.Intensity
	}
	return 0
}

func (e Exercise) Validate() error {
	if e.Duration < 0 {
		return &glucose.ParameterError{Field: "exercise.duration", Value: float64(e.Duration),
			Reason: "must be non-negative"}
	}
	if e.Intensity < 0 {
		return &glucose.ParameterError{Field: "exercise.intensity", Value: e.Intensity,
			Reason: "must be non-negative"}
	}
	if e.Start < 0 || e.Start >= glucose.MinutesPerDay {
		return &glucose.ParameterError{Field: "exercise.start", Value: float64(e.Start),
			Reason: "must be a minute of day"}
	}
	return nil
}
