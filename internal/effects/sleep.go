package effects

import "github.com/san-kum/glucosim/internal/glucose"

// sleepSensitivity is the insulin-sensitivity factor during sleep.
const sleepSensitivity = 0.9

// Sleep is the nightly sleep window. Start > End means the window wraps
// past midnight.
type Sleep struct {
	Start int
	End   int
}

// Factor returns the multiplicative insulin-sensitivity factor at minute t:
// 0.9 inside the sleep window, boundary minutes inclusive, else 1.0. The
// factor scales the total deviation from baseline, never individual effects.
func (s Sleep) Factor(t int) float64 {
	if s.Start > s.End {
		if t >= s.Start || t <= s.End {
			return sleepSensitivity
		}
		return 1.0
	}
	if t >= s.Start && t <= s.End {
		return sleepSensitivity
	}
	return 1.0
}

func (s Sleep) Validate() error {
	if s.Start < 0 || s.Start >= glucose.MinutesPerDay {
		return &glucose.ParameterError{Field: "sleep.start", Value: float64(s.Start),
			Reason: "must be a minute of day"}
	}
	if s.End < 0 || s.End >= glucose.MinutesPerDay {
		return &glucose.ParameterError{Field: "sleep.end", Value: float64(s.End),
			Reason: "must be a minute of day"}
	}
	return nil
}
