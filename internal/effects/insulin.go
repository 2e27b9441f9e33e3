package effects

import "github.com/san-kum/glucosim/internal/glucose"

const (
	rapidPeakDelay = 60   // minutes from injection to peak action
	rapidWidth     = 50.0 // minutes
	basalDrainRate = 0.02 // mg/dL drop per unit per minute
)

// Action returns the glucose-lowering contribution of dose d at minute t.
//
// Rapid insulin is a negative Gaussian peaking 60 minutes after injection.
// Basal insulin drains uniformly across the entire day once present in the
// schedule, with no gate on the injection time; the time field of a basal
// dose is recorded but never read here. An unrecognized kind contributes
// zero.
func Action(t int, d glucose.InsulinDose) float64 {
	switch d.Kind {
	case glucose.Rapid:
		peak := float64(d.Time + rapidPeakDelay)
		return -d.Amount * gaussian(float64(t), peak, rapidWidth)
	case glucose.Basal:
		return -d.Amount * basalDrainRate
	default:
		return 0
	}
}
