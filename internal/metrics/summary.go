// Package metrics computes day-level statistics over a finished glucose
// series.
package metrics

import "github.com/san-kum/glucosim/internal/glucose"

// Summary aggregates one simulated day.
type Summary struct {
	Mean         float64 `json:"mean"`
	Peak         float64 `json:"peak"`
	Nadir        float64 `json:"nadir"`
	TimeInRange  float64 `json:"time_in_range"` // fraction of minutes in [70, 180]
	HypoMinutes  int     `json:"hypo_minutes"`  // below 70 mg/dL
	HyperMinutes int     `json:"hyper_minutes"` // above 180 mg/dL
	EstimatedA1C float64 `json:"estimated_a1c"` // ADAG estimate from mean glucose
}

// Summarize walks the series once and fills a Summary. An empty series
// yields the zero Summary.
func Summarize(s glucose.Series) Summary {
	if len(s) == 0 {
		return Summary{}
	}

	sum := 0.0
	peak, nadir := s[0], s[0]
	inRange, hypo, hyper := 0, 0, 0

	for _, v := range s {
		sum += v
		if v > peak {
			peak = v
		}
		if v < nadir {
			nadir = v
		}
		switch {
		case v < glucose.Low:
			hypo++
		case v > glucose.High:
			hyper++
		default:
			inRange++
		}
	}

	mean := sum / float64(len(s))
	return Summary{
		Mean:         mean,
		Peak:         peak,
		Nadir:        nadir,
		TimeInRange:  float64(inRange) / float64(len(s)),
		HypoMinutes:  hypo,
		HyperMinutes: hyper,
		EstimatedA1C: (mean + 46.7) / 28.7,
	}
}
