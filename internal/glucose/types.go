package glucose

import "math"

// MinutesPerDay is the length of the standard simulated day. Every time
// field below is a minute-of-day index in [0, MinutesPerDay).
const MinutesPerDay = 1440

// Display thresholds in mg/dL.
const (
	UrgentLow  = 55.0
	Low        = 70.0
	High       = 180.0
	UrgentHigh = 250.0
)

// DoseKind distinguishes fast-acting from long-acting insulin.
type DoseKind string

const (
	Rapid DoseKind = "rapid"
	Basal DoseKind = "basal"
)

func (k DoseKind) Valid() bool {
	return k == Rapid || k == Basal
}

// InsulinDose is one scheduled insulin administration.
type InsulinDose struct {
	Time   int      `yaml:"time" json:"time"`
	Amount float64  `yaml:"amount" json:"amount"`
	Kind   DoseKind `yaml:"kind" json:"kind"`
}

// Series is one day of simulated glucose values, one per minute.
type Series []float64

// Point is a single chartable sample.
type Point struct {
	Minute int     `json:"minute"`
	Value  float64 `json:"glucose"`
}

// Points expands the series into (minute, value) pairs for charting.
func (s Series) Points() []Point {
	points := make([]Point, len(s))
	for i, v := range s {
		points[i] = Point{Minute: i, Value: v}
	}
	return points
}

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether the series is free of NaN and Inf values.
// Producing either on valid input is a defect in the engine.
func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Series) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (s Series) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
