// Package schedule holds the caller-owned list of insulin doses.
//
// The schedule is mutated between simulation runs only; the engine reads a
// copy and never writes back. Invalid doses are rejected at mutation time so
// a running simulation never sees them.
package schedule

import "github.com/san-kum/glucosim/internal/glucose"

// Schedule is an ordered, mutable collection of insulin doses.
type Schedule struct {
	doses []glucose.InsulinDose
}

func New() *Schedule {
	return &Schedule{doses: make([]glucose.InsulinDose, 0, 4)}
}

// FromDoses builds a schedule from an existing dose list, validating each
// entry the same way Add does.
func FromDoses(doses []glucose.InsulinDose) (*Schedule, error) {
	s := New()
	for _, d := range doses {
		if err := s.Add(d.Time, d.Amount, d.Kind); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a dose. It rejects negative amounts, unknown kinds, and times
// outside the day with ErrInvalidDose.
func (s *Schedule) Add(time int, amount float64, kind glucose.DoseKind) error {
	d := glucose.InsulinDose{Time: time, Amount: amount, Kind: kind}
	if amount < 0 {
		return &glucose.DoseError{Dose: d, Reason: "amount must be non-negative"}
	}
	if !kind.Valid() {
		return &glucose.DoseError{Dose: d, Reason: "unknown insulin kind"}
	}
	if time < 0 || time >= glucose.MinutesPerDay {
		return &glucose.DoseError{Dose: d, Reason: "time must be a minute of day"}
	}
	s.doses = append(s.doses, d)
	return nil
}

// Remove deletes the dose at index, preserving order of the rest.
func (s *Schedule) Remove(index int) error {
	if index < 0 || index >= len(s.doses) {
		return &glucose.DoseError{Reason: "index out of range"}
	}
	s.doses = append(s.doses[:index], s.doses[index+1:]...)
	return nil
}

// Doses returns a copy of the dose list so callers cannot alias the
// schedule's backing array.
func (s *Schedule) Doses() []glucose.InsulinDose {
	c := make([]glucose.InsulinDose, len(s.doses))
	copy(c, s.doses)
	return c
}

func (s *Schedule) Len() int {
	return len(s.doses)
}
