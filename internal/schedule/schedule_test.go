package schedule

import (
	"errors"
	"testing"

	"github.com/san-kum/glucosim/internal/glucose"
)

func TestAddAndRemove(t *testing.T) {
	s := New()

	if err := s.Add(420, 6, glucose.Rapid); err != nil {
		t.Fatalf("add rapid: %v", err)
	}
	if err := s.Add(0, 20, glucose.Basal); err != nil {
		t.Fatalf("add basal: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 doses, got %d", s.Len())
	}

	if err := s.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 dose after remove, got %d", s.Len())
	}
	if got := s.Doses()[0].Kind; got != glucose.Basal {
		t.Errorf("expected remaining dose to be basal, got %s", got)
	}
}

func TestAddRejectsInvalidDoses(t *testing.T) {
	tests := []struct {
		name   string
		time   int
		amount float64
		kind   glucose.DoseKind
	}{
		{"negative amount", 420, -1, glucose.Rapid},
		{"unknown kind", 420, 6, "intermediate"},
		{"negative time", -1, 6, glucose.Rapid},
		{"time past day end", glucose.MinutesPerDay, 6, glucose.Rapid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			err := s.Add(tt.time, tt.amount, tt.kind)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, glucose.ErrInvalidDose) {
				t.Errorf("expected ErrInvalidDose, got %v", err)
			}
			if s.Len() != 0 {
				t.Error("rejected dose should not be appended")
			}
		})
	}
}

func TestAddAllowsZeroAmount(t *testing.T) {
	s := New()
	if err := s.Add(420, 0, glucose.Rapid); err != nil {
		t.Errorf("zero amount should be accepted, got %v", err)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	s := New()
	if err := s.Remove(0); !errors.Is(err, glucose.ErrInvalidDose) {
		t.Errorf("expected ErrInvalidDose for empty schedule, got %v", err)
	}

	_ = s.Add(420, 6, glucose.Rapid)
	if err := s.Remove(1); !errors.Is(err, glucose.ErrInvalidDose) {
		t.Errorf("expected ErrInvalidDose for index past end, got %v", err)
	}
	if err := s.Remove(-1); !errors.Is(err, glucose.ErrInvalidDose) {
		t.Errorf("expected ErrInvalidDose for negative index, got %v", err)
	}
}

func TestDosesReturnsCopy(t *testing.T) {
	s := New()
	_ = s.Add(420, 6, glucose.Rapid)

	doses := s.Doses()
	doses[0].Amount = 99

	if got := s.Doses()[0].Amount; got != 6 {
		t.Errorf("mutating the returned slice leaked into the schedule: %v", got)
	}
}

func TestFromDoses(t *testing.T) {
	s, err := FromDoses([]glucose.InsulinDose{
		{Time: 420, Amount: 6, Kind: glucose.Rapid},
		{Time: 0, Amount: 20, Kind: glucose.Basal},
	})
	if err != nil {
		t.Fatalf("FromDoses: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 doses, got %d", s.Len())
	}

	_, err = FromDoses([]glucose.InsulinDose{{Time: 420, Amount: -1, Kind: glucose.Rapid}})
	if !errors.Is(err, glucose.ErrInvalidDose) {
		t.Errorf("expected ErrInvalidDose, got %v", err)
	}
}
