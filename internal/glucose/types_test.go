package glucose

import (
	"errors"
	"math"
	"testing"
)

func TestDoseKindValid(t *testing.T) {
	tests := []struct {
		kind DoseKind
		want bool
	}{
		{Rapid, true},
		{Basal, true},
		{"intermediate", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.kind.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestSeriesPoints(t *testing.T) {
	s := Series{100, 110, 105}
	points := s.Points()

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i, p := range points {
		if p.Minute != i {
			t.Errorf("point %d: minute %d", i, p.Minute)
		}
		if p.Value != s[i] {
			t.Errorf("point %d: value %v, want %v", i, p.Value, s[i])
		}
	}
}

func TestSeriesIsValid(t *testing.T) {
	if !(Series{100, 110}).IsValid() {
		t.Error("finite series reported invalid")
	}
	if (Series{100, math.NaN()}).IsValid() {
		t.Error("NaN series reported valid")
	}
	if (Series{100, math.Inf(1)}).IsValid() {
		t.Error("Inf series reported valid")
	}
}

func TestSeriesMinMax(t *testing.T) {
	s := Series{110, 95, 130, 102}
	if got := s.Min(); got != 95 {
		t.Errorf("Min() = %v, want 95", got)
	}
	if got := s.Max(); got != 130 {
		t.Errorf("Max() = %v, want 130", got)
	}
}

func TestErrorWrapping(t *testing.T) {
	var perr error = &ParameterError{Field: "dawn.width", Value: 0, Reason: "must be positive"}
	if !errors.Is(perr, ErrInvalidParameter) {
		t.Error("ParameterError should unwrap to ErrInvalidParameter")
	}

	var derr error = &DoseError{Reason: "amount must be non-negative"}
	if !errors.Is(derr, ErrInvalidDose) {
		t.Error("DoseError should unwrap to ErrInvalidDose")
	}
}
