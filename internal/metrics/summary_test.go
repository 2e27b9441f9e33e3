package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/glucosim/internal/glucose"
)

func TestSummarize(t *testing.T) {
	series := glucose.Series{60, 100, 150, 200, 90}
	sum := Summarize(series)

	if sum.Mean != 120 {
		t.Errorf("mean = %v, want 120", sum.Mean)
	}
	if sum.Peak != 200 {
		t.Errorf("peak = %v, want 200", sum.Peak)
	}
	if sum.Nadir != 60 {
		t.Errorf("nadir = %v, want 60", sum.Nadir)
	}
	if sum.HypoMinutes != 1 {
		t.Errorf("hypo minutes = %d, want 1", sum.HypoMinutes)
	}
	if sum.HyperMinutes != 1 {
		t.Errorf("hyper minutes = %d, want 1", sum.HyperMinutes)
	}
	if math.Abs(sum.TimeInRange-0.6) > 1e-12 {
		t.Errorf("time in range = %v, want 0.6", sum.TimeInRange)
	}

	wantA1C := (120 + 46.7) / 28.7
	if math.Abs(sum.EstimatedA1C-wantA1C) > 1e-12 {
		t.Errorf("estimated A1C = %v, want %v", sum.EstimatedA1C, wantA1C)
	}
}

func TestSummarizeBoundariesInclusive(t *testing.T) {
	sum := Summarize(glucose.Series{glucose.Low, glucose.High})
	if sum.HypoMinutes != 0 || sum.HyperMinutes != 0 {
		t.Errorf("threshold values should count as in range: hypo=%d hyper=%d",
			sum.HypoMinutes, sum.HyperMinutes)
	}
	if sum.TimeInRange != 1 {
		t.Errorf("time in range = %v, want 1", sum.TimeInRange)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum != (Summary{}) {
		t.Errorf("expected zero summary for empty series, got %+v", sum)
	}
}
