package effects

import "testing"

func TestSleepFactorWrapping(t *testing.T) {
	s := Sleep{Start: 23 * 60, End: 7 * 60}

	tests := []struct {
		name   string
		minute int
		want   float64
	}{
		{"midnight", 0, 0.9},
		{"deep night", 3 * 60, 0.9},
		{"sleep start inclusive", 23 * 60, 0.9},
		{"sleep end inclusive", 7 * 60, 0.9},
		{"just before sleep", 23*60 - 1, 1.0},
		{"just after waking", 7*60 + 1, 1.0},
		{"midday", 12 * 60, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Factor(tt.minute); got != tt.want {
				t.Errorf("Factor(%d) = %v, want %v", tt.minute, got, tt.want)
			}
		})
	}
}

func TestSleepFactorNonWrapping(t *testing.T) {
	s := Sleep{Start: 13 * 60, End: 14 * 60}

	if got := s.Factor(13*60 + 30); got != 0.9 {
		t.Errorf("expected 0.9 during nap, got %v", got)
	}
	if got := s.Factor(12 * 60); got != 1.0 {
		t.Errorf("expected 1.0 before nap, got %v", got)
	}
	if got := s.Factor(15 * 60); got != 1.0 {
		t.Errorf("expected 1.0 after nap, got %v", got)
	}
}
