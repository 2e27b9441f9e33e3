package effects

import (
	"math"
	"testing"
)

func TestMealPeakWithoutDrug(t *testing.T) {
	m := Meal{Time: 480, Carbs: 50, GlycemicIndex: 0.7}

	// Peak is 45 minutes after the meal; height is carbs * GI * 1.2.
	got := m.Contribution(525, 0)
	want := 50 * 0.7 * 1.2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected peak %v at meal+45, got %v", want, got)
	}
}

func TestMealDrugBluntsAndDelays(t *testing.T) {
	m := Meal{Time: 480, Carbs: 50, GlycemicIndex: 0.7}

	// drugLevel 1.0 lowers effective GI by 30% and moves the peak to +54.
	delayed := 480 + int(45*1.2)
	got := m.Contribution(delayed, 1.0)
	want := 50 * 0.7 * 0.7 * 1.2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected blunted peak %v at meal+54, got %v", want, got)
	}

	undrugged := m.Contribution(525, 0)
	if got >= undrugged {
		t.Errorf("drug should blunt the rise: %v >= %v", got, undrugged)
	}
}

func TestMealFadesFarFromPeak(t *testing.T) {
	m := Meal{Time: 480, Carbs: 50, GlycemicIndex: 0.7}

	if got := m.Contribution(0, 0); got > 1e-9 {
		t.Errorf("expected negligible contribution at midnight, got %v", got)
	}
}

func TestMealValidate(t *testing.T) {
	tests := []struct {
		name string
		meal Meal
		ok   bool
	}{
		{"valid", Meal{Time: 480, Carbs: 50, GlycemicIndex: 0.7}, true},
		{"zero carbs", Meal{Time: 480, Carbs: 0, GlycemicIndex: 0.7}, false},
		{"gi above one", Meal{Time: 480, Carbs: 50, GlycemicIndex: 1.2}, false},
		{"negative gi", Meal{Time: 480, Carbs: 50, GlycemicIndex: -0.1}, false},
		{"time out of day", Meal{Time: 1440, Carbs: 50, GlycemicIndex: 0.7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.meal.Validate()
			if tt.ok != (err == nil) {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
