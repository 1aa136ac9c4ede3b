package scope

import (
	"math"
	"testing"
)

func TestNumberScaler(t *testing.T) {
	tests := []struct {
		Domain Domain[float64]
		Range  Range
		Value  float64
		Want   float64
	}{
		{Domain: NumberDomain(0, 10), Range: NewRange(0, 100), Value: 5, Want: 50},
		{Domain: NumberDomain(0, 10), Range: NewRange(0, 100), Value: 10, Want: 100},
		{Domain: NumberDomain(0, 10), Range: NewRange(20, 120), Value: 0, Want: 20},
		{Domain: NumberDomain(1, -1), Range: NewRange(0, 200), Value: 1, Want: 0},
		{Domain: NumberDomain(1, -1), Range: NewRange(0, 200), Value: -1, Want: 200},
		{Domain: NumberDomain(1, -1), Range: NewRange(0, 200), Value: 0, Want: 100},
	}
	for _, tt := range tests {
		got := NumberScaler(tt.Domain, tt.Range).Scale(tt.Value)
		if math.Abs(got-tt.Want) > 1e-9 {
			t.Errorf("Scale(%g) = %g, want %g", tt.Value, got, tt.Want)
		}
	}
}

func TestNumberDomainBounds(t *testing.T) {
	lo, hi := NumberDomain(1.1, -1.1).Bounds()
	if lo != -1.1 || hi != 1.1 {
		t.Errorf("reversed bounds = (%g, %g), want (-1.1, 1.1)", lo, hi)
	}
	lo, hi = NumberDomain(3, 3).Bounds()
	if lo != 2 || hi != 4 {
		t.Errorf("degenerated bounds = (%g, %g), want (2, 4)", lo, hi)
	}
}

func TestTicks(t *testing.T) {
	got := Ticks(-1.1, 1.1, 9)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	if len(got) != len(want) {
		t.Fatalf("Ticks(-1.1, 1.1) = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("tick %d = %g, want %g", i, got[i], want[i])
		}
	}

	got = Ticks(0, 47900, 9)
	if len(got) != 10 || got[0] != 0 || got[len(got)-1] != 45000 {
		t.Errorf("Ticks(0, 47900) = %v", got)
	}
}

func TestTicksNonFinite(t *testing.T) {
	tests := []struct {
		Lo, Hi float64
	}{
		{Lo: math.NaN(), Hi: 1},
		{Lo: -1, Hi: math.NaN()},
		{Lo: math.Inf(-1), Hi: math.Inf(1)},
		{Lo: 0, Hi: math.Inf(1)},
		{Lo: -1e308, Hi: 1e308},
	}
	for _, tt := range tests {
		if got := Ticks(tt.Lo, tt.Hi, 9); len(got) != 0 {
			t.Errorf("Ticks(%g, %g) = %v, want no tick", tt.Lo, tt.Hi, got)
		}
	}
}

func TestTicksBounded(t *testing.T) {
	got := Ticks(0, 5e-324, 9)
	if len(got) > maxTicks+1 {
		t.Fatalf("Ticks(0, 5e-324) gave %d ticks", len(got))
	}
	for _, v := range got {
		if v < 0 || v > 5e-324 {
			t.Errorf("tick %g outside of [0, 5e-324]", v)
		}
	}
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		Values []float64
		Want   int
	}{
		{Values: []float64{0, 5000, 10000}, Want: 0},
		{Values: []float64{-1, -0.5, 0}, Want: 1},
		{Values: []float64{0, 0.25, 0.5}, Want: 2},
		{Values: []float64{1}, Want: 0},
	}
	for _, tt := range tests {
		if got := Precision(tt.Values); got != tt.Want {
			t.Errorf("Precision(%v) = %d, want %d", tt.Values, got, tt.Want)
		}
	}
}
