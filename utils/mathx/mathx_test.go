package mathx

import (
	"math"
	"testing"

	"github.com/msto63/mdwx/utils/optional"
)

const epsilon = 1e-12

func some(v float64) Float { return optional.Of(v) }

func none() Float { return optional.None[float64]() }

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestUnaryWrappers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(Float) Float
		in   float64
		want float64
	}{
		{"Sin", Sin, math.Pi / 2, 1},
		{"Cos", Cos, 0, 1},
		{"Tan", Tan, math.Pi / 4, 1},
		{"Asin", Asin, 1, math.Pi / 2},
		{"Acos", Acos, 1, 0},
		{"Atan", Atan, 1, math.Pi / 4},
		{"Exp", Exp, 1, math.E},
		{"Log", Log, math.E, 1},
		{"Log10", Log10, 1000, 3},
		{"Sqrt", Sqrt, 16, 4},
		{"Abs", Abs, -2.5, 2.5},
		{"Floor", Floor, -1.5, -2},
		{"Ceiling", Ceiling, -1.5, -1},
		{"Truncate", Truncate, -1.7, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(some(tt.in)).Get()
			if !ok {
				t.Fatalf("%s(%v) is absent", tt.name, tt.in)
			}
			if !near(got, tt.want) {
				t.Errorf("%s(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
			}

			if tt.fn(none()).HasValue() {
				t.Errorf("%s(<no value>) must be absent", tt.name)
			}
		})
	}
}

func TestBinaryWrappers(t *testing.T) {
	if got := Pow(some(2), some(10)); got.MustGet() != 1024 {
		t.Errorf("Pow(2, 10) = %v", got)
	}
	if Pow(none(), some(2)).HasValue() || Pow(some(2), none()).HasValue() {
		t.Error("Pow with an absent operand must be absent")
	}
	if got := Atan2(some(1), some(1)); !near(got.MustGet(), math.Pi/4) {
		t.Errorf("Atan2(1, 1) = %v", got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		digits int
		want   float64
	}{
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{1.005, 1, 1.0},
		{1.25, 1, 1.3},
		{1234.5, -2, 1200},
		{0, 3, 0},
	}

	for _, tt := range tests {
		if got := Round(some(tt.in), tt.digits).MustGet(); !near(got, tt.want) {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.in, tt.digits, got, tt.want)
		}
	}

	if Round(none(), 2).HasValue() {
		t.Error("Round(<no value>) must be absent")
	}
	if !math.IsNaN(RoundTo(math.NaN(), 2)) {
		t.Error("RoundTo(NaN) must stay NaN")
	}
	if RoundTo(math.MaxFloat64, 10) != math.MaxFloat64 {
		t.Error("RoundTo must not overflow to Inf")
	}
	if got := RoundTo(123, -400); got != 0 || math.Signbit(got) {
		t.Errorf("RoundTo(123, -400) = %v, want 0", got)
	}
	if got := RoundTo(-123, -400); got != 0 || !math.Signbit(got) {
		t.Errorf("RoundTo(-123, -400) = %v, want -0", got)
	}
}
