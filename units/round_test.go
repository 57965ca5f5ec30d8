package units

import (
	"math"
	"testing"
)

func TestRoundSmart_TrimsRepresentationNoise(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.0/8.0 - 1e-17, 0.125},
		{124.99999999999999, 125},
		{0.1 + 0.2, 0.3},
		{8000.000000000001, 8000},
	}
	for _, c := range cases {
		if got := RoundSmart(c.in); got != c.want {
			t.Errorf("RoundSmart(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRoundSmart_KeepsGenuinePrecision(t *testing.T) {
	v := 0.1237654
	got := RoundSmart(v)
	if math.Abs(got-v) > 1e-12 {
		t.Errorf("RoundSmart(%v) = %v, materially changed a precise value", v, got)
	}
}

func TestRoundSmart_PassThrough(t *testing.T) {
	if got := RoundSmart(0); got != 0 {
		t.Errorf("RoundSmart(0) = %v, want 0", got)
	}
	if got := RoundSmart(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("RoundSmart(+Inf) = %v, want +Inf", got)
	}
	if got := RoundSmart(math.NaN()); !math.IsNaN(got) {
		t.Errorf("RoundSmart(NaN) = %v, want NaN", got)
	}
}
