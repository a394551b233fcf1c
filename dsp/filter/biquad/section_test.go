package biquad_test

import (
	"testing"

	"github.com/cwbudde/algo-normalize/dsp/filter/biquad"
)

func TestSection_Identity(t *testing.T) {
	s := biquad.NewSection(biquad.Coefficients{B0: 1})

	for _, x := range []float64{1, -0.5, 0.25, 0} {
		if y := s.ProcessSample(x); y != x {
			t.Fatalf("identity section: got %v, want %v", y, x)
		}
	}
}

func TestSection_MatchesDirectForm(t *testing.T) {
	c := biquad.Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.1}
	s := biquad.NewSection(c)

	input := []float64{1, 0, 0.5, -1, 0.25, 0, 0, 0.75}

	// Reference difference equation:
	// y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a1*y[n-1] - a2*y[n-2]
	var x1, x2, y1, y2 float64

	for i, x := range input {
		want := c.B0*x + c.B1*x1 + c.B2*x2 - c.A1*y1 - c.A2*y2
		x2, x1 = x1, x
		y2, y1 = y1, want

		got := s.ProcessSample(x)
		if diff := got - want; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSection_Reset(t *testing.T) {
	c := biquad.Coefficients{B0: 0.3, B1: 0.3, A1: -0.4}
	s := biquad.NewSection(c)

	first := s.ProcessSample(1)
	s.ProcessSample(0.5)
	s.ProcessSample(-0.25)

	s.Reset()

	if got := s.ProcessSample(1); got != first {
		t.Fatalf("after Reset: got %v, want %v", got, first)
	}
}
