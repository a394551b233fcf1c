package normalize_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-normalize/analyze"
	"github.com/cwbudde/algo-normalize/internal/testutil"
	"github.com/cwbudde/algo-normalize/normalize"
)

func TestResolveGains_RMSPerChannel(t *testing.T) {
	m := analyze.PerChannel([]float64{1, 2})

	gains, err := normalize.ResolveGains(analyze.RMS, m, 0, 2)
	if err != nil {
		t.Fatalf("ResolveGains: %v", err)
	}

	// Target 0 dB is unit amplitude: gain is the reciprocal of the
	// measured amplitude.
	testutil.RequireSliceNearlyEqual(t, gains, []float64{1, 0.5}, 0)
}

func TestResolveGains_LinkedBroadcast(t *testing.T) {
	m := analyze.LinkedMeasurement(0.5)

	gains, err := normalize.ResolveGains(analyze.RMS, m, 0, 3)
	if err != nil {
		t.Fatalf("ResolveGains: %v", err)
	}

	if len(gains) != 3 {
		t.Fatalf("gain count: got %d, want 3", len(gains))
	}

	for i, g := range gains {
		// Broadcast means bit-identical, not merely close.
		if g != gains[0] {
			t.Fatalf("gain %d: got %v, want %v", i, g, gains[0])
		}
	}

	testutil.RequireNear(t, gains[0], 2, 0)
}

func TestResolveGains_IntegratedSquareRootsPowerRatio(t *testing.T) {
	// Loudness is a power scale: reaching target 0 LU from a measured
	// power of 0.5 needs an amplitude gain of sqrt(2).
	m := analyze.LinkedMeasurement(0.5)

	gains, err := normalize.ResolveGains(analyze.Integrated, m, 0, 1)
	if err != nil {
		t.Fatalf("ResolveGains: %v", err)
	}

	testutil.RequireNear(t, gains[0], math.Sqrt2, 1e-12)
}

func TestResolveGains_DegenerateMeasurements(t *testing.T) {
	cases := []float64{0, -1, math.NaN(), math.Inf(1)}

	for _, v := range cases {
		_, err := normalize.ResolveGains(analyze.RMS, analyze.LinkedMeasurement(v), 0, 2)
		if !errors.Is(err, normalize.ErrDegenerateMeasurement) {
			t.Fatalf("measured %v: got %v, want ErrDegenerateMeasurement", v, err)
		}
	}
}

func TestResolveGains_AmplitudeNotImplemented(t *testing.T) {
	_, err := normalize.ResolveGains(analyze.Amplitude, analyze.LinkedMeasurement(0.5), 0, 1)
	if !errors.Is(err, analyze.ErrNotImplemented) {
		t.Fatalf("got %v, want ErrNotImplemented", err)
	}
}

func TestResolveGains_UnknownKind(t *testing.T) {
	_, err := normalize.ResolveGains(analyze.Kind(42), analyze.LinkedMeasurement(0.5), 0, 1)
	if !errors.Is(err, analyze.ErrUnknownKind) {
		t.Fatalf("got %v, want ErrUnknownKind", err)
	}
}
