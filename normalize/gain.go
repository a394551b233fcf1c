package normalize

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-normalize/analyze"
)

// ErrDegenerateMeasurement reports a measurement for which no finite
// gain exists (zero, near-zero or non-finite).
var ErrDegenerateMeasurement = errors.New("normalize: gain is undefined for a zero or non-finite measurement")

// ResolveGains maps a measurement and a target level to one gain
// multiplier per channel. It is a pure function: no I/O, no state.
//
// Integrated targets are loudness units, a power-ratio scale with 10
// per decade, so the power ratio is square-rooted into an amplitude
// multiplier. RMS targets are plain amplitude decibels; the measurement
// is already amplitude-domain.
//
// A linked measurement is broadcast: every channel receives the same
// multiplier. The returned slice always has length channels.
func ResolveGains(kind analyze.Kind, m analyze.Measurement, target float64, channels int) ([]float64, error) {
	perValue := make([]float64, len(m.Values))

	for i, x := range m.Values {
		if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: measured %v", ErrDegenerateMeasurement, x)
		}

		switch kind {
		case analyze.Integrated:
			perValue[i] = math.Sqrt(math.Pow(10, target/10) / x)
		case analyze.RMS:
			perValue[i] = math.Pow(10, target/20) / x
		case analyze.Amplitude:
			return nil, analyze.ErrNotImplemented
		default:
			return nil, fmt.Errorf("%w: %d", analyze.ErrUnknownKind, int(kind))
		}

		if math.IsNaN(perValue[i]) || math.IsInf(perValue[i], 0) {
			return nil, fmt.Errorf("%w: measured %v", ErrDegenerateMeasurement, x)
		}
	}

	gains := make([]float64, channels)
	for i := range gains {
		if m.Linked {
			gains[i] = perValue[0]
		} else {
			gains[i] = perValue[i]
		}
	}

	return gains, nil
}
