package analyze

import (
	"errors"
	"io"
	"math"

	"github.com/cwbudde/algo-normalize/audio"
)

// RMSAnalyzer measures root-mean-square amplitude: a single-pass
// arithmetic mean of squared sample values with no weighting and no
// gating. In linked mode the channels of each frame are combined into
// their arithmetic mean before squaring, so a stream with identical
// channels measures the same linked and independent.
type RMSAnalyzer struct {
	independent bool
}

// NewRMS returns an RMS analyzer.
func NewRMS(independent bool) *RMSAnalyzer {
	return &RMSAnalyzer{independent: independent}
}

// Analyze consumes src to end of stream. An empty stream fails with
// ErrInsufficientData; all-silence input yields a zero measurement.
func (a *RMSAnalyzer) Analyze(src audio.Source) (Measurement, error) {
	channels := src.Spec().Channels
	sums := make([]float64, channels)
	frames := 0

	it := audio.NewFrameIterator(src)

	for {
		frame, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Measurement{}, err
		}

		if a.independent {
			for c, v := range frame {
				sums[c] += v * v
			}
		} else {
			mono := 0.0
			for _, v := range frame {
				mono += v
			}

			mono /= float64(channels)
			sums[0] += mono * mono
		}

		frames++
	}

	if frames == 0 {
		return Measurement{}, ErrInsufficientData
	}

	if !a.independent {
		return LinkedMeasurement(math.Sqrt(sums[0] / float64(frames))), nil
	}

	values := make([]float64, channels)
	for c := range sums {
		values[c] = math.Sqrt(sums[c] / float64(frames))
	}

	return PerChannel(values), nil
}
