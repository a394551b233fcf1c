// Package normalize drives the two-pass loudness normalization flow:
// measure the source with the selected analyzer, resolve per-channel
// gain multipliers, rewind, and re-stream every sample through the
// gains into the sink.
package normalize

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-normalize/analyze"
	"github.com/cwbudde/algo-normalize/audio"
)

// Settings configures one normalization run. It is owned by the caller
// and borrowed, immutable, for the duration of the run; the caller
// validates it before invocation.
type Settings struct {
	// Mode selects the measurement algorithm.
	Mode analyze.Kind

	// Target level. Units depend on Mode: amplitude decibels for RMS,
	// loudness units for Integrated.
	Target float64

	// ChannelIndependent measures and gains each channel separately
	// instead of deriving one linked gain applied to all channels.
	ChannelIndependent bool

	// StrictR128 keeps the measurement exactly per ITU-R BS.1770 /
	// EBU R128. Without it the integrated measurement is normalized to
	// a stereo-equivalent result; see analyze.IntegratedAnalyzer.
	StrictR128 bool
}

// Normalize measures src, resolves gains against the target, rewinds
// src and writes the gained samples to dst in the original interleaved
// order, finalizing dst exactly once on success.
//
// The run is strictly linear with no retries: the first failure aborts
// it with the original cause, and dst is then not finalized — a failed
// run never produces output presented as valid. A nil progress reporter
// is allowed.
func (s Settings) Normalize(src audio.Source, dst audio.Sink, progress Progress) error {
	if progress == nil {
		progress = NopProgress{}
	}

	spec := src.Spec()
	if !spec.Valid() {
		return audio.ErrInvalidSpec
	}

	analyzer, err := analyze.New(s.Mode, s.ChannelIndependent, s.StrictR128)
	if err != nil {
		return err
	}

	measurement, err := analyzer.Analyze(src)
	if err != nil {
		return fmt.Errorf("normalize: measuring: %w", err)
	}

	gains, err := ResolveGains(s.Mode, measurement, s.Target, spec.Channels)
	if err != nil {
		return err
	}

	if err := src.SeekStart(); err != nil {
		return fmt.Errorf("normalize: rewinding source: %w", err)
	}

	progress.Begin(src.Frames())

	it := audio.NewFrameIterator(src)
	processed := 0

	for {
		frame, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("normalize: reading frame: %w", err)
		}

		vecmath.MulBlockInPlace(frame, gains)

		for _, v := range frame {
			if err := dst.WriteSample(v); err != nil {
				return fmt.Errorf("normalize: writing sample: %w", err)
			}
		}

		processed++
		progress.Advance(processed)
	}

	if err := dst.Finalize(); err != nil {
		return fmt.Errorf("normalize: finalizing output: %w", err)
	}

	return nil
}
