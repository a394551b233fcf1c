package analyze

import (
	"errors"
	"io"
	"math"

	"github.com/cwbudde/algo-normalize/audio"
	"github.com/cwbudde/algo-normalize/dsp/filter/biquad"
	"github.com/cwbudde/algo-normalize/dsp/filter/design"
	"github.com/meko-christian/algo-approx"
)

const (
	// K-weighting filter parameters from BS.1770.
	kWeightingShelfFreq = 1500.0
	kWeightingShelfGain = 4.0

	kWeightingHpfFreq = 38.0

	// Gating block geometry: 400 ms windows advancing in 100 ms steps
	// (75% overlap).
	blockDuration   = 0.4
	blockStepFactor = 0.25
	blockSteps      = 4

	// Gating thresholds in loudness units.
	absGateLU = -70.0
	relGateLU = -10.0

	// BS.1770 offset between mean-square power and loudness units.
	powerToLU = -0.691
)

// IntegratedAnalyzer measures gated, K-weighted integrated loudness per
// ITU-R BS.1770 / EBU R128. Each channel is pre-filtered with the
// two-stage K-weighting response, mean-square power is computed over
// 400 ms blocks with 75% overlap, and blocks pass an absolute -70 LU
// gate followed by a relative gate 10 LU below the mean of the
// survivors. The measurement is the mean linear power of the blocks
// surviving both gates.
//
// In linked mode the channel powers are summed with unity weights
// before gating, yielding one measurement; extending the weighting to
// surround layouts is out of scope. In independent mode the whole
// pipeline runs once per channel, each channel keeping its own blocks
// and gates.
//
// The strict flag selects exact standard compliance: the raw
// channel-power sum and exact gate arithmetic. Relaxed mode (the
// default for callers that do not need strict EBU R128 numbers)
// additionally normalizes the result to a stereo-equivalent power and
// uses a fast logarithm approximation for per-block gate comparisons.
//
// Streams shorter than one gating block, and streams whose blocks are
// all gated away (silence), measure as zero power; the gain resolver
// rejects such measurements as degenerate.
type IntegratedAnalyzer struct {
	independent bool
	strict      bool
}

// NewIntegrated returns an integrated-loudness analyzer.
func NewIntegrated(independent, strict bool) *IntegratedAnalyzer {
	return &IntegratedAnalyzer{independent: independent, strict: strict}
}

// kWeighting is the two-stage BS.1770 pre-filter: a high shelf boosting
// above 1.5 kHz followed by a 38 Hz highpass.
type kWeighting struct {
	shelf *biquad.Section
	hpf   *biquad.Section
}

func newKWeighting(sampleRate float64) *kWeighting {
	q := 1 / math.Sqrt2

	return &kWeighting{
		shelf: biquad.NewSection(design.HighShelf(kWeightingShelfFreq, kWeightingShelfGain, q, sampleRate)),
		hpf:   biquad.NewSection(design.Highpass(kWeightingHpfFreq, q, sampleRate)),
	}
}

func (k *kWeighting) process(x float64) float64 {
	return k.hpf.ProcessSample(k.shelf.ProcessSample(x))
}

// lane accumulates gating blocks for one measurement stream: a single
// channel in independent mode, the channel-power sum in linked mode.
type lane struct {
	stepSums [blockSteps]float64 // ring of the last completed step sums
	stepSum  float64             // squares accumulated in the current step
	steps    int                 // completed steps so far
	blocks   []float64           // mean-square power per gating block
}

func (l *lane) finishStep(blockSamples int) {
	l.stepSums[l.steps%blockSteps] = l.stepSum
	l.stepSum = 0
	l.steps++

	if l.steps < blockSteps {
		return
	}

	sum := 0.0
	for _, s := range l.stepSums {
		sum += s
	}

	l.blocks = append(l.blocks, sum/float64(blockSamples))
}

// Analyze consumes src to end of stream. An empty stream fails with
// ErrInsufficientData.
func (a *IntegratedAnalyzer) Analyze(src audio.Source) (Measurement, error) {
	spec := src.Spec()
	channels := spec.Channels

	filters := make([]*kWeighting, channels)
	for i := range filters {
		filters[i] = newKWeighting(float64(spec.SampleRate))
	}

	stepSamples := max(int(math.Round(blockDuration*blockStepFactor*float64(spec.SampleRate))), 1)
	blockSamples := blockSteps * stepSamples

	laneCount := 1
	if a.independent {
		laneCount = channels
	}

	lanes := make([]lane, laneCount)

	it := audio.NewFrameIterator(src)
	frames := 0
	inStep := 0

	for {
		frame, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Measurement{}, err
		}

		for c, v := range frame {
			w := filters[c].process(v)

			if a.independent {
				lanes[c].stepSum += w * w
			} else {
				lanes[0].stepSum += w * w
			}
		}

		frames++

		inStep++
		if inStep == stepSamples {
			inStep = 0

			for l := range lanes {
				lanes[l].finishStep(blockSamples)
			}
		}
	}

	if frames == 0 {
		return Measurement{}, ErrInsufficientData
	}

	scale := a.resultScale(channels)

	if !a.independent {
		return LinkedMeasurement(scale * a.gatedPower(lanes[0].blocks)), nil
	}

	values := make([]float64, channels)
	for c := range lanes {
		values[c] = scale * a.gatedPower(lanes[c].blocks)
	}

	return PerChannel(values), nil
}

// resultScale normalizes relaxed-mode results to a stereo-equivalent
// power so mono and multi-channel material land at comparable targets:
// the linked channel-power sum is rescaled by 2/channels, and an
// isolated channel is counted as a coherent stereo pair. Strict EBU
// R128 keeps the raw sum.
func (a *IntegratedAnalyzer) resultScale(channels int) float64 {
	if a.strict {
		return 1
	}

	if a.independent {
		return 2
	}

	return 2 / float64(channels)
}

// gatedPower applies the two gating stages and returns the mean linear
// power of the surviving blocks, or 0 when none survive.
func (a *IntegratedAnalyzer) gatedPower(blocks []float64) float64 {
	var (
		absGated []float64
		absSum   float64
	)

	for _, b := range blocks {
		if a.blockLoudness(b) > absGateLU {
			absGated = append(absGated, b)
			absSum += b
		}
	}

	if len(absGated) == 0 {
		return 0
	}

	gammaRel := a.blockLoudness(absSum/float64(len(absGated))) + relGateLU

	var (
		relSum   float64
		relCount int
	)

	for _, b := range absGated {
		if a.blockLoudness(b) > gammaRel {
			relSum += b
			relCount++
		}
	}

	if relCount == 0 {
		return 0
	}

	return relSum / float64(relCount)
}

// blockLoudness converts linear block power to loudness units for gate
// comparisons. Strict mode uses exact gate arithmetic; relaxed mode
// trades a fraction of a millibel for the fast logarithm.
func (a *IntegratedAnalyzer) blockLoudness(power float64) float64 {
	if power <= 0 {
		return math.Inf(-1)
	}

	if a.strict {
		return powerToLU + 10*math.Log10(power)
	}

	return powerToLU + 10*approx.FastLog(power)/math.Ln10
}
