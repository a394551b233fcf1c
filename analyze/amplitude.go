package analyze

import "github.com/cwbudde/algo-normalize/audio"

// AmplitudeAnalyzer would report the peak absolute sample value per
// channel, or the overall peak when linked. Peak normalization is not
// implemented: Analyze fails fast instead of returning zeros or a
// partial result.
type AmplitudeAnalyzer struct {
	independent bool
}

// NewAmplitude returns the placeholder peak analyzer.
func NewAmplitude(independent bool) *AmplitudeAnalyzer {
	return &AmplitudeAnalyzer{independent: independent}
}

// Analyze always fails with ErrNotImplemented.
func (a *AmplitudeAnalyzer) Analyze(audio.Source) (Measurement, error) {
	return Measurement{}, ErrNotImplemented
}
