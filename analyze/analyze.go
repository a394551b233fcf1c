// Package analyze implements the loudness measurement algorithms of the
// normalization pipeline. Every analyzer consumes a source from its
// current position to end of stream and produces one [Measurement]; the
// orchestrator owns rewinding between passes.
package analyze

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-normalize/audio"
)

var (
	// ErrNotImplemented reports selection of an algorithm kind that has
	// no implementation.
	ErrNotImplemented = errors.New("analyze: amplitude analysis is not implemented")

	// ErrInsufficientData reports a stream without a single complete frame.
	ErrInsufficientData = errors.New("analyze: stream contains no complete frame")

	// ErrUnknownKind reports an algorithm kind outside the closed set.
	ErrUnknownKind = errors.New("analyze: unknown algorithm kind")
)

// Kind selects a measurement algorithm.
type Kind int

const (
	// Amplitude analyzes peak absolute sample value. Not implemented.
	Amplitude Kind = iota

	// Integrated analyzes K-weighted, gated integrated loudness per
	// ITU-R BS.1770 / EBU R128.
	Integrated

	// RMS analyzes root-mean-square amplitude without weighting or gating.
	RMS
)

// String returns the lower-case name used on the command line.
func (k Kind) String() string {
	switch k {
	case Amplitude:
		return "amplitude"
	case Integrated:
		return "lufs"
	case RMS:
		return "rms"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a command-line algorithm name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "amplitude":
		return Amplitude, nil
	case "lufs":
		return Integrated, nil
	case "rms":
		return RMS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Analyzer is the single capability shared by all measurement
// algorithms. Analyze must not rewind the source.
type Analyzer interface {
	Analyze(src audio.Source) (Measurement, error)
}

// New returns the analyzer for kind. The independent flag selects
// per-channel measurement over one linked measurement; strict demands
// exact standard compliance from analyzers that distinguish the two.
func New(kind Kind, independent, strict bool) (Analyzer, error) {
	switch kind {
	case Amplitude:
		return NewAmplitude(independent), nil
	case Integrated:
		return NewIntegrated(independent, strict), nil
	case RMS:
		return NewRMS(independent), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
