// Package audio defines the stream contracts shared by the analyzers and
// the normalization pipeline: a seekable per-sample source, a writable
// sink with a one-shot finalize step, and the frame iterator that
// demultiplexes interleaved samples into per-channel frames.
package audio

import "errors"

var (
	// ErrTruncated reports a stream whose sample count is not evenly
	// divisible by its channel count.
	ErrTruncated = errors.New("audio: sample count not divisible by channel count")

	// ErrInvalidSpec reports a non-positive channel count or sample rate.
	ErrInvalidSpec = errors.New("audio: channel count and sample rate must be positive")

	// ErrFinalized reports a write or finalize on an already finalized sink.
	ErrFinalized = errors.New("audio: sink already finalized")
)

// Spec describes an uncompressed sample stream. It is read from the
// source once per run and propagated unchanged to the sink.
type Spec struct {
	Channels   int
	SampleRate int
}

// Valid reports whether both fields are positive.
func (s Spec) Valid() bool {
	return s.Channels > 0 && s.SampleRate > 0
}

// Source is a seekable, readable stream of interleaved samples. It is
// exclusively owned by the normalization run for its duration.
type Source interface {
	Spec() Spec

	// Frames reports the total number of complete frames in the stream.
	Frames() int

	// ReadSample returns the next sample in interleaved order, or io.EOF
	// once the stream is exhausted.
	ReadSample() (float64, error)

	// SeekStart repositions the read cursor to the first sample.
	SeekStart() error
}

// Sink is a writable stream accepting one sample at a time in
// interleaved order. Finalize must be called exactly once at the end of
// a successful run; output abandoned before Finalize is not guaranteed
// to be valid.
type Sink interface {
	WriteSample(v float64) error
	Finalize() error
}
