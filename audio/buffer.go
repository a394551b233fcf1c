package audio

import "io"

// BufferSource is an in-memory, seekable Source over an interleaved
// sample slice.
type BufferSource struct {
	spec Spec
	data []float64
	pos  int
}

// NewBufferSource wraps data as a Source with the given spec. The slice
// is not copied; the caller must not mutate it during a run.
func NewBufferSource(spec Spec, data []float64) (*BufferSource, error) {
	if !spec.Valid() {
		return nil, ErrInvalidSpec
	}

	return &BufferSource{spec: spec, data: data}, nil
}

// Spec returns the stream spec.
func (s *BufferSource) Spec() Spec {
	return s.spec
}

// Frames reports the number of complete frames in the buffer.
func (s *BufferSource) Frames() int {
	return len(s.data) / s.spec.Channels
}

// ReadSample returns the next sample or io.EOF.
func (s *BufferSource) ReadSample() (float64, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}

	v := s.data[s.pos]
	s.pos++

	return v, nil
}

// SeekStart rewinds the read cursor to the first sample.
func (s *BufferSource) SeekStart() error {
	s.pos = 0
	return nil
}

// BufferSink is an in-memory Sink collecting interleaved samples.
type BufferSink struct {
	data      []float64
	finalized bool
}

// NewBufferSink returns an empty sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// WriteSample appends one sample. Writing after Finalize fails.
func (s *BufferSink) WriteSample(v float64) error {
	if s.finalized {
		return ErrFinalized
	}

	s.data = append(s.data, v)

	return nil
}

// Finalize marks the sink complete. A second call fails.
func (s *BufferSink) Finalize() error {
	if s.finalized {
		return ErrFinalized
	}

	s.finalized = true

	return nil
}

// Finalized reports whether Finalize has been called.
func (s *BufferSink) Finalized() bool {
	return s.finalized
}

// Samples returns the collected interleaved samples.
func (s *BufferSink) Samples() []float64 {
	return s.data
}
