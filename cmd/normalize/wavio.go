package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-normalize/audio"
)

// openWAV decodes a PCM WAV file into a seekable in-memory source with
// samples scaled to [-1, 1), and reports the source bit depth so the
// sink can write the output at the same depth.
func openWAV(path string) (*audio.BufferSource, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("reading PCM data: %w", err)
	}

	depth := buf.SourceBitDepth
	if depth <= 0 || depth > 32 {
		depth = 16
	}

	scale := float64(int64(1) << (depth - 1))

	data := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float64(v) / scale
	}

	spec := audio.Spec{
		Channels:   buf.Format.NumChannels,
		SampleRate: buf.Format.SampleRate,
	}

	src, err := audio.NewBufferSource(spec, data)
	if err != nil {
		return nil, 0, err
	}

	return src, depth, nil
}

// wavSink collects normalized samples and encodes a complete WAV file
// on Finalize, converting back to the source bit depth with clipping.
type wavSink struct {
	w         io.WriteSeeker
	spec      audio.Spec
	depth     int
	data      []int
	finalized bool
}

func newWAVSink(w io.WriteSeeker, spec audio.Spec, depth int) *wavSink {
	return &wavSink{w: w, spec: spec, depth: depth}
}

func (s *wavSink) WriteSample(v float64) error {
	if s.finalized {
		return audio.ErrFinalized
	}

	scale := float64(int64(1) << (s.depth - 1))
	limit := int64(1)<<(s.depth-1) - 1

	n := int64(math.Round(v * scale))
	if n > limit {
		n = limit
	} else if n < -limit-1 {
		n = -limit - 1
	}

	s.data = append(s.data, int(n))

	return nil
}

func (s *wavSink) Finalize() error {
	if s.finalized {
		return audio.ErrFinalized
	}

	s.finalized = true

	enc := wav.NewEncoder(s.w, s.spec.SampleRate, s.depth, s.spec.Channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: s.spec.Channels,
			SampleRate:  s.spec.SampleRate,
		},
		Data:           s.data,
		SourceBitDepth: s.depth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding WAV data: %w", err)
	}

	return enc.Close()
}
