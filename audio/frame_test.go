package audio_test

import (
	"errors"
	"io"
	"testing"

	"github.com/cwbudde/algo-normalize/audio"
	"github.com/cwbudde/algo-normalize/internal/testutil"
)

func mustSource(t *testing.T, channels int, data []float64) *audio.BufferSource {
	t.Helper()

	src, err := audio.NewBufferSource(audio.Spec{Channels: channels, SampleRate: 48000}, data)
	if err != nil {
		t.Fatalf("NewBufferSource: %v", err)
	}

	return src
}

func TestFrameIterator_YieldsAllFrames(t *testing.T) {
	left := []float64{1, 2, 3, 4}
	right := []float64{10, 20, 30, 40}
	third := []float64{-1, -2, -3, -4}

	src := mustSource(t, 3, testutil.Interleave(left, right, third))
	it := audio.NewFrameIterator(src)

	var frames [][]float64

	for {
		frame, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			t.Fatalf("Next: %v", err)
		}

		// The iterator reuses its frame buffer.
		frames = append(frames, append([]float64(nil), frame...))
	}

	if len(frames) != 4 {
		t.Fatalf("frame count: got %d, want 4", len(frames))
	}

	for i, frame := range frames {
		want := []float64{left[i], right[i], third[i]}
		testutil.RequireSliceNearlyEqual(t, frame, want, 0)
	}
}

func TestFrameIterator_TruncatedStream(t *testing.T) {
	src := mustSource(t, 2, []float64{1, 2, 3, 4, 5})
	it := audio.NewFrameIterator(src)

	for i := 0; i < 2; i++ {
		if _, err := it.Next(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}

	_, err := it.Next()
	if !errors.Is(err, audio.ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestFrameIterator_EmptyStream(t *testing.T) {
	src := mustSource(t, 2, nil)
	it := audio.NewFrameIterator(src)

	_, err := it.Next()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

// failingSource fails every read with a fixed error.
type failingSource struct {
	err error
}

func (s *failingSource) Spec() audio.Spec {
	return audio.Spec{Channels: 2, SampleRate: 48000}
}

func (s *failingSource) Frames() int                  { return 0 }
func (s *failingSource) ReadSample() (float64, error) { return 0, s.err }
func (s *failingSource) SeekStart() error             { return nil }

func TestFrameIterator_PropagatesReadError(t *testing.T) {
	readErr := errors.New("device gone")
	it := audio.NewFrameIterator(&failingSource{err: readErr})

	_, err := it.Next()
	if !errors.Is(err, readErr) {
		t.Fatalf("got %v, want original read error", err)
	}
}
