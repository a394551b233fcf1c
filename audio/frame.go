package audio

import (
	"errors"
	"io"
)

// FrameIterator demultiplexes an interleaved sample source into frames
// of one sample per channel. It is lazy and non-restartable: each Next
// advances the source by exactly one frame, and no more than one frame
// is ever buffered.
type FrameIterator struct {
	src   Source
	frame []float64
}

// NewFrameIterator returns an iterator over src using its spec's
// channel count as the frame width.
func NewFrameIterator(src Source) *FrameIterator {
	return &FrameIterator{
		src:   src,
		frame: make([]float64, src.Spec().Channels),
	}
}

// Next yields the next complete frame in channel order, io.EOF at a
// clean end of stream, or ErrTruncated if the stream ends mid-frame.
// The returned slice is reused by the following call; callers that
// retain a frame must copy it.
func (it *FrameIterator) Next() ([]float64, error) {
	for i := range it.frame {
		v, err := it.src.ReadSample()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 {
					return nil, io.EOF
				}

				return nil, ErrTruncated
			}

			return nil, err
		}

		it.frame[i] = v
	}

	return it.frame, nil
}
