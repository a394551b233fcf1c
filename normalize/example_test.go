package normalize_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-normalize/analyze"
	"github.com/cwbudde/algo-normalize/audio"
	"github.com/cwbudde/algo-normalize/normalize"
)

func ExampleSettings_Normalize() {
	// A stereo stream with the left channel at 0.25 and the right at
	// 0.5. Channel-independent RMS normalization to 0 dB brings each
	// channel to unit amplitude on its own.
	spec := audio.Spec{Channels: 2, SampleRate: 48000}

	src, err := audio.NewBufferSource(spec, []float64{
		0.25, 0.5,
		0.25, 0.5,
		0.25, 0.5,
	})
	if err != nil {
		log.Fatal(err)
	}

	dst := audio.NewBufferSink()

	s := normalize.Settings{
		Mode:               analyze.RMS,
		Target:             0,
		ChannelIndependent: true,
	}

	if err := s.Normalize(src, dst, nil); err != nil {
		log.Fatal(err)
	}

	out := dst.Samples()
	for i := 0; i < len(out); i += 2 {
		fmt.Printf("%.2f %.2f\n", out[i], out[i+1])
	}

	// Output:
	// 1.00 1.00
	// 1.00 1.00
	// 1.00 1.00
}
