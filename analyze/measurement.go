package analyze

// Measurement is the result of one analysis pass. Values are linear —
// mean power for Integrated, amplitude for RMS — because the gain
// resolver consumes them as ratios against the target level.
//
// When Linked is set the channels were combined into one measurement
// and Values has length 1; otherwise Values holds one entry per channel
// in channel order.
type Measurement struct {
	Linked bool
	Values []float64
}

// LinkedMeasurement wraps a single combined-channel value.
func LinkedMeasurement(v float64) Measurement {
	return Measurement{Linked: true, Values: []float64{v}}
}

// PerChannel wraps one value per channel.
func PerChannel(values []float64) Measurement {
	return Measurement{Values: values}
}

// Value returns the measurement for channel i, applying the broadcast
// rule for linked measurements.
func (m Measurement) Value(i int) float64 {
	if m.Linked {
		return m.Values[0]
	}

	return m.Values[i]
}
