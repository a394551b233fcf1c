package normalize

// Progress observes the second pass of a normalization run: Begin is
// called once with the expected total frame count, then Advance once
// per processed frame with a monotonically increasing count. Reporting
// is purely observational and has no influence on the run.
type Progress interface {
	Begin(totalFrames int)
	Advance(processed int)
}

// NopProgress discards all progress updates.
type NopProgress struct{}

// Begin implements Progress.
func (NopProgress) Begin(int) {}

// Advance implements Progress.
func (NopProgress) Advance(int) {}
