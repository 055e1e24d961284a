package envelope

// Sweep describes the evenly spaced lift-coefficient sample sequence the
// solver evaluates. The zero value is replaced by DefaultSweep() during
// Compute, so callers only set it to test with smaller or shifted ranges.
type Sweep struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Samples int     `json:"samples"`
}

// DefaultSweep returns the sweep the reference charts use: 20 samples evenly
// spaced over [0, 1.3182]. The first sample is always c_l = 0, which the
// solver drops from the returned series (velocity is undefined there), so
// the default sweep yields 19 points per altitude.
func DefaultSweep() Sweep {
	return Sweep{Start: 0, End: 1.3182, Samples: 20}
}

// Values materializes the sample sequence in ascending order. A single-sample
// sweep yields just Start.
func (s Sweep) Values() []float64 {
	if s.Samples <= 0 {
		return nil
	}
	out := make([]float64, s.Samples)
	if s.Samples == 1 {
		out[0] = s.Start
		return out
	}
	step := (s.End - s.Start) / float64(s.Samples-1)
	for i := range out {
		out[i] = s.Start + float64(i)*step
	}
	return out
}
