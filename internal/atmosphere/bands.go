// Package atmosphere provides the fixed standard-altitude table used by the
// performance solver.
//
// Density and density ratio are independently tabulated: density feeds the
// aerodynamic equations directly, while the ratio only scales rated engine
// power. The ratio is NOT re-derived from the density column.
package atmosphere

// Band is one row of the standard altitude table.
type Band struct {
	AltitudeFt   float64 // pressure altitude (feet)
	Density      float64 // air density (slug/ft³)
	DensityRatio float64 // ratio to sea-level density, scales rated power
}

// standardBands is the tabulated US standard atmosphere subset the original
// performance charts were computed against.
var standardBands = []Band{
	{AltitudeFt: 0, Density: 2.377e-3, DensityRatio: 1.0},
	{AltitudeFt: 5000, Density: 2.048e-3, DensityRatio: 0.86159},
	{AltitudeFt: 10000, Density: 1.756e-3, DensityRatio: 0.738746},
	{AltitudeFt: 15000, Density: 1.496e-3, DensityRatio: 0.62936},
}

// Standard returns the four standard altitude bands in ascending-altitude
// order. The returned slice is a copy; callers may modify it freely.
func Standard() []Band {
	out := make([]Band, len(standardBands))
	copy(out, standardBands)
	return out
}
