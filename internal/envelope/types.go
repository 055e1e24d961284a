package envelope

import "github.com/Sy3drizvi/Aerospace/internal/atmosphere"

// Point is one solved sample of the climb envelope at a given altitude.
// All fields are derived; nothing is persisted between Compute calls.
type Point struct {
	LiftCoeff      float64 `json:"lift_coeff"`
	DragCoeff      float64 `json:"drag_coeff"`
	Velocity       float64 `json:"velocity"` // true airspeed (ft/s)
	Drag           float64 `json:"drag"`     // lbf
	AdvanceRatio   float64 `json:"advance_ratio"`
	Efficiency     float64 `json:"efficiency"`      // unclamped propeller efficiency
	PowerRequired  float64 `json:"power_required"`  // ft·lbf/s
	PowerAvailable float64 `json:"power_available"` // ft·lbf/s
	RateOfClimb    float64 `json:"rate_of_climb"`   // ft/s
	ClimbAngle     float64 `json:"climb_angle"`     // radians; zero when NotRepresentable

	// NotRepresentable marks samples where |rateOfClimb/velocity| > 1: the
	// simplified model admits no flight-path angle there. ClimbAngle is left
	// zero and plotting layers render the sample as a gap.
	NotRepresentable bool `json:"not_representable,omitempty"`

	// EfficiencyOutOfRange flags samples whose advance ratio fell outside
	// the quartic fit's trusted domain, yielding η outside [0, 1]. The
	// numbers are still reported; the flag is a diagnostic.
	EfficiencyOutOfRange bool `json:"efficiency_out_of_range,omitempty"`
}

// Series is the solved envelope for one altitude band, points in ascending
// lift-coefficient order with the undefined c_l = 0 head sample dropped.
type Series struct {
	AltitudeFt   float64 `json:"altitude_ft"`
	Density      float64 `json:"density"`
	DensityRatio float64 `json:"density_ratio"`
	Points       []Point `json:"points"`
}

// Result is the full climb performance envelope: one Series per altitude
// band, in ascending-altitude order. It is owned by the caller; the engine
// keeps no reference to it.
type Result struct {
	Series []Series `json:"series"`
}

// Request bundles the inputs of one Compute call. Bands and SweepSpec are
// injectable for testing; when nil/zero they default to the standard
// atmosphere table and the reference 20-sample sweep.
type Request struct {
	Config    AircraftConfig
	Bands     []atmosphere.Band
	SweepSpec Sweep
}
