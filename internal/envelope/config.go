package envelope

import "fmt"

// AircraftConfig holds the eight design parameters the envelope is computed
// from. Values use the chart units: pounds-force, square feet, feet,
// horsepower, rev/min. The struct is comparable, which the result cache
// relies on for keying.
type AircraftConfig struct {
	ParasiteDrag     float64 `json:"c_d0"`              // zero-lift drag coefficient, > 0
	AspectRatio      float64 `json:"aspect_ratio"`      // wing aspect ratio, > 0
	OswaldEfficiency float64 `json:"oswald_efficiency"` // induced-drag efficiency factor, in (0, 1]
	Weight           float64 `json:"weight_lbf"`        // aircraft weight (lbf), > 0
	RatedPower       float64 `json:"rated_power_hp"`    // engine brake power (hp), > 0
	WingArea         float64 `json:"wing_area_sqft"`    // reference wing area (ft²), > 0
	PropDiameter     float64 `json:"prop_diameter_ft"`  // propeller diameter (ft), > 0
	RPM              float64 `json:"rpm"`               // propeller shaft speed (rev/min), > 0
}

// ReferenceConfig returns the airframe the original performance charts were
// built around (a 180 hp four-seater with a 73-inch fixed-pitch prop).
func ReferenceConfig() AircraftConfig {
	return AircraftConfig{
		ParasiteDrag:     0.0317,
		AspectRatio:      5.71,
		OswaldEfficiency: 0.6,
		Weight:           2400,
		RatedPower:       180,
		WingArea:         170,
		PropDiameter:     73.0 / 12.0,
		RPM:              2700,
	}
}

// ConfigError reports an AircraftConfig field that violates its invariant.
// It is the only error Compute returns; no partial result accompanies it.
type ConfigError struct {
	Field      string
	Constraint string
	Value      float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s must be %s, got %g", e.Field, e.Constraint, e.Value)
}

// Validate checks every field against its stated invariant. The first
// violation is returned; fields are checked in declaration order.
func (c AircraftConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"c_d0", c.ParasiteDrag},
		{"aspect_ratio", c.AspectRatio},
		{"oswald_efficiency", c.OswaldEfficiency},
		{"weight_lbf", c.Weight},
		{"rated_power_hp", c.RatedPower},
		{"wing_area_sqft", c.WingArea},
		{"prop_diameter_ft", c.PropDiameter},
		{"rpm", c.RPM},
	}
	for _, f := range positive {
		if !(f.value > 0) { // rejects zero, negatives, and NaN
			return &ConfigError{Field: f.name, Constraint: "> 0", Value: f.value}
		}
	}
	if c.OswaldEfficiency > 1 {
		return &ConfigError{Field: "oswald_efficiency", Constraint: "in (0, 1]", Value: c.OswaldEfficiency}
	}
	return nil
}
