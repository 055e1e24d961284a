package aero

// FtLbfPerSecPerHP converts brake horsepower to ft·lbf/s (1 hp = 550 ft·lbf/s).
// Fixed unit conversion, not tunable.
const FtLbfPerSecPerHP = 550.0

// Propeller efficiency quartic fit coefficients, highest power first.
// Fitted against a fixed-pitch propeller chart over the advance-ratio range
// produced by realistic climb-speed sweeps (roughly J in [0.2, 1.0]).
const (
	etaJ4 = -12.06
	etaJ3 = 27.19
	etaJ2 = -23.08
	etaJ1 = 9.281
	etaJ0 = -0.8122
)

// AdvanceRatio computes the propeller advance ratio
//
//	J = v / (n·D)
//
// where v is true airspeed (ft/s), rpm is shaft speed in rev/min, and
// propDiameterFt is the propeller diameter in feet.
func AdvanceRatio(velocity, rpm, propDiameterFt float64) float64 {
	return velocity / ((rpm / 60.0) * propDiameterFt)
}

// PropellerEfficiency evaluates the quartic efficiency fit at advance ratio j.
//
// The fit is only meaningful over the J range it was regressed on; it is
// deliberately NOT clamped to [0, 1]. Outside that range it returns
// efficiencies below zero (η(0) = -0.8122) or above one, and callers are
// expected to flag such samples as diagnostics rather than trust them.
func PropellerEfficiency(j float64) float64 {
	return etaJ4*j*j*j*j + etaJ3*j*j*j + etaJ2*j*j + etaJ1*j + etaJ0
}

// PowerAvailable scales rated engine power (ft·lbf/s) by the altitude density
// ratio and the propeller efficiency at the operating point.
func PowerAvailable(ratedPower, densityRatio, efficiency float64) float64 {
	return ratedPower * densityRatio * efficiency
}
