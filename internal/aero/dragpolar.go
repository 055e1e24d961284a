// Package aero implements the aerodynamic and propulsion formulas of the
// climb performance model: the parabolic drag polar, the advance-ratio based
// propeller efficiency fit, and altitude scaling of rated engine power.
//
// All functions are pure. Units follow the source charts: feet, pounds-force,
// slugs, seconds, with engine power in ft·lbf/s after the horsepower
// conversion.
package aero

// InducedDragPi is the value of π used in the induced-drag term.
//
// The reference charts were computed with the two-decimal approximation, and
// reproducing them bit-for-bit requires keeping it. Do not substitute
// math.Pi without re-baselining the reference outputs.
const InducedDragPi = 3.14

// DragCoefficient evaluates the parabolic drag polar
//
//	c_d = c_d0 + c_l² / (π·e0·AR)
//
// for lift coefficient cl, zero-lift drag coefficient cd0, Oswald efficiency
// factor e0, and wing aspect ratio ar. The caller guarantees e0·ar > 0; that
// is enforced at configuration validation time.
func DragCoefficient(cl, cd0, e0, ar float64) float64 {
	return cd0 + cl*cl/(InducedDragPi*e0*ar)
}
