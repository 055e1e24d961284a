package envelope

import (
	"math"

	"github.com/Sy3drizvi/Aerospace/internal/aero"
	"github.com/Sy3drizvi/Aerospace/internal/atmosphere"
)

// solveBand evaluates the full lift-coefficient sweep against one altitude
// band and returns the solved points in sweep order.
//
// Samples at c_l <= 0 are dropped: level-flight velocity is undefined there
// (the lift equation divides by sqrt(c_l)), and the default sweep starts at
// exactly zero, so the drop happens on every run by design.
func solveBand(cfg AircraftConfig, band atmosphere.Band, cls []float64) []Point {
	ratedPower := cfg.RatedPower * aero.FtLbfPerSecPerHP

	points := make([]Point, 0, len(cls))
	for _, cl := range cls {
		if cl <= 0 {
			continue
		}
		points = append(points, solveSample(cfg, band, ratedPower, cl))
	}
	return points
}

// solveSample solves a single lift-coefficient sample. ratedPower is the
// engine power already converted to ft·lbf/s.
func solveSample(cfg AircraftConfig, band atmosphere.Band, ratedPower, cl float64) Point {
	cd := aero.DragCoefficient(cl, cfg.ParasiteDrag, cfg.OswaldEfficiency, cfg.AspectRatio)

	// Level-flight speed at this lift coefficient: L = W.
	v := math.Sqrt(cfg.Weight/(0.5*band.Density*cfg.WingArea)) / math.Sqrt(cl)

	drag := 0.5 * band.Density * cfg.WingArea * v * v

	j := aero.AdvanceRatio(v, cfg.RPM, cfg.PropDiameter)
	eta := aero.PropellerEfficiency(j)

	pReq := cfg.Weight * math.Sqrt(2*cfg.Weight/(cfg.WingArea*band.Density)) * (cd / math.Pow(cl, 1.5))
	pAv := aero.PowerAvailable(ratedPower, band.DensityRatio, eta)

	roc := (pAv - pReq) / cfg.Weight

	p := Point{
		LiftCoeff:            cl,
		DragCoeff:            cd,
		Velocity:             v,
		Drag:                 drag,
		AdvanceRatio:         j,
		Efficiency:           eta,
		PowerRequired:        pReq,
		PowerAvailable:       pAv,
		RateOfClimb:          roc,
		EfficiencyOutOfRange: eta < 0 || eta > 1,
	}

	// sin(γ) = roc/v only defines an angle for |roc/v| <= 1. Beyond that the
	// sample is flagged instead of fed to Asin, which would return NaN.
	if ratio := roc / v; math.Abs(ratio) <= 1 {
		p.ClimbAngle = math.Asin(ratio)
	} else {
		p.NotRepresentable = true
	}

	return p
}
