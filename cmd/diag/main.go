package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Sy3drizvi/Aerospace/internal/envelope"
)

func main() {
	cfg := envelope.ReferenceConfig()
	fmt.Printf("Reference airframe: w=%.0f lbf, %g hp, area=%.0f ft², AR=%.2f\n",
		cfg.Weight, cfg.RatedPower, cfg.WingArea, cfg.AspectRatio)

	res, err := envelope.Compute(context.Background(), envelope.Request{Config: cfg})
	if err != nil {
		fmt.Println("ERROR computing envelope:", err)
		os.Exit(1)
	}

	for _, s := range res.Series {
		fmt.Printf("\n=== %.0f ft (ρ=%.3e slug/ft³, σ=%.5f) ===\n", s.AltitudeFt, s.Density, s.DensityRatio)
		fmt.Printf("%8s %10s %10s %10s %10s %8s\n", "c_l", "v (ft/s)", "p_req", "p_av", "roc", "γ (rad)")

		bestROC := s.Points[0]
		var bestAngle *envelope.Point
		flagged := 0
		for i, p := range s.Points {
			angle := "-"
			if !p.NotRepresentable {
				angle = fmt.Sprintf("%8.4f", p.ClimbAngle)
			} else {
				flagged++
			}
			fmt.Printf("%8.4f %10.2f %10.0f %10.0f %10.3f %8s\n",
				p.LiftCoeff, p.Velocity, p.PowerRequired, p.PowerAvailable, p.RateOfClimb, angle)

			if p.RateOfClimb > bestROC.RateOfClimb {
				bestROC = p
			}
			if !p.NotRepresentable && (bestAngle == nil || p.ClimbAngle > bestAngle.ClimbAngle) {
				bestAngle = &s.Points[i]
			}
		}

		fmt.Printf("best rate of climb: %.2f ft/s at %.1f ft/s\n", bestROC.RateOfClimb, bestROC.Velocity)
		if bestAngle != nil {
			fmt.Printf("best climb angle:   %.4f rad at %.1f ft/s\n", bestAngle.ClimbAngle, bestAngle.Velocity)
		}
		if flagged > 0 {
			fmt.Printf("not representable:  %d of %d points\n", flagged, len(s.Points))
		}
	}
}
