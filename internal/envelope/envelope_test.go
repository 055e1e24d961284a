package envelope

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Sy3drizvi/Aerospace/internal/atmosphere"
)

func mustCompute(t *testing.T, req Request) *Result {
	t.Helper()
	res, err := Compute(context.Background(), req)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	return res
}

func TestComputeDefaultShape(t *testing.T) {
	res := mustCompute(t, Request{Config: ReferenceConfig()})

	if len(res.Series) != 4 {
		t.Fatalf("expected 4 altitude series, got %d", len(res.Series))
	}

	wantAlts := []float64{0, 5000, 10000, 15000}
	for i, s := range res.Series {
		if s.AltitudeFt != wantAlts[i] {
			t.Errorf("series %d: altitude = %.0f, want %.0f", i, s.AltitudeFt, wantAlts[i])
		}

		// 20-sample default sweep minus the dropped c_l = 0 head.
		if len(s.Points) != 19 {
			t.Errorf("series %d: %d points, want 19", i, len(s.Points))
		}

		prevCL := 0.0
		for j, p := range s.Points {
			if p.Velocity <= 0 || math.IsNaN(p.Velocity) || math.IsInf(p.Velocity, 0) {
				t.Errorf("series %d point %d: velocity %v not positive finite", i, j, p.Velocity)
			}
			if p.LiftCoeff <= prevCL {
				t.Errorf("series %d point %d: lift coefficient not strictly ascending", i, j)
			}
			if math.IsNaN(p.ClimbAngle) {
				t.Errorf("series %d point %d: climb angle is NaN; domain issues must be flagged, not propagated", i, j)
			}
			prevCL = p.LiftCoeff
		}

		if s.Points[len(s.Points)-1].LiftCoeff != 1.3182 {
			t.Errorf("series %d: last lift coefficient = %v, want 1.3182", i, s.Points[len(s.Points)-1].LiftCoeff)
		}
	}
}

func TestReferenceVelocity(t *testing.T) {
	res := mustCompute(t, Request{Config: ReferenceConfig()})

	// First returned point is sweep index 1: c_l = 1.3182/19.
	p := res.Series[0].Points[0]
	wantCL := 1.3182 / 19
	if math.Abs(p.LiftCoeff-wantCL) > 1e-12 {
		t.Fatalf("first point lift coefficient = %v, want %v", p.LiftCoeff, wantCL)
	}

	want := math.Sqrt(2400/(0.5*2.377e-3*170)) / math.Sqrt(p.LiftCoeff)
	if math.Abs(p.Velocity-want) > 1e-9 {
		t.Errorf("velocity = %.6f, want %.6f", p.Velocity, want)
	}
	if math.Abs(p.Velocity-413.7783) > 1e-3 {
		t.Errorf("velocity = %.4f ft/s, want 413.7783", p.Velocity)
	}
}

func TestReferenceClimbPoint(t *testing.T) {
	res := mustCompute(t, Request{Config: ReferenceConfig()})

	// Sweep index 5 (returned index 4) at sea level, a mid-envelope climb
	// point, cross-checked against the reference chart model.
	p := res.Series[0].Points[4]

	checks := []struct {
		name      string
		got, want float64
		tol       float64
	}{
		{"lift_coeff", p.LiftCoeff, 1.3182 * 5 / 19, 1e-12},
		{"velocity", p.Velocity, 185.0473, 1e-3},
		{"drag_coeff", p.DragCoeff, 0.042886, 1e-6},
		{"advance_ratio", p.AdvanceRatio, 0.6760, 1e-4},
		{"efficiency", p.Efficiency, 0.7957, 1e-4},
		{"power_required", p.PowerRequired, 54905.1, 0.5},
		{"power_available", p.PowerAvailable, 78774.6, 0.5},
		{"rate_of_climb", p.RateOfClimb, 9.9456, 1e-3},
		{"climb_angle", p.ClimbAngle, 0.053772, 1e-5},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > c.tol {
			t.Errorf("%s = %.6f, want %.6f (tol %g)", c.name, c.got, c.want, c.tol)
		}
	}
	if p.NotRepresentable {
		t.Error("mid-envelope climb point flagged not representable")
	}
	if p.EfficiencyOutOfRange {
		t.Error("mid-envelope efficiency flagged out of range")
	}
}

func TestNotRepresentablePoints(t *testing.T) {
	res := mustCompute(t, Request{Config: ReferenceConfig()})

	// The high-speed head of the sweep (c_l = 0.0694) has a hugely negative
	// excess-power rate of climb; |roc/v| > 1 there at every altitude.
	for i, s := range res.Series {
		head := s.Points[0]
		if !head.NotRepresentable {
			t.Errorf("series %d: head point |roc/v| = %.2f should be flagged not representable",
				i, math.Abs(head.RateOfClimb/head.Velocity))
		}
		if head.ClimbAngle != 0 {
			t.Errorf("series %d: flagged point carries climb angle %v, want 0", i, head.ClimbAngle)
		}
		// Velocity and rate of climb remain reported on flagged points.
		if head.Velocity <= 0 || head.RateOfClimb >= 0 {
			t.Errorf("series %d: flagged point lost its numeric fields: v=%v roc=%v",
				i, head.Velocity, head.RateOfClimb)
		}
		t.Logf("series %d (%.0f ft): %d flagged of %d points",
			i, s.AltitudeFt, countFlagged(s.Points), len(s.Points))
	}
}

func countFlagged(pts []Point) int {
	n := 0
	for _, p := range pts {
		if p.NotRepresentable {
			n++
		}
	}
	return n
}

func TestDoublingRatedPower(t *testing.T) {
	cfg := ReferenceConfig()
	base := mustCompute(t, Request{Config: cfg})

	cfg.RatedPower *= 2
	boosted := mustCompute(t, Request{Config: cfg})

	for i := range base.Series {
		for j := range base.Series[i].Points {
			p1 := base.Series[i].Points[j]
			p2 := boosted.Series[i].Points[j]

			// Power available is linear in rated power; at the same sample
			// the velocity and efficiency are unchanged, so it exactly
			// doubles — strictly increasing wherever efficiency is positive.
			if math.Abs(p2.PowerAvailable-2*p1.PowerAvailable) > 1e-6 {
				t.Fatalf("series %d point %d: power available %v, want exactly %v",
					i, j, p2.PowerAvailable, 2*p1.PowerAvailable)
			}
			if p1.Efficiency > 0 && p2.PowerAvailable <= p1.PowerAvailable {
				t.Errorf("series %d point %d: doubling rated power did not increase power available", i, j)
			}
			if p2.Velocity != p1.Velocity {
				t.Errorf("series %d point %d: velocity changed with rated power", i, j)
			}
		}
	}
}

func TestVelocityGrowsWithAltitude(t *testing.T) {
	res := mustCompute(t, Request{Config: ReferenceConfig()})

	// At a fixed lift coefficient, thinner air means higher true airspeed.
	for j := range res.Series[0].Points {
		for i := 1; i < len(res.Series); i++ {
			lo := res.Series[i-1].Points[j]
			hi := res.Series[i].Points[j]
			if hi.Velocity <= lo.Velocity {
				t.Errorf("point %d: velocity at %.0f ft (%.2f) not above %.0f ft (%.2f)",
					j, res.Series[i].AltitudeFt, hi.Velocity, res.Series[i-1].AltitudeFt, lo.Velocity)
			}
		}
	}
}

func TestComputeInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AircraftConfig)
		field  string
	}{
		{"zero weight", func(c *AircraftConfig) { c.Weight = 0 }, "weight_lbf"},
		{"negative parasite drag", func(c *AircraftConfig) { c.ParasiteDrag = -0.01 }, "c_d0"},
		{"zero oswald", func(c *AircraftConfig) { c.OswaldEfficiency = 0 }, "oswald_efficiency"},
		{"oswald above one", func(c *AircraftConfig) { c.OswaldEfficiency = 1.2 }, "oswald_efficiency"},
		{"NaN area", func(c *AircraftConfig) { c.WingArea = math.NaN() }, "wing_area_sqft"},
		{"zero rpm", func(c *AircraftConfig) { c.RPM = 0 }, "rpm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ReferenceConfig()
			tt.mutate(&cfg)

			res, err := Compute(context.Background(), Request{Config: cfg})
			if err == nil {
				t.Fatal("expected configuration error")
			}
			if res != nil {
				t.Error("invalid configuration must not yield a partial result")
			}

			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("error type = %T, want *ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("error field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestComputeInjectableSweepAndBands(t *testing.T) {
	// A 5-sample sweep starting above zero keeps all its samples, and a
	// custom band table is solved as given.
	req := Request{
		Config:    ReferenceConfig(),
		Bands:     []atmosphere.Band{{AltitudeFt: 2500, Density: 2.2e-3, DensityRatio: 0.93}},
		SweepSpec: Sweep{Start: 0.2, End: 1.0, Samples: 5},
	}
	res := mustCompute(t, req)

	if len(res.Series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(res.Series))
	}
	s := res.Series[0]
	if s.AltitudeFt != 2500 || s.DensityRatio != 0.93 {
		t.Errorf("series band = %.0f/%.3f, want 2500/0.930", s.AltitudeFt, s.DensityRatio)
	}
	if len(s.Points) != 5 {
		t.Fatalf("expected 5 points (no zero sample to drop), got %d", len(s.Points))
	}
	if s.Points[0].LiftCoeff != 0.2 || s.Points[4].LiftCoeff != 1.0 {
		t.Errorf("sweep endpoints = %v..%v, want 0.2..1.0", s.Points[0].LiftCoeff, s.Points[4].LiftCoeff)
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := mustCompute(t, Request{Config: ReferenceConfig()})
	b := mustCompute(t, Request{Config: ReferenceConfig()})

	for i := range a.Series {
		for j := range a.Series[i].Points {
			if a.Series[i].Points[j] != b.Series[i].Points[j] {
				t.Fatalf("series %d point %d differs between identical computes", i, j)
			}
		}
	}
}

func TestDiagnose(t *testing.T) {
	res := mustCompute(t, Request{Config: ReferenceConfig()})
	d := Diagnose(res)

	if d.Points != 4*19 {
		t.Errorf("diagnostics points = %d, want 76", d.Points)
	}
	// One flagged high-speed point per altitude for the reference airframe.
	if d.NotRepresentable != 4 {
		t.Errorf("not representable count = %d, want 4", d.NotRepresentable)
	}
	if d.EfficiencyOutOfRange == 0 {
		t.Error("expected out-of-range efficiency at the high-speed end of the sweep")
	}
}

func BenchmarkCompute(b *testing.B) {
	req := Request{Config: ReferenceConfig()}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compute(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}
