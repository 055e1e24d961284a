// Package envelope computes a propeller aircraft's climb performance
// envelope: rate of climb and climb angle as functions of airspeed, swept
// over lift coefficient at a fixed set of standard altitudes.
//
// The engine is stateless and side-effect free. Each Compute call validates
// its configuration up front, solves every altitude band independently, and
// returns a freshly allocated Result; overlapping calls cannot interfere.
package envelope

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Sy3drizvi/Aerospace/internal/atmosphere"
)

// Compute solves the climb envelope for the given request.
//
// Validation failures return a *ConfigError before any altitude is solved;
// there are no partial results. Per-sample domain issues (the dropped
// c_l = 0 head sample, not-representable climb angles, out-of-range
// efficiencies) are represented in the returned data, never as errors.
func Compute(ctx context.Context, req Request) (*Result, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	bands := req.Bands
	if bands == nil {
		bands = atmosphere.Standard()
	}
	sweep := req.SweepSpec
	if sweep == (Sweep{}) {
		sweep = DefaultSweep()
	}
	cls := sweep.Values()

	series := make([]Series, len(bands))

	// Bands are mutually independent; solve them in parallel and assemble
	// by index so the result preserves the band order.
	var g errgroup.Group
	for i, band := range bands {
		g.Go(func() error {
			series[i] = Series{
				AltitudeFt:   band.AltitudeFt,
				Density:      band.Density,
				DensityRatio: band.DensityRatio,
				Points:       solveBand(req.Config, band, cls),
			}
			return nil
		})
	}
	// Solves are pure and never fail; Wait only synchronizes the fan-out.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Series: series}, nil
}

// Diagnostics counts the per-point flags across a result, for logging.
type Diagnostics struct {
	Points               int
	NotRepresentable     int
	EfficiencyOutOfRange int
}

// Diagnose tallies diagnostic flags across all series of a result.
func Diagnose(res *Result) Diagnostics {
	var d Diagnostics
	for _, s := range res.Series {
		d.Points += len(s.Points)
		for _, p := range s.Points {
			if p.NotRepresentable {
				d.NotRepresentable++
			}
			if p.EfficiencyOutOfRange {
				d.EfficiencyOutOfRange++
			}
		}
	}
	return d
}

// LogDiagnostics emits the flag tallies for one computed result at debug
// level, keyed the way the request logs are.
func LogDiagnostics(logger *slog.Logger, res *Result) {
	d := Diagnose(res)
	logger.Debug("envelope computed",
		"component", "envelope",
		"series", len(res.Series),
		"points", d.Points,
		"not_representable", d.NotRepresentable,
		"efficiency_out_of_range", d.EfficiencyOutOfRange,
	)
}
