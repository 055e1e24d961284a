package atmosphere

import "testing"

func TestStandardBands(t *testing.T) {
	bands := Standard()

	if len(bands) != 4 {
		t.Fatalf("expected 4 bands, got %d", len(bands))
	}

	wantAlts := []float64{0, 5000, 10000, 15000}
	for i, b := range bands {
		if b.AltitudeFt != wantAlts[i] {
			t.Errorf("band %d: altitude = %.0f, want %.0f", i, b.AltitudeFt, wantAlts[i])
		}
		if b.Density <= 0 {
			t.Errorf("band %d: density %.6g must be positive", i, b.Density)
		}
		if b.DensityRatio <= 0 || b.DensityRatio > 1 {
			t.Errorf("band %d: density ratio %.6g out of (0,1]", i, b.DensityRatio)
		}
	}

	// Ascending altitude means monotonically thinner air on both columns.
	for i := 1; i < len(bands); i++ {
		if bands[i].Density >= bands[i-1].Density {
			t.Errorf("density not strictly decreasing at band %d", i)
		}
		if bands[i].DensityRatio >= bands[i-1].DensityRatio {
			t.Errorf("density ratio not strictly decreasing at band %d", i)
		}
	}

	if bands[0].Density != 2.377e-3 || bands[0].DensityRatio != 1.0 {
		t.Errorf("sea level row = %+v, want density 2.377e-3 ratio 1.0", bands[0])
	}
}

func TestStandardReturnsCopy(t *testing.T) {
	a := Standard()
	a[0].Density = 99

	b := Standard()
	if b[0].Density == 99 {
		t.Error("Standard() must return a fresh copy, not shared backing storage")
	}
}
