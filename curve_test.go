package renda

import (
	"math"
	"testing"
	"time"
)

func TestBuildMonthlyCurve_CoverageAndTerminalRegime(t *testing.T) {
	series := map[int]Percent{2025: 10, 2026: 9, 2027: 8.5}
	// Ten years: seven beyond the projection horizon.
	curve := BuildMonthlyCurve(series, 2025, 120)

	if curve.Len() != 120 {
		t.Fatalf("Len() = %d, want 120", curve.Len())
	}
	// One entry per month, contiguous.
	for i := 0; i < curve.Len(); i++ {
		p := curve.At(i)
		wantYear := 2025 + i/12
		wantMonth := time.Month(i%12 + 1)
		if p.Year != wantYear || p.Month != wantMonth {
			t.Fatalf("At(%d) = %d-%d, want %d-%d", i, p.Year, p.Month, wantYear, wantMonth)
		}
		// Terminal regime: no month may resolve to an undefined rate.
		want := series[p.Year]
		if p.Year > 2027 {
			want = series[2027]
		}
		if p.Annual != want {
			t.Errorf("At(%d).Annual = %v, want %v", i, p.Annual, want)
		}
		if wantMonthly := MonthlyFromAnnual(want); !almostEqual(p.Monthly, wantMonthly, floatTolerance) {
			t.Errorf("At(%d).Monthly = %v, want %v", i, p.Monthly, wantMonthly)
		}
	}
}

func TestBuildMonthlyCurve_NonPositiveMonths(t *testing.T) {
	for _, months := range []int{0, -12} {
		curve := BuildMonthlyCurve(map[int]Percent{2025: 10}, 2025, months)
		if curve.Len() != 0 {
			t.Errorf("BuildMonthlyCurve(%d months).Len() = %d, want 0", months, curve.Len())
		}
	}
}

func TestMacroProjection_Resolve(t *testing.T) {
	m := MacroProjection{
		Reference: map[int]Percent{2025: 10, 2026: 9},
		Inflation: map[int]Percent{2025: 4},
	}
	testCases := []struct {
		year int
		want Percent
	}{
		{2025, 10},
		{2026, 9},
		{2030, 9},  // beyond the last year, terminal regime
		{2020, 10}, // before the first year, clamped down
	}
	for _, tc := range testCases {
		if got := m.AnnualReference(tc.year); got != tc.want {
			t.Errorf("AnnualReference(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
	if got := m.AnnualInflation(2040); got != 4 {
		t.Errorf("AnnualInflation(2040) = %v, want 4", got)
	}
}

func TestMacroProjection_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		proj    MacroProjection
		wantErr bool
	}{
		{"valid single year", MacroProjection{Reference: map[int]Percent{2025: 10}}, false},
		{"valid contiguous", MacroProjection{Reference: map[int]Percent{2025: 10, 2026: 9, 2027: 8}}, false},
		{"empty reference", MacroProjection{}, true},
		{"gap in reference", MacroProjection{Reference: map[int]Percent{2025: 10, 2027: 8}}, true},
		{"gap in inflation", MacroProjection{
			Reference: map[int]Percent{2025: 10},
			Inflation: map[int]Percent{2025: 4, 2028: 3},
		}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.proj.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMonthlyCurve_PeriodRate(t *testing.T) {
	flat := BuildMonthlyCurve(map[int]Percent{2025: 10}, 2025, 120)
	cal := DayCount{Basis: BasisCalendar}

	t.Run("degenerate window", func(t *testing.T) {
		d := NewDate(2025, time.June, 10)
		if got := flat.PeriodRate(d, d, cal); got != 0 {
			t.Errorf("PeriodRate(d, d) = %v, want 0", got)
		}
		if got := flat.PeriodRate(d, d.Add(-30), cal); got != 0 {
			t.Errorf("PeriodRate reversed = %v, want 0", got)
		}
	})

	t.Run("flat curve one year", func(t *testing.T) {
		from := NewDate(2025, time.January, 1)
		got := flat.PeriodRate(from, from.AddMonth(12), cal)
		if !almostEqual(got, 0.10, 1e-6) {
			t.Errorf("flat 10%% over 12 months = %v, want 0.10", got)
		}
	})

	t.Run("monthly cap twelve months", func(t *testing.T) {
		from := NewDate(2025, time.January, 15)
		got := flat.PeriodRate(from, from.AddMonth(12), DayCount{Basis: BasisBusiness, Cap: CapMonthly})
		// Twelve 21-business-day months recompose the annual rate.
		if !almostEqual(got, 0.10, 1e-9) {
			t.Errorf("monthly cap over 12 months = %v, want 0.10", got)
		}
	})

	t.Run("daily cap compounds conventional months", func(t *testing.T) {
		// Month-sliced compounding leaves slice-boundary business days
		// out of the count, so a flat year accrues close to the 252-day
		// conventional count and stays below the exact-window rate a
		// single flat rate would give over the same dates.
		dc := DayCount{Basis: BasisBusiness, Cap: CapDaily}
		from := NewDate(2025, time.January, 1)
		to := from.AddMonth(12)
		got := flat.PeriodRate(from, to, dc)
		if !almostEqual(got, 0.10, 2e-3) {
			t.Errorf("daily cap over 12 months = %v, want close to 0.10", got)
		}
		direct := PeriodRate(10, from, to, dc)
		if got >= direct {
			t.Errorf("sliced rate %v should stay below exact-window rate %v", got, direct)
		}
	})

	t.Run("growth factor positive", func(t *testing.T) {
		from := NewDate(2025, time.March, 10)
		f := flat.GrowthFactor(from, from.AddMonth(24), cal)
		want := math.Pow(1.10, 2)
		if !almostEqual(f, want, 1e-4) {
			t.Errorf("GrowthFactor over 2y = %v, want ~%v", f, want)
		}
	})
}

func TestNewMarket(t *testing.T) {
	proj := MacroProjection{
		Reference: map[int]Percent{2025: 10},
		Inflation: map[int]Percent{2025: 4},
	}
	mkt := NewMarket(proj, 2025, 2029)
	if mkt.Reference.Len() != 60 {
		t.Errorf("Reference.Len() = %d, want 60", mkt.Reference.Len())
	}
	if mkt.Inflation.Len() != 60 {
		t.Errorf("Inflation.Len() = %d, want 60", mkt.Inflation.Len())
	}
}
