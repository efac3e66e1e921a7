package renda

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// MacroProjection maps calendar years to annual reference rates, in percent,
// separately for the interest-rate benchmark and the inflation index.
// Years beyond the last supplied key reuse that key's rate (terminal regime).
type MacroProjection struct {
	Reference map[int]Percent `json:"reference"`
	Inflation map[int]Percent `json:"inflation"`
}

// Validate checks that the projection can cover any horizon: the reference
// series must have at least one year and neither series may have gaps.
func (m MacroProjection) Validate() error {
	var errs []error
	if len(m.Reference) == 0 {
		errs = append(errs, errors.New("macro projection needs at least one reference rate year"))
	}
	if err := contiguousYears("reference", m.Reference); err != nil {
		errs = append(errs, err)
	}
	if err := contiguousYears("inflation", m.Inflation); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func contiguousYears(name string, series map[int]Percent) error {
	if len(series) < 2 {
		return nil
	}
	years := make([]int, 0, len(series))
	for y := range series {
		years = append(years, y)
	}
	sort.Ints(years)
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			return fmt.Errorf("%s projection has a gap: year %d is missing", name, years[i-1]+1)
		}
	}
	return nil
}

// resolve returns the annual rate for a year, clamping to the series'
// first and last supplied years so every year resolves to a defined rate.
func resolve(series map[int]Percent, year int) Percent {
	if r, ok := series[year]; ok {
		return r
	}
	if len(series) == 0 {
		return 0
	}
	lo, hi := math.MaxInt, math.MinInt
	for y := range series {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	if year > hi {
		return series[hi]
	}
	return series[lo]
}

// AnnualReference resolves the benchmark rate for a year under the terminal regime.
func (m MacroProjection) AnnualReference(year int) Percent { return resolve(m.Reference, year) }

// AnnualInflation resolves the inflation rate for a year under the terminal regime.
func (m MacroProjection) AnnualInflation(year int) Percent { return resolve(m.Inflation, year) }

// MonthPoint is one month of a MonthlyCurve.
type MonthPoint struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Annual  Percent    `json:"annual"`
	Monthly float64    `json:"monthly"`
}

// MonthlyCurve is a dense, contiguous sequence of months, one annual rate
// per month, derived once per run from a MacroProjection.
type MonthlyCurve struct {
	points []MonthPoint
}

// BuildMonthlyCurve expands an annual series into a monthly curve starting
// at January of startYear, with exactly 'months' entries. Years beyond the
// series reuse the last supplied rate.
func BuildMonthlyCurve(series map[int]Percent, startYear, months int) MonthlyCurve {
	if months < 1 {
		return MonthlyCurve{}
	}
	points := make([]MonthPoint, 0, months)
	for i := 0; i < months; i++ {
		d := NewDate(startYear, time.January, 1).AddMonth(i)
		annual := resolve(series, d.Year())
		points = append(points, MonthPoint{
			Year:    d.Year(),
			Month:   d.Month(),
			Annual:  annual,
			Monthly: MonthlyFromAnnual(annual),
		})
	}
	return MonthlyCurve{points: points}
}

// Len returns the number of months in the curve.
func (c MonthlyCurve) Len() int { return len(c.points) }

// At returns the i-th month of the curve.
func (c MonthlyCurve) At(i int) MonthPoint { return c.points[i] }

// AnnualAt returns the annual rate of the month containing d, clamped to the
// curve's first and last months.
func (c MonthlyCurve) AnnualAt(d Date) Percent {
	if len(c.points) == 0 {
		return 0
	}
	first := c.points[0]
	idx := (d.Year()-first.Year)*12 + int(d.Month()) - int(first.Month)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.points) {
		idx = len(c.points) - 1
	}
	return c.points[idx].Annual
}

// PeriodRate compounds the curve month by month over (from, to], applying
// each month's annual rate at the given day-count convention. Whole months
// are measured from 'from' anniversary to anniversary; it returns 0 when
// from >= to. On the business basis each slice counts its interior business
// days only, so boundary days accrue in neither slice and a flat year
// compounds near the conventional 252-day count.
func (c MonthlyCurve) PeriodRate(from, to Date, dc DayCount) float64 {
	if !to.After(from) {
		return 0
	}
	factor := 1.0
	for k := 0; ; k++ {
		a := from.AddMonth(k)
		if !a.Before(to) {
			break
		}
		b := a.AddMonth(1)
		if b.After(to) {
			b = to
		}
		factor *= 1 + PeriodRate(c.AnnualAt(a), a, b, dc)
	}
	return factor - 1
}

// GrowthFactor is the compounded growth factor over (from, to]:
// 1 + PeriodRate.
func (c MonthlyCurve) GrowthFactor(from, to Date, dc DayCount) float64 {
	return 1 + c.PeriodRate(from, to, dc)
}

// Market bundles the two monthly curves one comparison run needs.
type Market struct {
	Reference MonthlyCurve
	Inflation MonthlyCurve
}

// NewMarket derives both monthly curves from a projection, spanning January
// of startYear through December of endYear.
func NewMarket(proj MacroProjection, startYear, endYear int) Market {
	months := (endYear - startYear + 1) * 12
	if months < 12 {
		months = 12
	}
	return Market{
		Reference: BuildMonthlyCurve(proj.Reference, startYear, months),
		Inflation: BuildMonthlyCurve(proj.Inflation, startYear, months),
	}
}
