package renda

import "math"

// Basis is the day-count basis used to convert an annual rate into a rate
// for a date interval.
type Basis int

const (
	// BasisCalendar is ACT/365: calendar days, 365-day year.
	BasisCalendar Basis = iota
	// BasisBusiness is ACT/252: Monday-Friday business days, 252-day year.
	BasisBusiness
)

func (b Basis) String() string {
	switch b {
	case BasisCalendar:
		return "calendar/365"
	case BasisBusiness:
		return "business/252"
	default:
		return "unknown"
	}
}

// Capitalization is the granularity at which a business-day rate compounds.
type Capitalization int

const (
	// CapDaily compounds over the exact business-day count of the interval.
	CapDaily Capitalization = iota
	// CapMonthly compounds whole months at a fixed 21-business-day month.
	CapMonthly
)

func (c Capitalization) String() string {
	switch c {
	case CapDaily:
		return "daily"
	case CapMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// businessDaysPerMonth is the fixed approximation used by monthly
// capitalization on the 252 basis.
const businessDaysPerMonth = 21

// DayCount couples a basis with a capitalization granularity. It fully
// determines how an annual rate turns into a period rate.
type DayCount struct {
	Basis Basis
	Cap   Capitalization
}

// DailyRate converts an annual rate in percent into the equivalent daily
// rate fraction on the given base (365 or 252 days per year).
func DailyRate(annual Percent, base int) float64 {
	return math.Pow(1+float64(annual)/100, 1/float64(base)) - 1
}

// PeriodRate converts an annual rate in percent into the compounded rate
// fraction for the interval (from, to]. It returns 0 whenever from >= to,
// so degenerate windows at schedule boundaries cost nothing.
func PeriodRate(annual Percent, from, to Date, dc DayCount) float64 {
	if !to.After(from) {
		return 0
	}
	switch dc.Basis {
	case BasisBusiness:
		daily := DailyRate(annual, 252)
		if dc.Cap == CapMonthly {
			months := MonthsBetween(from, to)
			if months < 1 {
				// Sub-month window: fall back to the exact business-day count.
				return math.Pow(1+daily, float64(BusinessDaysBetween(from, to))) - 1
			}
			return math.Pow(1+daily, float64(months*businessDaysPerMonth)) - 1
		}
		return math.Pow(1+daily, float64(BusinessDaysBetween(from, to))) - 1
	default:
		daily := DailyRate(annual, 365)
		return math.Pow(1+daily, float64(DaysBetween(from, to))) - 1
	}
}

// MonthlyFromAnnual converts an annual rate in percent into the equivalent
// monthly rate fraction: (1+annual)^(1/12) - 1.
func MonthlyFromAnnual(annual Percent) float64 {
	return math.Pow(1+float64(annual)/100, 1.0/12) - 1
}

// Compound combines two period rate fractions multiplicatively:
// (1+a)(1+b) - 1. Used for inflation-plus-real and reference-plus-spread
// composites.
func Compound(a, b float64) float64 {
	return (1+a)*(1+b) - 1
}
