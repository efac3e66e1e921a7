package renda

import (
	"fmt"
)

// CouponEvent is one scheduled cash-flow point of an asset's ledger,
// immutable once produced.
type CouponEvent struct {
	Date       Date    `json:"date"`
	Gross      Money   `json:"gross"`
	Tax        Money   `json:"tax"`
	Net        Money   `json:"net"`
	Factor     float64 `json:"factor"` // compounded growth from payment date to horizon
	Reinvested Money   `json:"reinvested"`
}

// ProjectionResult is the full outcome of projecting one asset to a horizon.
// It is derived data: recomputed from scratch whenever any input changes,
// never patched in place.
type ProjectionResult struct {
	Asset   AssetConfig
	Horizon Date
	// Coupons is the ordered coupon ledger.
	Coupons []CouponEvent
	// Series holds the projected value at each settlement anniversary,
	// ending with the value at the horizon.
	Series []Money
	// TotalTax is the sum of coupon withholdings and the terminal tax.
	TotalTax Money
	// Final is the comparable value at the horizon: net terminal principal
	// plus all reinvested coupons.
	Final Money
	// Truncated reports that the horizon precedes the natural maturity, so
	// the principal was capitalized to the horizon instead of redeemed at par.
	Truncated bool
	// TerminalGain and TerminalTax describe the capitalization adjustment,
	// both zero for a par redemption.
	TerminalGain Money
	TerminalTax  Money
}

// periodRate computes the asset's accrual rate fraction over (from, to]
// under its rate kind. Floating kinds read the reference curve; the
// inflation-linked kind always accrues on calendar days.
func (a AssetConfig) periodRate(mkt Market, from, to Date, dc DayCount) float64 {
	switch a.Kind {
	case KindPercentOfReference:
		return mkt.Reference.PeriodRate(from, to, dc) * float64(a.Rate) / 100
	case KindReferencePlusSpread:
		return Compound(mkt.Reference.PeriodRate(from, to, dc), PeriodRate(a.Rate, from, to, dc))
	case KindInflationPlusSpread:
		cal := DayCount{Basis: BasisCalendar}
		return Compound(mkt.Inflation.PeriodRate(from, to, cal), PeriodRate(a.Rate, from, to, cal))
	default:
		return PeriodRate(a.Rate, from, to, dc)
	}
}

// Project runs the cash-flow projection of one asset up to the horizon.
// The horizon must not exceed the asset's natural maturity; bridging past
// maturity is the comparison orchestrator's job.
//
// Per coupon, in schedule order: the accrual window runs from the previous
// coupon (or the accrual start) to the day before the payment date, the
// gross coupon is principal times the period rate clamped at zero, the
// withholding follows the asset's regime by days held since settlement, and
// the net coupon is reinvested at the reference curve through the horizon.
func Project(a AssetConfig, mkt Market, horizon Date, p Policy) (*ProjectionResult, error) {
	if horizon.After(a.Maturity) {
		return nil, fmt.Errorf("%s: horizon %s exceeds maturity %s", a.label(), horizon, a.Maturity)
	}
	if horizon.IsZero() || !horizon.After(a.Settlement) {
		return nil, fmt.Errorf("%s: horizon %s must be after settlement %s", a.label(), horizon, a.Settlement)
	}

	dc := p.DayCount(a.Category, a.Kind)
	zero := a.Principal.MulFactor(0)

	r := &ProjectionResult{
		Asset:        a,
		Horizon:      horizon,
		TotalTax:     zero,
		TerminalGain: zero,
		TerminalTax:  zero,
	}

	prev := a.AccrualStart()
	for _, d := range a.CouponDates(p, horizon) {
		rate := a.periodRate(mkt, prev, d.Add(-1), dc)
		if rate < 0 {
			rate = 0
		}
		gross := a.Principal.MulFactor(rate)
		tax, net := a.withhold(gross, DaysBetween(a.Settlement, d))
		factor := mkt.Reference.GrowthFactor(d, horizon, dc)
		r.Coupons = append(r.Coupons, CouponEvent{
			Date:       d,
			Gross:      gross,
			Tax:        tax,
			Net:        net,
			Factor:     factor,
			Reinvested: net.MulFactor(factor),
		})
		r.TotalTax = r.TotalTax.Add(tax)
		prev = d
	}

	// Terminal principal: par redemption at natural maturity; a truncated
	// horizon (or a no-coupon asset, whose entire growth is terminal)
	// capitalizes the principal from the last coupon at the asset's own
	// rate and taxes the gain by the full holding period.
	r.Truncated = horizon.Before(a.Maturity)
	principalNet := a.Principal
	if r.Truncated || a.Frequency == NoCoupon {
		rate := a.periodRate(mkt, prev, horizon, dc)
		if rate < 0 {
			rate = 0
		}
		r.TerminalGain = a.Principal.MulFactor(rate)
		tax, net := a.withhold(r.TerminalGain, DaysBetween(a.Settlement, horizon))
		r.TerminalTax = tax
		r.TotalTax = r.TotalTax.Add(tax)
		principalNet = a.Principal.Add(net)
	}

	r.Final = principalNet
	for _, c := range r.Coupons {
		r.Final = r.Final.Add(c.Reinvested)
	}

	r.Series = a.valueSeries(mkt, dc, r, horizon)
	return r, nil
}

// valueSeries projects the asset's value at each settlement anniversary up
// to and including the horizon.
func (a AssetConfig) valueSeries(mkt Market, dc DayCount, r *ProjectionResult, horizon Date) []Money {
	months := MonthsBetween(a.Settlement, horizon)
	years := (months + 11) / 12
	if years < 1 {
		years = 1
	}
	series := make([]Money, 0, years+1)
	for k := 0; k <= years; k++ {
		on := MinDate(a.Settlement.AddMonth(12*k), horizon)
		series = append(series, a.valueAt(mkt, dc, r, on, horizon))
	}
	return series
}

// valueAt is the projected total value on a date: the principal (capitalized
// for no-coupon assets, par otherwise) plus every coupon paid so far grown
// at the reference curve to that date. At the horizon it equals Final.
func (a AssetConfig) valueAt(mkt Market, dc DayCount, r *ProjectionResult, on, horizon Date) Money {
	if !on.Before(horizon) {
		return r.Final
	}
	v := a.Principal
	if a.Frequency == NoCoupon {
		rate := a.periodRate(mkt, a.AccrualStart(), on, dc)
		if rate > 0 {
			v = v.MulFactor(1 + rate)
		}
	}
	for _, c := range r.Coupons {
		if c.Date.After(on) {
			break
		}
		v = v.Add(c.Net.MulFactor(mkt.Reference.GrowthFactor(c.Date, on, dc)))
	}
	return v
}

// MarshalJSON emits the projection as a flat structured record for the
// presentation layer.
func (r *ProjectionResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("asset", r.Asset)
	w.Append("horizon", r.Horizon)
	w.Append("series", r.Series)
	w.Append("totalTax", r.TotalTax)
	w.Append("final", r.Final)
	w.Optional("truncated", r.Truncated)
	if r.Truncated || r.Asset.Frequency == NoCoupon {
		w.Append("terminalGain", r.TerminalGain)
		w.Append("terminalTax", r.TerminalTax)
	}
	w.Append("coupons", r.Coupons)
	return w.MarshalJSON()
}
