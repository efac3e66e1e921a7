package renda

import (
	"sort"
	"time"
)

// anchored returns the date of the anchor day in the given year and month,
// clamping the day to the month's length so the anchor never drifts into
// the next month.
func anchored(year int, month time.Month, day int) Date {
	last := NewDate(year, month+1, 1).Add(-1)
	if day > last.Day() {
		day = last.Day()
	}
	return NewDate(year, month, day)
}

// AnchorSchedule produces the ordered coupon payment dates for a rolling
// anchor-day schedule: the first date is the earliest anchor-day occurrence
// strictly after 'start', and subsequent dates step forward by the
// frequency's month count, preserving the anchor day. The last element is
// the last date not after 'horizon'; the result may be empty.
func AnchorSchedule(freq Frequency, anchorDay int, start, horizon Date) []Date {
	step := freq.Months()
	if step == 0 || !horizon.After(start) {
		return nil
	}
	first := anchored(start.Year(), start.Month(), anchorDay)
	if !first.After(start) {
		first = anchored(start.Year(), start.Month()+1, anchorDay)
	}
	var dates []Date
	for y, m, k := first.Year(), first.Month(), 0; ; k++ {
		// Month arithmetic, not day arithmetic, so the anchor day never
		// drifts across months of different lengths.
		d := anchored(y, m+time.Month(k*step), anchorDay)
		if d.After(horizon) {
			break
		}
		dates = append(dates, d)
	}
	return dates
}

// MonthSchedule produces the payment dates for schedules that name explicit
// calendar months per year (e.g. February and August) instead of rolling an
// anchor. Dates fall on the anchor day of each named month, strictly after
// 'start' and not after 'horizon'.
func MonthSchedule(months []time.Month, anchorDay int, start, horizon Date) []Date {
	if len(months) == 0 || !horizon.After(start) {
		return nil
	}
	var dates []Date
	for year := start.Year(); year <= horizon.Year(); year++ {
		for _, m := range months {
			d := anchored(year, m, anchorDay)
			if !d.After(start) || d.After(horizon) {
				continue
			}
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// CouponDates resolves the schedule for an asset under a policy: explicit
// pay months when configured, otherwise the rolling anchor-day schedule at
// the category's anchor.
func (a AssetConfig) CouponDates(p Policy, horizon Date) []Date {
	anchorDay := a.AnchorDay
	if anchorDay == 0 {
		anchorDay = p.Anchor(a.Category)
	}
	start := a.AccrualStart()
	if len(a.PayMonths) > 0 {
		return MonthSchedule(a.PayMonths, anchorDay, start, horizon)
	}
	return AnchorSchedule(a.Frequency, anchorDay, start, horizon)
}
