package renda

import (
	"testing"
	"time"
)

func assertStrictlyIncreasing(t *testing.T, dates []Date) {
	t.Helper()
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			t.Fatalf("schedule not strictly increasing at %d: %v then %v", i, dates[i-1], dates[i])
		}
	}
}

func TestAnchorSchedule_Monthly(t *testing.T) {
	start := NewDate(2025, time.March, 20)
	horizon := NewDate(2026, time.March, 20)
	dates := AnchorSchedule(MonthlyCoupon, 15, start, horizon)

	if len(dates) != 12 {
		t.Fatalf("len = %d, want 12", len(dates))
	}
	// First date is the earliest anchor occurrence strictly after start.
	if dates[0] != NewDate(2025, time.April, 15) {
		t.Errorf("first = %v, want 2025-04-15", dates[0])
	}
	assertStrictlyIncreasing(t, dates)
	for _, d := range dates {
		if d.Day() != 15 {
			t.Errorf("date %v not on anchor day 15", d)
		}
		if d.After(horizon) {
			t.Errorf("date %v beyond horizon %v", d, horizon)
		}
	}
}

func TestAnchorSchedule_FirstStrictlyAfterStart(t *testing.T) {
	// Start exactly on the anchor day: the first coupon is next month.
	start := NewDate(2025, time.March, 15)
	dates := AnchorSchedule(MonthlyCoupon, 15, start, NewDate(2025, time.June, 30))
	if len(dates) == 0 || dates[0] != NewDate(2025, time.April, 15) {
		t.Fatalf("first = %v, want 2025-04-15", dates)
	}

	// Start just before the anchor day: the first coupon is the same month.
	dates = AnchorSchedule(MonthlyCoupon, 15, NewDate(2025, time.March, 14), NewDate(2025, time.June, 30))
	if len(dates) == 0 || dates[0] != NewDate(2025, time.March, 15) {
		t.Fatalf("first = %v, want 2025-03-15", dates)
	}
}

func TestAnchorSchedule_Semiannual(t *testing.T) {
	start := NewDate(2025, time.January, 10)
	horizon := NewDate(2029, time.January, 10)
	dates := AnchorSchedule(SemiannualCoupon, 15, start, horizon)

	// Jan 2025 through Jan 2029 every six months from the first anchor.
	if len(dates) != 8 {
		t.Fatalf("len = %d, want 8: %v", len(dates), dates)
	}
	if dates[0] != NewDate(2025, time.January, 15) {
		t.Errorf("first = %v, want 2025-01-15", dates[0])
	}
	if last := dates[len(dates)-1]; last != NewDate(2028, time.July, 15) {
		t.Errorf("last = %v, want 2028-07-15", last)
	}
	assertStrictlyIncreasing(t, dates)
}

func TestAnchorSchedule_Degenerate(t *testing.T) {
	start := NewDate(2025, time.March, 20)
	if dates := AnchorSchedule(MonthlyCoupon, 15, start, start); dates != nil {
		t.Errorf("empty window should produce no dates, got %v", dates)
	}
	if dates := AnchorSchedule(NoCoupon, 15, start, start.AddYear(4)); dates != nil {
		t.Errorf("no-coupon frequency should produce no dates, got %v", dates)
	}
	// A window too short to reach the next anchor.
	if dates := AnchorSchedule(MonthlyCoupon, 15, NewDate(2025, time.March, 16), NewDate(2025, time.April, 10)); dates != nil {
		t.Errorf("short window should produce no dates, got %v", dates)
	}
}

func TestAnchorSchedule_AnchorClampedToMonthEnd(t *testing.T) {
	dates := AnchorSchedule(MonthlyCoupon, 31, NewDate(2025, time.January, 1), NewDate(2025, time.April, 30))
	want := []Date{
		NewDate(2025, time.January, 31),
		NewDate(2025, time.February, 28),
		NewDate(2025, time.March, 31),
		NewDate(2025, time.April, 30),
	}
	if len(dates) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(dates), len(want), dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
}

func TestMonthSchedule_FixedMonths(t *testing.T) {
	start := NewDate(2025, time.March, 1)
	horizon := NewDate(2027, time.August, 31)
	dates := MonthSchedule([]time.Month{time.February, time.August}, 15, start, horizon)

	want := []Date{
		NewDate(2025, time.August, 15),
		NewDate(2026, time.February, 15),
		NewDate(2026, time.August, 15),
		NewDate(2027, time.February, 15),
		NewDate(2027, time.August, 15),
	}
	if len(dates) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(dates), len(want), dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
	assertStrictlyIncreasing(t, dates)
}

func TestCouponDates_PolicyAnchor(t *testing.T) {
	asset := AssetConfig{
		Category:   CategoryFund,
		Frequency:  MonthlyCoupon,
		Settlement: NewDate(2025, time.March, 1),
		Maturity:   NewDate(2025, time.September, 30),
	}
	dates := asset.CouponDates(DefaultPolicy(), asset.Maturity)
	if len(dates) == 0 {
		t.Fatal("expected coupon dates")
	}
	for _, d := range dates {
		// Funds pay on the 10th under the default policy.
		if d.Day() != 10 {
			t.Errorf("fund coupon %v not on day 10", d)
		}
	}

	asset.AnchorDay = 25
	dates = asset.CouponDates(DefaultPolicy(), asset.Maturity)
	for _, d := range dates {
		if d.Day() != 25 {
			t.Errorf("override coupon %v not on day 25", d)
		}
	}
}

func TestCouponDates_EarningsStartOverride(t *testing.T) {
	asset := AssetConfig{
		Category:      CategoryCDB,
		Frequency:     MonthlyCoupon,
		Settlement:    NewDate(2025, time.March, 1),
		EarningsStart: NewDate(2025, time.June, 1),
		Maturity:      NewDate(2025, time.December, 31),
	}
	dates := asset.CouponDates(DefaultPolicy(), asset.Maturity)
	if len(dates) == 0 {
		t.Fatal("expected coupon dates")
	}
	if dates[0] != NewDate(2025, time.June, 15) {
		t.Errorf("first = %v, want 2025-06-15 (accrual starts at earnings start)", dates[0])
	}
}
