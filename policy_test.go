package renda

import "testing"

func TestRateKind_Floating(t *testing.T) {
	floating := map[RateKind]bool{
		KindFixed:               false,
		KindPercentOfReference:  true,
		KindReferencePlusSpread: true,
		KindInflationPlusSpread: false,
	}
	for kind, want := range floating {
		if got := kind.Floating(); got != want {
			t.Errorf("%v.Floating() = %v, want %v", kind, got, want)
		}
	}
}

func TestDefaultPolicy_Conventions(t *testing.T) {
	p := DefaultPolicy()
	testCases := []struct {
		name string
		cat  Category
		kind RateKind
		want DayCount
	}{
		{"fixed cdb on calendar days", CategoryCDB, KindFixed, DayCount{Basis: BasisCalendar}},
		{"inflation-linked debenture on calendar days", CategoryDebenture, KindInflationPlusSpread, DayCount{Basis: BasisCalendar}},
		{"floating cdb compounds daily", CategoryCDB, KindPercentOfReference, DayCount{Basis: BasisBusiness, Cap: CapDaily}},
		{"floating government compounds daily", CategoryGovernment, KindReferencePlusSpread, DayCount{Basis: BasisBusiness, Cap: CapDaily}},
		{"floating lci compounds monthly", CategoryLCI, KindPercentOfReference, DayCount{Basis: BasisBusiness, Cap: CapMonthly}},
		{"floating fund compounds monthly", CategoryFund, KindReferencePlusSpread, DayCount{Basis: BasisBusiness, Cap: CapMonthly}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.DayCount(tc.cat, tc.kind); got != tc.want {
				t.Errorf("DayCount(%v, %v) = %v, want %v", tc.cat, tc.kind, got, tc.want)
			}
		})
	}
}

func TestDefaultPolicy_Anchors(t *testing.T) {
	p := DefaultPolicy()
	if got := p.Anchor(CategoryFund); got != 10 {
		t.Errorf("fund anchor = %d, want 10", got)
	}
	if got := p.Anchor(CategoryCDB); got != 15 {
		t.Errorf("cdb anchor = %d, want 15", got)
	}
}
