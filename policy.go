package renda

// Policy is the category-level rule table: which day of month coupons fall
// on and which day-count convention each (category, rate kind) pair uses.
// The historical application disagreed with itself on some of these rules,
// so they are configuration, resolved once per run, never inferred from an
// instrument's display name.
type Policy struct {
	// Anchors maps a category to its coupon anchor day of month.
	Anchors map[Category]int
	// Conventions maps (category, rate kind) to a day-count convention.
	Conventions map[ConventionKey]DayCount
	// BridgeDayCount is the convention used to reinvest an early-maturing
	// asset's proceeds at the reference curve.
	BridgeDayCount DayCount
}

// ConventionKey keys the convention table by category and rate kind.
type ConventionKey struct {
	Category Category
	Kind     RateKind
}

// DefaultPolicy returns the rule table the application ships with:
//   - funds pay on the 10th, everything else on the 15th;
//   - fixed and inflation-linked instruments always use calendar days;
//   - floating bank paper (CDB, government) compounds the reference rate
//     daily over exact business days;
//   - floating structured credit and fund paper compounds monthly at the
//     21-business-day approximation.
func DefaultPolicy() Policy {
	p := Policy{
		Anchors: map[Category]int{
			CategoryFund: 10,
		},
		Conventions:    make(map[ConventionKey]DayCount),
		BridgeDayCount: DayCount{Basis: BasisBusiness, Cap: CapDaily},
	}
	for _, cat := range []Category{
		CategoryCDB, CategoryLCI, CategoryCRI,
		CategoryDebenture, CategoryFund, CategoryGovernment,
	} {
		for _, kind := range []RateKind{
			KindFixed, KindPercentOfReference,
			KindReferencePlusSpread, KindInflationPlusSpread,
		} {
			dc := DayCount{Basis: BasisCalendar}
			if kind.Floating() {
				dc = DayCount{Basis: BasisBusiness, Cap: CapMonthly}
				if cat == CategoryCDB || cat == CategoryGovernment {
					dc.Cap = CapDaily
				}
			}
			p.Conventions[ConventionKey{cat, kind}] = dc
		}
	}
	return p
}

// defaultAnchorDay is the anchor used for categories without an explicit entry.
const defaultAnchorDay = 15

// Anchor returns the coupon anchor day for a category.
func (p Policy) Anchor(c Category) int {
	if day, ok := p.Anchors[c]; ok {
		return day
	}
	return defaultAnchorDay
}

// DayCount returns the day-count convention for a (category, rate kind) pair.
func (p Policy) DayCount(c Category, k RateKind) DayCount {
	if dc, ok := p.Conventions[ConventionKey{c, k}]; ok {
		return dc
	}
	return DayCount{Basis: BasisCalendar}
}
