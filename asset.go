package renda

import (
	"errors"
	"fmt"
	"time"
)

// AssetConfig describes one instrument under analysis. It is built from
// user input, validated once, and never mutated by the engine.
type AssetConfig struct {
	// Name is the display name or ticker, presentation only.
	Name string `json:"name"`
	// Category selects the calendar and day-count rules; it is explicit,
	// never inferred from Name.
	Category Category `json:"category"`
	// Kind says how Rate is interpreted.
	Kind RateKind `json:"kind"`
	// Rate is the annual rate parameter in percent: the fixed rate, the
	// percentage of the reference rate, or the spread, depending on Kind.
	Rate Percent `json:"rate"`
	// Settlement is the original investment date; the regressive tax clock
	// starts here.
	Settlement Date `json:"settlement"`
	// Maturity is the natural redemption date.
	Maturity Date `json:"maturity"`
	// Principal is the settlement ("curve") value the projection grows,
	// distinct from any acquisition cost.
	Principal Money `json:"principal"`
	// Frequency is the coupon payment frequency.
	Frequency Frequency `json:"frequency"`
	// TaxRegime selects the withholding rule. Left unset it resolves to
	// the category's conventional regime, see DefaultRegime.
	TaxRegime TaxRegime `json:"taxRegime,omitempty"`
	// FlatRate is the configured rate in percent when TaxRegime is flat.
	FlatRate Percent `json:"flatRate,omitempty"`
	// EarningsStart, when set, overrides Settlement as the date accrual
	// begins. Used when an instrument's income-generating period differs
	// from its settlement date.
	EarningsStart Date `json:"earningsStart,omitzero"`
	// AnchorDay, when non-zero, overrides the policy's anchor day of month.
	AnchorDay int `json:"anchorDay,omitempty"`
	// PayMonths, when non-empty, switches to an explicit-months schedule
	// (e.g. February and August) instead of a rolling anchor.
	PayMonths []time.Month `json:"payMonths,omitempty"`
}

// AccrualStart returns the date accrual begins: EarningsStart when set,
// otherwise Settlement.
func (a AssetConfig) AccrualStart() Date {
	if !a.EarningsStart.IsZero() {
		return a.EarningsStart
	}
	return a.Settlement
}

// Validate returns every configuration problem found, joined into one
// error, or nil. The engine refuses to project an invalid asset.
func (a AssetConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %s", a.label(), fmt.Sprintf(format, args...)))
	}

	if !a.Principal.IsPositive() {
		fail("principal must be positive, got %s", a.Principal)
	}
	if a.Rate <= 0 {
		fail("rate must be positive, got %s", a.Rate)
	}
	if a.Settlement.IsZero() {
		fail("settlement date is required")
	}
	if a.Maturity.IsZero() {
		fail("maturity date is required")
	} else if !a.Maturity.After(a.Settlement) {
		fail("maturity %s must be after settlement %s", a.Maturity, a.Settlement)
	}
	if a.TaxRegime == TaxFlat && a.FlatRate <= 0 {
		fail("flat tax regime requires a positive flat rate")
	}
	if a.AnchorDay < 0 || a.AnchorDay > 31 {
		fail("anchor day %d must be between 1 and 31", a.AnchorDay)
	}
	if !a.EarningsStart.IsZero() && !a.Maturity.After(a.EarningsStart) {
		fail("earnings start %s must precede maturity %s", a.EarningsStart, a.Maturity)
	}
	for _, m := range a.PayMonths {
		if m < time.January || m > time.December {
			fail("invalid pay month %d", m)
		}
	}
	return errors.Join(errs...)
}

func (a AssetConfig) label() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Category.String()
}
