package renda

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mode selects how two assets with different natural maturities are brought
// onto one common horizon.
type Mode int

const (
	// ModeNatural lets the orchestrator pick: equal maturities compare
	// directly, otherwise the earlier asset is bridged forward.
	ModeNatural Mode = iota
	// ModeBridge reinvests the earlier asset's net redemption at the
	// reference curve until the later maturity.
	ModeBridge
	// ModeTruncate cuts the longer asset's analysis at the shorter
	// maturity, capitalizing its principal instead of redeeming at par.
	ModeTruncate
)

func (m Mode) String() string {
	switch m {
	case ModeNatural:
		return "natural"
	case ModeBridge:
		return "bridge"
	case ModeTruncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a comparison Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "natural", "":
		return ModeNatural, nil
	case "bridge":
		return ModeBridge, nil
	case "truncate":
		return ModeTruncate, nil
	default:
		return 0, fmt.Errorf("unknown comparison mode: %q", s)
	}
}

func (m Mode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ComparisonInput is the complete snapshot one comparison run consumes.
type ComparisonInput struct {
	A     AssetConfig     `json:"a"`
	B     AssetConfig     `json:"b"`
	Macro MacroProjection `json:"macro"`
	Mode  Mode            `json:"mode"`
	// Policy overrides the default category rule table when non-nil.
	Policy *Policy `json:"-"`
}

// ReinvestmentRecord describes the bridging reinvestment applied to an
// early-maturing asset so both assets are comparable at one date.
type ReinvestmentRecord struct {
	Source     string  `json:"source"`
	From       Date    `json:"from"`
	To         Date    `json:"to"`
	WindowDays int     `json:"windowDays"`
	Rate       float64 `json:"rate"` // compounded period rate of the window
	Redeemed   Money   `json:"redeemed"`
	Tax        Money   `json:"tax"`
	Reinvested Money   `json:"reinvested"`
}

// ComparisonResult pairs two projections on one horizon.
type ComparisonResult struct {
	A            *ProjectionResult
	B            *ProjectionResult
	Horizon      Date
	Mode         Mode
	Reinvestment *ReinvestmentRecord
}

// Winner returns the name of the asset with the higher final value, or ""
// on a tie.
func (r *ComparisonResult) Winner() string {
	switch {
	case r.A.Final.GreaterThan(r.B.Final):
		return r.A.Asset.label()
	case r.B.Final.GreaterThan(r.A.Final):
		return r.B.Asset.label()
	default:
		return ""
	}
}

// MarshalJSON emits the comparison as a flat structured record.
func (r *ComparisonResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("horizon", r.Horizon)
	w.Append("mode", r.Mode)
	w.Optional("winner", r.Winner())
	if r.Reinvestment != nil {
		w.Append("reinvestment", r.Reinvestment)
	}
	w.Append("a", r.A)
	w.Append("b", r.B)
	return w.MarshalJSON()
}

// Compare aligns the two assets onto one horizon and projects both. It
// validates the whole input first and refuses to run on any failure; a
// returned result is always complete.
func Compare(in ComparisonInput) (*ComparisonResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	policy := DefaultPolicy()
	if in.Policy != nil {
		policy = *in.Policy
	}

	mode := in.Mode
	if mode == ModeNatural && in.A.Maturity != in.B.Maturity {
		mode = ModeBridge
	}

	horizon := MaxDate(in.A.Maturity, in.B.Maturity)
	if mode == ModeTruncate {
		horizon = MinDate(in.A.Maturity, in.B.Maturity)
	}
	mkt := NewMarket(in.Macro, MinDate(in.A.Settlement, in.B.Settlement).Year(), horizon.Year())

	result := &ComparisonResult{Horizon: horizon, Mode: mode}

	var err error
	result.A, err = projectAligned(in.A, mkt, horizon, policy, result)
	if err != nil {
		return nil, err
	}
	result.B, err = projectAligned(in.B, mkt, horizon, policy, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// projectAligned projects one asset to the common horizon, bridging its
// redemption forward when it matures first.
func projectAligned(a AssetConfig, mkt Market, horizon Date, p Policy, result *ComparisonResult) (*ProjectionResult, error) {
	if !horizon.After(a.Maturity) {
		// Equal maturity or truncated horizon: Project handles both.
		return Project(a, mkt, MinDate(horizon, a.Maturity), p)
	}
	// The asset matures before the horizon: project to its own maturity,
	// then reinvest the net redemption at the reference curve.
	r, err := Project(a, mkt, a.Maturity, p)
	if err != nil {
		return nil, err
	}
	record := bridge(a, r.Final, mkt, a.Maturity, horizon, p)
	r.TotalTax = r.TotalTax.Add(record.Tax)
	r.Final = record.Reinvested
	r.Horizon = horizon
	r.Series = extendSeries(r.Series, record, mkt, a.Maturity, horizon, p)
	result.Reinvestment = record
	return r, nil
}

// bridge reinvests a redeemed value at the reference curve over
// (from, to], compounding business days and taxing the gain regressively
// by the bridge window's own holding period.
func bridge(a AssetConfig, redeemed Money, mkt Market, from, to Date, p Policy) *ReinvestmentRecord {
	rate := mkt.Reference.PeriodRate(from, to, p.BridgeDayCount)
	gain := redeemed.MulFactor(rate)
	days := DaysBetween(from, to)
	tax := gain.MulFactor(0)
	if gain.IsPositive() {
		tax = gain.MulFactor(RegressiveRate(days))
	}
	return &ReinvestmentRecord{
		Source:     a.label(),
		From:       from,
		To:         to,
		WindowDays: days,
		Rate:       rate,
		Redeemed:   redeemed,
		Tax:        tax,
		Reinvested: redeemed.Add(gain).Sub(tax),
	}
}

// extendSeries appends bridged anniversary values so the early-maturing
// asset's series still spans the full comparison horizon. Each extension
// point is net of the regressive tax it would pay if the bridge closed on
// that date.
func extendSeries(series []Money, rec *ReinvestmentRecord, mkt Market, maturity, horizon Date, p Policy) []Money {
	for k := 1; ; k++ {
		on := MinDate(maturity.AddMonth(12*k), horizon)
		rate := mkt.Reference.PeriodRate(maturity, on, p.BridgeDayCount)
		gain := rec.Redeemed.MulFactor(rate)
		tax := gain.MulFactor(0)
		if gain.IsPositive() {
			tax = gain.MulFactor(RegressiveRate(DaysBetween(maturity, on)))
		}
		series = append(series, rec.Redeemed.Add(gain).Sub(tax))
		if on == horizon {
			return series
		}
	}
}
