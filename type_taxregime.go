package renda

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TaxRegime selects which withholding rule applies to an instrument's income.
type TaxRegime int

const (
	// TaxDefault follows the category's conventional regime; it is the
	// zero value, so an unset configuration resolves through DefaultRegime.
	TaxDefault TaxRegime = iota
	// TaxRegressive applies the regressive fixed-income withholding table,
	// stepped by days held since the original settlement.
	TaxRegressive
	// TaxExempt pays no withholding at all.
	TaxExempt
	// TaxFlat applies a single configured rate regardless of holding period.
	TaxFlat
)

func (t TaxRegime) String() string {
	switch t {
	case TaxDefault:
		return "default"
	case TaxRegressive:
		return "regressive"
	case TaxExempt:
		return "exempt"
	case TaxFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// ParseTaxRegime parses a string into a TaxRegime.
func ParseTaxRegime(s string) (TaxRegime, error) {
	switch strings.ToLower(s) {
	case "default", "":
		return TaxDefault, nil
	case "regressive":
		return TaxRegressive, nil
	case "exempt":
		return TaxExempt, nil
	case "flat":
		return TaxFlat, nil
	default:
		return 0, fmt.Errorf("unknown tax regime: %q", s)
	}
}

// DefaultRegime returns the regime conventionally attached to a category:
// incentivized and bank-note paper is exempt, fund distributions are exempt
// by convention, everything else follows the regressive table.
func DefaultRegime(c Category) TaxRegime {
	switch c {
	case CategoryLCI, CategoryCRI, CategoryDebenture, CategoryFund:
		return TaxExempt
	default:
		return TaxRegressive
	}
}

func (t TaxRegime) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *TaxRegime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTaxRegime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
