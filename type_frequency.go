package renda

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Frequency is the coupon payment frequency of an instrument.
type Frequency int

const (
	// NoCoupon marks instruments that accrue until redemption with no
	// intermediate payment.
	NoCoupon Frequency = iota
	MonthlyCoupon
	BimonthlyCoupon
	QuarterlyCoupon
	SemiannualCoupon
	AnnualCoupon
)

// Months returns the number of months between two consecutive coupons,
// or 0 for NoCoupon.
func (f Frequency) Months() int {
	switch f {
	case MonthlyCoupon:
		return 1
	case BimonthlyCoupon:
		return 2
	case QuarterlyCoupon:
		return 3
	case SemiannualCoupon:
		return 6
	case AnnualCoupon:
		return 12
	default:
		return 0
	}
}

func (f Frequency) String() string {
	switch f {
	case NoCoupon:
		return "none"
	case MonthlyCoupon:
		return "monthly"
	case BimonthlyCoupon:
		return "bimonthly"
	case QuarterlyCoupon:
		return "quarterly"
	case SemiannualCoupon:
		return "semiannual"
	case AnnualCoupon:
		return "annual"
	default:
		return "unknown"
	}
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return NoCoupon, nil
	case "monthly", "month":
		return MonthlyCoupon, nil
	case "bimonthly":
		return BimonthlyCoupon, nil
	case "quarterly", "quarter":
		return QuarterlyCoupon, nil
	case "semiannual", "semester":
		return SemiannualCoupon, nil
	case "annual", "year", "yearly":
		return AnnualCoupon, nil
	default:
		return 0, fmt.Errorf("unknown coupon frequency: %q", s)
	}
}

func (f Frequency) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

func (f *Frequency) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseFrequency(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
