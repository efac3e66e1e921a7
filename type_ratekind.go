package renda

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RateKind describes how an instrument's rate parameter is interpreted.
type RateKind int

const (
	// KindFixed is a fixed annual rate, e.g. 12% a year.
	KindFixed RateKind = iota
	// KindPercentOfReference pays a percentage of the reference rate,
	// e.g. 110% of the interbank benchmark.
	KindPercentOfReference
	// KindReferencePlusSpread pays the reference rate plus an annual spread.
	KindReferencePlusSpread
	// KindInflationPlusSpread pays the inflation index plus a real annual rate.
	KindInflationPlusSpread
)

func (k RateKind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindPercentOfReference:
		return "percent-of-reference"
	case KindReferencePlusSpread:
		return "reference-plus-spread"
	case KindInflationPlusSpread:
		return "inflation-plus-spread"
	default:
		return "unknown"
	}
}

// Floating reports whether the kind depends on the reference-rate curve.
func (k RateKind) Floating() bool {
	return k == KindPercentOfReference || k == KindReferencePlusSpread
}

// ParseRateKind parses a string into a RateKind.
func ParseRateKind(s string) (RateKind, error) {
	switch strings.ToLower(s) {
	case "fixed":
		return KindFixed, nil
	case "percent-of-reference":
		return KindPercentOfReference, nil
	case "reference-plus-spread":
		return KindReferencePlusSpread, nil
	case "inflation-plus-spread":
		return KindInflationPlusSpread, nil
	default:
		return 0, fmt.Errorf("unknown rate kind: %q", s)
	}
}

func (k RateKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *RateKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRateKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
