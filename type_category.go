package renda

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the closed set of instrument categories the engine models.
// Calendar and day-count rules are keyed on it explicitly; it is never
// inferred from the instrument's display name.
type Category int

const (
	// CategoryCDB is a bank certificate of deposit.
	CategoryCDB Category = iota
	// CategoryLCI groups real-estate and agribusiness bank notes (LCI/LCA).
	CategoryLCI
	// CategoryCRI groups securitized receivable certificates (CRI/CRA).
	CategoryCRI
	// CategoryDebenture is an incentivized infrastructure debenture.
	CategoryDebenture
	// CategoryFund is an exchange-traded fund with periodic distributions.
	CategoryFund
	// CategoryGovernment is a government bond.
	CategoryGovernment
)

func (c Category) String() string {
	switch c {
	case CategoryCDB:
		return "cdb"
	case CategoryLCI:
		return "lci-lca"
	case CategoryCRI:
		return "cri-cra"
	case CategoryDebenture:
		return "debenture"
	case CategoryFund:
		return "fund"
	case CategoryGovernment:
		return "government"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "cdb":
		return CategoryCDB, nil
	case "lci", "lca", "lci-lca":
		return CategoryLCI, nil
	case "cri", "cra", "cri-cra":
		return CategoryCRI, nil
	case "debenture":
		return CategoryDebenture, nil
	case "fund", "fii":
		return CategoryFund, nil
	case "government", "treasury":
		return CategoryGovernment, nil
	default:
		return 0, fmt.Errorf("unknown asset category: %q", s)
	}
}

func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
