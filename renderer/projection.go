package renderer

import (
	"fmt"
	"strings"

	"github.com/quantbr/renda"
)

// ProjectionMarkdown renders one asset's full projection: the coupon ledger
// and the terminal breakdown.
func ProjectionMarkdown(r *renda.ProjectionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s to %s\n\n", label(r.Asset), r.Horizon)
	fmt.Fprintf(&b, "%s, %s, %s coupons, %s tax\n\n",
		r.Asset.Category, rateLabel(r.Asset), r.Asset.Frequency, r.Asset.Regime())

	if len(r.Coupons) > 0 {
		fmt.Fprint(&b, "## Coupon Ledger\n\n")
		fmt.Fprintln(&b, "| Date | Gross | Tax | Net | Factor | Reinvested |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
		for _, c := range r.Coupons {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %.6f | %s |\n",
				c.Date, c.Gross, c.Tax.SignedString(), c.Net, c.Factor, c.Reinvested)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprint(&b, "## Terminal\n\n")
	if r.Truncated {
		fmt.Fprintf(&b, "Horizon precedes maturity %s: principal capitalized, gain %s, tax %s.\n\n",
			r.Asset.Maturity, r.TerminalGain, r.TerminalTax.SignedString())
	} else if r.Asset.Frequency == renda.NoCoupon {
		fmt.Fprintf(&b, "Accrued to redemption: gain %s, tax %s.\n\n",
			r.TerminalGain, r.TerminalTax.SignedString())
	} else {
		fmt.Fprint(&b, "Principal redeems at par.\n\n")
	}

	fmt.Fprintln(&b, "| Final Value | Total Tax |")
	fmt.Fprintln(&b, "|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s |\n", r.Final, r.TotalTax)

	return b.String()
}
