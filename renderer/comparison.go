// Package renderer turns projection and comparison results into markdown
// reports. It holds no financial logic: everything it prints comes from the
// engine's immutable result types.
package renderer

import (
	"fmt"
	"strings"

	"github.com/quantbr/renda"
)

// ComparisonMarkdown renders a full comparison report: the two asset
// configurations, the year-by-year value series side by side, the bridging
// reinvestment when one exists, and the winner line.
func ComparisonMarkdown(r *renda.ComparisonResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Comparison to %s\n\n", r.Horizon)
	fmt.Fprintf(&b, "Mode: %s\n\n", r.Mode)

	fmt.Fprint(&b, "## Assets\n\n")
	fmt.Fprintln(&b, "| | A | B |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	writeAssetRows(&b, r.A.Asset, r.B.Asset)

	fmt.Fprint(&b, "\n## Projected Value per Year\n\n")
	fmt.Fprintf(&b, "| Year | %s | %s |\n", label(r.A.Asset), label(r.B.Asset))
	fmt.Fprintln(&b, "|:---|---:|---:|")
	rows := len(r.A.Series)
	if len(r.B.Series) > rows {
		rows = len(r.B.Series)
	}
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i, seriesAt(r.A.Series, i), seriesAt(r.B.Series, i))
	}

	if rec := r.Reinvestment; rec != nil {
		fmt.Fprint(&b, "\n## Bridging Reinvestment\n\n")
		fmt.Fprintf(&b, "%s matures early; its redemption is reinvested at the reference curve.\n\n", rec.Source)
		fmt.Fprintln(&b, "| Window | Days | Rate | Redeemed | Tax | Reinvested |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
		fmt.Fprintf(&b, "| %s to %s | %d | %.4f%% | %s | %s | %s |\n",
			rec.From, rec.To, rec.WindowDays, rec.Rate*100,
			rec.Redeemed, rec.Tax, rec.Reinvested,
		)
	}

	fmt.Fprint(&b, "\n## Outcome\n\n")
	fmt.Fprintln(&b, "| | Final Value | Total Tax |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n", label(r.A.Asset), r.A.Final, r.A.TotalTax)
	fmt.Fprintf(&b, "| %s | %s | %s |\n", label(r.B.Asset), r.B.Final, r.B.TotalTax)

	if w := r.Winner(); w != "" {
		diff := r.A.Final.Sub(r.B.Final)
		if diff.IsNegative() {
			diff = diff.Neg()
		}
		fmt.Fprintf(&b, "\n**%s** ends ahead by %s.\n", w, diff)
	} else {
		fmt.Fprint(&b, "\nBoth assets end at the same value.\n")
	}

	return b.String()
}

func writeAssetRows(b *strings.Builder, a, c renda.AssetConfig) {
	row := func(name string, va, vb any) {
		fmt.Fprintf(b, "| %s | %v | %v |\n", name, va, vb)
	}
	row("Name", label(a), label(c))
	row("Category", a.Category, c.Category)
	row("Rate", rateLabel(a), rateLabel(c))
	row("Principal", a.Principal, c.Principal)
	row("Settlement", a.Settlement, c.Settlement)
	row("Maturity", a.Maturity, c.Maturity)
	row("Coupons", a.Frequency, c.Frequency)
	row("Tax", a.Regime(), c.Regime())
}

func label(a renda.AssetConfig) string {
	if a.Name != "" {
		return a.Name
	}
	return a.Category.String()
}

func rateLabel(a renda.AssetConfig) string {
	switch a.Kind {
	case renda.KindPercentOfReference:
		return fmt.Sprintf("%.1f%% of reference", float64(a.Rate))
	case renda.KindReferencePlusSpread:
		return fmt.Sprintf("reference + %s", a.Rate)
	case renda.KindInflationPlusSpread:
		return fmt.Sprintf("inflation + %s", a.Rate)
	default:
		return a.Rate.String()
	}
}

func seriesAt(series []renda.Money, i int) string {
	if i >= len(series) {
		return "-"
	}
	return series[i].String()
}
