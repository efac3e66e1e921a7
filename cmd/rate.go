package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantbr/renda"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	annual float64
	from   string
	to     string
	basis  string
	capit  string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "convert an annual rate into a period rate" }
func (*rateCmd) Usage() string {
	return `rfx rate -annual <pct> -s <from> -d <to> [-basis calendar|business] [-cap daily|monthly]

  Converts an annual rate into the compounded rate of the given interval
  under a day-count convention.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.annual, "annual", 0, "Annual rate in percent")
	f.StringVar(&c.from, "s", "", "Interval start date")
	f.StringVar(&c.to, "d", "", "Interval end date")
	f.StringVar(&c.basis, "basis", "calendar", "Day-count basis (calendar for ACT/365, business for ACT/252)")
	f.StringVar(&c.capit, "cap", "daily", "Capitalization granularity on the business basis (daily, monthly)")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := renda.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := renda.ParseDate(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	dc := renda.DayCount{}
	switch c.basis {
	case "calendar":
		dc.Basis = renda.BasisCalendar
	case "business":
		dc.Basis = renda.BasisBusiness
	default:
		fmt.Fprintf(os.Stderr, "unknown basis %q, want calendar or business\n", c.basis)
		return subcommands.ExitUsageError
	}
	switch c.capit {
	case "daily":
		dc.Cap = renda.CapDaily
	case "monthly":
		dc.Cap = renda.CapMonthly
	default:
		fmt.Fprintf(os.Stderr, "unknown capitalization %q, want daily or monthly\n", c.capit)
		return subcommands.ExitUsageError
	}

	rate := renda.PeriodRate(renda.Percent(c.annual), from, to, dc)
	fmt.Printf("%.8f%%\n", rate*100)
	return subcommands.ExitSuccess
}
