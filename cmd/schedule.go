package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantbr/renda"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	frequency string
	anchor    int
	start     string
	end       string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the coupon payment dates for a schedule" }
func (*scheduleCmd) Usage() string {
	return `rfx schedule -freq <frequency> -s <start> -d <end> [-anchor <day>]

  Prints the coupon dates a rolling anchor-day schedule produces between
  two dates, one per line.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.frequency, "freq", "monthly", "Coupon frequency (monthly, bimonthly, quarterly, semiannual, annual)")
	f.IntVar(&c.anchor, "anchor", 15, "Anchor day of month")
	f.StringVar(&c.start, "s", "", "Accrual start date")
	f.StringVar(&c.end, "d", "", "Horizon date")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	freq, err := renda.ParseFrequency(c.frequency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	start, err := renda.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := renda.ParseDate(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	for _, d := range renda.AnchorSchedule(freq, c.anchor, start, end) {
		fmt.Println(d)
	}
	return subcommands.ExitSuccess
}
