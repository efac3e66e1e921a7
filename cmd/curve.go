package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantbr/renda"
)

// curveCmd holds the flags for the 'curve' subcommand.
type curveCmd struct {
	input  string
	series string
	years  int
}

func (*curveCmd) Name() string     { return "curve" }
func (*curveCmd) Synopsis() string { return "print the monthly curve derived from the macro projection" }
func (*curveCmd) Usage() string {
	return `rfx curve -f <input.json> [-series reference|inflation] [-years <n>]

  Expands the input file's annual macro projection into its monthly curve
  and prints one line per month. Years beyond the projection hold the last
  supplied rate.
`
}

func (c *curveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "f", "comparison.json", "Path to the comparison input file (JSON)")
	f.StringVar(&c.series, "series", "reference", "Which series to expand (reference, inflation)")
	f.IntVar(&c.years, "years", 5, "Number of years to print")
}

func (c *curveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 1 {
		fmt.Fprintf(os.Stderr, "invalid year count %d, want at least 1\n", c.years)
		return subcommands.ExitUsageError
	}
	in, err := loadInput(c.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var series map[int]renda.Percent
	switch c.series {
	case "reference":
		series = in.Macro.Reference
	case "inflation":
		series = in.Macro.Inflation
	default:
		fmt.Fprintf(os.Stderr, "unknown series %q, want reference or inflation\n", c.series)
		return subcommands.ExitUsageError
	}

	startYear := renda.MinDate(in.A.Settlement, in.B.Settlement).Year()
	curve := renda.BuildMonthlyCurve(series, startYear, c.years*12)
	for i := 0; i < curve.Len(); i++ {
		p := curve.At(i)
		fmt.Printf("%d-%02d  annual %s  monthly %.6f%%\n", p.Year, p.Month, p.Annual, p.Monthly*100)
	}
	return subcommands.ExitSuccess
}
