package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantbr/renda"
	"github.com/quantbr/renda/renderer"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	input string
	mode  string
	json  bool
	plain bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare two fixed-income assets over a common horizon" }
func (*compareCmd) Usage() string {
	return `rfx compare -f <input.json> [-mode <natural|bridge|truncate>] [-json] [-plain]

  Projects both assets of the input file onto one comparison horizon and
  renders the result: per-year values, coupon taxes, the bridging
  reinvestment when maturities differ, and the winner.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "f", "comparison.json", "Path to the comparison input file (JSON)")
	f.StringVar(&c.mode, "mode", "", "Comparison mode (natural, bridge, truncate); overrides the input file")
	f.BoolVar(&c.json, "json", false, "Emit the raw comparison result as JSON")
	f.BoolVar(&c.plain, "plain", false, "Print plain markdown without terminal styling")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := loadInput(c.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.mode != "" {
		mode, err := renda.ParseMode(c.mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		in.Mode = mode
	}

	result, err := renda.Compare(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := renda.EncodeComparisonResult(os.Stdout, result); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	render(renderer.ComparisonMarkdown(result), c.plain)
	return subcommands.ExitSuccess
}
