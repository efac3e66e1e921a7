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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	input   string
	asset   string
	horizon string
	plain   bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project a single asset's coupon ledger and final value" }
func (*projectCmd) Usage() string {
	return `rfx project -f <input.json> [-asset a|b] [-d <date>] [-plain]

  Projects one asset of the input file to its maturity (or to the given
  horizon date) and renders the detailed coupon ledger.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "f", "comparison.json", "Path to the comparison input file (JSON)")
	f.StringVar(&c.asset, "asset", "a", "Which asset to project (a or b)")
	f.StringVar(&c.horizon, "d", "", "Horizon date; defaults to the asset's maturity")
	f.BoolVar(&c.plain, "plain", false, "Print plain markdown without terminal styling")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := loadInput(c.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var asset renda.AssetConfig
	switch c.asset {
	case "a":
		asset = in.A
	case "b":
		asset = in.B
	default:
		fmt.Fprintf(os.Stderr, "unknown asset %q, want a or b\n", c.asset)
		return subcommands.ExitUsageError
	}

	horizon := asset.Maturity
	if c.horizon != "" {
		horizon, err = renda.ParseDate(c.horizon)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	mkt := renda.NewMarket(in.Macro, asset.Settlement.Year(), horizon.Year())
	result, err := renda.Project(asset, mkt, horizon, DefaultOrInputPolicy(in))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	render(renderer.ProjectionMarkdown(result), c.plain)
	return subcommands.ExitSuccess
}

// DefaultOrInputPolicy resolves the policy an input carries, falling back
// to the default rule table.
func DefaultOrInputPolicy(in *renda.ComparisonInput) renda.Policy {
	if in.Policy != nil {
		return *in.Policy
	}
	return renda.DefaultPolicy()
}
