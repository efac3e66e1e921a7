// Package cmd implements the CLI application to compare fixed-income
// instruments.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/quantbr/renda"
)

// Commands lists every subcommand the binary registers.
var Commands = []subcommands.Command{
	&compareCmd{},
	&projectCmd{},
	&scheduleCmd{},
	&rateCmd{},
	&curveCmd{},
}

// loadInput reads and validates a comparison input file.
func loadInput(path string) (*renda.ComparisonInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file %q: %w", path, err)
	}
	defer f.Close()

	in, err := renda.DecodeComparisonInput(f)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// render prints a markdown report, styled for the terminal unless plain
// output is requested.
func render(markdown string, plain bool) {
	if plain {
		fmt.Print(markdown)
		return
	}
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
