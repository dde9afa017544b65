package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ManiPerez913/VIT-GPA-Calculator/renderer"
	"github.com/google/subcommands"
)

type distributionCmd struct{}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "display credits per grade" }
func (*distributionCmd) Usage() string {
	return `vitgpa distribution -pdf <file> | -tables <files>

  Displays how the credits on record split over the grade scale.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {}

func (c *distributionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DistributionMarkdown(ledger.Distribution()))
	return subcommands.ExitSuccess
}
