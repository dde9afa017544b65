package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ManiPerez913/VIT-GPA-Calculator/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the CGPA over time" }
func (*historyCmd) Usage() string {
	return `vitgpa history -pdf <file> | -tables <files>

  Displays the cumulative CGPA after each graded course, oldest first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(ledger.History()))
	return subcommands.ExitSuccess
}
