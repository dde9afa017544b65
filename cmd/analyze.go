package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ManiPerez913/VIT-GPA-Calculator/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct{}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "display the full transcript analysis" }
func (*analyzeCmd) Usage() string {
	return `vitgpa analyze -pdf <file> | -tables <files>

  Displays the CGPA, the credit distribution, and every course grouped by
  grade.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AnalysisMarkdown(ledger.NewAnalysis()))
	return subcommands.ExitSuccess
}
