package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// summaryCmd prints the transcript essentials, one per line, ready for
// scripting.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the transcript essentials" }
func (*summaryCmd) Usage() string {
	return `vitgpa summary -pdf <file> | -tables <files>

  Displays the CGPA and the credit totals, one figure per line.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	a := ledger.NewAnalysis()
	fmt.Printf("CGPA\t%.2f\n", a.CGPA)
	fmt.Printf("Courses\t%d\n", ledger.Len())
	fmt.Printf("Credits\t%d\n", a.TotalCredits)
	fmt.Printf("Graded\t%d\n", a.GradedCredits)
	if !ledger.OldestRecordDate().IsZero() {
		fmt.Printf("From\t%s\n", ledger.OldestRecordDate())
		fmt.Printf("To\t%s\n", ledger.NewestRecordDate())
	}

	return subcommands.ExitSuccess
}
