package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	"github.com/ManiPerez913/VIT-GPA-Calculator/renderer"
	"github.com/google/subcommands"
)

// coursesCmd holds the flags for the 'courses' subcommand.
type coursesCmd struct {
	grade string
}

func (*coursesCmd) Name() string     { return "courses" }
func (*coursesCmd) Synopsis() string { return "list course records, oldest first" }
func (*coursesCmd) Usage() string {
	return `vitgpa courses [-g <grade>] -pdf <file> | -tables <files>

  Lists the course records in chronological order, optionally only those
  under one grade.
`
}

func (c *coursesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.grade, "g", "", "only list courses with this grade")
}

func (c *coursesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(gpa.CourseRecord) bool
	if c.grade != "" {
		g, err := gpa.ParseGrade(c.grade)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, gpa.ByGrade(g))
	}

	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	var records []gpa.CourseRecord
	for _, r := range ledger.Records(filters...) {
		records = append(records, r)
	}

	printMarkdown(renderer.RecordsMarkdown(records))
	return subcommands.ExitSuccess
}
