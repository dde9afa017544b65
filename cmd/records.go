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

// recordsCmd holds the flags for the 'records' subcommand.
type recordsCmd struct {
	format string
}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "export the normalized course records" }
func (*recordsCmd) Usage() string {
	return `vitgpa records [-format markdown|json] -pdf <file> | -tables <files>

  Exports the course records in chronological order. The json format writes
  one record per line (JSONL); save it next to the grade sheet and read it
  back with the -records flag to skip the extractor.

Usage Examples:
  vitgpa records -pdf sheet.pdf -format json > transcript.jsonl
  vitgpa -records transcript.jsonl summary
`
}

func (c *recordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "markdown", "output format, 'markdown' or 'json'")
}

func (c *recordsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.format {
	case "markdown", "json":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want 'markdown' or 'json'\n", c.format)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.format == "json" {
		if err := gpa.EncodeLedger(os.Stdout, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing records: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var records []gpa.CourseRecord
	for _, r := range ledger.Records() {
		records = append(records, r)
	}
	printMarkdown(renderer.RecordsMarkdown(records))
	return subcommands.ExitSuccess
}
