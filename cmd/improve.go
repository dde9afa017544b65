package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	"github.com/ManiPerez913/VIT-GPA-Calculator/renderer"
	"github.com/google/subcommands"
)

// improveCmd holds the flags for the 'improve' subcommand.
type improveCmd struct {
	changes chainFlag
}

func (*improveCmd) Name() string     { return "improve" }
func (*improveCmd) Synopsis() string { return "project the CGPA after grade transfers" }
func (*improveCmd) Usage() string {
	return `vitgpa improve -c FROM:TO:CREDITS [-c ...] -pdf <file> | -tables <files>

  Projects the CGPA after moving credits between grades, as if courses had
  been re-attempted with a better result. Transfers apply in order against
  the real transcript; the records themselves never change.

Usage Examples:
# What if 8 credits of B had been A, and 3 credits of C had been B?
$ vitgpa improve -pdf grades.pdf -c B:A:8 -c C:B:3
`
}

func (c *improveCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.changes, "c", "credit transfer as FROM:TO:CREDITS (repeatable)")
}

func (c *improveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.changes) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -c FROM:TO:CREDITS is required")
		return subcommands.ExitUsageError
	}

	ops := make([]gpa.Operation, 0, len(c.changes))
	for _, change := range c.changes {
		t, err := parseTransfer(change)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		ops = append(ops, t)
	}

	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := gpa.NewSimulation(ledger.Distribution(), ops...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SimulationMarkdown(s))
	return subcommands.ExitSuccess
}

// parseTransfer parses a FROM:TO:CREDITS change.
func parseTransfer(s string) (gpa.Transfer, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return gpa.Transfer{}, fmt.Errorf("invalid change %q, want FROM:TO:CREDITS like B:A:8", s)
	}
	from, err := gpa.ParseGrade(parts[0])
	if err != nil {
		return gpa.Transfer{}, fmt.Errorf("invalid change %q: %w", s, err)
	}
	to, err := gpa.ParseGrade(parts[1])
	if err != nil {
		return gpa.Transfer{}, fmt.Errorf("invalid change %q: %w", s, err)
	}
	credits, err := gpa.ParseCredits(parts[2])
	if err != nil {
		return gpa.Transfer{}, fmt.Errorf("invalid change %q: %w", s, err)
	}
	return gpa.Transfer{From: from, To: to, Credits: credits}, nil
}
