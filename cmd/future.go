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

// futureCmd holds the flags for the 'future' subcommand.
type futureCmd struct {
	courses chainFlag
}

func (*futureCmd) Name() string     { return "future" }
func (*futureCmd) Synopsis() string { return "project the CGPA after future courses" }
func (*futureCmd) Usage() string {
	return `vitgpa future -c GRADE:CREDITS [-c ...] -pdf <file> | -tables <files>

  Projects the CGPA after new graded credits land on the records, for
  instance next semester's courses with their expected grades.

Usage Examples:
# What if next semester brings 4 credits at S and 3 at A?
$ vitgpa future -pdf grades.pdf -c S:4 -c A:3
`
}

func (c *futureCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.courses, "c", "future course as GRADE:CREDITS (repeatable)")
}

func (c *futureCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.courses) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -c GRADE:CREDITS is required")
		return subcommands.ExitUsageError
	}

	ops := make([]gpa.Operation, 0, len(c.courses))
	for _, course := range c.courses {
		a, err := parseAddition(course)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		ops = append(ops, a)
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

// parseAddition parses a GRADE:CREDITS course.
func parseAddition(s string) (gpa.Addition, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return gpa.Addition{}, fmt.Errorf("invalid course %q, want GRADE:CREDITS like S:4", s)
	}
	g, err := gpa.ParseGrade(parts[0])
	if err != nil {
		return gpa.Addition{}, fmt.Errorf("invalid course %q: %w", s, err)
	}
	credits, err := gpa.ParseCredits(parts[1])
	if err != nil {
		return gpa.Addition{}, fmt.Errorf("invalid course %q: %w", s, err)
	}
	return gpa.Addition{Grade: g, Credits: credits}, nil
}
