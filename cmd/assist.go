package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	"github.com/ManiPerez913/VIT-GPA-Calculator/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI study advisor.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI advisor" }
func (*assistCmd) Usage() string {
	return `vitgpa assist [<question>...] -pdf <file> | -tables <files>

  Starts an interactive session with the AI study advisor. The advisor reads
  the grade sheet on demand, so the usual loading flags apply. Requires a
  GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	// The registrar loads the transcript lazily: a session about grading
	// rules should not require a grade sheet.
	registrar := agent.NewRegistrar(func() (*gpa.Ledger, error) {
		return LoadLedger(ctx)
	})
	coach := agent.NewCoach()
	a := agent.New(os.Stdout, os.Stdin, registrar, coach)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
