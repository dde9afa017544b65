package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ManiPerez913/VIT-GPA-Calculator/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `vitgpa topic [<topic>...]

  Shows documentation for the given topics, '*' for all of them. Without
  arguments, lists the available topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		if all, err := docs.GetAllTopics(); err == nil {
			fmt.Fprintf(os.Stderr, "Available topics: %s\n", strings.Join(all, ", "))
		}
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
