package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/ManiPerez913/VIT-GPA-Calculator/cmd"
	"github.com/ManiPerez913/VIT-GPA-Calculator/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// grades completes every flag that takes a letter grade.
var grades = predict.Set{"S", "A", "B", "C", "D", "E", "F", "P"}

func main() {
	// Answer shell completion requests before any flag parsing happens.
	completion().Complete("vitgpa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// An unknown subcommand may be an external vitgpa-<name> binary.
	if name := flag.Arg(0); name != "" && !builtin(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// builtin reports whether name is one of the registered subcommands.
func builtin(name string) bool {
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// completion describes the command line to the shell. Install it with
// COMP_INSTALL=1 vitgpa.
func completion() *complete.Command {
	topics := predict.Set{"readme", "*"}
	if all, err := docs.GetAllTopics(); err == nil {
		topics = append(topics, all...)
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"pdf":     predict.Files("*.pdf"),
			"tables":  predict.Files("*.json"),
			"records": predict.Files("*.jsonl"),
			"config":  predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"analyze":      {},
			"summary":      {},
			"distribution": {},
			"courses":      {Flags: map[string]complete.Predictor{"g": grades}},
			"history":      {},
			"improve":      {Flags: map[string]complete.Predictor{"c": predict.Something}},
			"future":       {Flags: map[string]complete.Predictor{"c": predict.Something}},
			"records":      {Flags: map[string]complete.Predictor{"format": predict.Set{"markdown", "json"}}},
			"topic":        {Args: topics},
			"assist":       {},
		},
	}
}
