// Package cmd implements the CLI application to analyze grade sheets.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	"github.com/ManiPerez913/VIT-GPA-Calculator/camelot"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application.
// A main package registers them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&summaryCmd{},
	&distributionCmd{},
	&coursesCmd{},
	&historyCmd{},
	&improveCmd{},
	&futureCmd{},
	&recordsCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	pdfFile     = flag.String("pdf", "", "Path to the grade sheet PDF to extract tables from")
	tableFiles  = flag.String("tables", "", "Comma separated list of exported JSON table files, bypassing the extractor")
	recordsFile = flag.String("records", "", "Path to a saved transcript in JSONL format, bypassing normalization")
	configFile  = flag.String("config", ".vitgpa.yaml", "Path to the configuration file")
)

// appConfig caches the loaded configuration for the lifetime of the process.
var appConfig *Config

// config loads the configuration file once. Callers decide how bad a failure
// is: record loading refuses to run on a broken file, rendering falls back.
func config() (*Config, error) {
	if appConfig != nil {
		return appConfig, nil
	}
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	appConfig = cfg
	return appConfig, nil
}

// LoadRecords runs the whole reading pipeline: extract the tables from the
// grade sheet (or read them from exported JSON files), concatenate the pages,
// and normalize the rows into course records.
func LoadRecords(ctx context.Context) ([]gpa.CourseRecord, error) {
	cfg, err := config()
	if err != nil {
		return nil, err
	}

	var tables []camelot.Table
	switch {
	case *tableFiles != "":
		tables, err = camelot.ReadTables(strings.Split(*tableFiles, ",")...)
	case *pdfFile != "":
		tables, err = camelot.Run(ctx, *pdfFile, camelot.Options{
			Command: cfg.Camelot.Command,
			Pages:   cfg.Camelot.Pages,
			Flavor:  cfg.Camelot.Flavor,
		})
	default:
		return nil, errors.New("no grade sheet: provide -pdf, -tables or -records")
	}
	if err != nil {
		return nil, err
	}

	records, err := gpa.Normalize(camelot.Concat(tables...))
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d course records from %d tables", len(records), len(tables))
	return records, nil
}

// LoadLedger loads the records and files them into a ledger. A transcript
// saved with 'records -format json' is already normalized and is read back
// directly.
func LoadLedger(ctx context.Context) (*gpa.Ledger, error) {
	if *recordsFile != "" {
		f, err := os.Open(*recordsFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open %q for reading: %w", *recordsFile, err)
		}
		defer f.Close()
		return gpa.DecodeLedger(f)
	}

	records, err := LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return gpa.NewLedger(records...), nil
}

// printMarkdown renders markdown for the terminal. Rendering is cosmetic:
// on any failure the raw markdown is printed instead.
func printMarkdown(md string) {
	style := "auto"
	width := 80
	if cfg, err := config(); err == nil {
		style = cfg.Render.Style
		width = cfg.Render.Width
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(md)
}

// chainFlag collects the values of a repeated flag, in order.
type chainFlag []string

func (c *chainFlag) String() string { return strings.Join(*c, ",") }

func (c *chainFlag) Set(v string) error {
	*c = append(*c, v)
	return nil
}
