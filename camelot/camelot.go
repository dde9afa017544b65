// Package camelot extracts tables from grade-sheet PDFs by driving the
// camelot command-line tool, and decodes the JSON tables it produces.
//
// The package knows two JSON dialects. Camelot exports one table per file in
// records orientation, a flat list of objects keyed by column position:
//
//	[
//	    {"0": "Course Code", "1": "Course Title", "2": "Credits", "3": "Grade"},
//	    {"0": "CSE1001", "1": "Problem Solving", "2": "4", "3": "S"}
//	]
//
// Tabula exports several tables per file, each with rows of cell objects:
//
//	[
//	    {"extraction_method": "lattice", "data": [[{"text": "Course Code"}, ...], ...]}
//	]
//
// Both decode to the same Table value, a raw grid of text cells with no
// schema attached.
package camelot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Table is one extracted grid of text cells, row by row. Widths may vary
// from row to row; consumers must not assume column alignment.
type Table [][]string

// Options configure an extractor run.
type Options struct {
	Command string // extractor executable, "camelot" when empty
	Pages   string // page selection, "all" when empty
	Flavor  string // "lattice" or "stream", "lattice" when empty
}

// Run extracts every table of the PDF by running the camelot command line
// tool with JSON output in a temporary directory, and decodes the produced
// files in page and table order.
func Run(ctx context.Context, pdf string, opts Options) ([]Table, error) {
	if opts.Command == "" {
		opts.Command = "camelot"
	}
	if opts.Pages == "" {
		opts.Pages = "all"
	}
	if opts.Flavor == "" {
		opts.Flavor = "lattice"
	}
	if _, err := exec.LookPath(opts.Command); err != nil {
		return nil, fmt.Errorf("%q not found in PATH, install it with 'pip install camelot-py[cv]': %w", opts.Command, err)
	}

	dir, err := os.MkdirTemp("", "vitgpa-tables-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "sheet.json")
	args := []string{"--format", "json", "--output", out, "--pages", opts.Pages, opts.Flavor, pdf}
	cmd := exec.CommandContext(ctx, opts.Command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %s", opts.Command, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sortTableFiles(files)
	return ReadTables(files...)
}

// ReadTables decodes every named JSON file, in the order given.
func ReadTables(filenames ...string) ([]Table, error) {
	var tables []Table
	for _, name := range filenames {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		decoded, err := DecodeTable(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		tables = append(tables, decoded...)
	}
	return tables, nil
}

// DecodeTable decodes one exported JSON file into its tables, recognizing
// both the camelot and the tabula dialects.
func DecodeTable(r io.Reader) ([]Table, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid table JSON: %w", err)
	}

	jlist, ok := jobj.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid table JSON: want a top-level array, got %T", jobj)
	}
	if len(jlist) == 0 {
		return nil, nil
	}

	// Tabula nests rows under a "data" key; camelot's records orientation
	// has none. Probe for it to pick the dialect.
	if _, err := jsonpath.Get("$[0].data", jobj); err == nil {
		return decodeTabula(jobj)
	}
	table, err := decodeRecords(jlist)
	if err != nil {
		return nil, err
	}
	return []Table{table}, nil
}

// decodeRecords decodes camelot's records orientation: one table, each row
// an object keyed by stringified column position.
func decodeRecords(jrows []any) (Table, error) {
	table := make(Table, 0, len(jrows))
	for i, jrow := range jrows {
		obj, ok := jrow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("row %d: want an object, got %T", i, jrow)
		}
		width := 0
		for k := range obj {
			col, err := strconv.Atoi(k)
			if err != nil || col < 0 {
				return nil, fmt.Errorf("row %d: unexpected column key %q", i, k)
			}
			if col+1 > width {
				width = col + 1
			}
		}
		row := make([]string, width)
		for k, v := range obj {
			col, _ := strconv.Atoi(k)
			row[col] = fmt.Sprint(v)
		}
		table = append(table, row)
	}
	return table, nil
}

// decodeTabula decodes tabula's export: several tables, each with rows of
// {"text": ...} cells.
func decodeTabula(jobj any) ([]Table, error) {
	jdata, err := jsonpath.Get("$[*].data", jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid tabula JSON: %w", err)
	}
	jtables, ok := jdata.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer; normalize to a list.
		jtables = []any{jdata}
	}

	var tables []Table
	for i, jtable := range jtables {
		jrows, ok := jtable.([]any)
		if !ok {
			return nil, fmt.Errorf("table %d: want an array of rows, got %T", i, jtable)
		}
		table := make(Table, 0, len(jrows))
		for j, jrow := range jrows {
			jcells, ok := jrow.([]any)
			if !ok {
				return nil, fmt.Errorf("table %d row %d: want an array of cells, got %T", i, j, jrow)
			}
			row := make([]string, 0, len(jcells))
			for _, jcell := range jcells {
				cell, ok := jcell.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("table %d row %d: want cell objects, got %T", i, j, jcell)
				}
				row = append(row, fmt.Sprint(cell["text"]))
			}
			table = append(table, row)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// Concat joins the tables into one row sequence, in order. Grade sheets
// split one logical table across pages; the header is discovered downstream,
// so repeated page headers are harmless here.
func Concat(tables ...Table) [][]string {
	var rows [][]string
	for _, t := range tables {
		rows = append(rows, t...)
	}
	return rows
}

// sortTableFiles orders exported file names so that page 10 sorts after
// page 2: digit runs compare numerically, everything else byte-wise.
func sortTableFiles(files []string) {
	sort.Slice(files, func(i, j int) bool {
		return naturalLess(files[i], files[j])
	})
}

func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		an, arest, aIsNum := nextToken(a)
		bn, brest, bIsNum := nextToken(b)
		if aIsNum && bIsNum {
			ai, _ := strconv.Atoi(an)
			bi, _ := strconv.Atoi(bn)
			if ai != bi {
				return ai < bi
			}
		} else if an != bn {
			return an < bn
		}
		a, b = arest, brest
	}
	return a < b
}

// nextToken splits the leading digit run or non-digit run off s.
func nextToken(s string) (token, rest string, isNum bool) {
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	i := 1
	for i < len(s) && isDigit(s[i]) == isDigit(s[0]) {
		i++
	}
	return s[:i], s[i:], isDigit(s[0])
}
