package gpa

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ManiPerez913/VIT-GPA-Calculator/date"
)

// Column labels recognized during header discovery. Grade sheets repeat
// these literals in a header row somewhere in the extracted table.
const (
	codeLabel    = "Course Code"
	titleLabel   = "Course Title"
	creditsLabel = "Credits"
	gradeLabel   = "Grade"
	dateLabel    = "Date"
	altDateLabel = "Result Declared On"
)

// ErrHeaderNotFound reports that the sheet's header row could not be
// identified, or that it does not name every mandatory column. Without
// column identity no record can be produced.
var ErrHeaderNotFound = errors.New("header row not found")

// columns holds the positional indices resolved from the header row.
type columns struct {
	code, title, credits, grade int
	date                        int // -1 when the sheet has no date column
}

// Normalize turns raw extracted rows into typed course records.
//
// The header row is the first row containing both the "Course Code" and
// "Grade" labels; everything after it is candidate data. Rows with missing
// mandatory cells, unparseable credits, or unparseable dates are dropped.
// When the sheet has no date column every row gets a synthetic date, the
// first row today and each following row one day earlier, so recency
// comparisons stay well defined. Retaken courses are resolved by normalized
// title: only the most recent result survives. Rows whose grade is not part
// of the grading scale are dropped last.
//
// An empty record list is a valid result; a missing header is not, and
// fails with ErrHeaderNotFound.
func Normalize(rows [][]string) ([]CourseRecord, error) {
	headerIdx, err := findHeader(rows)
	if err != nil {
		return nil, err
	}
	cols, err := resolveColumns(rows[headerIdx])
	if err != nil {
		return nil, err
	}

	// candidate rows, typed but not yet deduplicated nor grade-checked
	type candidate struct {
		code, title, grade string
		key                string // normalized title, the dedup key
		credits            int
		on                 date.Date
	}

	var candidates []candidate
	for _, row := range rows[headerIdx+1:] {
		c := candidate{
			code:  cellAt(row, cols.code),
			title: cellAt(row, cols.title),
			grade: cellAt(row, cols.grade),
		}
		creditsCell := cellAt(row, cols.credits)
		if c.code == "" || c.title == "" || creditsCell == "" || c.grade == "" {
			continue
		}
		credits, err := ParseCredits(creditsCell)
		if err != nil {
			continue
		}
		c.credits = credits
		if cols.date >= 0 {
			on, err := date.ParseDayFirst(cellAt(row, cols.date))
			if err != nil {
				continue
			}
			c.on = on
		}
		c.key = normalizeTitle(c.title)
		candidates = append(candidates, c)
	}

	if cols.date < 0 {
		for i, on := range date.Sequence(len(candidates)) {
			candidates[i].on = on
		}
	}

	// Most recent first. The sort is stable so rows declared on the same
	// day keep their sheet order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].on.After(candidates[j].on)
	})

	seen := make(map[string]bool, len(candidates))
	records := make([]CourseRecord, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.key] {
			continue
		}
		seen[c.key] = true
		g, err := ParseGrade(c.grade)
		if err != nil {
			continue
		}
		records = append(records, CourseRecord{
			Code:    c.code,
			Title:   c.title,
			Credits: c.credits,
			Grade:   g,
			On:      c.on,
		})
	}
	return records, nil
}

// findHeader returns the index of the first row containing both the course
// code and grade labels.
func findHeader(rows [][]string) (int, error) {
	for i, row := range rows {
		var hasCode, hasGrade bool
		for _, cell := range row {
			switch strings.TrimSpace(cell) {
			case codeLabel:
				hasCode = true
			case gradeLabel:
				hasGrade = true
			}
		}
		if hasCode && hasGrade {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no row contains both %q and %q", ErrHeaderNotFound, codeLabel, gradeLabel)
}

// resolveColumns maps the header row's labels to positional indices. When a
// label repeats, the first occurrence wins.
func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		if _, ok := idx[cell]; !ok {
			idx[cell] = i
		}
	}

	cols := columns{date: -1}
	var ok bool
	if cols.code, ok = idx[codeLabel]; !ok {
		return cols, fmt.Errorf("%w: header row has no %q column", ErrHeaderNotFound, codeLabel)
	}
	if cols.title, ok = idx[titleLabel]; !ok {
		return cols, fmt.Errorf("%w: header row has no %q column", ErrHeaderNotFound, titleLabel)
	}
	if cols.credits, ok = idx[creditsLabel]; !ok {
		return cols, fmt.Errorf("%w: header row has no %q column", ErrHeaderNotFound, creditsLabel)
	}
	if cols.grade, ok = idx[gradeLabel]; !ok {
		return cols, fmt.Errorf("%w: header row has no %q column", ErrHeaderNotFound, gradeLabel)
	}
	if i, ok := idx[dateLabel]; ok {
		cols.date = i
	} else if i, ok := idx[altDateLabel]; ok {
		cols.date = i
	}
	return cols, nil
}

// cellAt returns the trimmed cell at position i, or "" when the row is too
// short to have one.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
