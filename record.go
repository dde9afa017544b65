package gpa

import (
	"fmt"
	"strings"

	"github.com/ManiPerez913/VIT-GPA-Calculator/date"
	"github.com/shopspring/decimal"
)

// CourseRecord is a single course result from a grade sheet, after
// normalization. Records are created once by Normalize and read-only
// afterwards.
type CourseRecord struct {
	Code    string    `json:"code"`    // Code is the course code, e.g. "CSE1002".
	Title   string    `json:"title"`   // Title is the course title in its original display form.
	Credits int       `json:"credits"` // Credits is the credit weight of the course.
	Grade   Grade     `json:"grade"`   // Grade is the letter grade awarded.
	On      date.Date `json:"on"`      // On is the date the result was declared.
}

// ParseCredits parses a credit count. Sheets and command lines write credits
// as decimal text ("4", "4.0"); fractional, negative, or non-numeric values
// are rejected.
func ParseCredits(cell string) (int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return 0, fmt.Errorf("invalid credits %q: %w", cell, err)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("invalid credits %q: not a whole number", cell)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid credits %q: negative", cell)
	}
	return int(d.IntPart()), nil
}

// normalizeTitle reduces a course title to its duplicate-detection key:
// lower-cased with every non-alphanumeric character removed. Retakes of the
// same course appear with inconsistent casing and punctuation across sheets
// ("Data Structures!!", "data structures") and must compare equal.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
