package gpa

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file contains code to persist a normalized transcript as JSONL, one
// course record per line, in a way that is still human-readable and
// git-friendly. A transcript saved next to its source sheet can be diffed
// when the university publishes an updated sheet.

// EncodeRecord marshals a single course record to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeRecord(w io.Writer, r CourseRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, records
// in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, r := range l.Records() {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads course records from a stream of JSONL data from an
// io.Reader, decodes each line into a record, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var records []CourseRecord
	scanner := bufio.NewScanner(r)

	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue // Skip empty lines
		}

		var rec CourseRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parse error on line %d: %w", i, err)
		}
		// Hand-edited files happen; re-run the cell parsers on the risky fields.
		grade, err := ParseGrade(string(rec.Grade))
		if err != nil {
			return nil, fmt.Errorf("parse error on line %d: %w", i, err)
		}
		rec.Grade = grade
		if rec.Credits < 0 {
			return nil, fmt.Errorf("parse error on line %d: invalid credits %d: negative", i, rec.Credits)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return NewLedger(records...), nil
}
