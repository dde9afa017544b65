package gpa

import (
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/ManiPerez913/VIT-GPA-Calculator/date"
)

// Distribution maps each grade to the total credits earned under it.
//
// Distributions are value objects: simulation operations return new
// snapshots and never modify their input, so several what-if branches can be
// explored from the same original.
type Distribution map[Grade]int

// Clone returns an independent copy of d. The copy is never nil.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	maps.Copy(out, d)
	return out
}

// TotalCredits sums the credits over every grade, pass/fail included.
func (d Distribution) TotalCredits() int {
	var total int
	for _, credits := range d {
		total += credits
	}
	return total
}

// CGPA computes the cumulative grade-point average over the distribution.
// Pass/fail credits never count, and a distribution without graded credits
// has a CGPA of exactly 0.
func (d Distribution) CGPA() float64 {
	var pts, credits int
	for g, c := range d {
		if !g.CountsTowardCGPA() {
			continue
		}
		pts += c * points[g]
		credits += c
	}
	if credits == 0 {
		return 0
	}
	return float64(pts) / float64(credits)
}

// DistributionOf sums credits per grade across the records. Pass/fail
// credits are included: the distribution is a raw credit ledger, and the
// exclusion rule belongs to the CGPA computation. Grades with no credits
// have no key.
func DistributionOf(records []CourseRecord) Distribution {
	dist := make(Distribution)
	for _, r := range records {
		if r.Credits == 0 {
			continue
		}
		dist[r.Grade] += r.Credits
	}
	return dist
}

// ComputeCGPA computes the cumulative grade-point average of the records.
// It is the record-sequence view of (Distribution).CGPA: both paths give
// identical results for equivalent inputs.
func ComputeCGPA(records []CourseRecord) float64 {
	return DistributionOf(records).CGPA()
}

// Ledger holds the normalized course records of one grade sheet.
//
// In a Ledger records are always in chronological order.
type Ledger struct {
	records []CourseRecord
}

// NewLedger creates a ledger from course records.
func NewLedger(records ...CourseRecord) *Ledger {
	l := &Ledger{records: slices.Clone(records)}
	l.stableSort()
	return l
}

// stableSort sorts the ledger by record date. The sort is stable, meaning
// results declared on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].On.Before(l.records[j].On)
	})
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns an iterator that yields each record in chronological
// order. Without filters every record is yielded; with filters a record is
// yielded when any of them accepts it.
func (l *Ledger) Records(filters ...func(CourseRecord) bool) iter.Seq2[int, CourseRecord] {
	return func(yield func(int, CourseRecord) bool) {
		for i, r := range l.records {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(r) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// ByGrade returns a predicate that filters records by grade.
func ByGrade(g Grade) func(CourseRecord) bool {
	return func(r CourseRecord) bool { return r.Grade == g }
}

// OldestRecordDate returns the date of the earliest record in the ledger,
// or the zero date when the ledger is empty.
func (l *Ledger) OldestRecordDate() date.Date {
	if len(l.records) == 0 {
		return date.Date{}
	}
	return l.records[0].On
}

// NewestRecordDate returns the date of the latest record in the ledger,
// or the zero date when the ledger is empty.
func (l *Ledger) NewestRecordDate() date.Date {
	if len(l.records) == 0 {
		return date.Date{}
	}
	return l.records[len(l.records)-1].On
}

// CGPA computes the ledger's cumulative grade-point average.
func (l *Ledger) CGPA() float64 { return ComputeCGPA(l.records) }

// Distribution returns the ledger's credit distribution.
func (l *Ledger) Distribution() Distribution { return DistributionOf(l.records) }

// History returns the cumulative CGPA after each graded result, oldest
// first.
func (l *Ledger) History() []HistoryPoint { return ProjectCumulativeCGPA(l.records) }
