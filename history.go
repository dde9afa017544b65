package gpa

import (
	"sort"

	"github.com/ManiPerez913/VIT-GPA-Calculator/date"
)

// HistoryPoint is the cumulative CGPA right after one course result.
type HistoryPoint struct {
	On   date.Date
	CGPA float64
}

// ProjectCumulativeCGPA replays the records in chronological order and
// returns the running CGPA after each graded result, one point per record.
// Pass/fail records are skipped: they never enter the CGPA. The input is
// left untouched; results declared on the same day keep their input order.
func ProjectCumulativeCGPA(records []CourseRecord) []HistoryPoint {
	graded := make([]CourseRecord, 0, len(records))
	for _, r := range records {
		if r.Grade.CountsTowardCGPA() {
			graded = append(graded, r)
		}
	}
	sort.SliceStable(graded, func(i, j int) bool {
		return graded[i].On.Before(graded[j].On)
	})

	series := make([]HistoryPoint, 0, len(graded))
	var pts, credits int
	for _, r := range graded {
		pts += r.Credits * points[r.Grade]
		credits += r.Credits
		var cgpa float64
		if credits > 0 {
			cgpa = float64(pts) / float64(credits)
		}
		series = append(series, HistoryPoint{On: r.On, CGPA: cgpa})
	}
	return series
}
