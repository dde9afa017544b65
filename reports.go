package gpa

// Analysis is the full picture of a transcript: the headline CGPA plus the
// distribution and the courses behind it.
type Analysis struct {
	CGPA          float64
	TotalCredits  int // every credit on record, pass/fail included
	GradedCredits int // credits that weigh on the CGPA
	Distribution  Distribution
	Courses       map[Grade][]CourseRecord
}

// NewAnalysis computes the analysis of the ledger. Courses are grouped by
// grade, each group in chronological order.
func (l *Ledger) NewAnalysis() *Analysis {
	dist := l.Distribution()

	graded := 0
	for g, c := range dist {
		if g.CountsTowardCGPA() {
			graded += c
		}
	}

	courses := make(map[Grade][]CourseRecord)
	for _, r := range l.Records() {
		courses[r.Grade] = append(courses[r.Grade], r)
	}

	return &Analysis{
		CGPA:          dist.CGPA(),
		TotalCredits:  dist.TotalCredits(),
		GradedCredits: graded,
		Distribution:  dist,
		Courses:       courses,
	}
}

// Simulation captures a what-if run: the distribution it started from, the
// operations replayed on it, and the projection they produce.
type Simulation struct {
	Base          Distribution
	Projected     Distribution
	BaseCGPA      float64
	ProjectedCGPA float64
	Operations    []Operation
}

// NewSimulation replays the operations on the base distribution. The base is
// never modified; a failing operation aborts the whole run.
func NewSimulation(base Distribution, ops ...Operation) (*Simulation, error) {
	projected, err := ApplyChain(base, ops...)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		Base:          base.Clone(),
		Projected:     projected,
		BaseCGPA:      base.CGPA(),
		ProjectedCGPA: projected.CGPA(),
		Operations:    ops,
	}, nil
}
