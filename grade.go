package gpa

import (
	"fmt"
	"strings"
)

// Grade is a letter grade awarded for a course.
type Grade string

// Letter grades of the university's 10-point scale.
const (
	S Grade = "S"
	A Grade = "A"
	B Grade = "B"
	C Grade = "C"
	D Grade = "D"
	E Grade = "E"
	F Grade = "F"
	P Grade = "P" // pass/fail marker, recorded but never graded
)

// points maps every grade of the scale to its grade-point value. The mapping
// is total over the scale: a grade missing from this table is invalid input,
// not a zero-point grade.
var points = map[Grade]int{
	S: 10,
	A: 9,
	B: 8,
	C: 7,
	D: 6,
	E: 5,
	F: 0,
	P: 0,
}

// Grades returns the grading scale in rank order, best first.
func Grades() []Grade { return []Grade{S, A, B, C, D, E, F, P} }

// UnknownGradeError reports a letter that is not part of the grading scale.
type UnknownGradeError struct {
	Grade string
}

func (e *UnknownGradeError) Error() string {
	return fmt.Sprintf("unknown grade %q, want one of S A B C D E F P", e.Grade)
}

// Points returns the grade-point value of g.
func (g Grade) Points() (int, error) {
	pts, ok := points[g]
	if !ok {
		return 0, &UnknownGradeError{Grade: string(g)}
	}
	return pts, nil
}

// Valid reports whether g is part of the grading scale.
func (g Grade) Valid() bool {
	_, ok := points[g]
	return ok
}

// CountsTowardCGPA reports whether g enters the CGPA computation. Pass/fail
// credits are earned but carry no grade points.
func (g Grade) CountsTowardCGPA() bool { return g != P }

// ParseGrade parses a grade cell. Surrounding spaces and case are ignored.
func ParseGrade(str string) (Grade, error) {
	g := Grade(strings.ToUpper(strings.TrimSpace(str)))
	if !g.Valid() {
		return "", &UnknownGradeError{Grade: str}
	}
	return g, nil
}
