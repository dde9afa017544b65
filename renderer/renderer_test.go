package renderer

import (
	"strings"
	"testing"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	"github.com/ManiPerez913/VIT-GPA-Calculator/date"
)

// assertContains fails for every want missing from the rendered output.
func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		name   string
		n, max int
		want   string
	}{
		{"zero", 0, 10, ""},
		{"full", 10, 10, strings.Repeat("█", 25)},
		{"half", 5, 10, strings.Repeat("█", 12)},
		{"small but visible", 1, 100, "█"},
		{"no max", 3, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bar(tt.n, tt.max); got != tt.want {
				t.Errorf("bar(%d, %d) = %q, want %q", tt.n, tt.max, got, tt.want)
			}
		})
	}
}

func TestAnalysisMarkdown(t *testing.T) {
	l := gpa.NewLedger(
		gpa.CourseRecord{Code: "CSE1001", Title: "Problem Solving", Credits: 4, Grade: gpa.A, On: date.MustParse("2021-12-01")},
		gpa.CourseRecord{Code: "MAT1011", Title: "Calculus", Credits: 3, Grade: gpa.B, On: date.MustParse("2022-05-10")},
		gpa.CourseRecord{Code: "STS1001", Title: "Soft Skills", Credits: 4, Grade: gpa.P, On: date.MustParse("2022-05-10")},
	)

	out := AnalysisMarkdown(l.NewAnalysis())

	assertContains(t, out,
		"# Transcript Analysis",
		"CGPA: 8.57", // (4*9 + 3*8) / 7
		"Credits: 7 graded, 11 on record",
		"## Credit Distribution",
		"pass", // the P bucket carries no points
		"## Courses by Grade",
		"### A (1)",
		"CSE1001 Problem Solving (4 credits)",
		"### P (1)",
		"STS1001 Soft Skills (4 credits)",
	)
}

func TestDistributionMarkdown(t *testing.T) {
	dist := gpa.Distribution{gpa.S: 4, gpa.A: 8, gpa.B: 3, gpa.P: 2}

	out := DistributionMarkdown(dist)

	assertContains(t, out,
		"# Credit Distribution",
		"Total: 17 credits",
		strings.Repeat("█", 25), // fullest bucket gets a full bar
	)
}

func TestDistributionMarkdown_Empty(t *testing.T) {
	out := DistributionMarkdown(gpa.Distribution{})
	assertContains(t, out, "# Credit Distribution", "No credits on record.")
}

func TestHistoryMarkdown(t *testing.T) {
	points := []gpa.HistoryPoint{
		{On: date.MustParse("2021-12-01"), CGPA: 9},
		{On: date.MustParse("2022-05-10"), CGPA: 60.0 / 7.0},
	}

	out := HistoryMarkdown(points)

	assertContains(t, out,
		"# CGPA History",
		"2021-12-01",
		"9.00",
		"2022-05-10",
		"8.57",
		"█",
	)
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	out := HistoryMarkdown(nil)
	assertContains(t, out, "# CGPA History", "No graded course on record.")
}

func TestSimulationMarkdown(t *testing.T) {
	base := gpa.Distribution{gpa.B: 6, gpa.A: 4}
	s, err := gpa.NewSimulation(base, gpa.Transfer{From: gpa.B, To: gpa.A, Credits: 6})
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	out := SimulationMarkdown(s)

	assertContains(t, out,
		"# What-if Simulation",
		"Move 6 credits from B to A",
		"## Distribution",
		"## CGPA",
		"8.40",  // (6*8 + 4*9) / 10
		"9.00",  // all ten credits under A
		"+0.60", // the move
	)
}

func TestSimulationMarkdown_NoOperations(t *testing.T) {
	s, err := gpa.NewSimulation(gpa.Distribution{gpa.A: 4})
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}
	out := SimulationMarkdown(s)
	assertContains(t, out, "# What-if Simulation", "No change requested.")
}

func TestOperation(t *testing.T) {
	tests := []struct {
		name string
		op   gpa.Operation
		want string
	}{
		{"transfer", gpa.Transfer{From: gpa.B, To: gpa.A, Credits: 6}, "Move 6 credits from B to A"},
		{"addition", gpa.Addition{Grade: gpa.S, Credits: 3}, "Add 3 credits of S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Operation(tt.op); got != tt.want {
				t.Errorf("Operation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordsMarkdown(t *testing.T) {
	records := []gpa.CourseRecord{
		{Code: "CSE1001", Title: "Problem Solving", Credits: 4, Grade: gpa.S, On: date.MustParse("2022-05-10")},
		{Code: "MAT1011", Title: "Calculus", Credits: 3, Grade: gpa.A, On: date.MustParse("2021-12-01")},
	}

	out := RecordsMarkdown(records)

	assertContains(t, out,
		"# Course Records",
		"CSE1001",
		"Problem Solving",
		"2022-05-10",
		"MAT1011",
		"2021-12-01",
	)
}

func TestRecordsMarkdown_Empty(t *testing.T) {
	out := RecordsMarkdown(nil)
	assertContains(t, out, "# Course Records", "No course on record.")
}
