package renderer

import (
	"bytes"
	"fmt"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	md "github.com/nao1215/markdown"
)

// SimulationMarkdown renders a what-if run: the operations applied, the
// distribution before and after, and the CGPA move.
func SimulationMarkdown(s *gpa.Simulation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("What-if Simulation")

	var ops []string
	for _, op := range s.Operations {
		ops = append(ops, Operation(op))
	}
	if len(ops) > 0 {
		doc.OrderedList(ops...)
	} else {
		doc.PlainText("No change requested.")
	}

	doc.H2("Distribution")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Grade", "Current", "Projected"},
		Rows:   [][]string{},
	}
	for _, g := range gpa.Grades() {
		before, inBase := s.Base[g]
		after, inProjected := s.Projected[g]
		if !inBase && !inProjected {
			continue
		}
		table.Rows = append(table.Rows, []string{
			string(g),
			fmt.Sprintf("%d", before),
			fmt.Sprintf("%d", after),
		})
	}
	doc.Table(table)

	doc.H2("CGPA")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", "CGPA"},
		Rows: [][]string{
			{"Current", fmt.Sprintf("%.2f", s.BaseCGPA)},
			{"Projected", fmt.Sprintf("%.2f", s.ProjectedCGPA)},
			{md.Bold("Change"), fmt.Sprintf("%+.2f", s.ProjectedCGPA-s.BaseCGPA)},
		},
	})

	return doc.String()
}
