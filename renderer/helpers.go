package renderer

import (
	"fmt"
	"strings"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	md "github.com/nao1215/markdown"
)

// barWidth is the length of a full bar in the text visualizations.
const barWidth = 25

// bar draws n as a proportion of max, full blocks only. A non zero n always
// gets at least one block so small buckets stay visible.
func bar(n, max int) string {
	if n <= 0 || max <= 0 {
		return ""
	}
	w := n * barWidth / max
	if w == 0 {
		w = 1
	}
	return strings.Repeat("█", w)
}

// distributionTable lays out a distribution in grade rank order, drained
// buckets included.
func distributionTable(dist gpa.Distribution) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Grade", "Points", "Credits"},
		Rows:   [][]string{},
	}
	for _, g := range gpa.Grades() {
		credits, ok := dist[g]
		if !ok {
			continue
		}
		pts := "pass"
		if g.CountsTowardCGPA() {
			p, _ := g.Points()
			pts = fmt.Sprintf("%d", p)
		}
		table.Rows = append(table.Rows, []string{string(g), pts, fmt.Sprintf("%d", credits)})
	}
	return table
}
