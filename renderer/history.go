package renderer

import (
	"bytes"
	"fmt"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the cumulative CGPA projection, one row per graded
// course. Bars are scaled against the 10 point ceiling so the trend reads at
// a glance.
func HistoryMarkdown(points []gpa.HistoryPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("CGPA History")

	if len(points) == 0 {
		doc.PlainText("No graded course on record.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "CGPA", ""},
		Rows:   [][]string{},
	}
	for _, p := range points {
		// scale by 100 to keep the bar math in integers
		table.Rows = append(table.Rows, []string{
			p.On.String(),
			fmt.Sprintf("%.2f", p.CGPA),
			bar(int(p.CGPA*100), 1000),
		})
	}
	doc.Table(table)

	return doc.String()
}
