package renderer

import (
	"bytes"
	"fmt"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	md "github.com/nao1215/markdown"
)

// RecordsMarkdown renders the normalized course records as a table, in the
// order given.
func RecordsMarkdown(records []gpa.CourseRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Course Records")

	if len(records) == 0 {
		doc.PlainText("No course on record.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Code", "Title", "Credits", "Grade"},
		Rows:   [][]string{},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.On.String(),
			r.Code,
			r.Title,
			fmt.Sprintf("%d", r.Credits),
			string(r.Grade),
		})
	}
	doc.Table(table)

	return doc.String()
}
