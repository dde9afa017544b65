package renderer

import (
	"bytes"
	"fmt"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders the full transcript analysis: headline numbers,
// the credit distribution, and the courses behind every grade.
func AnalysisMarkdown(a *gpa.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transcript Analysis")
	doc.PlainText(fmt.Sprintf("CGPA: %.2f", a.CGPA))
	doc.PlainText(fmt.Sprintf("Credits: %d graded, %d on record", a.GradedCredits, a.TotalCredits))

	doc.H2("Credit Distribution")
	doc.Table(distributionTable(a.Distribution))

	doc.H2("Courses by Grade")
	for _, g := range gpa.Grades() {
		records := a.Courses[g]
		if len(records) == 0 {
			continue
		}
		var courses []string
		for _, r := range records {
			courses = append(courses, fmt.Sprintf("%s %s (%d credits)", r.Code, r.Title, r.Credits))
		}
		doc.H3(fmt.Sprintf("%s (%d)", g, len(records)))
		doc.BulletList(courses...)
	}

	return doc.String()
}
