package renderer

import (
	"bytes"
	"fmt"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
	md "github.com/nao1215/markdown"
)

// DistributionMarkdown renders the credit distribution with a bar per grade,
// scaled against the fullest bucket.
func DistributionMarkdown(dist gpa.Distribution) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Credit Distribution")

	total := dist.TotalCredits()
	if total == 0 {
		doc.PlainText("No credits on record.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Total: %d credits", total))

	max := 0
	for _, credits := range dist {
		if credits > max {
			max = credits
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Grade", "Credits", ""},
		Rows:   [][]string{},
	}
	for _, g := range gpa.Grades() {
		credits, ok := dist[g]
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, []string{
			string(g),
			fmt.Sprintf("%d", credits),
			bar(credits, max),
		})
	}
	doc.Table(table)

	return doc.String()
}
