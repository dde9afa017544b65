package renderer

import (
	"fmt"

	gpa "github.com/ManiPerez913/VIT-GPA-Calculator"
)

// Operation renders a what-if operation to a string.
func Operation(op gpa.Operation) string {
	switch v := op.(type) {
	case gpa.Transfer:
		return fmt.Sprintf("Move %d credits from %s to %s", v.Credits, v.From, v.To)
	case gpa.Addition:
		return fmt.Sprintf("Add %d credits of %s", v.Credits, v.Grade)
	default:
		return string(op.What())
	}
}
