package gpa

import "github.com/ManiPerez913/VIT-GPA-Calculator/date"

// rec is a helper for tests to create a course record from consts.
func rec(code, title string, credits int, g Grade, on string) CourseRecord {
	return CourseRecord{
		Code:    code,
		Title:   title,
		Credits: credits,
		Grade:   g,
		On:      date.MustParse(on),
	}
}
