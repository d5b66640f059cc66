package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/paceboard/internal/contract"
)

// FormatProgress renders the per-student assignment grid. A single student
// gets the detailed per-lesson listing instead.
func FormatProgress(resp *contract.ProgressResponse) string {
	var b strings.Builder
	title := fmt.Sprintf("Progress · %s", resp.Scope)

	if len(resp.Students) == 0 {
		b.WriteString(Dim("No students on the roster.") + "\n")
		b.WriteString(Warnings(resp.Warnings))
		return RenderBox(title, b.String())
	}
	if len(resp.Students) == 1 {
		b.WriteString(FormatStudentLessons(resp.Students[0]))
		b.WriteString(Warnings(resp.Warnings))
		return RenderBox(title, b.String())
	}

	first := resp.Students[0]
	headers := []string{"STUDENT", "DONE"}
	for _, l := range first.Lessons {
		headers = append(headers, shortLabel(l.Label))
	}
	rows := make([][]string, 0, len(resp.Students))
	for _, st := range resp.Students {
		row := []string{Bold(st.StudentName), Fraction(st.Completed, st.Total)}
		for _, l := range st.Lessons {
			row = append(row, LessonMark(l))
		}
		rows = append(rows, row)
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim("✔ done   ◐ practice only   · not started") + "\n")
	b.WriteString(Warnings(resp.Warnings))
	return RenderBox(title, b.String())
}

// FormatStudentLessons lists one student's lessons with practice and check
// completion side by side.
func FormatStudentLessons(st contract.StudentProgress) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(st.StudentName), Fraction(st.Completed, st.Total)))
	if len(st.Lessons) == 0 {
		b.WriteString(Dim("No lessons configured for this selection.") + "\n")
		return b.String()
	}
	headers := []string{"LESSON", "SECTION", "ACTIVITY", "CHECK"}
	rows := make([][]string, 0, len(st.Lessons))
	for _, l := range st.Lessons {
		check := Dim("--")
		if l.Check != nil {
			check = Check(l.Check.Complete)
		}
		rows = append(rows, []string{
			l.Label,
			SectionName(l.Section, ""),
			Check(l.Primary.Complete) + " " + Dim(string(l.Primary.Kind)),
			check,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// LessonMark summarises a lesson cell in one glyph.
func LessonMark(l contract.LessonCell) string {
	switch {
	case l.Done():
		return StyleGreen.Render("✔")
	case l.Primary.Complete || (l.Check != nil && l.Check.Complete):
		return StyleYellow.Render("◐")
	}
	return StyleDim.Render("·")
}

// shortLabel turns "Lesson 12" into "12" and keeps "RU 1" as "RU1".
func shortLabel(label string) string {
	if n, ok := strings.CutPrefix(label, "Lesson "); ok {
		return n
	}
	return strings.ReplaceAll(label, " ", "")
}
