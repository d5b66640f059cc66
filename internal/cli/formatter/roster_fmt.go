package formatter

import (
	"fmt"

	"github.com/alexanderramin/paceboard/internal/domain"
)

// FormatClasses lists imported class sections.
func FormatClasses(classes []*domain.Class) string {
	if len(classes) == 0 {
		return Dim("No classes imported yet. Run `paceboard import FILE`.") + "\n"
	}
	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, []string{Bold(c.ID), c.School, c.ScopeTag})
	}
	return RenderTable([]string{"CLASS", "SCHOOL", "SCOPE"}, rows)
}

// FormatRoster lists a class section's students.
func FormatRoster(classID string, students []*domain.Student) string {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{s.DisplayName(), s.Name, Dim(s.ID)})
	}
	title := fmt.Sprintf("Roster · %s (%d)", classID, len(students))
	return RenderBox(title, RenderTable([]string{"SHORT", "NAME", "ID"}, rows))
}
