package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/curriculum"
)

// FormatSchedule renders a unit schedule with today's expected section
// marked.
func FormatSchedule(scope contract.Scope, view *contract.ScheduleView) string {
	var b strings.Builder
	sched := view.Schedule
	if sched.UnitName != "" {
		b.WriteString(Bold(sched.UnitName) + "\n\n")
	}
	if len(sched.Windows) == 0 {
		b.WriteString(Dim("No section windows yet.") + "\n")
		return RenderBox(fmt.Sprintf("Schedule · %s", scope), b.String())
	}

	headers := []string{"SECTION", "NAME", "DATES", "DAYS", ""}
	rows := make([][]string, 0, len(sched.Windows))
	for _, w := range sched.Windows {
		marker := ""
		if view.HasToday && w.Section() == view.Expected {
			marker = StyleGreen.Render("◀ today")
		}
		section := w.SectionID
		if !w.Section().Ranked() {
			section = StyleYellow.Render(section + " (unranked)")
		}
		rows = append(rows, []string{
			section,
			w.Name,
			DateRange(w.StartDate, w.EndDate),
			fmt.Sprintf("%d", w.PlannedDays),
			marker,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	if !view.HasToday {
		b.WriteString("\n" + StyleYellow.Render("Today falls outside every scheduled window.") + "\n")
	}
	return RenderBox(fmt.Sprintf("Schedule · %s", scope), b.String())
}

// FormatSections renders the section picker entries with lesson counts.
func FormatSections(scope contract.Scope, opts []curriculum.SectionOption) string {
	headers := []string{"ID", "SECTION", "LESSONS"}
	rows := make([][]string, 0, len(opts))
	for _, o := range opts {
		count := fmt.Sprintf("%d", o.Count)
		if o.Count == 0 {
			count = Dim(count)
		}
		rows = append(rows, []string{o.ID, o.Name, count})
	}
	return RenderBox(fmt.Sprintf("Sections · %s", scope), RenderTableRight(headers, rows, 2))
}

// FormatImportResult summarises what an import wrote.
func FormatImportResult(res *contract.ImportResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Imported class %s", res.ClassID)) + "\n\n")
	b.WriteString(RenderTableRight([]string{"WHAT", "COUNT"}, [][]string{
		{"Students", fmt.Sprintf("%d", res.StudentCount)},
		{"Unit schedules", fmt.Sprintf("%d", res.UnitCount)},
		{"Catalog lessons", fmt.Sprintf("%d", res.LessonCount)},
		{"Activities", fmt.Sprintf("%d", res.ActivityCount)},
		{"Completion records", fmt.Sprintf("%d", res.CompletionCount)},
	}, 1))
	return RenderBox("Import", b.String())
}
