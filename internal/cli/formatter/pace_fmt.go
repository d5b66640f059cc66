package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/pacing"
)

const (
	timeBarWidth   = 20
	zoneStripWidth = 60
	maxNamesInline = 6
)

// FormatPacing renders a classification as the CLI pacing report.
func FormatPacing(resp *contract.PacingResponse) string {
	var b strings.Builder
	r := resp.Result

	title := fmt.Sprintf("Pacing · %s", resp.Scope)
	if resp.UnitName != "" {
		b.WriteString(Bold(resp.UnitName) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Today:"), HumanDate(resp.Today, resp.Today)+Dim(" ("+resp.Today.Format(domain.DateLayout)+")")))

	if r.NoScheduleData {
		b.WriteString("\n" + StyleYellow.Render("No schedule data covers this date.") + "\n")
		b.WriteString(Dim("Set section windows with `paceboard schedule set`.") + "\n")
		b.WriteString(Warnings(resp.Warnings))
		return RenderBox(title, b.String())
	}

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Expected:"), StyleGreen.Render(SectionName(r.Expected, r.ExpectedName))))
	if tp := r.TimeProgress; tp != nil {
		b.WriteString(fmt.Sprintf("%s %s %s\n", Dim("Window:  "), RenderTimeBar(tp.ElapsedDays, tp.TotalDays, timeBarWidth), Dim(DateRange(tp.StartDate, tp.EndDate))))
	}

	if len(resp.Layout) > 0 {
		b.WriteString("\n" + RenderZoneStrip(resp.Layout, zoneStripWidth) + "\n")
	}

	b.WriteString("\n" + FormatZoneTable(r) + "\n")
	if len(r.Sections) > 0 {
		b.WriteString(FormatSectionSummaries(r.Sections) + "\n")
	}
	if len(r.Completed) > 0 {
		b.WriteString(StyleGreen.Render("Finished the unit: ") + strings.Join(r.Completed, ", ") + "\n")
	}
	b.WriteString(Warnings(resp.Warnings))

	return RenderBox(title, b.String())
}

// FormatZoneTable lists each zone with its anchor section and students.
func FormatZoneTable(r pacing.Result) string {
	headers := []string{"ZONE", "SECTION", "COUNT", "STUDENTS"}
	rows := make([][]string, 0, len(r.Zones))
	for i := len(r.Zones) - 1; i >= 0; i-- {
		z := r.Zones[i]
		if z.Section == "" && len(z.Students) == 0 {
			continue
		}
		rows = append(rows, []string{
			ZoneIndicator(z.Zone),
			SectionName(z.Section, ""),
			fmt.Sprintf("%d", len(z.Students)),
			studentNames(z.Students),
		})
	}
	return RenderTableRight(headers, rows, 2)
}

func studentNames(students []pacing.StudentStatus) string {
	if len(students) == 0 {
		return Dim("--")
	}
	names := make([]string, 0, maxNamesInline)
	for i, st := range students {
		if i == maxNamesInline {
			names = append(names, Dim(fmt.Sprintf("+%d more", len(students)-maxNamesInline)))
			break
		}
		name := st.StudentName
		if st.HasCurrentLesson {
			name += Dim(" " + pacing.LessonLabel(st.CurrentLessonID))
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// FormatSectionSummaries renders the unit's scheduled sections with the
// number of students working in each.
func FormatSectionSummaries(sections []pacing.SectionSummary) string {
	headers := []string{"SECTION", "DATES", "DAYS", "LESSONS", "STUDENTS", ""}
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		name := s.Name
		if s.HasZone {
			name = ZoneColor(s.Zone).Render(name)
		}
		marker := ""
		if s.IsExpected {
			marker = StyleGreen.Render("◀ expected")
		}
		rows = append(rows, []string{
			name,
			DateRange(s.StartDate, s.EndDate),
			fmt.Sprintf("%d", s.PlannedDays),
			fmt.Sprintf("%d", s.LessonCount),
			fmt.Sprintf("%d", s.StudentCount),
			marker,
		})
	}
	return RenderTableRight(headers, rows, 2, 3, 4)
}

// RenderZoneStrip draws the zone layout as a single colored bar of width
// cells with a legend line beneath. Every zone with a positive width gets at
// least one cell.
func RenderZoneStrip(layout []pacing.ZoneWidth, width int) string {
	if len(layout) == 0 {
		return ""
	}
	cells := zoneCells(layout, width)

	var bar, legend strings.Builder
	for i, w := range layout {
		if cells[i] == 0 {
			continue
		}
		style := ZoneColor(w.Zone)
		bar.WriteString(style.Render(strings.Repeat(filledBlock, cells[i])))
		label := fmt.Sprintf("%s %.0f%%", ZoneLabel(w.Zone), w.WidthPct)
		if legend.Len() > 0 {
			legend.WriteString(Dim("  │  "))
		}
		legend.WriteString(style.Render(label))
	}
	return bar.String() + "\n" + legend.String()
}

// zoneCells converts percentages to whole cells summing to width using the
// largest-remainder method.
func zoneCells(layout []pacing.ZoneWidth, width int) []int {
	cells := make([]int, len(layout))
	rem := make([]float64, len(layout))
	used := 0
	for i, w := range layout {
		exact := w.WidthPct * float64(width) / 100
		cells[i] = int(exact)
		rem[i] = exact - float64(cells[i])
		if w.WidthPct > 0 && cells[i] == 0 {
			cells[i] = 1
			rem[i] = 0
		}
		used += cells[i]
	}
	for used < width {
		best := -1
		for i := range rem {
			if layout[i].WidthPct > 0 && (best < 0 || rem[i] > rem[best]) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		cells[best]++
		rem[best] = -1
		used++
	}
	for used > width {
		widest := 0
		for i := range cells {
			if cells[i] > cells[widest] {
				widest = i
			}
		}
		cells[widest]--
		used--
	}
	return cells
}

// FormatZoneStudents lists the students of one zone with where each is
// working.
func FormatZoneStudents(resp *contract.PacingResponse, zone domain.PacingZone) string {
	title := fmt.Sprintf("%s · %s", ZoneLabel(zone), resp.Scope)
	if resp.Result.NoScheduleData {
		return RenderBox(title, StyleYellow.Render("No schedule data covers this date.")+"\n")
	}
	bucket := resp.Result.Bucket(zone)
	if len(bucket.Students) == 0 {
		return RenderBox(title, Dim("Nobody in this zone.")+"\n")
	}
	rows := make([][]string, 0, len(bucket.Students))
	for _, st := range bucket.Students {
		lesson := Dim("finished")
		if st.HasCurrentLesson {
			lesson = pacing.LessonLabel(st.CurrentLessonID)
		}
		rows = append(rows, []string{
			Bold(st.StudentName),
			SectionName(st.Section, ""),
			lesson,
			Fraction(st.CompletedInSection, st.TotalInSection),
		})
	}
	return RenderBox(title, RenderTable([]string{"STUDENT", "WORKING IN", "NEXT", "SECTION DONE"}, rows))
}
