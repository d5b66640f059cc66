package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// ShortDate renders a calendar date like "Jan 5". Zero dates render as "--".
func ShortDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("Jan 2")
}

// DateRange renders an inclusive window like "Jan 1 – Jan 10".
func DateRange(start, end time.Time) string {
	if start.IsZero() && end.IsZero() {
		return Dim("unscheduled")
	}
	return ShortDate(start) + " – " + ShortDate(end)
}

// HumanDate renders t relative to today when it is close, else absolute.
func HumanDate(t, today time.Time) string {
	switch domain.DaysBetween(today, t) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	case 1:
		return "Tomorrow"
	}
	return t.Format("Mon Jan 2, 2006")
}

// SectionName prefers a window's display name and falls back to the
// canonical one.
func SectionName(s domain.Section, name string) string {
	if name != "" {
		return name
	}
	if s == "" {
		return "--"
	}
	return s.DisplayName()
}

// Check renders a completion mark.
func Check(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("·")
}
