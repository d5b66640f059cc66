package pacing

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
)

// TimeProgress describes how far "today" is into a section's window.
type TimeProgress struct {
	StartDate      time.Time
	EndDate        time.Time
	TotalDays      int
	ElapsedDays    int
	PercentElapsed int
}

// orderedWindows returns the dated, ranked windows in canonical section order.
func orderedWindows(windows []domain.ScheduleWindow) []domain.ScheduleWindow {
	out := make([]domain.ScheduleWindow, 0, len(windows))
	for _, w := range rankedWindows(windows) {
		if w.StartDate.IsZero() || w.EndDate.IsZero() {
			continue
		}
		out = append(out, w)
	}
	return out
}

// rankedWindows keeps the ranked windows, dated or not, in canonical order.
func rankedWindows(windows []domain.ScheduleWindow) []domain.ScheduleWindow {
	out := make([]domain.ScheduleWindow, 0, len(windows))
	for _, w := range windows {
		if w.Section().Ranked() {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Section().Index() < out[j].Section().Index()
	})
	return out
}

// ExpectedWindow finds the window the class should be in on today. Once the
// last window has ended the class stays in it. It returns false when there
// is no window at all or today falls outside every window otherwise.
func ExpectedWindow(windows []domain.ScheduleWindow, today time.Time) (domain.ScheduleWindow, bool) {
	ordered := orderedWindows(windows)
	if len(ordered) == 0 {
		return domain.ScheduleWindow{}, false
	}
	for _, w := range ordered {
		if w.Contains(today) {
			return w, true
		}
	}
	last := ordered[len(ordered)-1]
	if domain.DateOf(today).After(domain.DateOf(last.EndDate)) {
		return last, true
	}
	return domain.ScheduleWindow{}, false
}

// ResolveExpectedSection returns the section the whole class should be in.
func ResolveExpectedSection(windows []domain.ScheduleWindow, today time.Time) (domain.Section, bool) {
	w, ok := ExpectedWindow(windows, today)
	if !ok {
		return "", false
	}
	return w.Section(), true
}

// SectionTimeProgress computes elapsed days for a window. Days are counted
// inclusively and elapsed is never below 1; the percentage is capped at 100.
func SectionTimeProgress(w domain.ScheduleWindow, today time.Time) TimeProgress {
	total := domain.DaysBetween(w.StartDate, w.EndDate) + 1
	if total < 1 {
		total = 1
	}
	elapsed := domain.DaysBetween(w.StartDate, today) + 1
	if elapsed < 1 {
		elapsed = 1
	}
	pct := int(math.Round(float64(elapsed) / float64(total) * 100))
	if pct > 100 {
		pct = 100
	}
	return TimeProgress{
		StartDate:      domain.DateOf(w.StartDate),
		EndDate:        domain.DateOf(w.EndDate),
		TotalDays:      total,
		ElapsedDays:    elapsed,
		PercentElapsed: pct,
	}
}
