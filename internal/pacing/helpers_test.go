package pacing

import (
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 0, 0, 0, 0, time.UTC)
}

func window(section string, start, end time.Time) domain.ScheduleWindow {
	return domain.ScheduleWindow{
		ID:        "w-" + section,
		SectionID: section,
		Name:      domain.NormalizeSection(section).DisplayName(),
		StartDate: start,
		EndDate:   end,
	}
}

func practice(id string, section domain.Section, lesson string) domain.Activity {
	return domain.Activity{ID: id, Section: section, UnitLessonID: lesson, Kind: domain.ActivityPractice}
}

func check(id string, section domain.Section, lesson string) domain.Activity {
	return domain.Activity{ID: id, Section: section, UnitLessonID: lesson, Kind: domain.ActivityMasteryCheck}
}

func assessment(id string, section domain.Section, lesson string) domain.Activity {
	return domain.Activity{ID: id, Section: section, UnitLessonID: lesson, Kind: domain.ActivityAssessment}
}

func done(studentID string, activityIDs ...string) []domain.CompletionRecord {
	out := make([]domain.CompletionRecord, 0, len(activityIDs))
	for _, a := range activityIDs {
		out = append(out, domain.CompletionRecord{StudentID: studentID, ActivityID: a, FullyComplete: true})
	}
	return out
}

func students(ids ...string) []domain.Student {
	out := make([]domain.Student, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Student{ID: id, Name: id + " Student"})
	}
	return out
}

// abcSchedule is three back-to-back windows: A Jan 1-10, B Jan 11-20, C Jan 21-31.
func abcSchedule() []domain.ScheduleWindow {
	return []domain.ScheduleWindow{
		window("A", day(time.January, 1), day(time.January, 10)),
		window("B", day(time.January, 11), day(time.January, 20)),
		window("C", day(time.January, 21), day(time.January, 31)),
	}
}

// abcActivities gives each of A, B, C two lessons with a practice activity
// and a mastery check each.
func abcActivities() []domain.Activity {
	return []domain.Activity{
		practice("a1p", domain.SectionA, "3.1"), check("a1c", domain.SectionA, "3.1"),
		practice("a2p", domain.SectionA, "3.2"), check("a2c", domain.SectionA, "3.2"),
		practice("b3p", domain.SectionB, "3.3"), check("b3c", domain.SectionB, "3.3"),
		practice("b4p", domain.SectionB, "3.4"), check("b4c", domain.SectionB, "3.4"),
		practice("c5p", domain.SectionC, "3.5"), check("c5c", domain.SectionC, "3.5"),
		practice("c6p", domain.SectionC, "3.6"), check("c6c", domain.SectionC, "3.6"),
	}
}

func concat(slices ...[]domain.CompletionRecord) []domain.CompletionRecord {
	var out []domain.CompletionRecord
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}
