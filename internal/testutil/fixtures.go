package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/google/uuid"
)

var testStudentCounter atomic.Int64

// TestSchoolYear is the school year fixtures default to.
const TestSchoolYear = "2025-2026"

// Date builds a UTC calendar date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewTestClass(id string) *domain.Class {
	return &domain.Class{
		ID:        id,
		School:    "IS313",
		ScopeTag:  "grade-8",
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestStudent creates a student with a unique id. An empty name gets a
// generated one.
func NewTestStudent(classID, name string) *domain.Student {
	n := testStudentCounter.Add(1)
	if name == "" {
		name = fmt.Sprintf("Student %d", n)
	}
	return &domain.Student{
		ID:        fmt.Sprintf("stu-%d-%s", n, uuid.New().String()[:8]),
		ClassID:   classID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Schedule options
type ScheduleOption func(*domain.UnitSchedule)

// WithWindow appends a dated section window.
func WithWindow(sectionID string, start, end time.Time) ScheduleOption {
	return func(s *domain.UnitSchedule) {
		s.Windows = append(s.Windows, domain.ScheduleWindow{
			SectionID:   sectionID,
			Name:        domain.NormalizeSection(sectionID).DisplayName(),
			StartDate:   start,
			EndDate:     end,
			PlannedDays: domain.DaysBetween(start, end) + 1,
		})
	}
}

func WithUnitName(name string) ScheduleOption {
	return func(s *domain.UnitSchedule) {
		s.UnitName = name
	}
}

// NewTestSchedule creates a unit schedule for the class using the fixture
// school and scope tag of NewTestClass.
func NewTestSchedule(class *domain.Class, unit int, opts ...ScheduleOption) *domain.UnitSchedule {
	s := &domain.UnitSchedule{
		SchoolYear:   TestSchoolYear,
		ScopeTag:     class.ScopeTag,
		School:       class.School,
		ClassSection: class.ID,
		UnitNumber:   unit,
		UnitName:     fmt.Sprintf("Unit %d", unit),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestLesson creates a catalog lesson. The lesson name is derived from
// the unit lesson id.
func NewTestLesson(scopeTag string, unit int, unitLessonID, section string) *domain.CatalogLesson {
	return &domain.CatalogLesson{
		ScopeTag:     scopeTag,
		UnitNumber:   unit,
		UnitLessonID: unitLessonID,
		LessonName:   "Lesson " + unitLessonID,
		Section:      section,
		LessonType:   domain.LessonRegular,
	}
}

// NewTestAssignment configures activityID as the given kind of activity for
// the catalog lesson.
func NewTestAssignment(classID string, l *domain.CatalogLesson, activityID string, kind domain.ActivityKind) *domain.SectionAssignment {
	return &domain.SectionAssignment{
		ClassID:      classID,
		UnitNumber:   l.UnitNumber,
		UnitLessonID: l.UnitLessonID,
		LessonName:   l.LessonName,
		Section:      l.Section,
		ActivityID:   activityID,
		Kind:         kind,
	}
}

// Completion options
type CompletionOption func(*domain.CompletionRecord)

func WithCompletedAt(t time.Time) CompletionOption {
	return func(r *domain.CompletionRecord) {
		r.CompletedAt = &t
	}
}

func WithIncomplete() CompletionOption {
	return func(r *domain.CompletionRecord) {
		r.FullyComplete = false
	}
}

// NewTestCompletion creates a fully complete record unless WithIncomplete
// is passed.
func NewTestCompletion(studentID, activityID string, opts ...CompletionOption) *domain.CompletionRecord {
	r := &domain.CompletionRecord{
		StudentID:     studentID,
		ActivityID:    activityID,
		FullyComplete: true,
		SyncedAt:      time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
