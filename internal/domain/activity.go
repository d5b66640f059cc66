package domain

import "time"

// Activity is one assignable piece of exercise-platform work. A practice
// activity and its mastery check share UnitLessonID.
type Activity struct {
	ID           string
	UnitNumber   int
	Section      Section
	UnitLessonID string
	LessonName   string
	Kind         ActivityKind
}

// CompletionRecord is one student's synced result for one activity.
// At most one record exists per (StudentID, ActivityID).
type CompletionRecord struct {
	ID            string
	StudentID     string
	ActivityID    string
	FullyComplete bool
	CompletedAt   *time.Time
	SyncedAt      time.Time
}

// CatalogLesson is a scope-and-sequence entry: it decides which section of
// a unit a lesson belongs to.
type CatalogLesson struct {
	ID           string
	ScopeTag     string
	UnitNumber   int
	UnitLessonID string
	LessonName   string
	Section      string
	LessonType   LessonType
	LessonTitle  string
}

// SectionAssignment maps a lesson, as configured for one class section, to
// the exercise-platform activity that realizes it.
type SectionAssignment struct {
	ID           string
	ClassID      string
	UnitNumber   int
	UnitLessonID string
	LessonName   string
	Section      string
	ActivityID   string
	Kind         ActivityKind
}
