package repository

import (
	"context"

	"github.com/alexanderramin/paceboard/internal/domain"
)

// ScheduleKey identifies one unit schedule.
type ScheduleKey struct {
	SchoolYear   string
	ScopeTag     string
	School       string
	ClassSection string
	UnitNumber   int
}

type ClassRepo interface {
	Upsert(ctx context.Context, c *domain.Class) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]*domain.Class, error)
}

type StudentRepo interface {
	Upsert(ctx context.Context, s *domain.Student) error
	ListByClass(ctx context.Context, classID string) ([]*domain.Student, error)
}

type ScheduleRepo interface {
	// Save writes the schedule row and replaces its windows.
	Save(ctx context.Context, s *domain.UnitSchedule) error
	Get(ctx context.Context, key ScheduleKey) (*domain.UnitSchedule, error)
	ListUnits(ctx context.Context, schoolYear, classSection string) ([]int, error)
	UpsertWindow(ctx context.Context, scheduleID string, w *domain.ScheduleWindow) error
	DeleteWindow(ctx context.Context, scheduleID, sectionID string) error
}

type CatalogRepo interface {
	Upsert(ctx context.Context, l *domain.CatalogLesson) error
	ListByUnit(ctx context.Context, scopeTag string, unitNumber int) ([]domain.CatalogLesson, error)
}

type AssignmentRepo interface {
	Upsert(ctx context.Context, a *domain.SectionAssignment) error
	ListByClassUnit(ctx context.Context, classID string, unitNumber int) ([]domain.SectionAssignment, error)
}

type CompletionRepo interface {
	// Upsert keeps at most one record per (student, activity); a newer sync
	// overwrites the previous result.
	Upsert(ctx context.Context, r *domain.CompletionRecord) error
	ListByClass(ctx context.Context, classID string) ([]domain.CompletionRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.CompletionRecord, error)
}
