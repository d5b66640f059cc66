package service

import (
	"context"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/domain"
)

type PacingService interface {
	Classify(ctx context.Context, req contract.PacingRequest) (*contract.PacingResponse, error)
}

type ProgressService interface {
	StudentProgress(ctx context.Context, req contract.ProgressRequest) (*contract.ProgressResponse, error)
}

type ScheduleService interface {
	Show(ctx context.Context, scope contract.Scope, today time.Time) (*contract.ScheduleView, error)
	SetWindow(ctx context.Context, scope contract.Scope, w domain.ScheduleWindow) (*domain.UnitSchedule, error)
	ClearWindow(ctx context.Context, scope contract.Scope, sectionID string) error
	ListUnits(ctx context.Context, schoolYear, classSection string) ([]int, error)
}

type CompletionService interface {
	Record(ctx context.Context, r *domain.CompletionRecord) error
	// Sync upserts a batch atomically and returns how many records it wrote.
	Sync(ctx context.Context, records []*domain.CompletionRecord) (int, error)
}

type ImportService interface {
	Import(ctx context.Context, filePath string) (*contract.ImportResult, error)
}

// ClassService lists what is stored so commands can offer pickers.
type ClassService interface {
	List(ctx context.Context) ([]*domain.Class, error)
	Roster(ctx context.Context, classID string) ([]*domain.Student, error)
}
