package app

import (
	"context"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
)

type PacingUseCase interface {
	Classify(ctx context.Context, req PacingRequest) (*PacingResponse, error)
}

type ProgressUseCase interface {
	StudentProgress(ctx context.Context, req ProgressRequest) (*ProgressResponse, error)
}

// ScheduleView is a unit schedule plus the section that is expected today.
type ScheduleView struct {
	Schedule *domain.UnitSchedule
	Expected domain.Section
	HasToday bool
}

type ScheduleUseCase interface {
	Show(ctx context.Context, scope Scope, today time.Time) (*ScheduleView, error)
	SetWindow(ctx context.Context, scope Scope, w domain.ScheduleWindow) (*domain.UnitSchedule, error)
	ClearWindow(ctx context.Context, scope Scope, sectionID string) error
}

type RecordCompletionUseCase interface {
	Record(ctx context.Context, r *domain.CompletionRecord) error
	Sync(ctx context.Context, records []*domain.CompletionRecord) (int, error)
}

type ImportResult struct {
	ClassID         string
	StudentCount    int
	UnitCount       int
	LessonCount     int
	ActivityCount   int
	CompletionCount int
}

type ImportClassUseCase interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
}
