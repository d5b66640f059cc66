package cli

import "github.com/alexanderramin/paceboard/internal/app"

type (
	PacingUseCase           = app.PacingUseCase
	ProgressUseCase         = app.ProgressUseCase
	ScheduleUseCase         = app.ScheduleUseCase
	RecordCompletionUseCase = app.RecordCompletionUseCase
	ImportClassUseCase      = app.ImportClassUseCase
)

func (a *App) pacingUseCase() app.PacingUseCase {
	if a.ClassifyPace != nil {
		return a.ClassifyPace
	}
	return a.Pacing
}

func (a *App) progressUseCase() app.ProgressUseCase {
	if a.StudentProgress != nil {
		return a.StudentProgress
	}
	return a.Progress
}

func (a *App) scheduleUseCase() app.ScheduleUseCase {
	if a.EditSchedule != nil {
		return a.EditSchedule
	}
	return a.Schedules
}

func (a *App) recordCompletionUseCase() app.RecordCompletionUseCase {
	if a.RecordCompletion != nil {
		return a.RecordCompletion
	}
	return a.Completions
}

func (a *App) importClassUseCase() app.ImportClassUseCase {
	if a.ImportClass != nil {
		return a.ImportClass
	}
	return a.Import
}
