package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/db"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/pacing"
	"github.com/alexanderramin/paceboard/internal/repository"
)

type scheduleService struct {
	classes   repository.ClassRepo
	schedules repository.ScheduleRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewScheduleService(
	classes repository.ClassRepo,
	schedules repository.ScheduleRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		classes:   classes,
		schedules: schedules,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Show(ctx context.Context, scope contract.Scope, today time.Time) (*contract.ScheduleView, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	class, err := unitRepos{classes: s.classes}.loadClass(ctx, scope.ClassSection)
	if err != nil {
		return nil, err
	}
	sched, err := s.schedules.Get(ctx, scheduleKey(scope, class))
	if err != nil {
		return nil, err
	}
	view := &contract.ScheduleView{Schedule: sched}
	view.Expected, view.HasToday = pacing.ResolveExpectedSection(sched.Windows, today)
	return view, nil
}

func (s *scheduleService) ListUnits(ctx context.Context, schoolYear, classSection string) ([]int, error) {
	return s.schedules.ListUnits(ctx, schoolYear, classSection)
}

// SetWindow creates or moves one section window, creating the unit schedule
// on first use.
func (s *scheduleService) SetWindow(ctx context.Context, scope contract.Scope, w domain.ScheduleWindow) (sched *domain.UnitSchedule, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"class":   scope.ClassSection,
		"unit":    scope.UnitNumber,
		"section": w.SectionID,
	}
	defer func() {
		observe(ctx, s.observer, "set-window", startedAt, err, fields, nil)
	}()

	if err = validateScope(scope); err != nil {
		return nil, err
	}
	if err = validateWindow(w); err != nil {
		return nil, err
	}
	if w.Name == "" {
		w.Name = domain.NormalizeSection(w.SectionID).DisplayName()
	}
	if w.PlannedDays == 0 && !w.StartDate.IsZero() {
		w.PlannedDays = domain.DaysBetween(w.StartDate, w.EndDate) + 1
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		class, err := unitRepos{classes: repository.NewSQLiteClassRepo(tx)}.loadClass(ctx, scope.ClassSection)
		if err != nil {
			return err
		}
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		key := scheduleKey(scope, class)

		sched, err = txSchedules.Get(ctx, key)
		if errors.Is(err, repository.ErrNotFound) {
			sched = &domain.UnitSchedule{
				SchoolYear:   key.SchoolYear,
				ScopeTag:     key.ScopeTag,
				School:       key.School,
				ClassSection: key.ClassSection,
				UnitNumber:   key.UnitNumber,
				UnitName:     fmt.Sprintf("Unit %d", key.UnitNumber),
			}
			if err := txSchedules.Save(ctx, sched); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		// Match an existing window on the normalized section so "Ramp Up"
		// updates a stored "Ramp Ups" row instead of adding a second one.
		want := domain.NormalizeSection(w.SectionID)
		for _, existing := range sched.Windows {
			if existing.Section() == want {
				w.SectionID = existing.SectionID
				break
			}
		}
		if err := txSchedules.UpsertWindow(ctx, sched.ID, &w); err != nil {
			return err
		}
		sched, err = txSchedules.Get(ctx, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *scheduleService) ClearWindow(ctx context.Context, scope contract.Scope, sectionID string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "clear-window", startedAt, err, map[string]any{
			"class":   scope.ClassSection,
			"unit":    scope.UnitNumber,
			"section": sectionID,
		}, nil)
	}()

	if err = validateScope(scope); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		class, err := unitRepos{classes: repository.NewSQLiteClassRepo(tx)}.loadClass(ctx, scope.ClassSection)
		if err != nil {
			return err
		}
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		sched, err := txSchedules.Get(ctx, scheduleKey(scope, class))
		if err != nil {
			return err
		}
		want := domain.NormalizeSection(sectionID)
		for _, w := range sched.Windows {
			if w.Section() == want {
				return txSchedules.DeleteWindow(ctx, sched.ID, w.SectionID)
			}
		}
		return fmt.Errorf("section %s in unit %d: %w", sectionID, scope.UnitNumber, repository.ErrNotFound)
	})
}

func validateWindow(w domain.ScheduleWindow) error {
	if w.SectionID == "" {
		return &contract.PacingError{Code: contract.PacingErrInvalidDate, Message: "section is required"}
	}
	if w.StartDate.IsZero() != w.EndDate.IsZero() {
		return &contract.PacingError{Code: contract.PacingErrInvalidDate, Message: "start and end must be given together"}
	}
	if !w.StartDate.IsZero() && w.EndDate.Before(w.StartDate) {
		return &contract.PacingError{
			Code: contract.PacingErrInvalidDate,
			Message: fmt.Sprintf("end %s is before start %s",
				w.EndDate.Format(domain.DateLayout), w.StartDate.Format(domain.DateLayout)),
		}
	}
	return nil
}
