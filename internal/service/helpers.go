package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/curriculum"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/repository"
)

// unitRepos are the repositories every read of a class unit needs.
type unitRepos struct {
	classes     repository.ClassRepo
	students    repository.StudentRepo
	schedules   repository.ScheduleRepo
	catalog     repository.CatalogRepo
	assignments repository.AssignmentRepo
	completions repository.CompletionRepo
}

// unitData is one class section's unit, loaded and joined.
type unitData struct {
	class      *domain.Class
	schedule   *domain.UnitSchedule
	students   []domain.Student
	activities []domain.Activity
	records    []domain.CompletionRecord
	warnings   []string
}

func validateScope(scope contract.Scope) error {
	if scope.UnitNumber <= 0 {
		return &contract.PacingError{
			Code:    contract.PacingErrInvalidUnit,
			Message: fmt.Sprintf("unit number must be positive, got %d", scope.UnitNumber),
		}
	}
	c := domain.Class{ID: scope.ClassSection}
	if err := c.ValidateID(); err != nil {
		return &contract.PacingError{Code: contract.PacingErrUnknownClass, Message: err.Error()}
	}
	return nil
}

func (r unitRepos) loadClass(ctx context.Context, classID string) (*domain.Class, error) {
	class, err := r.classes.GetByID(ctx, classID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &contract.PacingError{
			Code:    contract.PacingErrUnknownClass,
			Message: fmt.Sprintf("class section %s has not been imported", classID),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loading class: %w", err)
	}
	return class, nil
}

func scheduleKey(scope contract.Scope, class *domain.Class) repository.ScheduleKey {
	return repository.ScheduleKey{
		SchoolYear:   scope.SchoolYear,
		ScopeTag:     class.ScopeTag,
		School:       class.School,
		ClassSection: class.ID,
		UnitNumber:   scope.UnitNumber,
	}
}

// load reads everything the engine needs for scope. A missing schedule is
// not an error: the engine reports it as no schedule data.
func (r unitRepos) load(ctx context.Context, scope contract.Scope) (*unitData, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	class, err := r.loadClass(ctx, scope.ClassSection)
	if err != nil {
		return nil, err
	}
	d := &unitData{class: class}

	d.schedule, err = r.schedules.Get(ctx, scheduleKey(scope, class))
	if errors.Is(err, repository.ErrNotFound) {
		d.warnings = append(d.warnings, fmt.Sprintf("no schedule for unit %d in %s", scope.UnitNumber, scope.SchoolYear))
		d.schedule = &domain.UnitSchedule{
			SchoolYear:   scope.SchoolYear,
			ClassSection: class.ID,
			UnitNumber:   scope.UnitNumber,
		}
	} else if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}

	lessons, err := r.catalog.ListByUnit(ctx, class.ScopeTag, scope.UnitNumber)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	configured, err := r.assignments.ListByClassUnit(ctx, class.ID, scope.UnitNumber)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}
	built := curriculum.BuildActivities(lessons, configured)
	d.activities = built.Activities
	d.warnings = append(d.warnings, built.Warnings()...)

	roster, err := r.students.ListByClass(ctx, class.ID)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	for _, s := range roster {
		d.students = append(d.students, *s)
	}

	records, err := r.completions.ListByClass(ctx, class.ID)
	if err != nil {
		return nil, fmt.Errorf("loading completion records: %w", err)
	}
	d.records = unitRecords(records, d.activities)

	return d, nil
}

// unitRecords keeps the records that belong to this unit's activities.
func unitRecords(records []domain.CompletionRecord, activities []domain.Activity) []domain.CompletionRecord {
	ids := make(map[string]bool, len(activities))
	for _, a := range activities {
		ids[a.ID] = true
	}
	var out []domain.CompletionRecord
	for _, r := range records {
		if ids[r.ActivityID] {
			out = append(out, r)
		}
	}
	return out
}

func resolveToday(now *time.Time) time.Time {
	if now != nil {
		return domain.DateOf(*now)
	}
	return domain.DateOf(time.Now().UTC())
}
