package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/pacing"
	"github.com/alexanderramin/paceboard/internal/repository"
)

type pacingService struct {
	repos    unitRepos
	observer UseCaseObserver
}

func NewPacingService(
	classes repository.ClassRepo,
	students repository.StudentRepo,
	schedules repository.ScheduleRepo,
	catalog repository.CatalogRepo,
	assignments repository.AssignmentRepo,
	completions repository.CompletionRepo,
	observers ...UseCaseObserver,
) PacingService {
	return &pacingService{
		repos: unitRepos{
			classes:     classes,
			students:    students,
			schedules:   schedules,
			catalog:     catalog,
			assignments: assignments,
			completions: completions,
		},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *pacingService) Classify(ctx context.Context, req contract.PacingRequest) (resp *contract.PacingResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"class": req.ClassSection,
		"unit":  req.UnitNumber,
	}
	var warnings []string
	defer func() {
		observe(ctx, s.observer, "classify", startedAt, err, fields, warnings)
	}()

	if req.Now != nil && req.Now.IsZero() {
		return nil, &contract.PacingError{Code: contract.PacingErrInvalidDate, Message: "evaluation date is empty"}
	}

	var data *unitData
	data, err = s.repos.load(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	warnings = data.warnings

	today := resolveToday(req.Now)
	result := pacing.Classify(pacing.Input{
		Students:   data.students,
		Windows:    data.schedule.Windows,
		Activities: data.activities,
		Records:    data.records,
		Today:      today,
	})
	for _, name := range result.UnrankedSections {
		warnings = append(warnings, fmt.Sprintf("section %q is not part of the unit order and was ignored", name))
	}

	minPct := req.MinZonePct
	if minPct < 0 {
		minPct = 0
	}
	var layout []pacing.ZoneWidth
	if !result.NoScheduleData {
		layout = pacing.BuildZoneLayout(pacing.ZoneColumns(result), 0, minPct)
	}

	fields["students"] = len(data.students)
	fields["activities"] = len(data.activities)
	fields["no_schedule"] = result.NoScheduleData
	if !result.NoScheduleData {
		fields["expected"] = string(result.Expected)
	}

	return &contract.PacingResponse{
		Scope:    req.Scope,
		School:   data.class.School,
		UnitName: data.schedule.UnitName,
		Today:    today,
		Result:   result,
		Layout:   layout,
		Warnings: warnings,
	}, nil
}
