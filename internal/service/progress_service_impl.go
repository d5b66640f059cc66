package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/curriculum"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/pacing"
	"github.com/alexanderramin/paceboard/internal/repository"
)

type progressService struct {
	repos    unitRepos
	observer UseCaseObserver
}

func NewProgressService(
	classes repository.ClassRepo,
	students repository.StudentRepo,
	schedules repository.ScheduleRepo,
	catalog repository.CatalogRepo,
	assignments repository.AssignmentRepo,
	completions repository.CompletionRepo,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
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

func (s *progressService) StudentProgress(ctx context.Context, req contract.ProgressRequest) (resp *contract.ProgressResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"class":   req.ClassSection,
		"unit":    req.UnitNumber,
		"section": req.Section,
	}
	var warnings []string
	defer func() {
		observe(ctx, s.observer, "student-progress", startedAt, err, fields, warnings)
	}()

	var data *unitData
	data, err = s.repos.load(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	warnings = data.warnings

	pairings := pacing.Pair(curriculum.FilterBySection(data.activities, req.Section))
	done := pacing.IndexCompletions(data.records)

	resp = &contract.ProgressResponse{
		Scope:    req.Scope,
		Sections: curriculum.SectionOptions(data.activities),
		Warnings: warnings,
	}
	for _, st := range data.students {
		if req.StudentID != "" && st.ID != req.StudentID {
			continue
		}
		resp.Students = append(resp.Students, studentRow(st, pairings, done))
	}
	if req.StudentID != "" && len(resp.Students) == 0 {
		err = fmt.Errorf("student %s in class %s: %w", req.StudentID, req.ClassSection, repository.ErrNotFound)
		return nil, err
	}

	fields["pairings"] = len(pairings)
	fields["students"] = len(resp.Students)
	return resp, nil
}

func studentRow(st domain.Student, pairings []pacing.Pairing, done pacing.Completions) contract.StudentProgress {
	row := contract.StudentProgress{
		StudentID:   st.ID,
		StudentName: st.DisplayName(),
		Total:       len(pairings),
	}
	for _, p := range pairings {
		cell := contract.LessonCell{
			UnitLessonID: p.Primary.UnitLessonID,
			LessonName:   p.Primary.LessonName,
			Label:        pacing.LessonLabel(p.Primary.UnitLessonID),
			Section:      domain.NormalizeSection(string(p.Primary.Section)),
			Primary: contract.ActivityCell{
				ActivityID: p.Primary.ID,
				Kind:       p.Primary.Kind,
				Complete:   done.IsComplete(st.ID, p.Primary.ID),
			},
		}
		if p.MasteryCheck != nil {
			cell.Check = &contract.ActivityCell{
				ActivityID: p.MasteryCheck.ID,
				Kind:       p.MasteryCheck.Kind,
				Complete:   done.IsComplete(st.ID, p.MasteryCheck.ID),
			}
		}
		if cell.Done() {
			row.Completed++
		}
		row.Lessons = append(row.Lessons, cell)
	}
	return row
}
