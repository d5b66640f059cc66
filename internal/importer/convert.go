package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/google/uuid"
)

// Bundle is a converted class bundle ready for persistence.
type Bundle struct {
	Class       *domain.Class
	Students    []*domain.Student
	Schedules   []*domain.UnitSchedule
	Catalog     []*domain.CatalogLesson
	Assignments []*domain.SectionAssignment
	Completions []*domain.CompletionRecord
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*Bundle, error) {
	now := time.Now().UTC()

	class := &domain.Class{
		ID:        schema.Class.Section,
		School:    schema.Class.School,
		ScopeTag:  schema.Class.ScopeTag,
		CreatedAt: now,
	}
	b := &Bundle{Class: class}

	for _, s := range schema.Students {
		b.Students = append(b.Students, &domain.Student{
			ID:        s.ID,
			ClassID:   class.ID,
			Name:      s.Name,
			CreatedAt: now,
		})
	}

	for _, u := range schema.Units {
		sched := &domain.UnitSchedule{
			ID:           uuid.New().String(),
			SchoolYear:   schema.SchoolYear,
			ScopeTag:     class.ScopeTag,
			School:       class.School,
			ClassSection: class.ID,
			UnitNumber:   u.Number,
			UnitName:     u.Name,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		for _, w := range u.Sections {
			win, err := convertWindow(w)
			if err != nil {
				return nil, fmt.Errorf("unit %d section %s: %w", u.Number, w.ID, err)
			}
			win.UnitScheduleID = sched.ID
			sched.Windows = append(sched.Windows, win)
		}
		b.Schedules = append(b.Schedules, sched)

		for _, l := range u.Lessons {
			lessonType := domain.LessonType(l.LessonType)
			if lessonType == "" {
				lessonType = domain.LessonRegular
			}
			b.Catalog = append(b.Catalog, &domain.CatalogLesson{
				ID:           uuid.New().String(),
				ScopeTag:     class.ScopeTag,
				UnitNumber:   u.Number,
				UnitLessonID: l.UnitLessonID,
				LessonName:   l.LessonName,
				Section:      l.Section,
				LessonType:   lessonType,
				LessonTitle:  l.Title,
			})
			for _, a := range l.Activities {
				kind, err := domain.ParseActivityKind(a.Kind)
				if err != nil {
					return nil, fmt.Errorf("activity %s: %w", a.ID, err)
				}
				b.Assignments = append(b.Assignments, &domain.SectionAssignment{
					ID:           uuid.New().String(),
					ClassID:      class.ID,
					UnitNumber:   u.Number,
					UnitLessonID: l.UnitLessonID,
					LessonName:   l.LessonName,
					Section:      l.Section,
					ActivityID:   a.ID,
					Kind:         kind,
				})
			}
		}
	}

	for _, r := range schema.Completions {
		rec, err := convertCompletion(r, now)
		if err != nil {
			return nil, err
		}
		b.Completions = append(b.Completions, rec)
	}

	return b, nil
}

func convertWindow(w WindowImport) (domain.ScheduleWindow, error) {
	win := domain.ScheduleWindow{
		ID:        uuid.New().String(),
		SectionID: w.ID,
		Name:      w.Name,
	}
	if win.Name == "" {
		win.Name = domain.NormalizeSection(w.ID).DisplayName()
	}
	if w.Start != "" {
		start, err := domain.ParseDate(w.Start)
		if err != nil {
			return win, err
		}
		end, err := domain.ParseDate(w.End)
		if err != nil {
			return win, err
		}
		win.StartDate, win.EndDate = start, end
		win.PlannedDays = domain.DaysBetween(start, end) + 1
	}
	if w.PlannedDays != nil {
		win.PlannedDays = *w.PlannedDays
	}
	return win, nil
}

func convertCompletion(r CompletionImport, syncedAt time.Time) (*domain.CompletionRecord, error) {
	rec := &domain.CompletionRecord{
		ID:            uuid.New().String(),
		StudentID:     r.Student,
		ActivityID:    r.Activity,
		FullyComplete: r.FullyComplete,
		SyncedAt:      syncedAt,
	}
	if r.CompletedAt != "" {
		t, err := parseTimestamp(r.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("completion %s/%s: %w", r.Student, r.Activity, err)
		}
		rec.CompletedAt = &t
	}
	return rec, nil
}
