package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
)

// ValidateImportSchema checks the bundle for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateClass(schema)...)

	studentIDs := make(map[string]bool)
	errs = append(errs, validateStudents(schema.Students, studentIDs)...)

	activityIDs := make(map[string]bool)
	unitNumbers := make(map[int]bool)
	for i, u := range schema.Units {
		errs = append(errs, validateUnit(fmt.Sprintf("units[%d]", i), u, unitNumbers, activityIDs)...)
	}

	errs = append(errs, validateCompletions(schema.Completions, studentIDs, activityIDs)...)

	return errs
}

func validateClass(schema *ImportSchema) []error {
	var errs []error

	if schema.SchoolYear == "" {
		errs = append(errs, fmt.Errorf("school_year is required"))
	}
	c := domain.Class{ID: schema.Class.Section}
	if err := c.ValidateID(); err != nil {
		errs = append(errs, fmt.Errorf("class.section: %w", err))
	}
	return errs
}

func validateStudents(students []StudentImport, ids map[string]bool) []error {
	var errs []error

	for i, s := range students {
		prefix := fmt.Sprintf("students[%d]", i)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[s.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, s.ID))
		} else {
			ids[s.ID] = true
		}
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validateUnit(prefix string, u UnitImport, numbers map[int]bool, activityIDs map[string]bool) []error {
	var errs []error

	if u.Number <= 0 {
		errs = append(errs, fmt.Errorf("%s.number must be positive", prefix))
	} else if numbers[u.Number] {
		errs = append(errs, fmt.Errorf("%s.number: duplicate unit %d", prefix, u.Number))
	} else {
		numbers[u.Number] = true
	}

	sections := make(map[domain.Section]bool)
	for i, w := range u.Sections {
		errs = append(errs, validateWindow(fmt.Sprintf("%s.sections[%d]", prefix, i), w, sections)...)
	}

	for i, l := range u.Lessons {
		lp := fmt.Sprintf("%s.lessons[%d]", prefix, i)
		if l.UnitLessonID == "" {
			errs = append(errs, fmt.Errorf("%s.unit_lesson_id is required", lp))
		}
		if l.LessonName == "" {
			errs = append(errs, fmt.Errorf("%s.lesson_name is required", lp))
		}
		if l.LessonType != "" && !domain.ValidLessonTypes[l.LessonType] {
			errs = append(errs, fmt.Errorf("%s.lesson_type: invalid value %q", lp, l.LessonType))
		}
		for j, a := range l.Activities {
			ap := fmt.Sprintf("%s.activities[%d]", lp, j)
			if a.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", ap))
			} else if activityIDs[a.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate activity %q", ap, a.ID))
			} else {
				activityIDs[a.ID] = true
			}
			if _, err := domain.ParseActivityKind(a.Kind); err != nil {
				errs = append(errs, fmt.Errorf("%s.kind: %w", ap, err))
			}
		}
	}
	return errs
}

func validateWindow(prefix string, w WindowImport, seen map[domain.Section]bool) []error {
	var errs []error

	if w.ID == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	} else {
		s := domain.NormalizeSection(w.ID)
		if seen[s] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate section %q", prefix, w.ID))
		}
		seen[s] = true
	}

	start, startErr := validateOptionalDate(prefix+".start", w.Start)
	end, endErr := validateOptionalDate(prefix+".end", w.End)
	errs = append(errs, startErr...)
	errs = append(errs, endErr...)
	if (w.Start == "") != (w.End == "") {
		errs = append(errs, fmt.Errorf("%s: start and end must be given together", prefix))
	}
	if start != nil && end != nil && end.Before(*start) {
		errs = append(errs, fmt.Errorf("%s: end %q is before start %q", prefix, w.End, w.Start))
	}
	if w.PlannedDays != nil && *w.PlannedDays < 0 {
		errs = append(errs, fmt.Errorf("%s.planned_days must not be negative", prefix))
	}
	return errs
}

func validateCompletions(recs []CompletionImport, studentIDs, activityIDs map[string]bool) []error {
	var errs []error

	for i, r := range recs {
		prefix := fmt.Sprintf("completions[%d]", i)
		if r.Student == "" {
			errs = append(errs, fmt.Errorf("%s.student is required", prefix))
		} else if !studentIDs[r.Student] {
			errs = append(errs, fmt.Errorf("%s.student: id %q not found in students", prefix, r.Student))
		}
		// Records for unknown activities are kept; the engine ignores them.
		if r.Activity == "" {
			errs = append(errs, fmt.Errorf("%s.activity is required", prefix))
		}
		if r.CompletedAt != "" {
			if _, err := parseTimestamp(r.CompletedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.completed_at: %w", prefix, err))
			}
		}
	}
	return errs
}

func validateOptionalDate(field, s string) (*time.Time, []error) {
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return nil, []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)}
	}
	return &t, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return domain.ParseDate(s)
}
