// Package curriculum joins the scope-and-sequence catalog with a class
// section's assignment configuration to produce the activities the pacing
// engine works on.
package curriculum

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/paceboard/internal/domain"
)

type lessonKey struct {
	unitLessonID string
	lessonName   string
}

// BuildResult is the outcome of BuildActivities. Orphans are assignment rows
// whose lesson is not in the catalog; they are dropped from Activities.
type BuildResult struct {
	Activities []domain.Activity
	Orphans    []domain.SectionAssignment
}

// Warnings renders orphans as human-readable data-quality warnings.
func (r BuildResult) Warnings() []string {
	out := make([]string, 0, len(r.Orphans))
	for _, o := range r.Orphans {
		out = append(out, fmt.Sprintf("activity %s (%s %s) has no catalog lesson", o.ActivityID, o.UnitLessonID, o.LessonName))
	}
	return out
}

// BuildActivities cross-references the catalog (which decides the section
// a lesson belongs to) with the assignment configuration (which decides the
// activity that realizes it). Lessons are matched on unit lesson id plus
// lesson name. The catalog section wins over the configured one; the
// configured section is only used when the catalog entry has none.
func BuildActivities(catalog []domain.CatalogLesson, assignments []domain.SectionAssignment) BuildResult {
	byKey := make(map[lessonKey]domain.CatalogLesson, len(catalog))
	for _, l := range catalog {
		byKey[lessonKey{l.UnitLessonID, l.LessonName}] = l
	}

	var res BuildResult
	for _, a := range assignments {
		lesson, ok := byKey[lessonKey{a.UnitLessonID, a.LessonName}]
		if !ok {
			res.Orphans = append(res.Orphans, a)
			continue
		}
		section := lesson.Section
		if section == "" {
			section = a.Section
		}
		res.Activities = append(res.Activities, domain.Activity{
			ID:           a.ActivityID,
			UnitNumber:   a.UnitNumber,
			Section:      domain.NormalizeSection(section),
			UnitLessonID: a.UnitLessonID,
			LessonName:   a.LessonName,
			Kind:         a.Kind,
		})
	}
	return res
}

// SectionOption is one entry of the unit's section picker.
type SectionOption struct {
	ID    string
	Name  string
	Count int
}

// AllSectionsID is the picker entry that selects the whole unit.
const AllSectionsID = "all"

// SectionOptions lists the sections that have at least one configured
// lesson, ranked sections first in canonical order, then the rest
// alphabetically, followed by an "All" entry.
func SectionOptions(activities []domain.Activity) []SectionOption {
	lessons := make(map[domain.Section]map[string]bool)
	for _, a := range activities {
		s := domain.NormalizeSection(string(a.Section))
		if s == "" {
			continue
		}
		if lessons[s] == nil {
			lessons[s] = make(map[string]bool)
		}
		lessons[s][a.UnitLessonID] = true
	}

	sections := make([]domain.Section, 0, len(lessons))
	for s := range lessons {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool {
		a, b := sections[i], sections[j]
		ia, ib := a.Index(), b.Index()
		switch {
		case ia >= 0 && ib >= 0:
			return ia < ib
		case ia >= 0:
			return true
		case ib >= 0:
			return false
		}
		return a < b
	})

	total := 0
	opts := make([]SectionOption, 0, len(sections)+1)
	for _, s := range sections {
		n := len(lessons[s])
		total += n
		opts = append(opts, SectionOption{ID: string(s), Name: s.DisplayName(), Count: n})
	}
	opts = append(opts, SectionOption{ID: AllSectionsID, Name: "All", Count: total})
	return opts
}

// FilterBySection keeps the activities of one section; AllSectionsID or ""
// keeps everything.
func FilterBySection(activities []domain.Activity, section string) []domain.Activity {
	if section == "" || section == AllSectionsID {
		return activities
	}
	want := domain.NormalizeSection(section)
	var out []domain.Activity
	for _, a := range activities {
		if domain.NormalizeSection(string(a.Section)) == want {
			out = append(out, a)
		}
	}
	return out
}
