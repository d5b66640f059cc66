package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(i int) *int { return &i }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		SchoolYear: "2025-2026",
		Class:      ClassImport{Section: "802", School: "IS313", ScopeTag: "grade-8"},
		Students:   []StudentImport{{ID: "s1", Name: "Ada Lovelace"}},
		Units: []UnitImport{{
			Number:   3,
			Sections: []WindowImport{{ID: "A", Start: "2026-01-01", End: "2026-01-10"}},
			Lessons: []LessonImport{{
				UnitLessonID: "3.1", LessonName: "Lesson 1", Section: "A",
				Activities: []ActivityImport{{ID: "301", Kind: "practice"}, {ID: "302"}},
			}},
		}},
		Completions: []CompletionImport{{Student: "s1", Activity: "301", FullyComplete: true}},
	}
}

func TestLoadImportSchema_YAML(t *testing.T) {
	schema, err := LoadImportSchema("testdata/class-802.yaml")
	require.NoError(t, err)

	assert.Equal(t, "2025-2026", schema.SchoolYear)
	assert.Equal(t, "802", schema.Class.Section)
	require.Len(t, schema.Units, 1)
	u := schema.Units[0]
	assert.Equal(t, 3, u.Number)
	require.Len(t, u.Sections, 5)
	assert.Equal(t, "Ramp Up", u.Sections[0].ID)
	require.NotNil(t, u.Sections[1].PlannedDays)
	assert.Equal(t, 7, *u.Sections[1].PlannedDays)
	assert.Equal(t, "3.10", u.Lessons[3].UnitLessonID, "unquoted lesson ids keep their text")
	assert.Equal(t, "2026-01-05", schema.Completions[2].CompletedAt)

	assert.Empty(t, ValidateImportSchema(schema))
}

func TestLoadImportSchema_JSON(t *testing.T) {
	schema, err := LoadImportSchema("testdata/class-803.json")
	require.NoError(t, err)
	assert.Equal(t, "803", schema.Class.Section)
	assert.Equal(t, "4.1", schema.Units[0].Lessons[0].UnitLessonID)
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestLoadImportSchema_MissingFile(t *testing.T) {
	_, err := LoadImportSchema("testdata/nope.yaml")
	require.Error(t, err)
}

func TestParseImportSchema_Malformed(t *testing.T) {
	_, err := ParseImportSchema([]byte("class: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *ImportSchema)
		want   string
	}{
		{"missing school year", func(s *ImportSchema) { s.SchoolYear = "" }, "school_year is required"},
		{"bad class", func(s *ImportSchema) { s.Class.Section = "8 02" }, "class.section"},
		{"duplicate student", func(s *ImportSchema) {
			s.Students = append(s.Students, StudentImport{ID: "s1", Name: "Dup"})
		}, "duplicate id"},
		{"unit number", func(s *ImportSchema) { s.Units[0].Number = 0 }, "number must be positive"},
		{"duplicate section after normalizing", func(s *ImportSchema) {
			s.Units[0].Sections = []WindowImport{{ID: "Ramp Up"}, {ID: "Ramp Ups"}}
		}, "duplicate section"},
		{"half dated window", func(s *ImportSchema) { s.Units[0].Sections[0].End = "" }, "start and end must be given together"},
		{"end before start", func(s *ImportSchema) { s.Units[0].Sections[0].End = "2025-12-01" }, "is before start"},
		{"bad date", func(s *ImportSchema) { s.Units[0].Sections[0].Start = "01/01/2026" }, "invalid date format"},
		{"negative planned days", func(s *ImportSchema) { s.Units[0].Sections[0].PlannedDays = ptrInt(-1) }, "planned_days"},
		{"lesson type", func(s *ImportSchema) { s.Units[0].Lessons[0].LessonType = "quiz" }, "lesson_type"},
		{"activity kind", func(s *ImportSchema) { s.Units[0].Lessons[0].Activities[0].Kind = "homework" }, "unknown activity kind"},
		{"duplicate activity", func(s *ImportSchema) {
			s.Units[0].Lessons[0].Activities[1].ID = "301"
		}, "duplicate activity"},
		{"unknown student in completion", func(s *ImportSchema) { s.Completions[0].Student = "ghost" }, "not found in students"},
		{"bad completed_at", func(s *ImportSchema) { s.Completions[0].CompletedAt = "yesterday" }, "completed_at"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validMinimalSchema()
			tc.mutate(s)
			errs := ValidateImportSchema(s)
			require.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if strings.Contains(e.Error(), tc.want) {
					found = true
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tc.want, errs)
		})
	}
}

func TestValidateImportSchema_UnknownActivityInCompletionAllowed(t *testing.T) {
	s := validMinimalSchema()
	s.Completions[0].Activity = "999"
	assert.Empty(t, ValidateImportSchema(s))
}

func TestConvert_Bundle(t *testing.T) {
	schema, err := LoadImportSchema("testdata/class-802.yaml")
	require.NoError(t, err)

	b, err := Convert(schema)
	require.NoError(t, err)

	assert.Equal(t, "802", b.Class.ID)
	assert.Equal(t, "grade-8", b.Class.ScopeTag)
	require.Len(t, b.Students, 3)
	assert.Equal(t, "802", b.Students[0].ClassID)

	require.Len(t, b.Schedules, 1)
	sched := b.Schedules[0]
	assert.Equal(t, "2025-2026", sched.SchoolYear)
	assert.Equal(t, "Linear Relationships", sched.UnitName)
	require.Len(t, sched.Windows, 5)
	assert.Equal(t, domain.SectionRampUps, sched.Windows[0].Section())
	assert.Equal(t, "Ramp Ups", sched.Windows[0].Name)
	assert.Equal(t, 3, sched.Windows[0].PlannedDays)
	assert.Equal(t, 7, sched.Windows[1].PlannedDays, "explicit planned days win")
	assert.Equal(t, sched.ID, sched.Windows[1].UnitScheduleID)
	assert.True(t, sched.Windows[4].StartDate.IsZero(), "undated unit test window")

	require.Len(t, b.Catalog, 6)
	assert.Equal(t, domain.LessonRampUp, b.Catalog[0].LessonType)
	assert.Equal(t, domain.LessonRegular, b.Catalog[1].LessonType)

	require.Len(t, b.Assignments, 7)
	assert.Equal(t, domain.ActivityPractice, b.Assignments[1].Kind, "sidekick maps to practice")
	assert.Equal(t, domain.ActivityMasteryCheck, b.Assignments[3].Kind, "missing kind defaults to mastery check")

	require.Len(t, b.Completions, 4)
	require.NotNil(t, b.Completions[0].CompletedAt)
	assert.Equal(t, time.Date(2026, time.January, 3, 14, 5, 0, 0, time.UTC), *b.Completions[0].CompletedAt)
	assert.Nil(t, b.Completions[1].CompletedAt)
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), *b.Completions[2].CompletedAt)
	assert.False(t, b.Completions[3].FullyComplete)
}
