package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a class bundle. Bundles are
// YAML; JSON files parse too since JSON is valid YAML.
type ImportSchema struct {
	SchoolYear  string             `yaml:"school_year" json:"school_year"`
	Class       ClassImport        `yaml:"class" json:"class"`
	Students    []StudentImport    `yaml:"students" json:"students"`
	Units       []UnitImport       `yaml:"units" json:"units"`
	Completions []CompletionImport `yaml:"completions,omitempty" json:"completions,omitempty"`
}

// ClassImport identifies the class section the bundle describes.
type ClassImport struct {
	Section  string `yaml:"section" json:"section"`
	School   string `yaml:"school" json:"school"`
	ScopeTag string `yaml:"scope_tag" json:"scope_tag"`
}

type StudentImport struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// UnitImport carries one unit's calendar and lesson configuration.
type UnitImport struct {
	Number   int            `yaml:"number" json:"number"`
	Name     string         `yaml:"name" json:"name"`
	Sections []WindowImport `yaml:"sections" json:"sections"`
	Lessons  []LessonImport `yaml:"lessons" json:"lessons"`
}

// WindowImport is one section's date range. Dates are YYYY-MM-DD and may be
// omitted for a section that is not scheduled yet.
type WindowImport struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Start       string `yaml:"start,omitempty" json:"start,omitempty"`
	End         string `yaml:"end,omitempty" json:"end,omitempty"`
	PlannedDays *int   `yaml:"planned_days,omitempty" json:"planned_days,omitempty"`
}

type LessonImport struct {
	UnitLessonID string           `yaml:"unit_lesson_id" json:"unit_lesson_id"`
	LessonName   string           `yaml:"lesson_name" json:"lesson_name"`
	Section      string           `yaml:"section" json:"section"`
	LessonType   string           `yaml:"lesson_type,omitempty" json:"lesson_type,omitempty"`
	Title        string           `yaml:"title,omitempty" json:"title,omitempty"`
	Activities   []ActivityImport `yaml:"activities" json:"activities"`
}

type ActivityImport struct {
	ID   string `yaml:"id" json:"id"`
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// CompletionImport is one synced result. CompletedAt accepts RFC3339 or a
// bare date.
type CompletionImport struct {
	Student       string `yaml:"student" json:"student"`
	Activity      string `yaml:"activity" json:"activity"`
	FullyComplete bool   `yaml:"fully_complete" json:"fully_complete"`
	CompletedAt   string `yaml:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// LoadImportSchema reads and parses a class bundle file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses bundle bytes (YAML or JSON).
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
