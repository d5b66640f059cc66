package app

import (
	"github.com/alexanderramin/paceboard/internal/curriculum"
	"github.com/alexanderramin/paceboard/internal/domain"
)

type ProgressRequest struct {
	Scope
	// Section limits the grid to one section; "" or "all" keeps the unit.
	Section string
	// StudentID limits the grid to one student.
	StudentID string
}

func NewProgressRequest(schoolYear, classSection string, unit int) ProgressRequest {
	return ProgressRequest{
		Scope:   Scope{SchoolYear: schoolYear, ClassSection: classSection, UnitNumber: unit},
		Section: curriculum.AllSectionsID,
	}
}

// ActivityCell is one activity's state for one student.
type ActivityCell struct {
	ActivityID string
	Kind       domain.ActivityKind
	Complete   bool
}

// LessonCell is one column of the progress grid: a practice activity and
// its mastery check, or a standalone check or assessment.
type LessonCell struct {
	UnitLessonID string
	LessonName   string
	Label        string
	Section      domain.Section
	Primary      ActivityCell
	Check        *ActivityCell
}

// Done reports whether the qualifying activity of the cell is complete.
func (c LessonCell) Done() bool {
	if c.Check != nil {
		return c.Check.Complete
	}
	return c.Primary.Complete
}

type StudentProgress struct {
	StudentID   string
	StudentName string
	Lessons     []LessonCell
	Completed   int
	Total       int
}

type ProgressResponse struct {
	Scope    Scope
	Sections []curriculum.SectionOption
	Students []StudentProgress
	Warnings []string
}
