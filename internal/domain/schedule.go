package domain

import "time"

// UnitSchedule is one class section's calendar for one curriculum unit.
type UnitSchedule struct {
	ID           string
	SchoolYear   string
	ScopeTag     string
	School       string
	ClassSection string
	UnitNumber   int
	UnitName     string
	Windows      []ScheduleWindow
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ScheduleWindow is the inclusive date range assigned to one section of a
// unit. SectionID keeps the upstream spelling; use Section for logic.
type ScheduleWindow struct {
	ID             string
	UnitScheduleID string
	SectionID      string
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	PlannedDays    int
}

// Section returns the canonical section this window belongs to.
func (w ScheduleWindow) Section() Section {
	return NormalizeSection(w.SectionID)
}

// Contains reports whether day falls inside the window, bounds included.
func (w ScheduleWindow) Contains(day time.Time) bool {
	d := DateOf(day)
	return !d.Before(DateOf(w.StartDate)) && !d.After(DateOf(w.EndDate))
}
