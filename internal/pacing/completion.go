package pacing

import "github.com/alexanderramin/paceboard/internal/domain"

type completionKey struct {
	studentID  string
	activityID string
}

// Completions indexes completion records by (student, activity). A missing
// entry means "not complete".
type Completions struct {
	done     map[completionKey]bool
	students map[string]bool // students with at least one fully complete record
}

// IndexCompletions builds a Completions index. If the same pair appears more
// than once, the last record wins.
func IndexCompletions(records []domain.CompletionRecord) Completions {
	c := Completions{
		done:     make(map[completionKey]bool, len(records)),
		students: make(map[string]bool),
	}
	for _, r := range records {
		c.done[completionKey{r.StudentID, r.ActivityID}] = r.FullyComplete
	}
	for k, ok := range c.done {
		if ok {
			c.students[k.studentID] = true
		}
	}
	return c
}

// IsComplete reports whether the student fully completed the activity.
func (c Completions) IsComplete(studentID, activityID string) bool {
	return c.done[completionKey{studentID, activityID}]
}

// HasAnyCompletion reports whether the student completed anything at all.
func (c Completions) HasAnyCompletion(studentID string) bool {
	return c.students[studentID]
}

// ActivitiesInSection returns the activities whose normalized section is s.
func ActivitiesInSection(s domain.Section, activities []domain.Activity) []domain.Activity {
	var out []domain.Activity
	for _, a := range activities {
		if domain.NormalizeSection(string(a.Section)) == s {
			out = append(out, a)
		}
	}
	return out
}

// QualifyingActivities pairs the section's activities and returns the one
// activity per pairing that decides completion.
func QualifyingActivities(s domain.Section, activities []domain.Activity) []domain.Activity {
	pairings := Pair(ActivitiesInSection(s, activities))
	out := make([]domain.Activity, 0, len(pairings))
	for _, p := range pairings {
		out = append(out, p.Qualifying())
	}
	return out
}

// IsSectionComplete reports whether the student has fully completed every
// qualifying activity of the section. A section with nothing assigned is
// complete.
func IsSectionComplete(studentID string, s domain.Section, activities []domain.Activity, records []domain.CompletionRecord) bool {
	return allComplete(studentID, QualifyingActivities(s, activities), IndexCompletions(records))
}

func allComplete(studentID string, qualifying []domain.Activity, c Completions) bool {
	for _, a := range qualifying {
		if !c.IsComplete(studentID, a.ID) {
			return false
		}
	}
	return true
}

func countComplete(studentID string, qualifying []domain.Activity, c Completions) int {
	n := 0
	for _, a := range qualifying {
		if c.IsComplete(studentID, a.ID) {
			n++
		}
	}
	return n
}
