package pacing

import "github.com/alexanderramin/paceboard/internal/domain"

// Pairing is a practice activity and its mastery check, or a standalone
// activity with MasteryCheck nil.
type Pairing struct {
	Primary      domain.Activity
	MasteryCheck *domain.Activity
}

// Qualifying returns the activity whose completion counts toward the
// section: the mastery check when there is one, else the primary.
func (p Pairing) Qualifying() domain.Activity {
	if p.MasteryCheck != nil {
		return *p.MasteryCheck
	}
	return p.Primary
}

// Pair groups activities into practice/mastery-check pairs keyed by shared
// lesson id, then emits unmatched mastery checks and assessments alone.
// Input order does not affect which activities pair up; output keeps
// first-seen order within each pass. Every activity is consumed once.
func Pair(activities []domain.Activity) []Pairing {
	consumed := make([]bool, len(activities))

	checksByLesson := make(map[string][]int)
	for i, a := range activities {
		if a.Kind == domain.ActivityMasteryCheck {
			checksByLesson[a.UnitLessonID] = append(checksByLesson[a.UnitLessonID], i)
		}
	}

	pairings := make([]Pairing, 0, len(activities))

	for i, a := range activities {
		if a.Kind != domain.ActivityPractice || consumed[i] {
			continue
		}
		consumed[i] = true
		p := Pairing{Primary: a}
		for _, j := range checksByLesson[a.UnitLessonID] {
			if consumed[j] {
				continue
			}
			consumed[j] = true
			check := activities[j]
			p.MasteryCheck = &check
			break
		}
		pairings = append(pairings, p)
	}

	for _, kind := range []domain.ActivityKind{domain.ActivityMasteryCheck, domain.ActivityAssessment} {
		for i, a := range activities {
			if a.Kind != kind || consumed[i] {
				continue
			}
			consumed[i] = true
			pairings = append(pairings, Pairing{Primary: a})
		}
	}

	return pairings
}
