package domain

import "fmt"

// PacingZone orders students relative to the section the class is expected
// to be in. The numeric order is meaningful: FarBehind < ... < FarAhead.
type PacingZone int

const (
	ZoneFarBehind PacingZone = iota
	ZoneBehind
	ZoneOnTrack
	ZoneAhead
	ZoneFarAhead
)

// AllZones lists every zone from furthest behind to furthest ahead.
var AllZones = []PacingZone{ZoneFarBehind, ZoneBehind, ZoneOnTrack, ZoneAhead, ZoneFarAhead}

func (z PacingZone) String() string {
	switch z {
	case ZoneFarBehind:
		return "far-behind"
	case ZoneBehind:
		return "behind"
	case ZoneOnTrack:
		return "on-track"
	case ZoneAhead:
		return "ahead"
	case ZoneFarAhead:
		return "far-ahead"
	default:
		return fmt.Sprintf("zone(%d)", int(z))
	}
}

// ParsePacingZone parses the String form of a zone.
func ParsePacingZone(s string) (PacingZone, error) {
	for _, z := range AllZones {
		if z.String() == s {
			return z, nil
		}
	}
	return 0, fmt.Errorf("unknown pacing zone %q", s)
}

type ActivityKind string

const (
	ActivityPractice     ActivityKind = "practice"
	ActivityMasteryCheck ActivityKind = "mastery-check"
	ActivityAssessment   ActivityKind = "assessment"
)

// ParseActivityKind accepts the canonical kinds plus the exercise platform's
// "sidekick" spelling for practice work. Empty input defaults to a mastery
// check, which is what the assignment configuration assumes.
func ParseActivityKind(s string) (ActivityKind, error) {
	switch s {
	case "", string(ActivityMasteryCheck):
		return ActivityMasteryCheck, nil
	case string(ActivityPractice), "sidekick":
		return ActivityPractice, nil
	case string(ActivityAssessment):
		return ActivityAssessment, nil
	}
	return "", fmt.Errorf("unknown activity kind %q", s)
}

type LessonType string

const (
	LessonRegular    LessonType = "lesson"
	LessonRampUp     LessonType = "rampUp"
	LessonAssessment LessonType = "assessment"
)

// ValidLessonTypes is the accepted set of catalog lesson types.
var ValidLessonTypes = map[string]bool{
	"lesson": true, "rampUp": true, "assessment": true,
}
