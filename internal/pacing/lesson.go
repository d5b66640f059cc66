package pacing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/paceboard/internal/domain"
)

// lessonPart returns the part of a unit lesson id after the unit prefix:
// "3.15" -> "15", "3.RU2" -> "RU2". Ids without a dot are returned whole.
func lessonPart(unitLessonID string) string {
	if _, after, ok := strings.Cut(unitLessonID, "."); ok && after != "" {
		return after
	}
	return unitLessonID
}

// ParseLessonNumber extracts the lesson number from a unit lesson id and
// reports whether it is a ramp-up ("RU") lesson. Unparseable ids yield 0.
func ParseLessonNumber(unitLessonID string) (int, bool) {
	part := lessonPart(unitLessonID)
	rampUp := strings.HasPrefix(strings.ToUpper(part), "RU")
	if rampUp {
		part = part[2:]
	}
	return leadingInt(part), rampUp
}

// LessonLabel renders a lesson for display, e.g. "Lesson 15" or "RU 2".
func LessonLabel(unitLessonID string) string {
	n, rampUp := ParseLessonNumber(unitLessonID)
	if rampUp {
		return fmt.Sprintf("RU %d", n)
	}
	return fmt.Sprintf("Lesson %d", n)
}

func leadingInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// sortByLessonNumber orders activities by lesson number, keeping input
// order for ties.
func sortByLessonNumber(activities []domain.Activity) []domain.Activity {
	out := make([]domain.Activity, len(activities))
	copy(out, activities)
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := ParseLessonNumber(out[i].UnitLessonID)
		b, _ := ParseLessonNumber(out[j].UnitLessonID)
		return a < b
	})
	return out
}
