package pacing

import (
	"sort"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
)

// Input is everything one classification pass needs. The engine never reads
// the clock; Today is a calendar date supplied by the caller.
type Input struct {
	Students   []domain.Student
	Windows    []domain.ScheduleWindow
	Activities []domain.Activity
	Records    []domain.CompletionRecord
	Today      time.Time
}

// StudentStatus is a student's derived pacing position.
type StudentStatus struct {
	StudentID   string
	StudentName string
	Zone        domain.PacingZone
	// Section is where the student is actually working, which may differ
	// from the expected section.
	Section             domain.Section
	CompletedInSection  int
	TotalInSection      int
	CurrentLessonID     string
	CurrentLessonNumber int
	HasCurrentLesson    bool
}

// ZoneBucket groups the students of one zone with the section that anchors
// the zone (twoBefore, previous, expected, next, twoAfter).
type ZoneBucket struct {
	Zone        domain.PacingZone
	Section     domain.Section
	LessonCount int
	Students    []StudentStatus
}

type LessonSummary struct {
	UnitLessonID string
	Number       int
	Label        string
	StudentCount int
	StudentNames []string
}

// SectionSummary is one scheduled section of the unit with the students
// currently working in it.
type SectionSummary struct {
	Section      domain.Section
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	PlannedDays  int
	LessonCount  int
	StudentCount int
	IsExpected   bool
	Zone         domain.PacingZone
	HasZone      bool
	Lessons      []LessonSummary
}

// Result is the outcome of Classify. When NoScheduleData is set nothing
// else is populated and callers must show an empty-schedule state.
type Result struct {
	NoScheduleData bool

	Expected     domain.Section
	ExpectedName string
	Previous     domain.Section
	Next         domain.Section
	TwoBefore    domain.Section
	TwoAfter     domain.Section
	TimeProgress *TimeProgress

	Students  map[string]StudentStatus
	Zones     []ZoneBucket
	Sections  []SectionSummary
	Completed []string

	// UnrankedSections lists section names from the schedule or catalog that
	// are not part of the canonical order.
	UnrankedSections []string
}

// Bucket returns the bucket for zone z.
func (r Result) Bucket(z domain.PacingZone) ZoneBucket {
	for _, b := range r.Zones {
		if b.Zone == z {
			return b
		}
	}
	return ZoneBucket{Zone: z}
}

// classifier carries the per-pass lookups. It is built fresh for every call.
type classifier struct {
	seq         domain.Sequence
	expected    domain.Section
	previous    domain.Section
	next        domain.Section
	twoBefore   domain.Section
	twoAfter    domain.Section
	qualifying  map[domain.Section][]domain.Activity
	completions Completions
}

// Classify places every student into one of five pacing zones relative to
// the section the class is expected to be in on in.Today.
func Classify(in Input) Result {
	unranked := unrankedSections(in.Windows, in.Activities)

	expWindow, ok := ExpectedWindow(in.Windows, in.Today)
	if !ok {
		return Result{NoScheduleData: true, UnrankedSections: unranked}
	}

	c := newClassifier(in, expWindow.Section())
	tp := SectionTimeProgress(expWindow, in.Today)

	res := Result{
		Expected:         c.expected,
		ExpectedName:     expWindow.Name,
		Previous:         c.previous,
		Next:             c.next,
		TwoBefore:        c.twoBefore,
		TwoAfter:         c.twoAfter,
		TimeProgress:     &tp,
		Students:         make(map[string]StudentStatus, len(in.Students)),
		UnrankedSections: unranked,
	}

	buckets := make(map[domain.PacingZone][]StudentStatus, len(domain.AllZones))
	ordered := make([]StudentStatus, 0, len(in.Students))
	for _, st := range in.Students {
		status := c.classifyStudent(st)
		res.Students[st.ID] = status
		buckets[status.Zone] = append(buckets[status.Zone], status)
		ordered = append(ordered, status)
	}

	onTrack := buckets[domain.ZoneOnTrack]
	sort.SliceStable(onTrack, func(i, j int) bool {
		return onTrack[i].CurrentLessonNumber < onTrack[j].CurrentLessonNumber
	})

	anchors := map[domain.PacingZone]domain.Section{
		domain.ZoneFarBehind: c.twoBefore,
		domain.ZoneBehind:    c.previous,
		domain.ZoneOnTrack:   c.expected,
		domain.ZoneAhead:     c.next,
		domain.ZoneFarAhead:  c.twoAfter,
	}
	for _, z := range domain.AllZones {
		anchor := anchors[z]
		res.Zones = append(res.Zones, ZoneBucket{
			Zone:        z,
			Section:     anchor,
			LessonCount: len(c.qualifying[anchor]),
			Students:    buckets[z],
		})
	}

	res.Sections, res.Completed = c.summarizeSections(in.Windows, ordered)
	return res
}

func newClassifier(in Input, expected domain.Section) *classifier {
	var names []domain.Section
	for _, w := range in.Windows {
		names = append(names, w.Section())
	}
	c := &classifier{
		seq:         domain.NewSequence(names...),
		expected:    expected,
		qualifying:  make(map[domain.Section][]domain.Activity),
		completions: IndexCompletions(in.Records),
	}
	c.previous, _ = c.seq.Previous(expected)
	c.next, _ = c.seq.Next(expected)
	if c.previous != "" {
		c.twoBefore, _ = c.seq.Previous(c.previous)
	}
	if c.next != "" {
		c.twoAfter, _ = c.seq.Next(c.next)
	}

	bySection := make(map[domain.Section][]domain.Activity)
	for _, a := range in.Activities {
		s := domain.NormalizeSection(string(a.Section))
		bySection[s] = append(bySection[s], a)
	}
	for s, acts := range bySection {
		pairings := Pair(acts)
		q := make([]domain.Activity, 0, len(pairings))
		for _, p := range pairings {
			q = append(q, p.Qualifying())
		}
		c.qualifying[s] = q
	}
	return c
}

func (c *classifier) complete(studentID string, s domain.Section) bool {
	return allComplete(studentID, c.qualifying[s], c.completions)
}

func (c *classifier) hasContent(s domain.Section) bool {
	return s != "" && len(c.qualifying[s]) > 0
}

func (c *classifier) classifyStudent(st domain.Student) StudentStatus {
	id := st.ID

	sectionsAhead := 0
	// Ahead needs evidence of finished work; vacuously complete sections
	// alone must not push a student with no completions forward.
	if c.completions.HasAnyCompletion(id) && c.complete(id, c.expected) {
		sectionsAhead = 1
		if c.next != "" && c.complete(id, c.next) {
			sectionsAhead = 2
		}
	}

	sectionsBehind := 0
	if c.previous != "" && !c.complete(id, c.previous) {
		sectionsBehind = 1
		if c.twoBefore != "" && c.twoBefore.Ranked() && !c.complete(id, c.twoBefore) {
			sectionsBehind = 2
		}
	}

	var zone domain.PacingZone
	switch {
	case sectionsAhead >= 2:
		zone = domain.ZoneFarAhead
	case sectionsAhead >= 1:
		zone = domain.ZoneAhead
	case sectionsBehind >= 2:
		zone = domain.ZoneFarBehind
	case sectionsBehind >= 1:
		zone = domain.ZoneBehind
	default:
		zone = domain.ZoneOnTrack
	}

	section := c.workingSection(id, zone)
	qualifying := sortByLessonNumber(c.qualifying[section])

	status := StudentStatus{
		StudentID:          id,
		StudentName:        st.DisplayName(),
		Zone:               zone,
		Section:            section,
		CompletedInSection: countComplete(id, qualifying, c.completions),
		TotalInSection:     len(qualifying),
	}
	for _, a := range qualifying {
		if c.completions.IsComplete(id, a.ID) {
			continue
		}
		status.CurrentLessonID = a.UnitLessonID
		status.CurrentLessonNumber, _ = ParseLessonNumber(a.UnitLessonID)
		status.HasCurrentLesson = true
		break
	}
	return status
}

// workingSection picks the section a student's progress is counted against,
// falling back toward the expected section when the preferred one has no
// content.
func (c *classifier) workingSection(studentID string, zone domain.PacingZone) domain.Section {
	var prefs []domain.Section
	switch zone {
	case domain.ZoneFarAhead:
		if s, ok := c.furthestReached(studentID); ok {
			return s
		}
		prefs = []domain.Section{c.twoAfter, c.next}
	case domain.ZoneAhead:
		prefs = []domain.Section{c.next}
	case domain.ZoneFarBehind:
		prefs = []domain.Section{c.twoBefore, c.previous}
	case domain.ZoneBehind:
		prefs = []domain.Section{c.previous}
	}
	for _, s := range prefs {
		if c.hasContent(s) {
			return s
		}
	}
	return c.expected
}

// furthestReached scans the sections beyond next, last first, for the
// furthest one in which the student has completed anything.
func (c *classifier) furthestReached(studentID string) (domain.Section, bool) {
	sections := c.seq.Sections()
	nextIdx := c.seq.IndexOf(c.next)
	if nextIdx < 0 {
		return "", false
	}
	for i := len(sections) - 1; i > nextIdx; i-- {
		s := sections[i]
		if !c.hasContent(s) {
			continue
		}
		if countComplete(studentID, c.qualifying[s], c.completions) > 0 {
			return s, true
		}
	}
	return "", false
}

// zoneOf labels a scheduled section relative to the expected one. Sections
// beyond the immediate neighbours are bucketed by canonical index.
func (c *classifier) zoneOf(s domain.Section) (domain.PacingZone, bool) {
	switch {
	case s == c.expected:
		return domain.ZoneOnTrack, true
	case c.previous != "" && s == c.previous:
		return domain.ZoneBehind, true
	case c.next != "" && s == c.next:
		return domain.ZoneAhead, true
	}
	idx, expIdx := s.Index(), c.expected.Index()
	if idx < 0 || expIdx < 0 {
		return 0, false
	}
	switch {
	case idx < expIdx-1:
		return domain.ZoneFarBehind, true
	case idx > expIdx+1:
		return domain.ZoneFarAhead, true
	}
	return 0, false
}

func (c *classifier) summarizeSections(windows []domain.ScheduleWindow, students []StudentStatus) ([]SectionSummary, []string) {
	type lessonKey struct {
		section domain.Section
		number  int
	}
	studentsBySection := make(map[domain.Section]int)
	countByLesson := make(map[lessonKey]int)
	namesByLesson := make(map[lessonKey][]string)
	var completed []string

	for _, st := range students {
		if st.Section == "" {
			continue
		}
		studentsBySection[st.Section]++
		if !st.HasCurrentLesson {
			completed = append(completed, st.StudentName)
			continue
		}
		k := lessonKey{st.Section, st.CurrentLessonNumber}
		countByLesson[k]++
		namesByLesson[k] = append(namesByLesson[k], st.StudentName)
	}

	// Undated sections are still part of the unit; they keep zero dates.
	var summaries []SectionSummary
	for _, w := range rankedWindows(windows) {
		s := w.Section()
		if s == domain.SectionUnitAssessment {
			continue
		}
		var lessons []LessonSummary
		for _, a := range c.qualifying[s] {
			n, _ := ParseLessonNumber(a.UnitLessonID)
			k := lessonKey{s, n}
			lessons = append(lessons, LessonSummary{
				UnitLessonID: a.UnitLessonID,
				Number:       n,
				Label:        LessonLabel(a.UnitLessonID),
				StudentCount: countByLesson[k],
				StudentNames: namesByLesson[k],
			})
		}
		sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Number < lessons[j].Number })

		name := w.Name
		if name == "" {
			name = s.DisplayName()
		}
		zone, hasZone := c.zoneOf(s)
		summaries = append(summaries, SectionSummary{
			Section:      s,
			Name:         name,
			StartDate:    dateOrZero(w.StartDate),
			EndDate:      dateOrZero(w.EndDate),
			PlannedDays:  w.PlannedDays,
			LessonCount:  len(lessons),
			StudentCount: studentsBySection[s],
			IsExpected:   s == c.expected,
			Zone:         zone,
			HasZone:      hasZone,
			Lessons:      lessons,
		})
	}
	return summaries, completed
}

func dateOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return domain.DateOf(t)
}

func unrankedSections(windows []domain.ScheduleWindow, activities []domain.Activity) []string {
	seen := make(map[domain.Section]bool)
	var out []string
	add := func(s domain.Section) {
		if s == "" || s.Ranked() || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, string(s))
	}
	for _, w := range windows {
		add(w.Section())
	}
	for _, a := range activities {
		add(domain.NormalizeSection(string(a.Section)))
	}
	sort.Strings(out)
	return out
}
