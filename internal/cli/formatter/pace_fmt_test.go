package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/pacing"
	"github.com/stretchr/testify/assert"
)

func pacingResponse() *contract.PacingResponse {
	tp := pacing.TimeProgress{StartDate: date(time.January, 11), EndDate: date(time.January, 20), TotalDays: 10, ElapsedDays: 5, PercentElapsed: 50}
	ada := pacing.StudentStatus{StudentID: "1", StudentName: "Ada L.", Zone: domain.ZoneAhead, Section: domain.SectionC, CurrentLessonID: "3.5", HasCurrentLesson: true}
	alan := pacing.StudentStatus{StudentID: "2", StudentName: "Alan T.", Zone: domain.ZoneOnTrack, Section: domain.SectionB, CurrentLessonID: "3.3", HasCurrentLesson: true}
	return &contract.PacingResponse{
		Scope:    contract.Scope{SchoolYear: "2025-2026", ClassSection: "802", UnitNumber: 3},
		UnitName: "Linear Relationships",
		Today:    date(time.January, 15),
		Result: pacing.Result{
			Expected:     domain.SectionB,
			ExpectedName: "Section B",
			Previous:     domain.SectionA,
			Next:         domain.SectionC,
			TimeProgress: &tp,
			Zones: []pacing.ZoneBucket{
				{Zone: domain.ZoneFarBehind},
				{Zone: domain.ZoneBehind, Section: domain.SectionA},
				{Zone: domain.ZoneOnTrack, Section: domain.SectionB, Students: []pacing.StudentStatus{alan}},
				{Zone: domain.ZoneAhead, Section: domain.SectionC, Students: []pacing.StudentStatus{ada}},
				{Zone: domain.ZoneFarAhead},
			},
			Sections: []pacing.SectionSummary{
				{Section: domain.SectionA, Name: "Section A", StartDate: date(time.January, 1), EndDate: date(time.January, 10), PlannedDays: 10, LessonCount: 2, Zone: domain.ZoneBehind, HasZone: true},
				{Section: domain.SectionB, Name: "Section B", StartDate: date(time.January, 11), EndDate: date(time.January, 20), PlannedDays: 10, LessonCount: 2, StudentCount: 1, IsExpected: true, Zone: domain.ZoneOnTrack, HasZone: true},
			},
		},
		Layout: []pacing.ZoneWidth{
			{Zone: domain.ZoneBehind, WidthPct: 25},
			{Zone: domain.ZoneOnTrack, WidthPct: 50},
			{Zone: domain.ZoneAhead, WidthPct: 25},
		},
		Warnings: []string{"activity zz has no catalog lesson"},
	}
}

func TestFormatPacing_ShowsZonesSectionsAndWarnings(t *testing.T) {
	out := stripANSI(FormatPacing(pacingResponse()))

	assert.Contains(t, out, "PACING · 802 UNIT 3 (2025-2026)")
	assert.Contains(t, out, "Linear Relationships")
	assert.Contains(t, out, "Expected: Section B")
	assert.Contains(t, out, "day 5 of 10")
	assert.Contains(t, out, "● AHEAD")
	assert.Contains(t, out, "Ada L. Lesson 5")
	assert.Contains(t, out, "◀ expected")
	assert.Contains(t, out, "On Track 50%")
	assert.Contains(t, out, "WARNING: activity zz has no catalog lesson")
	assert.NotContains(t, out, "FAR BEHIND", "empty zones without an anchor are hidden")
}

func TestFormatPacing_NoScheduleData(t *testing.T) {
	resp := &contract.PacingResponse{
		Scope:    contract.Scope{SchoolYear: "2025-2026", ClassSection: "802", UnitNumber: 7},
		Today:    date(time.March, 2),
		Result:   pacing.Result{NoScheduleData: true},
		Warnings: []string{"no schedule for unit 7 in 2025-2026"},
	}
	out := stripANSI(FormatPacing(resp))
	assert.Contains(t, out, "No schedule data covers this date.")
	assert.Contains(t, out, "paceboard schedule set")
	assert.Contains(t, out, "no schedule for unit 7")
	assert.NotContains(t, out, "ZONE")
}

func TestRenderZoneStrip_FillsWidth(t *testing.T) {
	out := stripANSI(RenderZoneStrip(pacingResponse().Layout, 40))
	lines := strings.Split(out, "\n")
	assert.Equal(t, 40, strings.Count(lines[0], filledBlock))
	assert.Contains(t, lines[1], "Behind 25%")
	assert.Empty(t, RenderZoneStrip(nil, 40))
}

func TestZoneCells_LargestRemainderKeepsSmallZones(t *testing.T) {
	cells := zoneCells([]pacing.ZoneWidth{
		{WidthPct: 1},
		{WidthPct: 33.5},
		{WidthPct: 65.5},
	}, 10)
	assert.Equal(t, []int{1, 3, 6}, cells)

	sum := 0
	for _, c := range zoneCells([]pacing.ZoneWidth{{WidthPct: 33.3}, {WidthPct: 33.3}, {WidthPct: 33.4}}, 10) {
		sum += c
	}
	assert.Equal(t, 10, sum)
}

func TestFormatZoneStudents(t *testing.T) {
	resp := pacingResponse()
	out := stripANSI(FormatZoneStudents(resp, domain.ZoneAhead))
	assert.Contains(t, out, "AHEAD · 802 UNIT 3")
	assert.Contains(t, out, "Ada L.")
	assert.Contains(t, out, "Section C")
	assert.Contains(t, out, "Lesson 5")

	empty := stripANSI(FormatZoneStudents(resp, domain.ZoneFarBehind))
	assert.Contains(t, empty, "Nobody in this zone.")
}
