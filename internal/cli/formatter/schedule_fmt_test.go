package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/curriculum"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

var scope802 = contract.Scope{SchoolYear: "2025-2026", ClassSection: "802", UnitNumber: 3}

func TestFormatSchedule_MarksToday(t *testing.T) {
	view := &contract.ScheduleView{
		Schedule: &domain.UnitSchedule{
			UnitName: "Linear Relationships",
			Windows: []domain.ScheduleWindow{
				{SectionID: "A", Name: "Section A", StartDate: date(time.January, 1), EndDate: date(time.January, 10), PlannedDays: 7},
				{SectionID: "Enrichment", Name: "Enrichment"},
			},
		},
		Expected: domain.SectionA,
		HasToday: true,
	}
	out := stripANSI(FormatSchedule(scope802, view))
	assert.Contains(t, out, "SCHEDULE · 802 UNIT 3")
	assert.Contains(t, out, "Jan 1 – Jan 10")
	assert.Contains(t, out, "◀ today")
	assert.Contains(t, out, "Enrichment (unranked)")
	assert.Contains(t, out, "unscheduled")
	assert.NotContains(t, out, "outside every scheduled window")
}

func TestFormatSchedule_Empty(t *testing.T) {
	out := stripANSI(FormatSchedule(scope802, &contract.ScheduleView{Schedule: &domain.UnitSchedule{}}))
	assert.Contains(t, out, "No section windows yet.")
}

func TestFormatSections(t *testing.T) {
	out := stripANSI(FormatSections(scope802, []curriculum.SectionOption{
		{ID: "A", Name: "Section A", Count: 2},
		{ID: "all", Name: "All", Count: 2},
	}))
	assert.Contains(t, out, "Section A")
	assert.Contains(t, out, "all")
}

func TestFormatImportResult(t *testing.T) {
	out := stripANSI(FormatImportResult(&contract.ImportResult{ClassID: "802", StudentCount: 3, CompletionCount: 4}))
	assert.Contains(t, out, "Imported class 802")
	assert.Contains(t, out, "Completion records")
}

func TestFormatRoster(t *testing.T) {
	out := stripANSI(FormatRoster("802", []*domain.Student{{ID: "s-ada", Name: "Ada Lovelace"}}))
	assert.Contains(t, out, "ROSTER · 802 (1)")
	assert.Contains(t, out, "Ada L.")
	assert.Contains(t, FormatClasses(nil), "No classes imported yet")
}
