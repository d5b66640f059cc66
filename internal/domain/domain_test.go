package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePacingZone_RoundTrip(t *testing.T) {
	for _, z := range AllZones {
		parsed, err := ParsePacingZone(z.String())
		require.NoError(t, err)
		assert.Equal(t, z, parsed)
	}
	_, err := ParsePacingZone("sideways")
	assert.Error(t, err)
}

func TestPacingZone_Ordered(t *testing.T) {
	assert.Less(t, int(ZoneFarBehind), int(ZoneBehind))
	assert.Less(t, int(ZoneBehind), int(ZoneOnTrack))
	assert.Less(t, int(ZoneOnTrack), int(ZoneAhead))
	assert.Less(t, int(ZoneAhead), int(ZoneFarAhead))
}

func TestParseActivityKind(t *testing.T) {
	k, err := ParseActivityKind("sidekick")
	require.NoError(t, err)
	assert.Equal(t, ActivityPractice, k)

	k, err = ParseActivityKind("")
	require.NoError(t, err)
	assert.Equal(t, ActivityMasteryCheck, k)

	_, err = ParseActivityKind("homework")
	assert.Error(t, err)
}

func TestScheduleWindow_ContainsIsInclusive(t *testing.T) {
	w := ScheduleWindow{
		SectionID: "Ramp Up",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, SectionRampUps, w.Section())
	assert.True(t, w.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("02/05/2026")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 1, 1, 15, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 11, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, DaysBetween(a, b))
}

func TestStudentDisplayName(t *testing.T) {
	assert.Equal(t, "Maria J.", (&Student{Name: "Maria Lopez Jimenez"}).DisplayName())
	assert.Equal(t, "Cher", (&Student{Name: "Cher"}).DisplayName())
	assert.Equal(t, "s-1", (&Student{ID: "s-1"}).DisplayName())
}

func TestClassValidateID(t *testing.T) {
	assert.NoError(t, (&Class{ID: "802"}).ValidateID())
	assert.Error(t, (&Class{ID: ""}).ValidateID())
	assert.Error(t, (&Class{ID: "8 02"}).ValidateID())
}
