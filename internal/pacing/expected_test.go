package pacing

import (
	"testing"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExpectedSection_InsideWindow(t *testing.T) {
	s, ok := ResolveExpectedSection(abcSchedule(), day(time.January, 15))
	require.True(t, ok)
	assert.Equal(t, domain.SectionB, s)
}

func TestResolveExpectedSection_BoundsInclusive(t *testing.T) {
	s, ok := ResolveExpectedSection(abcSchedule(), day(time.January, 10))
	require.True(t, ok)
	assert.Equal(t, domain.SectionA, s)

	s, ok = ResolveExpectedSection(abcSchedule(), day(time.January, 11))
	require.True(t, ok)
	assert.Equal(t, domain.SectionB, s)
}

func TestResolveExpectedSection_ExtrapolatesPastEnd(t *testing.T) {
	s, ok := ResolveExpectedSection(abcSchedule(), day(time.February, 5))
	require.True(t, ok)
	assert.Equal(t, domain.SectionC, s)
}

func TestResolveExpectedSection_BeforeFirstWindow(t *testing.T) {
	_, ok := ResolveExpectedSection(abcSchedule(), time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestResolveExpectedSection_NoWindows(t *testing.T) {
	_, ok := ResolveExpectedSection(nil, day(time.January, 15))
	assert.False(t, ok)
}

func TestResolveExpectedSection_UsesCanonicalOrderNotInputOrder(t *testing.T) {
	windows := abcSchedule()
	windows[0], windows[2] = windows[2], windows[0]

	s, ok := ResolveExpectedSection(windows, day(time.February, 5))
	require.True(t, ok)
	assert.Equal(t, domain.SectionC, s, "last window is the last canonical section")
}

func TestResolveExpectedSection_NormalizesUpstreamNames(t *testing.T) {
	windows := []domain.ScheduleWindow{
		window("Ramp Up", day(time.January, 1), day(time.January, 5)),
		window("Unit Test", day(time.January, 6), day(time.January, 7)),
	}
	s, ok := ResolveExpectedSection(windows, day(time.January, 2))
	require.True(t, ok)
	assert.Equal(t, domain.SectionRampUps, s)

	s, ok = ResolveExpectedSection(windows, day(time.March, 1))
	require.True(t, ok)
	assert.Equal(t, domain.SectionUnitAssessment, s)
}

func TestResolveExpectedSection_IgnoresUndatedAndUnrankedWindows(t *testing.T) {
	windows := []domain.ScheduleWindow{
		{SectionID: "A"},
		window("Bonus", day(time.January, 1), day(time.January, 31)),
	}
	_, ok := ResolveExpectedSection(windows, day(time.January, 15))
	assert.False(t, ok)
}

func TestResolveExpectedSection_GapBetweenWindows(t *testing.T) {
	windows := []domain.ScheduleWindow{
		window("A", day(time.January, 1), day(time.January, 10)),
		window("B", day(time.January, 15), day(time.January, 20)),
	}
	_, ok := ResolveExpectedSection(windows, day(time.January, 12))
	assert.False(t, ok)
}

func TestSectionTimeProgress(t *testing.T) {
	w := window("B", day(time.January, 11), day(time.January, 20))

	tp := SectionTimeProgress(w, day(time.January, 15))
	assert.Equal(t, 10, tp.TotalDays)
	assert.Equal(t, 5, tp.ElapsedDays)
	assert.Equal(t, 50, tp.PercentElapsed)

	tp = SectionTimeProgress(w, day(time.January, 1))
	assert.Equal(t, 1, tp.ElapsedDays, "elapsed never drops below one day")

	tp = SectionTimeProgress(w, day(time.February, 28))
	assert.Equal(t, 100, tp.PercentElapsed)
}
