package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/repository"
	"github.com/alexanderramin/paceboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_GridForWholeUnit(t *testing.T) {
	e := newTestEnv(t)
	u := seedABC(t, e)
	complete(t, e, u.ada.ID, "a1p", "a1c", "a2p")

	resp, err := e.progress().StudentProgress(context.Background(),
		contract.NewProgressRequest(testutil.TestSchoolYear, "802", 3))
	require.NoError(t, err)

	require.Len(t, resp.Students, 3)
	ada := resp.Students[0]
	assert.Equal(t, "Ada L.", ada.StudentName)
	assert.Equal(t, 6, ada.Total)
	assert.Equal(t, 1, ada.Completed, "a practice without its check does not finish the lesson")

	require.Len(t, ada.Lessons, 6)
	first := ada.Lessons[0]
	assert.Equal(t, "3.1", first.UnitLessonID)
	assert.Equal(t, "Lesson 1", first.Label)
	assert.Equal(t, domain.SectionA, first.Section)
	assert.True(t, first.Primary.Complete)
	require.NotNil(t, first.Check)
	assert.True(t, first.Check.Complete)

	second := ada.Lessons[1]
	assert.True(t, second.Primary.Complete)
	assert.False(t, second.Done())

	ids := make([]string, 0, len(resp.Sections))
	for _, o := range resp.Sections {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"A", "B", "C", "all"}, ids)
	assert.Equal(t, "student-progress", e.observer.last().Name)
}

func TestProgress_FiltersBySectionAndStudent(t *testing.T) {
	e := newTestEnv(t)
	u := seedABC(t, e)
	complete(t, e, u.grace.ID, "b3c")

	req := contract.NewProgressRequest(testutil.TestSchoolYear, "802", 3)
	req.Section = "B"
	req.StudentID = u.grace.ID
	resp, err := e.progress().StudentProgress(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Students, 1)
	grace := resp.Students[0]
	assert.Equal(t, u.grace.ID, grace.StudentID)
	require.Len(t, grace.Lessons, 2)
	assert.Equal(t, "3.3", grace.Lessons[0].UnitLessonID)
	assert.Equal(t, 1, grace.Completed)
	assert.Len(t, resp.Sections, 4, "section options always describe the whole unit")
}

func TestProgress_UnknownStudent(t *testing.T) {
	e := newTestEnv(t)
	seedABC(t, e)

	req := contract.NewProgressRequest(testutil.TestSchoolYear, "802", 3)
	req.StudentID = "nobody"
	_, err := e.progress().StudentProgress(context.Background(), req)
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, e.observer.last().Success)
}

func TestProgress_EmptyUnitHasNoLessons(t *testing.T) {
	e := newTestEnv(t)
	seedABC(t, e)

	resp, err := e.progress().StudentProgress(context.Background(),
		contract.NewProgressRequest(testutil.TestSchoolYear, "802", 9))
	require.NoError(t, err)
	require.Len(t, resp.Students, 3)
	assert.Zero(t, resp.Students[0].Total)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "all", resp.Sections[0].ID)
	assert.Zero(t, resp.Sections[0].Count)
}
