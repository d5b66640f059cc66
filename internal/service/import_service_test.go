package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const class802Fixture = "../importer/testdata/class-802.yaml"

func TestImport_ThenClassify(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	res, err := NewImportService(e.uow, e.observer).Import(ctx, class802Fixture)
	require.NoError(t, err)
	assert.Equal(t, "802", res.ClassID)
	assert.Equal(t, 3, res.StudentCount)
	assert.Equal(t, 1, res.UnitCount)
	assert.Equal(t, 6, res.LessonCount)
	assert.Equal(t, 7, res.ActivityCount)
	assert.Equal(t, 4, res.CompletionCount)
	assert.Equal(t, "import-class", e.observer.last().Name)

	req := contract.NewPacingRequest(testutil.TestSchoolYear, "802", 3)
	now := jan(5)
	req.Now = &now
	resp, err := e.pacing().Classify(ctx, req)
	require.NoError(t, err)

	r := resp.Result
	assert.Equal(t, domain.SectionA, r.Expected)
	assert.Equal(t, domain.SectionRampUps, r.Previous)
	assert.Equal(t, domain.ZoneAhead, r.Students["s-ada"].Zone)
	assert.Equal(t, domain.ZoneBehind, r.Students["s-alan"].Zone, "unfinished ramp up")
	assert.Equal(t, domain.ZoneBehind, r.Students["s-grace"].Zone)
	assert.Equal(t, 10, r.TimeProgress.TotalDays, "window length comes from dates, not planned days")
	require.NotEmpty(t, r.Sections)
	assert.Equal(t, 7, r.Sections[1].PlannedDays)
}

func TestImport_IsIdempotent(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(e.uow)

	_, err := svc.Import(ctx, class802Fixture)
	require.NoError(t, err)
	_, err = svc.Import(ctx, class802Fixture)
	require.NoError(t, err)

	students, err := e.students.ListByClass(ctx, "802")
	require.NoError(t, err)
	assert.Len(t, students, 3)
	records, err := e.completions.ListByClass(ctx, "802")
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestImport_ValidationFailureWritesNothing(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`school_year: 2025-2026
class:
  section: "802"
students:
  - id: s1
    name: One
units:
  - number: 0
completions:
  - student: ghost
    activity: "1"
`), 0o644))

	_, err := NewImportService(e.uow, e.observer).Import(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed")
	assert.False(t, e.observer.last().Success)

	classes, err := e.classes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestImport_MissingFile(t *testing.T) {
	e := newTestEnv(t)
	_, err := NewImportService(e.uow).Import(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}

func TestClassService_ListAndRoster(t *testing.T) {
	e := newTestEnv(t)
	seedABC(t, e)
	svc := NewClassService(e.classes, e.students)
	ctx := context.Background()

	classes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "802", classes[0].ID)

	roster, err := svc.Roster(ctx, "802")
	require.NoError(t, err)
	require.Len(t, roster, 3)
	assert.Equal(t, "Ada Lovelace", roster[0].Name)

	_, err = svc.Roster(ctx, "901")
	var pe *contract.PacingError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, contract.PacingErrUnknownClass, pe.Code)
}
