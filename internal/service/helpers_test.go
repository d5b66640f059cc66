package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/paceboard/internal/db"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/alexanderramin/paceboard/internal/repository"
	"github.com/alexanderramin/paceboard/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	classes     *repository.SQLiteClassRepo
	students    *repository.SQLiteStudentRepo
	schedules   *repository.SQLiteScheduleRepo
	catalog     *repository.SQLiteCatalogRepo
	assignments *repository.SQLiteAssignmentRepo
	completions *repository.SQLiteCompletionRepo
	uow         db.UnitOfWork
	observer    *recordingObserver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvOn(testutil.NewTestDB(t))
}

func newTestEnvOn(database *sql.DB) *testEnv {
	return &testEnv{
		classes:     repository.NewSQLiteClassRepo(database),
		students:    repository.NewSQLiteStudentRepo(database),
		schedules:   repository.NewSQLiteScheduleRepo(database),
		catalog:     repository.NewSQLiteCatalogRepo(database),
		assignments: repository.NewSQLiteAssignmentRepo(database),
		completions: repository.NewSQLiteCompletionRepo(database),
		uow:         testutil.NewTestUoW(database),
		observer:    &recordingObserver{},
	}
}

func (e *testEnv) pacing() PacingService {
	return NewPacingService(e.classes, e.students, e.schedules, e.catalog, e.assignments, e.completions, e.observer)
}

func (e *testEnv) progress() ProgressService {
	return NewProgressService(e.classes, e.students, e.schedules, e.catalog, e.assignments, e.completions, e.observer)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func jan(d int) time.Time { return testutil.Date(2026, time.January, d) }

// abcUnit is class 802, unit 3: sections A (Jan 1-10), B (11-20) and
// C (21-31), two lessons per section, each a practice activity plus a
// mastery check. Activity ids follow "<section><lesson><p|c>", e.g. "a1c".
type abcUnit struct {
	class    *domain.Class
	ada      *domain.Student
	alan     *domain.Student
	grace    *domain.Student
	schedule *domain.UnitSchedule
}

func seedABC(t *testing.T, e *testEnv) abcUnit {
	t.Helper()
	ctx := context.Background()

	u := abcUnit{class: testutil.NewTestClass("802")}
	require.NoError(t, e.classes.Upsert(ctx, u.class))

	u.ada = testutil.NewTestStudent(u.class.ID, "Ada Lovelace")
	u.alan = testutil.NewTestStudent(u.class.ID, "Alan Turing")
	u.grace = testutil.NewTestStudent(u.class.ID, "Grace Hopper")
	for _, s := range []*domain.Student{u.ada, u.alan, u.grace} {
		require.NoError(t, e.students.Upsert(ctx, s))
	}

	u.schedule = testutil.NewTestSchedule(u.class, 3,
		testutil.WithUnitName("Linear Relationships"),
		testutil.WithWindow("A", jan(1), jan(10)),
		testutil.WithWindow("B", jan(11), jan(20)),
		testutil.WithWindow("C", jan(21), jan(31)),
	)
	require.NoError(t, e.schedules.Save(ctx, u.schedule))

	lessons := []struct{ id, section, prefix string }{
		{"3.1", "A", "a1"}, {"3.2", "A", "a2"},
		{"3.3", "B", "b3"}, {"3.4", "B", "b4"},
		{"3.5", "C", "c5"}, {"3.6", "C", "c6"},
	}
	for _, l := range lessons {
		lesson := testutil.NewTestLesson(u.class.ScopeTag, 3, l.id, l.section)
		require.NoError(t, e.catalog.Upsert(ctx, lesson))
		require.NoError(t, e.assignments.Upsert(ctx, testutil.NewTestAssignment(u.class.ID, lesson, l.prefix+"p", domain.ActivityPractice)))
		require.NoError(t, e.assignments.Upsert(ctx, testutil.NewTestAssignment(u.class.ID, lesson, l.prefix+"c", domain.ActivityMasteryCheck)))
	}
	return u
}

func complete(t *testing.T, e *testEnv, studentID string, activityIDs ...string) {
	t.Helper()
	for _, id := range activityIDs {
		require.NoError(t, e.completions.Upsert(context.Background(), testutil.NewTestCompletion(studentID, id)))
	}
}
