package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/paceboard/internal/db"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/google/uuid"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

func (r *SQLiteCatalogRepo) Upsert(ctx context.Context, l *domain.CatalogLesson) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.LessonType == "" {
		l.LessonType = domain.LessonRegular
	}
	query := `INSERT INTO catalog_lessons
		(id, scope_tag, unit_number, unit_lesson_id, lesson_name, section, lesson_type, lesson_title)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(scope_tag, unit_number, unit_lesson_id, lesson_name) DO UPDATE SET
			section = excluded.section,
			lesson_type = excluded.lesson_type,
			lesson_title = excluded.lesson_title
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		l.ID, l.ScopeTag, l.UnitNumber, l.UnitLessonID, l.LessonName, l.Section,
		string(l.LessonType), l.LessonTitle,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("upserting catalog lesson %s: %w", l.UnitLessonID, err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) ListByUnit(ctx context.Context, scopeTag string, unitNumber int) ([]domain.CatalogLesson, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, scope_tag, unit_number, unit_lesson_id, lesson_name, section, lesson_type, lesson_title
		FROM catalog_lessons WHERE scope_tag = ? AND unit_number = ?
		ORDER BY rowid`, scopeTag, unitNumber)
	if err != nil {
		return nil, fmt.Errorf("listing catalog lessons: %w", err)
	}
	defer rows.Close()

	var lessons []domain.CatalogLesson
	for rows.Next() {
		var l domain.CatalogLesson
		var lessonType string
		if err := rows.Scan(&l.ID, &l.ScopeTag, &l.UnitNumber, &l.UnitLessonID, &l.LessonName,
			&l.Section, &lessonType, &l.LessonTitle); err != nil {
			return nil, fmt.Errorf("scanning catalog lesson row: %w", err)
		}
		l.LessonType = domain.LessonType(lessonType)
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog lessons: %w", err)
	}
	return lessons, nil
}

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

func (r *SQLiteAssignmentRepo) Upsert(ctx context.Context, a *domain.SectionAssignment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Kind == "" {
		a.Kind = domain.ActivityMasteryCheck
	}
	query := `INSERT INTO section_assignments
		(id, class_id, unit_number, unit_lesson_id, lesson_name, section, activity_id, activity_kind)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(class_id, activity_id) DO UPDATE SET
			unit_number = excluded.unit_number,
			unit_lesson_id = excluded.unit_lesson_id,
			lesson_name = excluded.lesson_name,
			section = excluded.section,
			activity_kind = excluded.activity_kind
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.ClassID, a.UnitNumber, a.UnitLessonID, a.LessonName, a.Section,
		a.ActivityID, string(a.Kind),
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("upserting section assignment %s: %w", a.ActivityID, err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) ListByClassUnit(ctx context.Context, classID string, unitNumber int) ([]domain.SectionAssignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, class_id, unit_number, unit_lesson_id, lesson_name, section, activity_id, activity_kind
		FROM section_assignments WHERE class_id = ? AND unit_number = ?
		ORDER BY rowid`, classID, unitNumber)
	if err != nil {
		return nil, fmt.Errorf("listing section assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.SectionAssignment
	for rows.Next() {
		var a domain.SectionAssignment
		var kind string
		if err := rows.Scan(&a.ID, &a.ClassID, &a.UnitNumber, &a.UnitLessonID, &a.LessonName,
			&a.Section, &a.ActivityID, &kind); err != nil {
			return nil, fmt.Errorf("scanning section assignment row: %w", err)
		}
		a.Kind = domain.ActivityKind(kind)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating section assignments: %w", err)
	}
	return out, nil
}
