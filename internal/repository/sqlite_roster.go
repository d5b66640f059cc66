package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/db"
	"github.com/alexanderramin/paceboard/internal/domain"
)

// SQLiteClassRepo implements ClassRepo using a SQLite database.
type SQLiteClassRepo struct {
	db db.DBTX
}

// NewSQLiteClassRepo creates a new SQLiteClassRepo.
func NewSQLiteClassRepo(conn db.DBTX) *SQLiteClassRepo {
	return &SQLiteClassRepo{db: conn}
}

func (r *SQLiteClassRepo) Upsert(ctx context.Context, c *domain.Class) error {
	query := `INSERT INTO classes (id, school, scope_tag, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET school = excluded.school, scope_tag = excluded.scope_tag`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.School, c.ScopeTag, c.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting class: %w", err)
	}
	return nil
}

func (r *SQLiteClassRepo) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, school, scope_tag, created_at FROM classes WHERE id = ?`, id)
	var c domain.Class
	var createdAt string
	if err := row.Scan(&c.ID, &c.School, &c.ScopeTag, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("class %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning class: %w", err)
	}
	var err error
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}

func (r *SQLiteClassRepo) List(ctx context.Context) ([]*domain.Class, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, school, scope_tag, created_at FROM classes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	defer rows.Close()

	var classes []*domain.Class
	for rows.Next() {
		var c domain.Class
		var createdAt string
		if err := rows.Scan(&c.ID, &c.School, &c.ScopeTag, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning class row: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		classes = append(classes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating classes: %w", err)
	}
	return classes, nil
}

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

func (r *SQLiteStudentRepo) Upsert(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (id, class_id, name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET class_id = excluded.class_id, name = excluded.name`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.ClassID, s.Name, s.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting student: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) ListByClass(ctx context.Context, classID string) ([]*domain.Student, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, class_id, name, created_at FROM students WHERE class_id = ? ORDER BY name, id`, classID)
	if err != nil {
		return nil, fmt.Errorf("listing students by class: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		var s domain.Student
		var createdAt string
		if err := rows.Scan(&s.ID, &s.ClassID, &s.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning student row: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}
