package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/db"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/google/uuid"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
// Save issues several statements; run it through a UnitOfWork.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Save(ctx context.Context, s *domain.UnitSchedule) error {
	now := time.Now().UTC()
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	query := `INSERT INTO unit_schedules
		(id, school_year, scope_tag, school, class_section, unit_number, unit_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(school_year, scope_tag, school, class_section, unit_number)
		DO UPDATE SET unit_name = excluded.unit_name, updated_at = excluded.updated_at
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		s.ID, s.SchoolYear, s.ScopeTag, s.School, s.ClassSection, s.UnitNumber, s.UnitName,
		s.CreatedAt.Format(time.RFC3339), s.UpdatedAt.Format(time.RFC3339),
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("upserting unit schedule: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_windows WHERE unit_schedule_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing schedule windows: %w", err)
	}
	for i := range s.Windows {
		if err := r.UpsertWindow(ctx, s.ID, &s.Windows[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) Get(ctx context.Context, key ScheduleKey) (*domain.UnitSchedule, error) {
	query := `SELECT id, school_year, scope_tag, school, class_section, unit_number, unit_name, created_at, updated_at
		FROM unit_schedules
		WHERE school_year = ? AND scope_tag = ? AND school = ? AND class_section = ? AND unit_number = ?`
	row := r.db.QueryRowContext(ctx, query,
		key.SchoolYear, key.ScopeTag, key.School, key.ClassSection, key.UnitNumber)

	var s domain.UnitSchedule
	var createdAt, updatedAt string
	err := row.Scan(&s.ID, &s.SchoolYear, &s.ScopeTag, &s.School, &s.ClassSection,
		&s.UnitNumber, &s.UnitName, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("unit %d schedule for %s: %w", key.UnitNumber, key.ClassSection, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning unit schedule: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	s.Windows, err = r.listWindows(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteScheduleRepo) listWindows(ctx context.Context, scheduleID string) ([]domain.ScheduleWindow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, unit_schedule_id, section_id, name, start_date, end_date, planned_days
		FROM schedule_windows WHERE unit_schedule_id = ?
		ORDER BY start_date IS NULL, start_date, section_id`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule windows: %w", err)
	}
	defer rows.Close()

	var windows []domain.ScheduleWindow
	for rows.Next() {
		var w domain.ScheduleWindow
		var start, end sql.NullString
		if err := rows.Scan(&w.ID, &w.UnitScheduleID, &w.SectionID, &w.Name, &start, &end, &w.PlannedDays); err != nil {
			return nil, fmt.Errorf("scanning schedule window row: %w", err)
		}
		w.StartDate = dateOrZero(start)
		w.EndDate = dateOrZero(end)
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule windows: %w", err)
	}
	return windows, nil
}

func (r *SQLiteScheduleRepo) ListUnits(ctx context.Context, schoolYear, classSection string) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT unit_number FROM unit_schedules
		WHERE school_year = ? AND class_section = ? ORDER BY unit_number`, schoolYear, classSection)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled units: %w", err)
	}
	defer rows.Close()

	var units []int
	for rows.Next() {
		var u int
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scanning unit number: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scheduled units: %w", err)
	}
	return units, nil
}

func (r *SQLiteScheduleRepo) UpsertWindow(ctx context.Context, scheduleID string, w *domain.ScheduleWindow) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	w.UnitScheduleID = scheduleID
	query := `INSERT INTO schedule_windows (id, unit_schedule_id, section_id, name, start_date, end_date, planned_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(unit_schedule_id, section_id) DO UPDATE SET
			name = excluded.name,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			planned_days = excluded.planned_days
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		w.ID, scheduleID, w.SectionID, w.Name,
		nullableDate(w.StartDate), nullableDate(w.EndDate), w.PlannedDays,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("upserting schedule window %s: %w", w.SectionID, err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) DeleteWindow(ctx context.Context, scheduleID, sectionID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM schedule_windows WHERE unit_schedule_id = ? AND section_id = ?`, scheduleID, sectionID)
	if err != nil {
		return fmt.Errorf("deleting schedule window: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule window %s: %w", sectionID, ErrNotFound)
	}
	return nil
}
