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

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

// NewSQLiteCompletionRepo creates a new SQLiteCompletionRepo.
func NewSQLiteCompletionRepo(conn db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn}
}

const completionColumns = `c.id, c.student_id, c.activity_id, c.fully_complete, c.completed_at, c.synced_at`

func (r *SQLiteCompletionRepo) Upsert(ctx context.Context, rec *domain.CompletionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.SyncedAt.IsZero() {
		rec.SyncedAt = time.Now().UTC()
	}
	query := `INSERT INTO completion_records (id, student_id, activity_id, fully_complete, completed_at, synced_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(student_id, activity_id) DO UPDATE SET
			fully_complete = excluded.fully_complete,
			completed_at = excluded.completed_at,
			synced_at = excluded.synced_at`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.StudentID, rec.ActivityID, boolToInt(rec.FullyComplete),
		nullableTimeToString(rec.CompletedAt, time.RFC3339),
		rec.SyncedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting completion record: %w", err)
	}
	// An update keeps the stored id.
	err = r.db.QueryRowContext(ctx,
		`SELECT id FROM completion_records WHERE student_id = ? AND activity_id = ?`,
		rec.StudentID, rec.ActivityID,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("reading completion record id: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) ListByClass(ctx context.Context, classID string) ([]domain.CompletionRecord, error) {
	query := `SELECT ` + completionColumns + `
		FROM completion_records c
		JOIN students s ON s.id = c.student_id
		WHERE s.class_id = ?
		ORDER BY c.student_id, c.activity_id`
	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("listing completion records by class: %w", err)
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func (r *SQLiteCompletionRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.CompletionRecord, error) {
	query := `SELECT ` + completionColumns + `
		FROM completion_records c
		WHERE c.student_id = ?
		ORDER BY c.activity_id`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing completion records by student: %w", err)
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func scanCompletions(rows *sql.Rows) ([]domain.CompletionRecord, error) {
	var out []domain.CompletionRecord
	for rows.Next() {
		var rec domain.CompletionRecord
		var fully int
		var completedAt sql.NullString
		var syncedAt string
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.ActivityID, &fully, &completedAt, &syncedAt); err != nil {
			return nil, fmt.Errorf("scanning completion row: %w", err)
		}
		rec.FullyComplete = intToBool(fully)
		rec.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
		t, err := time.Parse(time.RFC3339, syncedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing synced_at: %w", err)
		}
		rec.SyncedAt = t
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completion records: %w", err)
	}
	return out, nil
}
