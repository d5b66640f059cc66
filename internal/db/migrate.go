package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is re-applied on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS classes (
		id         TEXT PRIMARY KEY,
		school     TEXT NOT NULL DEFAULT '',
		scope_tag  TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id         TEXT PRIMARY KEY,
		class_id   TEXT NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_students_class ON students(class_id)`,

	`CREATE TABLE IF NOT EXISTS unit_schedules (
		id            TEXT PRIMARY KEY,
		school_year   TEXT NOT NULL,
		scope_tag     TEXT NOT NULL DEFAULT '',
		school        TEXT NOT NULL DEFAULT '',
		class_section TEXT NOT NULL,
		unit_number   INTEGER NOT NULL CHECK(unit_number > 0),
		unit_name     TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		UNIQUE (school_year, scope_tag, school, class_section, unit_number)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_windows (
		id               TEXT PRIMARY KEY,
		unit_schedule_id TEXT NOT NULL REFERENCES unit_schedules(id) ON DELETE CASCADE,
		section_id       TEXT NOT NULL,
		name             TEXT NOT NULL DEFAULT '',
		start_date       TEXT,
		end_date         TEXT,
		planned_days     INTEGER NOT NULL DEFAULT 0,
		UNIQUE (unit_schedule_id, section_id)
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_lessons (
		id             TEXT PRIMARY KEY,
		scope_tag      TEXT NOT NULL DEFAULT '',
		unit_number    INTEGER NOT NULL,
		unit_lesson_id TEXT NOT NULL,
		lesson_name    TEXT NOT NULL,
		section        TEXT NOT NULL DEFAULT '',
		lesson_type    TEXT NOT NULL DEFAULT 'lesson'
		               CHECK(lesson_type IN ('lesson','rampUp','assessment')),
		lesson_title   TEXT NOT NULL DEFAULT '',
		UNIQUE (scope_tag, unit_number, unit_lesson_id, lesson_name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_catalog_unit ON catalog_lessons(scope_tag, unit_number)`,

	`CREATE TABLE IF NOT EXISTS section_assignments (
		id             TEXT PRIMARY KEY,
		class_id       TEXT NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
		unit_number    INTEGER NOT NULL,
		unit_lesson_id TEXT NOT NULL,
		lesson_name    TEXT NOT NULL,
		section        TEXT NOT NULL DEFAULT '',
		activity_id    TEXT NOT NULL,
		activity_kind  TEXT NOT NULL DEFAULT 'mastery-check'
		               CHECK(activity_kind IN ('practice','mastery-check','assessment')),
		UNIQUE (class_id, activity_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_class_unit ON section_assignments(class_id, unit_number)`,

	`CREATE TABLE IF NOT EXISTS completion_records (
		id             TEXT PRIMARY KEY,
		student_id     TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		activity_id    TEXT NOT NULL,
		fully_complete INTEGER NOT NULL DEFAULT 0,
		completed_at   TEXT,
		synced_at      TEXT NOT NULL,
		UNIQUE (student_id, activity_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completions_activity ON completion_records(activity_id)`,
}
