// ABOUTME: Tests for column migrations against a synthesized legacy
// ABOUTME: database, and for migration idempotence on a current one.
package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// createLegacyDB writes a database in the oldest shape: no is_custom,
// no is_isolation, no left/right reps, no exercise_order.
func createLegacyDB(t *testing.T, dbPath string) {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open legacy db: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE exercises (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			muscle_group TEXT,
			equipment_type TEXT
		)`,
		`CREATE TABLE workouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE workout_exercises (
			workout_id INTEGER NOT NULL,
			exercise_id INTEGER NOT NULL,
			PRIMARY KEY (workout_id, exercise_id)
		)`,
		`CREATE TABLE records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			workout_id INTEGER NOT NULL,
			exercise_id INTEGER,
			weight REAL,
			set_number INTEGER,
			reps INTEGER,
			half_reps INTEGER
		)`,
		`INSERT INTO exercises (name, muscle_group, equipment_type) VALUES ('Bench Press', 'chest', 'free-weight')`,
		`INSERT INTO workouts (name) VALUES ('Push Day')`,
		`INSERT INTO workout_exercises (workout_id, exercise_id) VALUES (1, 1)`,
		`INSERT INTO records (date, workout_id, exercise_id, weight, set_number, reps, half_reps)
			VALUES ('2025-06-02T18:00:00Z', 1, 1, 95, 1, 8, 0)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Legacy setup failed: %v", err)
		}
	}
}

func TestOpenMigratesLegacyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "liftlog.db")
	createLegacyDB(t, dbPath)

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open on legacy database failed: %v", err)
	}
	defer db.Close()

	// Old data is readable through the new shape.
	e, err := db.FindExerciseByName("Bench Press")
	if err != nil {
		t.Fatalf("FindExerciseByName failed: %v", err)
	}
	if e.IsCustom || e.IsIsolation {
		t.Errorf("Migrated columns should default to false: %+v", e)
	}

	s, err := db.SessionDetail("2025-06-02T18:00:00Z", 1)
	if err != nil {
		t.Fatalf("SessionDetail on legacy data failed: %v", err)
	}
	if len(s.Exercises) != 1 || len(s.Exercises[0].Sets) != 1 {
		t.Fatalf("Legacy records lost: %+v", s.Exercises)
	}
	if s.Exercises[0].Sets[0].IsIsolation() {
		t.Error("Legacy set misread as isolation")
	}

	// New-shape writes work against the migrated store.
	left, right := 8, 7
	if err := db.EditSession("2025-06-02T18:00:00Z", 1, []models.SessionEntry{
		{ExerciseID: e.ID, Sets: []models.Set{{Weight: 60, LeftReps: &left, RightReps: &right}}},
	}); err != nil {
		t.Fatalf("EditSession after migration failed: %v", err)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := setupTestDB(t)

	// A second pass over a current database must be a no-op.
	if err := db.applyMigrations(); err != nil {
		t.Fatalf("applyMigrations on current schema failed: %v", err)
	}

	for _, m := range columnMigrations {
		ok, err := db.hasColumn(m.table, m.column)
		if err != nil {
			t.Fatalf("hasColumn(%s.%s) failed: %v", m.table, m.column, err)
		}
		if !ok {
			t.Errorf("Column %s.%s missing after migration", m.table, m.column)
		}
	}
}

func TestLegacySeedStillRuns(t *testing.T) {
	// A legacy database with an empty exercises table gets the preset
	// catalog on open; one with data does not.
	dbPath := filepath.Join(t.TempDir(), "liftlog.db")
	createLegacyDB(t, dbPath)

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	exercises, err := db.ListExercises("")
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(exercises) != 1 {
		t.Errorf("Seed ran over existing user data: %d exercises", len(exercises))
	}
}
