// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Opens a throwaway database with a controllable clock.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/liftlog-dev/liftlog/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "liftlog.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// setClock pins the database clock so session stamps are deterministic.
// Sessions recorded in the same second against the same plan merge, so
// tests advance the clock between records.
func setClock(db *DB, t time.Time) {
	db.now = func() time.Time { return t }
}

// mustExercise finds a preset by name.
func mustExercise(t *testing.T, db *DB, name string) *models.Exercise {
	t.Helper()
	e, err := db.FindExerciseByName(name)
	if err != nil {
		t.Fatalf("FindExerciseByName(%q) failed: %v", name, err)
	}
	return e
}

// mustPlan creates a plan from preset names and returns it.
func mustPlan(t *testing.T, db *DB, name string, exercises ...string) *models.Plan {
	t.Helper()
	ids := make([]int64, len(exercises))
	for i, ex := range exercises {
		ids[i] = mustExercise(t, db, ex).ID
	}
	p := models.NewPlan(name, ids)
	if err := db.SavePlan(p); err != nil {
		t.Fatalf("SavePlan(%q) failed: %v", name, err)
	}
	return p
}

// simpleSets builds non-isolation sets from (weight, reps) pairs.
func simpleSets(pairs ...float64) []models.Set {
	var sets []models.Set
	for i := 0; i+1 < len(pairs); i += 2 {
		sets = append(sets, models.Set{Weight: pairs[i], Reps: int(pairs[i+1])})
	}
	return sets
}
