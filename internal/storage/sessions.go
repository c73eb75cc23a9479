// ABOUTME: Session operations: record, edit, delete, list, detail,
// ABOUTME: and previous-performance lookups for progressive overload.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// RecordSession logs a performed session: one shared date stamp, one
// record row per set, set_number assigned 1..M per exercise. The whole
// session is one transaction — a failure mid-loop leaves nothing behind.
// Returns the date stamp identifying the new session.
func (d *DB) RecordSession(workoutID int64, entries []models.SessionEntry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("record session: no exercises to save")
	}

	date := d.sessionStamp()
	err := d.inTx(func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM workouts WHERE id = ?`, workoutID).Scan(&exists); err != nil {
			return fmt.Errorf("check plan: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("plan %d: %w", workoutID, ErrNotFound)
		}
		return insertSessionRecords(tx, date, workoutID, entries)
	})
	if err != nil {
		return "", err
	}
	return date, nil
}

// EditSession replaces a session wholesale: delete all records matching
// (date, workout_id), reinsert the edited list, one transaction. The
// original date stamp is preserved so the session keeps its identity.
// Editing a session that does not exist is ErrNotFound, never an insert:
// only RecordSession may mint date stamps.
func (d *DB) EditSession(date string, workoutID int64, entries []models.SessionEntry) error {
	return d.inTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM records WHERE date = ? AND workout_id = ?`, date, workoutID)
		if err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("session (%s, %d): %w", date, workoutID, ErrNotFound)
		}
		return insertSessionRecords(tx, date, workoutID, entries)
	})
}

// DeleteSession removes all records of one session. A single statement,
// but wrapped like every other mutation for a uniform surface.
func (d *DB) DeleteSession(date string, workoutID int64) error {
	return d.inTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM records WHERE date = ? AND workout_id = ?`, date, workoutID)
		if err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("session (%s, %d): %w", date, workoutID, ErrNotFound)
		}
		return nil
	})
}

// insertSessionRecords writes one row per set. set_number comes from the
// slice position, which keeps the 1..M contiguity invariant at write time
// regardless of what the caller put in the Set structs.
func insertSessionRecords(tx *sql.Tx, date string, workoutID int64, entries []models.SessionEntry) error {
	stmt, err := tx.Prepare(`
		INSERT INTO records (date, workout_id, exercise_id, weight, set_number, reps, half_reps, left_reps, right_reps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		for i, set := range entry.Sets {
			if _, err := stmt.Exec(
				date, workoutID, entry.ExerciseID,
				set.Weight, i+1, set.Reps, set.HalfReps,
				set.LeftReps, set.RightReps,
			); err != nil {
				return fmt.Errorf("insert set %d of exercise %d: %w", i+1, entry.ExerciseID, err)
			}
		}
	}
	return nil
}

// ListSessionsByMonth returns every performed session grouped into month
// buckets, most recent month first. Sessions of deleted plans remain,
// labeled "(deleted plan)".
func (d *DB) ListSessionsByMonth() ([]models.MonthBucket, error) {
	rows, err := d.db.Query(`
		SELECT DISTINCT r.date, r.workout_id, COALESCE(w.name, '')
		FROM records r
		LEFT JOIN workouts w ON r.workout_id = w.id
		ORDER BY r.date DESC, r.workout_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.SessionSummary
	for rows.Next() {
		var s models.SessionSummary
		if err := rows.Scan(&s.Date, &s.WorkoutID, &s.PlanName); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if s.PlanName == "" {
			s.PlanName = deletedPlanName
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return bucketByMonth(sessions), nil
}

// SessionDetail loads one session's records grouped by exercise in
// first-seen order, sets in set_number order. Records whose exercise was
// deleted keep their sets under a "(deleted exercise)" group.
func (d *DB) SessionDetail(date string, workoutID int64) (*models.Session, error) {
	var planName sql.NullString
	err := d.db.QueryRow(`SELECT name FROM workouts WHERE id = ?`, workoutID).Scan(&planName)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load plan name: %w", err)
	}

	rows, err := d.db.Query(`
		SELECT
			r.exercise_id, e.name, e.equipment_type, e.is_isolation,
			r.set_number, r.weight, r.reps, r.half_reps, r.left_reps, r.right_reps
		FROM records r
		LEFT JOIN exercises e ON r.exercise_id = e.id
		WHERE r.date = ? AND r.workout_id = ?
		ORDER BY r.id ASC
	`, date, workoutID)
	if err != nil {
		return nil, fmt.Errorf("load session detail: %w", err)
	}
	defer rows.Close()

	flat, err := scanSessionRows(rows)
	if err != nil {
		return nil, err
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("session (%s, %d): %w", date, workoutID, ErrNotFound)
	}

	s := &models.Session{
		Date:      date,
		WorkoutID: workoutID,
		PlanName:  planName.String,
		Exercises: groupSessionExercises(flat),
	}
	if s.PlanName == "" {
		s.PlanName = deletedPlanName
	}
	return s, nil
}

// PreviousPerformance returns all sets from the most recent session that
// touched the exercise — the "ghost" data pre-filling a new session. No
// history is an empty result, not an error. When two sessions share the
// max date (same exercise in two plans, identical stamp), the lowest
// workout id wins, deterministically.
func (d *DB) PreviousPerformance(exerciseID int64) (*models.PreviousPerformance, error) {
	prev := &models.PreviousPerformance{ExerciseID: exerciseID}

	var date string
	var workoutID int64
	err := d.db.QueryRow(`
		SELECT date, workout_id
		FROM records
		WHERE exercise_id = ?
		ORDER BY date DESC, workout_id ASC
		LIMIT 1
	`, exerciseID).Scan(&date, &workoutID)
	if errors.Is(err, sql.ErrNoRows) {
		return prev, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find last session: %w", err)
	}

	rows, err := d.db.Query(`
		SELECT set_number, weight, reps, half_reps, left_reps, right_reps
		FROM records
		WHERE exercise_id = ? AND date = ? AND workout_id = ?
		ORDER BY set_number ASC
	`, exerciseID, date, workoutID)
	if err != nil {
		return nil, fmt.Errorf("load previous sets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		prev.Sets = append(prev.Sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load previous sets: %w", err)
	}

	prev.Date = date
	prev.WorkoutID = workoutID
	return prev, nil
}

// PreviousForPlan runs PreviousPerformance for every exercise of a plan.
// The lookups are read-only and independent, so they are issued
// concurrently; results come back in plan order.
func (d *DB) PreviousForPlan(exerciseIDs []int64) ([]*models.PreviousPerformance, error) {
	out := make([]*models.PreviousPerformance, len(exerciseIDs))
	errs := make([]error, len(exerciseIDs))

	var wg sync.WaitGroup
	for i, id := range exerciseIDs {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			out[i], errs[i] = d.PreviousPerformance(id)
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// scanSessionRows reads the flat session detail rows.
func scanSessionRows(rows *sql.Rows) ([]sessionRow, error) {
	var flat []sessionRow
	for rows.Next() {
		var r sessionRow
		var exID sql.NullInt64
		var exName, equipment sql.NullString
		var isolation sql.NullInt64
		var weight sql.NullFloat64
		var reps, halfReps sql.NullInt64
		var leftReps, rightReps sql.NullInt64

		if err := rows.Scan(
			&exID, &exName, &equipment, &isolation,
			&r.Set.SetNumber, &weight, &reps, &halfReps, &leftReps, &rightReps,
		); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}

		if exID.Valid {
			id := exID.Int64
			r.ExerciseID = &id
			r.ExerciseName = exName.String
			r.Equipment = equipment.String
			r.IsIsolation = isolation.Int64 != 0
		}
		r.Set.Weight = weight.Float64
		r.Set.Reps = int(reps.Int64)
		r.Set.HalfReps = int(halfReps.Int64)
		if leftReps.Valid {
			v := int(leftReps.Int64)
			r.Set.LeftReps = &v
		}
		if rightReps.Valid {
			v := int(rightReps.Int64)
			r.Set.RightReps = &v
		}
		flat = append(flat, r)
	}
	return flat, rows.Err()
}

// scanSet reads one (set_number, weight, reps, half_reps, left, right) row.
func scanSet(rows *sql.Rows) (models.Set, error) {
	var set models.Set
	var weight sql.NullFloat64
	var reps, halfReps, leftReps, rightReps sql.NullInt64

	if err := rows.Scan(&set.SetNumber, &weight, &reps, &halfReps, &leftReps, &rightReps); err != nil {
		return set, fmt.Errorf("scan set: %w", err)
	}
	set.Weight = weight.Float64
	set.Reps = int(reps.Int64)
	set.HalfReps = int(halfReps.Int64)
	if leftReps.Valid {
		v := int(leftReps.Int64)
		set.LeftReps = &v
	}
	if rightReps.Valid {
		v := int(rightReps.Int64)
		set.RightReps = &v
	}
	return set, nil
}
