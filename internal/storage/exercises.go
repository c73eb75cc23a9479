// ABOUTME: Exercise catalog operations: list, create custom, delete custom.
// ABOUTME: Presets are structurally immune to deletion via the SQL predicate.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// ListExercises returns the whole catalog, custom exercises first, then
// grouped by muscle and name (the picker order of the original app).
// muscleGroup filters when non-empty.
func (d *DB) ListExercises(muscleGroup string) ([]*models.Exercise, error) {
	query := `
		SELECT id, name, muscle_group, equipment_type, is_custom, is_isolation
		FROM exercises
	`
	var args []interface{}
	if muscleGroup != "" {
		query += ` WHERE muscle_group = ?`
		args = append(args, muscleGroup)
	}
	query += ` ORDER BY is_custom DESC, muscle_group ASC, name ASC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var out []*models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetExercise retrieves one exercise by id.
func (d *DB) GetExercise(id int64) (*models.Exercise, error) {
	row := d.db.QueryRow(`
		SELECT id, name, muscle_group, equipment_type, is_custom, is_isolation
		FROM exercises
		WHERE id = ?
	`, id)

	e, err := scanExerciseRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("exercise %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// FindExerciseByName retrieves one exercise by exact name.
func (d *DB) FindExerciseByName(name string) (*models.Exercise, error) {
	row := d.db.QueryRow(`
		SELECT id, name, muscle_group, equipment_type, is_custom, is_isolation
		FROM exercises
		WHERE name = ?
	`, name)

	e, err := scanExerciseRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("exercise %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// SaveCustomExercise inserts a user-defined exercise. A name collision
// with any existing exercise (preset or custom) returns ErrDuplicateName
// so the caller can tell the user, rather than a generic failure.
func (d *DB) SaveCustomExercise(e *models.Exercise) error {
	e.IsCustom = true
	res, err := d.db.Exec(`
		INSERT INTO exercises (name, muscle_group, equipment_type, is_custom, is_isolation)
		VALUES (?, ?, ?, 1, ?)
	`, e.Name, nullIfEmpty(e.MuscleGroup), string(e.EquipmentType), boolToInt(e.IsIsolation))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("exercise %q: %w", e.Name, ErrDuplicateName)
		}
		return fmt.Errorf("save custom exercise: %w", err)
	}

	e.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save custom exercise: %w", err)
	}
	return nil
}

// DeleteCustomExercise removes a custom exercise. The is_custom predicate
// makes presets immune regardless of what the caller passes: deleting a
// preset id is a no-op, reported as ErrNotFound. Records referencing the
// exercise survive with a nulled reference (FK SET NULL), and plan
// associations cascade away.
func (d *DB) DeleteCustomExercise(id int64) error {
	res, err := d.db.Exec(`DELETE FROM exercises WHERE id = ? AND is_custom = 1`, id)
	if err != nil {
		return fmt.Errorf("delete custom exercise: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete custom exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("custom exercise %d: %w", id, ErrNotFound)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExercise(rows *sql.Rows) (*models.Exercise, error) {
	return scanExerciseRow(rows)
}

func scanExerciseRow(row rowScanner) (*models.Exercise, error) {
	var e models.Exercise
	var muscle, equipment sql.NullString
	var isCustom, isIsolation int

	if err := row.Scan(&e.ID, &e.Name, &muscle, &equipment, &isCustom, &isIsolation); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}

	e.MuscleGroup = muscle.String
	e.EquipmentType = models.EquipmentType(equipment.String)
	e.IsCustom = isCustom != 0
	e.IsIsolation = isIsolation != 0
	return &e, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
