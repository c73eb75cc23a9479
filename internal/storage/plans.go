// ABOUTME: Plan (workout template) operations: list, save, delete.
// ABOUTME: Editing replaces the association set but never the plan's id.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// ListPlans returns all plans with their exercises in exercise_order,
// most recently created plan first. The LEFT JOIN keeps plans with zero
// exercises visible.
func (d *DB) ListPlans() ([]models.Plan, error) {
	rows, err := d.db.Query(`
		SELECT
			w.id, w.name,
			e.id, e.name, e.equipment_type, e.is_isolation,
			COALESCE(we.exercise_order, 0)
		FROM workouts w
		LEFT JOIN workout_exercises we ON w.id = we.workout_id
		LEFT JOIN exercises e ON we.exercise_id = e.id
		ORDER BY w.id DESC, we.exercise_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var flat []planRow
	for rows.Next() {
		var r planRow
		var exID sql.NullInt64
		var exName, equipment sql.NullString
		var isolation sql.NullInt64

		if err := rows.Scan(&r.WorkoutID, &r.WorkoutName, &exID, &exName, &equipment, &isolation, &r.Order); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		if exID.Valid {
			id := exID.Int64
			r.ExerciseID = &id
			r.ExerciseName = exName.String
			r.Equipment = equipment.String
			r.IsIsolation = isolation.Int64 != 0
		}
		flat = append(flat, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return groupPlans(flat), nil
}

// GetPlan retrieves one plan with its ordered exercises.
func (d *DB) GetPlan(id int64) (*models.Plan, error) {
	plans, err := d.ListPlans()
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, fmt.Errorf("plan %d: %w", id, ErrNotFound)
}

// SavePlan creates or updates a plan in one transaction. With ID set it
// updates the name in place and fully replaces the association set
// (delete + reinsert), preserving the plan's id and therefore its record
// history. exercise_order is assigned from slice position. Any failure
// rolls the whole save back: a plan is never observable half-written.
func (d *DB) SavePlan(p *models.Plan) error {
	if p.Name == "" {
		return fmt.Errorf("save plan: name is required")
	}

	return d.inTx(func(tx *sql.Tx) error {
		if p.ID != 0 {
			res, err := tx.Exec(`UPDATE workouts SET name = ? WHERE id = ?`, p.Name, p.ID)
			if err != nil {
				return fmt.Errorf("update plan: %w", err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("update plan: %w", err)
			}
			if affected == 0 {
				return fmt.Errorf("plan %d: %w", p.ID, ErrNotFound)
			}
			if _, err := tx.Exec(`DELETE FROM workout_exercises WHERE workout_id = ?`, p.ID); err != nil {
				return fmt.Errorf("clear plan exercises: %w", err)
			}
		} else {
			res, err := tx.Exec(`INSERT INTO workouts (name) VALUES (?)`, p.Name)
			if err != nil {
				return fmt.Errorf("create plan: %w", err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("create plan: %w", err)
			}
			p.ID = id
		}

		for i := range p.Exercises {
			p.Exercises[i].Order = i
			if _, err := tx.Exec(`
				INSERT INTO workout_exercises (workout_id, exercise_id, exercise_order)
				VALUES (?, ?, ?)
			`, p.ID, p.Exercises[i].ExerciseID, i); err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("exercise %d listed twice in plan: %w", p.Exercises[i].ExerciseID, err)
				}
				return fmt.Errorf("attach exercise %d: %w", p.Exercises[i].ExerciseID, err)
			}
		}
		return nil
	})
}

// DeletePlan removes a plan; the cascade removes its associations.
// Historical records keep their workout_id and stay retrievable — session
// listings label them as belonging to a deleted plan.
func (d *DB) DeletePlan(id int64) error {
	res, err := d.db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan %d: %w", id, ErrNotFound)
	}
	return nil
}
