// ABOUTME: Full-database export to JSON, YAML and Markdown, plus JSON
// ABOUTME: import for restoring a backup into a fresh database.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/liftlog-dev/liftlog/internal/models"
)

const exportVersion = 1

// ExportData is the portable snapshot of everything the user entered.
// Preset exercises are not exported; a fresh database reseeds them, so
// only custom exercises travel.
type ExportData struct {
	Version    int                `json:"version" yaml:"version"`
	Tool       string             `json:"tool" yaml:"tool"`
	ExportedAt string             `json:"exported_at" yaml:"exported_at"`
	Profile    *models.Profile    `json:"profile,omitempty" yaml:"profile,omitempty"`
	Exercises  []*models.Exercise `json:"custom_exercises,omitempty" yaml:"custom_exercises,omitempty"`
	Plans      []models.Plan      `json:"plans,omitempty" yaml:"plans,omitempty"`
	Sessions   []*models.Session  `json:"sessions,omitempty" yaml:"sessions,omitempty"`
}

// Snapshot gathers the full export payload.
func (d *DB) Snapshot() (*ExportData, error) {
	out := &ExportData{
		Version:    exportVersion,
		Tool:       "liftlog",
		ExportedAt: d.sessionStamp(),
	}

	profile, err := d.Profile()
	if err != nil {
		return nil, err
	}
	out.Profile = profile

	exercises, err := d.ListExercises("")
	if err != nil {
		return nil, err
	}
	for _, e := range exercises {
		if e.IsCustom {
			out.Exercises = append(out.Exercises, e)
		}
	}

	out.Plans, err = d.ListPlans()
	if err != nil {
		return nil, err
	}

	months, err := d.ListSessionsByMonth()
	if err != nil {
		return nil, err
	}
	for _, m := range months {
		for _, s := range m.Sessions {
			detail, err := d.SessionDetail(s.Date, s.WorkoutID)
			if err != nil {
				return nil, err
			}
			out.Sessions = append(out.Sessions, detail)
		}
	}

	return out, nil
}

// ExportJSON writes the snapshot as indented JSON.
func (d *DB) ExportJSON(w io.Writer) error {
	data, err := d.Snapshot()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// ExportYAML writes the snapshot as YAML.
func (d *DB) ExportYAML(w io.Writer) error {
	data, err := d.Snapshot()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// ExportMarkdown writes a human-readable training log: plans first, then
// sessions grouped by month, newest first.
func (d *DB) ExportMarkdown(w io.Writer) error {
	data, err := d.Snapshot()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "# Training Log\n\nExported %s\n\n", data.ExportedAt)

	if p := data.Profile; p != nil && (p.FirstName != "" || p.LastName != "") {
		fmt.Fprintf(w, "**%s %s** (weights in %s)\n\n", p.FirstName, p.LastName, p.WeightUnit)
	}

	if len(data.Plans) > 0 {
		fmt.Fprintf(w, "## Plans\n\n")
		for _, plan := range data.Plans {
			fmt.Fprintf(w, "### %s\n\n", plan.Name)
			for _, ex := range plan.Exercises {
				fmt.Fprintf(w, "- %s\n", ex.Name)
			}
			fmt.Fprintln(w)
		}
	}

	if len(data.Sessions) == 0 {
		return nil
	}

	fmt.Fprintf(w, "## Sessions\n")
	currentMonth := ""
	for _, s := range data.Sessions {
		if key := monthKey(s.Date); key != currentMonth {
			currentMonth = key
			fmt.Fprintf(w, "\n## %s\n", monthLabel(s.Date, key))
		}
		fmt.Fprintf(w, "\n### %s — %s\n\n", formatDay(s.Date), s.PlanName)
		for _, ex := range s.Exercises {
			fmt.Fprintf(w, "- **%s**:", ex.Name)
			for i, set := range ex.Sets {
				if i > 0 {
					fmt.Fprint(w, ",")
				}
				fmt.Fprintf(w, " %s", set.String())
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

// formatDay renders a stored date stamp as a calendar day.
func formatDay(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.Format("Mon 2 Jan 2006")
}

// ImportJSON restores a JSON export into this database.
func (d *DB) ImportJSON(r io.Reader) error {
	var data ExportData
	dec := json.NewDecoder(r)
	if err := dec.Decode(&data); err != nil {
		return fmt.Errorf("decode import: %w", err)
	}
	return d.Import(&data)
}

// Import restores a snapshot in a single transaction. Exercises are
// matched by name (presets already exist after seeding); plans and
// sessions get fresh ids with references remapped. Sessions of plans
// that were already deleted at export time keep their records, remapped
// to negative workout ids so they can never collide with a future plan.
func (d *DB) Import(data *ExportData) error {
	if data.Version != exportVersion {
		return fmt.Errorf("import: unsupported export version %d", data.Version)
	}

	return d.inTx(func(tx *sql.Tx) error {
		if data.Profile != nil {
			if _, err := tx.Exec(`
				INSERT INTO users (id, first_name, last_name, weight_unit)
				VALUES (1, ?, ?, ?)
				ON CONFLICT (id) DO UPDATE SET
					first_name = excluded.first_name,
					last_name = excluded.last_name,
					weight_unit = excluded.weight_unit
			`, data.Profile.FirstName, data.Profile.LastName, string(data.Profile.WeightUnit)); err != nil {
				return fmt.Errorf("import profile: %w", err)
			}
		}

		exerciseIDs := make(map[string]int64)
		resolve := func(name string) (int64, bool, error) {
			if id, ok := exerciseIDs[name]; ok {
				return id, true, nil
			}
			var id int64
			err := tx.QueryRow(`SELECT id FROM exercises WHERE name = ?`, name).Scan(&id)
			if err == sql.ErrNoRows {
				return 0, false, nil
			}
			if err != nil {
				return 0, false, fmt.Errorf("resolve exercise %q: %w", name, err)
			}
			exerciseIDs[name] = id
			return id, true, nil
		}

		for _, e := range data.Exercises {
			if _, found, err := resolve(e.Name); err != nil {
				return err
			} else if found {
				continue
			}
			res, err := tx.Exec(`
				INSERT INTO exercises (name, muscle_group, equipment_type, is_custom, is_isolation)
				VALUES (?, ?, ?, 1, ?)
			`, e.Name, nullIfEmpty(e.MuscleGroup), string(e.EquipmentType), boolToInt(e.IsIsolation))
			if err != nil {
				return fmt.Errorf("import exercise %q: %w", e.Name, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("import exercise %q: %w", e.Name, err)
			}
			exerciseIDs[e.Name] = id
		}

		// Snapshot lists plans newest-first. Insert oldest-first so fresh
		// rowids preserve the original creation order (ListPlans sorts on id).
		planIDs := make(map[int64]int64)
		for i := len(data.Plans) - 1; i >= 0; i-- {
			plan := data.Plans[i]
			res, err := tx.Exec(`INSERT INTO workouts (name) VALUES (?)`, plan.Name)
			if err != nil {
				return fmt.Errorf("import plan %q: %w", plan.Name, err)
			}
			newID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("import plan %q: %w", plan.Name, err)
			}
			planIDs[plan.ID] = newID

			for order, ex := range plan.Exercises {
				id, found, err := resolve(ex.Name)
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("import plan %q: exercise %q: %w", plan.Name, ex.Name, ErrNotFound)
				}
				if _, err := tx.Exec(`
					INSERT INTO workout_exercises (workout_id, exercise_id, exercise_order)
					VALUES (?, ?, ?)
				`, newID, id, order); err != nil {
					return fmt.Errorf("import plan %q: %w", plan.Name, err)
				}
			}
		}

		stmt, err := tx.Prepare(`
			INSERT INTO records (date, workout_id, exercise_id, weight, set_number, reps, half_reps, left_reps, right_reps)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare record import: %w", err)
		}
		defer stmt.Close()

		orphanIDs := make(map[int64]int64)
		for _, s := range data.Sessions {
			workoutID, ok := planIDs[s.WorkoutID]
			if !ok {
				workoutID, ok = orphanIDs[s.WorkoutID]
				if !ok {
					workoutID = -int64(len(orphanIDs) + 1)
					orphanIDs[s.WorkoutID] = workoutID
				}
			}

			for _, ex := range s.Exercises {
				var exerciseID interface{}
				if ex.ExerciseID != nil {
					id, found, err := resolve(ex.Name)
					if err != nil {
						return err
					}
					if found {
						exerciseID = id
					}
				}
				for _, set := range ex.Sets {
					if _, err := stmt.Exec(
						s.Date, workoutID, exerciseID,
						set.Weight, set.SetNumber, set.Reps, set.HalfReps,
						set.LeftReps, set.RightReps,
					); err != nil {
						return fmt.Errorf("import session %s: %w", s.Date, err)
					}
				}
			}
		}
		return nil
	})
}
