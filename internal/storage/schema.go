// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for exercises, workouts, associations, records, users.
package storage

// initSchema creates the latest schema shape. Databases created by older
// versions are brought up to date by applyMigrations afterwards.
//
// records.workout_id deliberately carries no foreign key: deleting a plan
// must keep its historical records retrievable (session listings LEFT JOIN
// workouts and label the missing plan).
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		muscle_group TEXT,
		equipment_type TEXT,
		is_custom INTEGER NOT NULL DEFAULT 0,
		is_isolation INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workout_exercises (
		workout_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		exercise_order INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (workout_id, exercise_id),
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		workout_id INTEGER NOT NULL,
		exercise_id INTEGER,
		weight REAL,
		set_number INTEGER NOT NULL,
		reps INTEGER,
		half_reps INTEGER,
		left_reps INTEGER,
		right_reps INTEGER,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		weight_unit TEXT NOT NULL DEFAULT 'kg'
	);

	CREATE INDEX IF NOT EXISTS idx_records_session ON records(date DESC, workout_id);
	CREATE INDEX IF NOT EXISTS idx_records_exercise_date ON records(exercise_id, date DESC);
	CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id, exercise_order);
	`

	_, err := d.db.Exec(schema)
	return err
}
