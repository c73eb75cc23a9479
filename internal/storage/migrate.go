// ABOUTME: Additive schema migrations for databases created by older versions.
// ABOUTME: Each migration adds one column, skipped when already present.
package storage

import "fmt"

// columnMigration adds one column introduced after the original schema.
type columnMigration struct {
	table  string
	column string
	ddl    string
}

// Columns added over the app's history. Order matters only for readability;
// each entry is independent and idempotent.
var columnMigrations = []columnMigration{
	{"exercises", "is_custom", "ALTER TABLE exercises ADD COLUMN is_custom INTEGER NOT NULL DEFAULT 0"},
	{"exercises", "is_isolation", "ALTER TABLE exercises ADD COLUMN is_isolation INTEGER NOT NULL DEFAULT 0"},
	{"records", "left_reps", "ALTER TABLE records ADD COLUMN left_reps INTEGER"},
	{"records", "right_reps", "ALTER TABLE records ADD COLUMN right_reps INTEGER"},
	{"workout_exercises", "exercise_order", "ALTER TABLE workout_exercises ADD COLUMN exercise_order INTEGER NOT NULL DEFAULT 0"},
}

// applyMigrations brings an existing database to the latest column set.
// "Column already exists" is success (the presence check makes it a no-op);
// any real failure is returned and aborts startup rather than leaving a
// partially migrated schema behind.
func (d *DB) applyMigrations() error {
	for _, m := range columnMigrations {
		has, err := d.hasColumn(m.table, m.column)
		if err != nil {
			return fmt.Errorf("check column %s.%s: %w", m.table, m.column, err)
		}
		if has {
			continue
		}
		if _, err := d.db.Exec(m.ddl); err != nil {
			return fmt.Errorf("add column %s.%s: %w", m.table, m.column, err)
		}
	}
	return nil
}

// hasColumn reports whether the table already carries the column.
func (d *DB) hasColumn(table, column string) (bool, error) {
	var n int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
		table, column,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
