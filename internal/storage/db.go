// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection.
type DB struct {
	db     *sql.DB
	dbPath string

	// now stamps new sessions. Overridable in tests; must produce UTC so
	// stored RFC3339 dates stay fixed-width and sort lexicographically.
	now func() time.Time
}

// Open opens or creates a SQLite database at the given path, brings the
// schema to the latest shape and seeds the preset exercise catalog. Any
// schema or migration failure aborts the open: a partially migrated store
// is worse than a loud startup error.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	d := &DB{db: db, dbPath: dbPath, now: func() time.Time { return time.Now().UTC() }}

	if err := d.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	if err := d.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	if err := d.importPresets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("import preset exercises: %w", err)
	}

	return d, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "liftlog")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "liftlog.db")
}

// OpenDefault opens the database at the default XDG data path.
func OpenDefault() (*DB, error) {
	return Open(DefaultDBPath())
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for this workload. foreign_keys must be
// on for the cascade and set-null relations the schema relies on.
func (d *DB) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := d.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// inTx runs fn inside a transaction, rolling back on any error. Every
// multi-statement mutation goes through here so a failure mid-write never
// leaves a half-recorded state.
func (d *DB) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// sessionStamp generates the shared date value for a new session. UTC
// RFC3339 is fixed-width, so ORDER BY date compares chronologically.
func (d *DB) sessionStamp() string {
	return d.now().UTC().Truncate(time.Second).Format(time.RFC3339)
}
