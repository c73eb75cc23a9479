// ABOUTME: Storage error taxonomy and SQLite error classification.
// ABOUTME: Separates duplicate-name constraint failures from generic ones.
package storage

import (
	"errors"

	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound means the addressed row does not exist. Empty query
	// results (no history, no sessions) are not errors and never use this.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName means an exercise with that name already exists.
	// Callers show "name already exists" instead of a generic failure.
	ErrDuplicateName = errors.New("name already exists")
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure, using the extended result code from the driver.
func isUniqueViolation(err error) bool {
	var se *sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE ||
		se.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
}
